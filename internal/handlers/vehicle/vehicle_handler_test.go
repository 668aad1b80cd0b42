// internal/handlers/vehicle/vehicle_handler_test.go
package vehicle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet-rental-service/internal/repository/memory"
	service "fleet-rental-service/internal/service/rental"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewService(memory.NewStore().Factory(), zap.NewNop())
	h := NewVehicleHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	vehicles := api.Group("/vehicles")
	vehicles.POST("", h.CreateVehicle)
	vehicles.GET("", h.ListVehicles)
	vehicles.PUT("/rent", h.RentVehicle)
	vehicles.PUT("/return", h.ReturnVehicle)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBody(plate string) map[string]any {
	return map[string]any{
		"plateNumber":  plate,
		"brand":        "Toyota",
		"model":        "Corolla",
		"manufactured": time.Now().UTC().AddDate(-2, 0, 0).Format(time.RFC3339),
	}
}

func rentBody(plate, idNumber string) map[string]any {
	return map[string]any{
		"plateNumber":       plate,
		"clientName":        "Jane Doe",
		"clientEmail":       "jane@example.com",
		"clientPhoneNumber": "+34600111222",
		"clientIdNumber":    idNumber,
	}
}

func TestCreateVehicleEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", createBody("1234ABC"))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCreateVehicleEndpointValidation(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing fields", map[string]any{"plateNumber": "1234ABC"}, http.StatusBadRequest},
		{"too old", map[string]any{
			"plateNumber":  "1234ABC",
			"brand":        "Toyota",
			"model":        "Corolla",
			"manufactured": "2005-01-01T00:00:00Z",
		}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", tc.body)
			assert.Equal(t, tc.want, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCreateVehicleEndpointDuplicateConflict(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", createBody("1234ABC"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/vehicles", createBody("1234ABC"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRentVehicleEndpointNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPut, "/api/v1/vehicles/rent", rentBody("NOPE", "ID1"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReturnVehicleEndpointNotRented(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", createBody("1234ABC"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/vehicles/return", map[string]any{"plateNumber": "1234ABC"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Full lifecycle: register, rent, double-rental conflict, return, list.
func TestRentalLifecycle(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", createBody("1234ABC"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/vehicles/rent", rentBody("1234ABC", "ID1"))
	require.Equal(t, http.StatusOK, w.Code)

	var rentResp struct {
		Vehicle struct {
			PlateNumber string `json:"plateNumber"`
			IsRented    bool   `json:"isRented"`
			Client      *struct {
				IDNumber string `json:"idNumber"`
			} `json:"client"`
		} `json:"vehicle"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rentResp))
	assert.True(t, rentResp.Vehicle.IsRented)
	require.NotNil(t, rentResp.Vehicle.Client)
	assert.Equal(t, "ID1", rentResp.Vehicle.Client.IDNumber)

	// same client, any plate: conflict
	w = doJSON(t, r, http.MethodPost, "/api/v1/vehicles", createBody("5678DEF"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPut, "/api/v1/vehicles/rent", rentBody("5678DEF", "ID1"))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/vehicles/return", map[string]any{"plateNumber": "1234ABC"})
	require.Equal(t, http.StatusOK, w.Code)
	var returnResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &returnResp))
	assert.NotEmpty(t, returnResp["message"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Vehicles []struct {
			PlateNumber string `json:"plateNumber"`
			IsActive    bool   `json:"isActive"`
		} `json:"vehicles"`
		TotalCount int64 `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, int64(1), listResp.TotalCount)
	for _, v := range listResp.Vehicles {
		assert.NotEqual(t, "1234ABC", v.PlateNumber)
		assert.True(t, v.IsActive)
	}
}

func TestListVehiclesEndpointCounts(t *testing.T) {
	r := newTestRouter()

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", createBody(fmt.Sprintf("%04dXYZ", i)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Vehicles   []json.RawMessage `json:"vehicles"`
		TotalCount int64             `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, int64(3), listResp.TotalCount)
	assert.Len(t, listResp.Vehicles, 3)
}
