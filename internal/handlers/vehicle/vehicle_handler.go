// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"net/http"

	"fleet-rental-service/internal/domain/vehicle"
	xerrors "fleet-rental-service/internal/pkg/errors"
	"fleet-rental-service/internal/pkg/response"
	service "fleet-rental-service/internal/service/rental"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	rentalService *service.Service
}

func NewVehicleHandler(rentalService *service.Service) *VehicleHandler {
	return &VehicleHandler{rentalService: rentalService}
}

// CreateVehicle registers a new vehicle in the fleet.
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req vehicle.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, xerrors.Wrap(err, "invalid request"))
		return
	}

	if _, err := h.rentalService.CreateVehicle(c.Request.Context(), &req); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// ListVehicles returns all vehicles still in the fleet.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	result, err := h.rentalService.ListVehicles(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RentVehicle marks an available vehicle as rented by a client, creating
// the client record if it does not exist yet.
func (h *VehicleHandler) RentVehicle(c *gin.Context) {
	var req vehicle.RentVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, xerrors.Wrap(err, "invalid request"))
		return
	}

	rented, err := h.rentalService.RentVehicle(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": rented})
}

// ReturnVehicle retires a rented vehicle from the fleet.
func (h *VehicleHandler) ReturnVehicle(c *gin.Context) {
	var req vehicle.ReturnVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, xerrors.Wrap(err, "invalid request"))
		return
	}

	if _, err := h.rentalService.ReturnVehicle(c.Request.Context(), req.PlateNumber); err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vehicle returned successfully"})
}
