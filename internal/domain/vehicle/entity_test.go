// internal/domain/vehicle/entity_test.go
package vehicle

import (
	"testing"
	"time"

	"fleet-rental-service/internal/domain/client"
	xerrors "fleet-rental-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manufacturedDate() time.Time {
	return time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func testClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient("Jane Doe", "jane@example.com", "+34600111222", "12345678A")
	require.NoError(t, err)
	return c
}

func TestNewVehicle(t *testing.T) {
	before := time.Now().UTC()
	v, err := NewVehicle("1234ABC", "Toyota", "Corolla", manufacturedDate())
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "1234ABC", v.PlateNumber)
	assert.Equal(t, "Toyota", v.Brand)
	assert.Equal(t, "Corolla", v.Model)
	assert.True(t, v.IsActive)
	assert.False(t, v.IsRented)
	assert.Nil(t, v.Client)
	assert.False(t, v.Registration.Before(before))
}

func TestNewVehicleRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name         string
		plate        string
		brand        string
		model        string
		manufactured time.Time
	}{
		{"empty plate", "", "Toyota", "Corolla", manufacturedDate()},
		{"whitespace plate", "   ", "Toyota", "Corolla", manufacturedDate()},
		{"empty brand", "1234ABC", "", "Corolla", manufacturedDate()},
		{"empty model", "1234ABC", "Toyota", "", manufacturedDate()},
		{"zero manufactured date", "1234ABC", "Toyota", "Corolla", time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := NewVehicle(tc.plate, tc.brand, tc.model, tc.manufactured)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, xerrors.ErrDomain)
		})
	}
}

func TestUpdateRentStatusRequiresClient(t *testing.T) {
	v, err := NewVehicle("1234ABC", "Toyota", "Corolla", manufacturedDate())
	require.NoError(t, err)

	err = v.UpdateRentStatus(nil, true)
	assert.ErrorIs(t, err, xerrors.ErrDomain)
	assert.False(t, v.IsRented)
	assert.Nil(t, v.Client)
}

func TestUpdateRentStatusAssignsAndClears(t *testing.T) {
	v, err := NewVehicle("1234ABC", "Toyota", "Corolla", manufacturedDate())
	require.NoError(t, err)
	c := testClient(t)

	require.NoError(t, v.UpdateRentStatus(c, true))
	assert.True(t, v.IsRented)
	assert.Same(t, c, v.Client)
	assert.True(t, v.IsActive)

	require.NoError(t, v.UpdateRentStatus(nil, false))
	assert.False(t, v.IsRented)
	assert.Nil(t, v.Client)
}

func TestReturnRetiresPermanently(t *testing.T) {
	v, err := NewVehicle("1234ABC", "Toyota", "Corolla", manufacturedDate())
	require.NoError(t, err)
	require.NoError(t, v.UpdateRentStatus(testClient(t), true))

	v.Return()

	assert.False(t, v.IsActive)
	assert.False(t, v.IsRented)
	assert.Nil(t, v.Client)
}
