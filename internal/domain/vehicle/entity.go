// internal/domain/vehicle/entity.go
package vehicle

import (
	"strings"
	"time"

	"fleet-rental-service/internal/domain/client"
	xerrors "fleet-rental-service/internal/pkg/errors"

	"github.com/google/uuid"
)

// Vehicle is the rental aggregate. IsActive tracks whether the vehicle is
// still part of the fleet and is distinct from the rental status: a
// returned vehicle is deactivated permanently and never rented again.
type Vehicle struct {
	ID           string         `json:"id" bson:"_id"`
	PlateNumber  string         `json:"plateNumber" bson:"plateNumber"`
	Brand        string         `json:"brand" bson:"brand"`
	Model        string         `json:"model" bson:"model"`
	Manufactured time.Time      `json:"manufactured" bson:"manufactured"`
	Registration time.Time      `json:"registration" bson:"registration"`
	IsActive     bool           `json:"isActive" bson:"isActive"`
	IsRented     bool           `json:"isRented" bson:"isRented"`
	Client       *client.Client `json:"client,omitempty" bson:"client,omitempty"`
}

// NewVehicle validates the input and registers the vehicle as active,
// not rented, with the registration timestamp taken now.
func NewVehicle(plateNumber, brand, model string, manufactured time.Time) (*Vehicle, error) {
	if strings.TrimSpace(plateNumber) == "" {
		return nil, xerrors.Domainf("plate number cannot be empty")
	}
	if strings.TrimSpace(brand) == "" {
		return nil, xerrors.Domainf("brand cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, xerrors.Domainf("model cannot be empty")
	}
	if manufactured.IsZero() {
		return nil, xerrors.Domainf("manufactured date is invalid")
	}

	return &Vehicle{
		ID:           uuid.NewString(),
		PlateNumber:  plateNumber,
		Brand:        brand,
		Model:        model,
		Manufactured: manufactured,
		Registration: time.Now().UTC(),
		IsActive:     true,
		IsRented:     false,
	}, nil
}

// UpdateRentStatus assigns or clears the renting client. Renting requires
// a client; clearing drops the reference. No other field changes.
func (v *Vehicle) UpdateRentStatus(c *client.Client, rented bool) error {
	if rented && c == nil {
		return xerrors.Domainf("client cannot be nil when renting")
	}
	if rented {
		v.Client = c
	} else {
		v.Client = nil
	}
	v.IsRented = rented
	return nil
}

// Return retires the vehicle from the fleet. Irreversible: nothing sets
// IsActive back to true.
func (v *Vehicle) Return() {
	v.Client = nil
	v.IsRented = false
	v.IsActive = false
}
