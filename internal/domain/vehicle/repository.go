// internal/domain/vehicle/repository.go
package vehicle

import "context"

// Repository persists vehicles. It is transaction-unaware: when obtained
// through a unit of work its operations join the unit's active session.
type Repository interface {
	// Create inserts a new vehicle. A plate collision with the unique
	// index surfaces as a conflict error.
	Create(ctx context.Context, v *Vehicle) error

	// GetByPlate returns the vehicle with the given plate, or (nil, nil)
	// when no vehicle matches.
	GetByPlate(ctx context.Context, plateNumber string) (*Vehicle, error)

	// GetAllActive returns every vehicle still in the fleet.
	GetAllActive(ctx context.Context) ([]Vehicle, error)

	// UpdateRentalStatus replaces the stored vehicle by ID.
	UpdateRentalStatus(ctx context.Context, v *Vehicle) error

	// HasClientRented reports whether the client with the given id-number
	// currently holds an active rented vehicle.
	HasClientRented(ctx context.Context, clientIDNumber string) (bool, error)
}
