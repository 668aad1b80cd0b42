// internal/domain/validation/rental_eligibility.go
package validation

import (
	"context"
	"strings"

	xerrors "fleet-rental-service/internal/pkg/errors"
)

// RentalChecker is the slice of the vehicle repository the eligibility
// rule needs. Passing the unit-of-work view keeps the read inside the
// caller's transaction.
type RentalChecker interface {
	HasClientRented(ctx context.Context, clientIDNumber string) (bool, error)
}

// ValidateClientCanRent rejects blank id-numbers and clients that already
// hold a rented vehicle. The double-rental case is a conflict so the
// boundary answers 409.
func ValidateClientCanRent(ctx context.Context, vehicles RentalChecker, clientIDNumber string) error {
	if strings.TrimSpace(clientIDNumber) == "" {
		return xerrors.Domainf("client ID number cannot be empty")
	}

	rented, err := vehicles.HasClientRented(ctx, clientIDNumber)
	if err != nil {
		return err
	}
	if rented {
		return xerrors.Conflictf("client with ID %s already has a rented vehicle", clientIDNumber)
	}
	return nil
}
