// internal/domain/validation/vehicle_age.go
package validation

import (
	"time"

	xerrors "fleet-rental-service/internal/pkg/errors"
)

// MaxVehicleAgeYears is the oldest a vehicle may be to enter the fleet.
// A vehicle aged exactly this many whole years is rejected.
const MaxVehicleAgeYears = 5

// ValidateVehicleAge checks that the manufacture date is set, not in the
// future, and that the vehicle is younger than the fleet age limit. Pure
// function of the input and the current UTC time.
func ValidateVehicleAge(manufactured time.Time) error {
	return validateVehicleAgeAt(manufactured, time.Now().UTC())
}

func validateVehicleAgeAt(manufactured, now time.Time) error {
	if manufactured.IsZero() {
		return xerrors.Domainf("manufacturing date must be provided")
	}
	if manufactured.After(now) {
		return xerrors.Domainf("manufacturing date cannot be in the future")
	}

	age := vehicleAgeAt(manufactured, now)
	if age >= MaxVehicleAgeYears {
		return xerrors.Domainf("vehicle age (%d years) exceeds the maximum allowed age of %d years", age, MaxVehicleAgeYears)
	}
	return nil
}

// vehicleAgeAt computes whole calendar years between manufacture and now,
// subtracting one if the manufacture month/day has not yet occurred this
// year.
func vehicleAgeAt(manufactured, now time.Time) int {
	age := now.Year() - manufactured.Year()
	if manufactured.AddDate(age, 0, 0).After(now) {
		age--
	}
	return age
}
