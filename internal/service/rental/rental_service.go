// internal/service/rental/rental_service.go
package rental

import (
	"context"

	"fleet-rental-service/internal/domain/client"
	"fleet-rental-service/internal/domain/uow"
	"fleet-rental-service/internal/domain/validation"
	"fleet-rental-service/internal/domain/vehicle"
	xerrors "fleet-rental-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// Service orchestrates the rental workflows. Every mutating operation runs
// inside its own unit of work: begin, validate, mutate through the bound
// repositories, commit. Business errors between begin and commit propagate
// untouched; the deferred Close rolls back whatever was left uncommitted
// and releases the session.
type Service struct {
	newUnit uow.Factory
	logger  *zap.Logger
}

func NewService(newUnit uow.Factory, logger *zap.Logger) *Service {
	return &Service{newUnit: newUnit, logger: logger}
}

// CreateVehicle registers a new vehicle after validating its age and plate
// uniqueness. The existence pre-check is an optimization; the unique plate
// index catches the check-then-act race and the repository reports it as
// the same conflict.
func (s *Service) CreateVehicle(ctx context.Context, req *vehicle.CreateVehicleRequest) (*vehicle.CreateVehicleResponse, error) {
	unit := s.newUnit()
	if err := unit.Begin(ctx); err != nil {
		return nil, err
	}
	defer unit.Close(ctx)

	if err := validation.ValidateVehicleAge(req.Manufactured); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(req.PlateNumber, req.Brand, req.Model, req.Manufactured)
	if err != nil {
		return nil, err
	}

	existing, err := unit.Vehicles().GetByPlate(ctx, req.PlateNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, xerrors.Conflictf("vehicle with plate %s already exists", req.PlateNumber)
	}

	if err := unit.Vehicles().Create(ctx, v); err != nil {
		return nil, err
	}

	if _, err := unit.Save(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle created",
		zap.String("vehicleId", v.ID),
		zap.String("plateNumber", v.PlateNumber))

	return &vehicle.CreateVehicleResponse{ID: v.ID, PlateNumber: v.PlateNumber}, nil
}

// RentVehicle assigns an available vehicle to the client identified by the
// supplied id-number, creating the client record when absent.
func (s *Service) RentVehicle(ctx context.Context, req *vehicle.RentVehicleRequest) (*vehicle.Vehicle, error) {
	unit := s.newUnit()
	if err := unit.Begin(ctx); err != nil {
		return nil, err
	}
	defer unit.Close(ctx)

	if err := validation.ValidateClientCanRent(ctx, unit.Vehicles(), req.ClientIDNumber); err != nil {
		return nil, err
	}

	v, err := unit.Vehicles().GetByPlate(ctx, req.PlateNumber)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, xerrors.NotFoundf("vehicle with plate %s does not exist", req.PlateNumber)
	}
	if !v.IsActive {
		// Retired vehicles are no longer part of the rentable fleet, so
		// the plate is reported as absent rather than conflicting.
		return nil, xerrors.NotFoundf("vehicle with plate %s is not available for rent", req.PlateNumber)
	}
	if v.IsRented {
		return nil, xerrors.Conflictf("vehicle with plate %s is already rented", req.PlateNumber)
	}

	c, err := unit.Clients().GetByIDNumber(ctx, req.ClientIDNumber)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = client.NewClient(req.ClientName, req.ClientEmail, req.ClientPhoneNumber, req.ClientIDNumber)
		if err != nil {
			return nil, err
		}
		if err := unit.Clients().Create(ctx, c); err != nil {
			return nil, err
		}
	}

	if err := v.UpdateRentStatus(c, true); err != nil {
		return nil, err
	}
	if err := unit.Vehicles().UpdateRentalStatus(ctx, v); err != nil {
		return nil, err
	}

	if _, err := unit.Save(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle rented",
		zap.String("plateNumber", v.PlateNumber),
		zap.String("clientIdNumber", c.IDNumber))

	return v, nil
}

// ReturnVehicle retires a rented vehicle permanently. Runs transactional
// like the other mutations so the read and the write share one session.
func (s *Service) ReturnVehicle(ctx context.Context, plateNumber string) (int64, error) {
	unit := s.newUnit()
	if err := unit.Begin(ctx); err != nil {
		return 0, err
	}
	defer unit.Close(ctx)

	v, err := unit.Vehicles().GetByPlate(ctx, plateNumber)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, xerrors.NotFoundf("vehicle with plate %s not found", plateNumber)
	}
	if !v.IsRented {
		return 0, xerrors.NotFoundf("vehicle with plate %s is not currently rented", plateNumber)
	}
	if v.Client == nil {
		return 0, xerrors.NotFoundf("vehicle with plate %s has no associated client", plateNumber)
	}

	v.Return()
	if err := unit.Vehicles().UpdateRentalStatus(ctx, v); err != nil {
		return 0, err
	}

	affected, err := unit.Save(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("vehicle returned", zap.String("plateNumber", plateNumber))
	return affected, nil
}

// ListVehicles returns every vehicle still in the fleet with a total
// count. Read-only: no transaction is opened.
func (s *Service) ListVehicles(ctx context.Context) (*vehicle.ListVehiclesResponse, error) {
	unit := s.newUnit()

	vehicles, err := unit.Vehicles().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	return &vehicle.ListVehiclesResponse{
		Vehicles:   vehicles,
		TotalCount: int64(len(vehicles)),
	}, nil
}
