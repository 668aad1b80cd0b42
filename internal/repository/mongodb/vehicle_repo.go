// internal/repository/mongodb/vehicle_repo.go
package mongodb

import (
	"context"
	"errors"

	"fleet-rental-service/internal/domain/vehicle"
	xerrors "fleet-rental-service/internal/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VehicleRepository struct {
	vehicles *mongo.Collection
}

func NewVehicleRepository(db *DB) *VehicleRepository {
	return &VehicleRepository{vehicles: db.Database().Collection(VehicleCollection)}
}

// Create inserts the vehicle. The unique plate index is the authoritative
// uniqueness guarantee: a duplicate-key fault here is reported as the same
// conflict the workflow's pre-check would have produced.
func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	if _, err := r.vehicles.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return xerrors.Conflictf("vehicle with plate %s already exists", v.PlateNumber)
		}
		return xerrors.Infra(err, "creating vehicle")
	}
	return nil
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plateNumber string) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	err := r.vehicles.FindOne(ctx, bson.M{"plateNumber": plateNumber}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, xerrors.Infra(err, "retrieving vehicle by plate number")
	}
	return &v, nil
}

func (r *VehicleRepository) GetAllActive(ctx context.Context) ([]vehicle.Vehicle, error) {
	cursor, err := r.vehicles.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, xerrors.Infra(err, "retrieving vehicles")
	}

	vehicles := make([]vehicle.Vehicle, 0)
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, xerrors.Infra(err, "decoding vehicles")
	}
	return vehicles, nil
}

func (r *VehicleRepository) UpdateRentalStatus(ctx context.Context, v *vehicle.Vehicle) error {
	res, err := r.vehicles.ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return xerrors.Infra(err, "updating vehicle")
	}
	if res.MatchedCount == 0 {
		return xerrors.NotFoundf("vehicle with ID %s does not exist", v.ID)
	}
	return nil
}

func (r *VehicleRepository) HasClientRented(ctx context.Context, clientIDNumber string) (bool, error) {
	filter := bson.M{
		"isActive":        true,
		"isRented":        true,
		"client.idNumber": clientIDNumber,
	}
	count, err := r.vehicles.CountDocuments(ctx, filter)
	if err != nil {
		return false, xerrors.Infra(err, "checking client's rented vehicles")
	}
	return count > 0, nil
}
