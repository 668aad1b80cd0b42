// internal/repository/mongodb/client_repo.go
package mongodb

import (
	"context"
	"errors"

	"fleet-rental-service/internal/domain/client"
	xerrors "fleet-rental-service/internal/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository struct {
	clients *mongo.Collection
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{clients: db.Database().Collection(ClientCollection)}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	if _, err := r.clients.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return xerrors.Conflictf("client with ID %s already exists", c.IDNumber)
		}
		return xerrors.Infra(err, "creating client")
	}
	return nil
}

func (r *ClientRepository) GetByIDNumber(ctx context.Context, idNumber string) (*client.Client, error) {
	var c client.Client
	err := r.clients.FindOne(ctx, bson.M{"idNumber": idNumber}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, xerrors.Infra(err, "retrieving client by ID number")
	}
	return &c, nil
}
