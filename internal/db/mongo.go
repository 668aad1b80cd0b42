// internal/db/mongo.go
package db

import (
	"context"
	"time"

	"fleet-rental-service/internal/repository/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	mongoMaxAttempts = 5
	mongoPingTimeout = 10 * time.Second
)

// ConnectMongo establishes the database connection with bounded retry and
// exponential backoff (delay doubles per attempt), then bootstraps the
// collections and unique indexes and probes whether the topology supports
// transactions. Runs once at startup; the final failure is returned so
// the caller can abort the process.
func ConnectMongo(ctx context.Context, uri, databaseName string, logger *zap.Logger) (*mongo.Client, *mongo.Database, bool, error) {
	var lastErr error

	for attempt := 1; attempt <= mongoMaxAttempts; attempt++ {
		client, err := tryConnect(ctx, uri)
		if err == nil {
			database := client.Database(databaseName)
			if err = ensureDatabaseSetup(ctx, database); err == nil {
				transactions, probeErr := supportsTransactions(ctx, client)
				if probeErr == nil {
					if !transactions {
						logger.Warn("store does not support transactions, units will run in auto-commit mode")
					}
					logger.Info("connected to MongoDB", zap.String("database", databaseName))
					return client, database, transactions, nil
				}
				err = probeErr
			}
			_ = client.Disconnect(ctx)
		}
		lastErr = err

		if attempt == mongoMaxAttempts {
			break
		}

		delay := time.Duration(1<<attempt) * time.Second
		logger.Warn("MongoDB connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", mongoMaxAttempts),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, nil, false, ctx.Err()
		}
	}

	return nil, nil, false, lastErr
}

// supportsTransactions inspects the deployment topology. Multi-document
// transactions need a replica set member or a mongos; a standalone
// mongod rejects them at the first transactional operation, so the
// capability is decided once here instead.
func supportsTransactions(ctx context.Context, client *mongo.Client) (bool, error) {
	var hello struct {
		SetName string `bson:"setName"`
		Msg     string `bson:"msg"`
	}
	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
	if err != nil {
		return false, err
	}
	return hello.SetName != "" || hello.Msg == "isdbgrid", nil
}

func tryConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, mongoPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// ensureDatabaseSetup creates the Vehicle and Client collections with
// their unique natural-key indexes when absent. The indexes are the
// authoritative uniqueness guarantee for plates and client id-numbers.
func ensureDatabaseSetup(ctx context.Context, database *mongo.Database) error {
	names, err := database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}
	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}

	if !existing[mongodb.ClientCollection] {
		if err := database.CreateCollection(ctx, mongodb.ClientCollection); err != nil {
			return err
		}
		_, err := database.Collection(mongodb.ClientCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "idNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}

	if !existing[mongodb.VehicleCollection] {
		if err := database.CreateCollection(ctx, mongodb.VehicleCollection); err != nil {
			return err
		}
		_, err := database.Collection(mongodb.VehicleCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "plateNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
