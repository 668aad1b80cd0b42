// internal/repository/mongodb/db.go
package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names double as the schema: each carries one unique index,
// created during the startup connection bootstrap.
const (
	VehicleCollection = "Vehicle"
	ClientCollection  = "Client"
)

// DB is the shared database handle. Constructed once at startup and
// injected; safe for concurrent use. transactions records whether the
// deployment topology supports multi-document transactions (replica set
// or mongos); a standalone mongod does not, and units over such a handle
// run auto-commit.
type DB struct {
	client       *mongo.Client
	database     *mongo.Database
	transactions bool
}

func NewDB(client *mongo.Client, database *mongo.Database, transactions bool) *DB {
	return &DB{client: client, database: database, transactions: transactions}
}

func (db *DB) Client() *mongo.Client {
	return db.client
}

func (db *DB) Database() *mongo.Database {
	return db.database
}

func (db *DB) SupportsTransactions() bool {
	return db.transactions
}
