// internal/repository/mongodb/unit_of_work.go
package mongodb

import (
	"context"

	"fleet-rental-service/internal/domain/client"
	"fleet-rental-service/internal/domain/uow"
	"fleet-rental-service/internal/domain/vehicle"
	xerrors "fleet-rental-service/internal/pkg/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UnitOfWork owns one mongo session and exposes session-bound repository
// views. One instance per workflow invocation; not safe for concurrent
// use by design.
type UnitOfWork struct {
	client       *mongo.Client
	session      mongo.Session
	transactions bool
	vehicles     *VehicleRepository
	clients      *ClientRepository
	logger       *zap.Logger
}

var _ uow.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *DB, logger *zap.Logger) *UnitOfWork {
	return &UnitOfWork{
		client:       db.Client(),
		transactions: db.SupportsTransactions(),
		vehicles:     NewVehicleRepository(db),
		clients:      NewClientRepository(db),
		logger:       logger,
	}
}

// NewUnitOfWorkFactory returns a uow.Factory producing a fresh unit per
// workflow invocation over the shared database handle.
func NewUnitOfWorkFactory(db *DB, logger *zap.Logger) uow.Factory {
	return func() uow.UnitOfWork {
		return NewUnitOfWork(db, logger)
	}
}

// Begin starts a session and a transaction on it. A second call while a
// transaction is open is a no-op. Standalone mongod deployments reject
// transactions; the topology probe at connect time detects that, and
// such units skip the session entirely and run in auto-commit mode,
// which trades atomicity for availability.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.session != nil {
		return nil
	}
	if !u.transactions {
		return nil
	}

	session, err := u.client.StartSession()
	if err != nil {
		return xerrors.Infra(err, "starting mongo session")
	}

	if err := session.StartTransaction(); err != nil {
		session.EndSession(ctx)
		return xerrors.Infra(err, "starting transaction")
	}

	u.session = session
	return nil
}

// Save commits the open transaction. Without one it reports zero applied
// change sets. On commit failure the transaction is aborted and the
// original fault returned. The session is released exactly once on every
// path.
func (u *UnitOfWork) Save(ctx context.Context) (int64, error) {
	if u.session == nil {
		return 0, nil
	}

	session := u.session
	defer func() {
		session.EndSession(ctx)
		u.session = nil
	}()

	if err := session.CommitTransaction(ctx); err != nil {
		if abortErr := session.AbortTransaction(ctx); abortErr != nil {
			u.logger.Error("aborting transaction after failed commit",
				zap.Error(abortErr))
		}
		return 0, xerrors.Infra(err, "committing transaction")
	}
	return 1, nil
}

// Close aborts any transaction still open and releases the session.
// Workflows defer it right after Begin, so a business-error return
// between Begin and Save rolls back instead of stranding a server-side
// transaction until its lifetime limit. A no-op after Save, and safe to
// call repeatedly.
func (u *UnitOfWork) Close(ctx context.Context) {
	if u.session == nil {
		return
	}
	if err := u.session.AbortTransaction(ctx); err != nil {
		u.logger.Warn("aborting transaction on close", zap.Error(err))
	}
	u.session.EndSession(ctx)
	u.session = nil
}

// Vehicles returns the vehicle repository bound to the active session.
func (u *UnitOfWork) Vehicles() vehicle.Repository {
	return boundVehicles{u: u}
}

// Clients returns the client repository bound to the active session.
func (u *UnitOfWork) Clients() client.Repository {
	return boundClients{u: u}
}

// scope routes repository calls through the open session so they join its
// transaction; with no session the call runs auto-commit.
func (u *UnitOfWork) scope(ctx context.Context) context.Context {
	if u.session != nil {
		return mongo.NewSessionContext(ctx, u.session)
	}
	return ctx
}

type boundVehicles struct {
	u *UnitOfWork
}

func (b boundVehicles) Create(ctx context.Context, v *vehicle.Vehicle) error {
	return b.u.vehicles.Create(b.u.scope(ctx), v)
}

func (b boundVehicles) GetByPlate(ctx context.Context, plateNumber string) (*vehicle.Vehicle, error) {
	return b.u.vehicles.GetByPlate(b.u.scope(ctx), plateNumber)
}

func (b boundVehicles) GetAllActive(ctx context.Context) ([]vehicle.Vehicle, error) {
	return b.u.vehicles.GetAllActive(b.u.scope(ctx))
}

func (b boundVehicles) UpdateRentalStatus(ctx context.Context, v *vehicle.Vehicle) error {
	return b.u.vehicles.UpdateRentalStatus(b.u.scope(ctx), v)
}

func (b boundVehicles) HasClientRented(ctx context.Context, clientIDNumber string) (bool, error) {
	return b.u.vehicles.HasClientRented(b.u.scope(ctx), clientIDNumber)
}

type boundClients struct {
	u *UnitOfWork
}

func (b boundClients) Create(ctx context.Context, c *client.Client) error {
	return b.u.clients.Create(b.u.scope(ctx), c)
}

func (b boundClients) GetByIDNumber(ctx context.Context, idNumber string) (*client.Client, error) {
	return b.u.clients.GetByIDNumber(b.u.scope(ctx), idNumber)
}
