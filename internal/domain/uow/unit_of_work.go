// internal/domain/uow/unit_of_work.go
package uow

import (
	"context"

	"fleet-rental-service/internal/domain/client"
	"fleet-rental-service/internal/domain/vehicle"
)

// UnitOfWork groups repository operations into one atomic commit/rollback
// boundary. A unit is scoped to a single workflow invocation and must not
// be shared across concurrent calls; the repositories it exposes are bound
// to whichever session is currently active.
type UnitOfWork interface {
	// Begin starts a session and a transaction on it. Idempotent: calling
	// it with a transaction already open is a no-op. When the underlying
	// store does not support transactions no session is started and the
	// unit runs auto-commit writes instead of failing.
	Begin(ctx context.Context) error

	// Save commits the open transaction and reports the number of applied
	// change sets (0 when no transaction was open, which is not an error).
	// A commit failure aborts the transaction and is returned to the
	// caller. The session is released exactly once on every path.
	Save(ctx context.Context) (int64, error)

	// Close aborts any transaction still open and releases the session.
	// Idempotent, and a no-op after Save; callers defer it right after
	// Begin so error returns between Begin and Save cannot strand an open
	// transaction.
	Close(ctx context.Context)

	Vehicles() vehicle.Repository
	Clients() client.Repository
}

// Factory builds a fresh unit of work for one workflow invocation.
type Factory func() UnitOfWork
