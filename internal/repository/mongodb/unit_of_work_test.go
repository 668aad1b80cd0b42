// internal/repository/mongodb/unit_of_work_test.go
package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// newOfflineDB builds a handle without touching a server: the driver
// defers all I/O until an operation runs, and the auto-commit paths
// under test never issue one.
func newOfflineDB(t *testing.T, transactions bool) *DB {
	t.Helper()
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return NewDB(client, client.Database("fleet-rental-test"), transactions)
}

// A handle over a store without transaction support yields units that
// never open a session: Begin succeeds without one, Save reports zero
// change sets, and Close has nothing to release.
func TestUnitOfWorkAutoCommitMode(t *testing.T) {
	unit := NewUnitOfWork(newOfflineDB(t, false), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, unit.Begin(ctx))
	assert.Nil(t, unit.session)

	require.NoError(t, unit.Begin(ctx)) // idempotent
	assert.Nil(t, unit.session)

	affected, err := unit.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	unit.Close(ctx)
	unit.Close(ctx)
	assert.Nil(t, unit.session)
}

func TestUnitOfWorkFactoryRespectsTransactionSupport(t *testing.T) {
	db := newOfflineDB(t, false)
	factory := NewUnitOfWorkFactory(db, zap.NewNop())

	unit, ok := factory().(*UnitOfWork)
	require.True(t, ok)
	assert.False(t, unit.transactions)
}
