package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// SetupTestDB opens an isolated in-memory pool with the items schema applied.
func SetupTestDB(t *testing.T) (*PoolManager, *sqlx.DB) {
	t.Helper()
	t.Setenv("TEST_DATABASE_URL", "sqlite::memory:")

	pool := NewPoolManager(TestPool(), logs.GetLoggerFromLevel(slog.LevelDebug))
	db, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, slog.Default()))

	t.Cleanup(func() {
		_ = pool.Close()
	})
	return pool, db
}

// fixedClock returns successive instants one minute apart, starting at start.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		at := next
		next = next.Add(time.Minute)
		return at
	}
}
