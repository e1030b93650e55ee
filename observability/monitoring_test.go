package observability

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMonitoringManager_CountsCalls(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default(), nil)
	interceptor := mm.UnaryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/items.v1.ItemService/AddItem"}

	outcomes := []error{
		nil,
		status.Error(codes.InvalidArgument, "empty text"),
		status.Error(codes.NotFound, "item with id 3 not found"),
		status.Error(codes.Internal, "query error"),
		status.Error(codes.Unavailable, "DATABASE_URL is not set"),
	}
	for _, outcome := range outcomes {
		_, _ = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, outcome
		})
	}

	stats := mm.Snapshot()
	req.Equal(uint64(5), stats["RPCCalls"])
	req.Equal(uint64(2), stats["RPCFailures"])
	req.Equal(false, stats["PoolOpen"])
}

func TestMonitoringManager_PoolStats(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default(), func() (sql.DBStats, bool) {
		return sql.DBStats{OpenConnections: 3, InUse: 1, WaitCount: 7}, true
	})

	stats := mm.Snapshot()

	req.Equal(true, stats["PoolOpen"])
	req.Equal(3, stats["OpenConnections"])
	req.Equal(1, stats["InUse"])
	req.Equal(int64(7), stats["WaitCount"])
	req.Positive(stats["Goroutines"])
}

func TestMonitoringManager_ListenStopsWithContext(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default(), nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		mm.Listen(ctx, 10*time.Millisecond)
		close(done)
	}()

	req.Eventually(func() bool { return mm.GetLatest().UpdatedAt != "" }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listen did not stop")
	}
}
