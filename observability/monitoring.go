package observability

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PoolStatsFunc reports the pool statistics, false while no pool is open yet.
type PoolStatsFunc func() (sql.DBStats, bool)

// MonitoringStats is the last computed view of the process and its pool.
type MonitoringStats struct {
	RPCCalls        uint64 `json:"rpc_calls"`
	RPCFailures     uint64 `json:"rpc_failures"`
	PoolOpen        bool   `json:"pool_open"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	WaitCount       int64  `json:"wait_count"`
	Goroutines      int    `json:"goroutines"`
	AllocMemMb      uint64 `json:"alloc_mem_mb"`
	RSSMb           uint64 `json:"rss_mb"`
	NumGC           uint32 `json:"num_gc"`
	UpdatedAt       string `json:"updated_at"`
}

// MonitoringManager counts RPC outcomes and refreshes process metrics on a ticker.
type MonitoringManager struct {
	log         *slog.Logger
	poolStats   PoolStatsFunc
	mu          sync.RWMutex
	latestStats MonitoringStats

	calls    uint64
	failures uint64
}

func NewMonitoringManager(log *slog.Logger, poolStats PoolStatsFunc) *MonitoringManager {
	return &MonitoringManager{log: log, poolStats: poolStats}
}

// UnaryInterceptor counts every call and the ones ending in a server side fault.
func (mm *MonitoringManager) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		atomic.AddUint64(&mm.calls, 1)
		switch status.Code(err) {
		case codes.OK, codes.InvalidArgument, codes.NotFound, codes.Canceled:
		default:
			atomic.AddUint64(&mm.failures, 1)
		}
		return resp, err
	}
}

func (mm *MonitoringManager) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	mm.updateStats()
	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Monitoring manager stopped")
			return
		case <-ticker.C:
			mm.updateStats()
		}
	}
}

func (mm *MonitoringManager) updateStats() {
	stats := MonitoringStats{
		RPCCalls:    atomic.LoadUint64(&mm.calls),
		RPCFailures: atomic.LoadUint64(&mm.failures),
		Goroutines:  runtime.NumGoroutine(),
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if mm.poolStats != nil {
		if db, ok := mm.poolStats(); ok {
			stats.PoolOpen = true
			stats.OpenConnections = db.OpenConnections
			stats.InUse = db.InUse
			stats.WaitCount = db.WaitCount
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.AllocMemMb = m.Alloc / 1024 / 1024
	stats.NumGC = m.NumGC

	if p, err := process.NewProcess(int32(os.Getpid())); err != nil {
		mm.log.Debug("Error while retrieving own process", "err", err)
	} else if mem, err := p.MemoryInfo(); err != nil {
		mm.log.Debug("Error while finding process ram usage", "err", err)
	} else {
		stats.RSSMb = mem.RSS / 1024 / 1024
	}

	mm.mu.Lock()
	mm.latestStats = stats
	mm.mu.Unlock()
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}

// Snapshot refreshes the metrics and flattens them for the inspector page.
func (mm *MonitoringManager) Snapshot() map[string]any {
	mm.updateStats()
	s := mm.GetLatest()
	return map[string]any{
		"RPCCalls":        s.RPCCalls,
		"RPCFailures":     s.RPCFailures,
		"PoolOpen":        s.PoolOpen,
		"OpenConnections": s.OpenConnections,
		"InUse":           s.InUse,
		"WaitCount":       s.WaitCount,
		"Goroutines":      s.Goroutines,
		"AllocMemMb":      s.AllocMemMb,
		"RSSMb":           s.RSSMb,
		"NumGC":           s.NumGC,
		"UpdatedAt":       s.UpdatedAt,
	}
}
