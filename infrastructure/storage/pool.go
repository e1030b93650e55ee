package storage

import (
	"context"
	"database/sql"
	"item-lab/errors"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql name registered by modernc.org/sqlite.
const DriverName = "sqlite"

// PoolConfig describes where a pool reads its target from and how large it may grow.
// An empty DefaultURL makes the variable mandatory.
type PoolConfig struct {
	URLEnv       string
	DefaultURL   string
	MaxOpenConns int
}

// MainPool is the process pool: DATABASE_URL is required and at most 5 connections are borrowed.
func MainPool() PoolConfig {
	return PoolConfig{URLEnv: "DATABASE_URL", MaxOpenConns: 5}
}

// TestPool targets TEST_DATABASE_URL, or a private in-memory database when unset.
func TestPool() PoolConfig {
	return PoolConfig{URLEnv: "TEST_DATABASE_URL", DefaultURL: "sqlite::memory:", MaxOpenConns: 1}
}

// PoolProvider hands out the shared connection pool.
type PoolProvider interface {
	Acquire(ctx context.Context) (*sqlx.DB, error)
}

// PoolManager opens its pool on the first Acquire and keeps it until Close.
// Only one caller opens at a time, the others wait for it or for their context.
// A failed open is not cached: the next Acquire tries again.
type PoolManager struct {
	cfg PoolConfig
	log *slog.Logger

	opening chan struct{}
	mu      sync.RWMutex
	db      *sqlx.DB
}

func NewPoolManager(cfg PoolConfig, log *slog.Logger) *PoolManager {
	return &PoolManager{cfg: cfg, log: log, opening: make(chan struct{}, 1)}
}

func (p *PoolManager) Acquire(ctx context.Context) (*sqlx.DB, error) {
	if db := p.current(); db != nil {
		return db, nil
	}

	select {
	case p.opening <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-p.opening }()

	if db := p.current(); db != nil {
		return db, nil
	}
	db, err := Open(ctx, p.cfg)
	if err != nil {
		return nil, err
	}
	p.log.Info("Database pool opened", "env", p.cfg.URLEnv, "max_conns", p.cfg.MaxOpenConns)

	p.mu.Lock()
	p.db = db
	p.mu.Unlock()
	return db, nil
}

func (p *PoolManager) current() *sqlx.DB {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.db
}

// Stats reports pool usage, ok is false while the pool has not been opened yet.
func (p *PoolManager) Stats() (stats sql.DBStats, ok bool) {
	db := p.current()
	if db == nil {
		return sql.DBStats{}, false
	}
	return db.Stats(), true
}

// Close releases the pool. Process exit closes connections anyway.
func (p *PoolManager) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}

// Open builds a fresh pool from cfg without caching it.
func Open(ctx context.Context, cfg PoolConfig) (*sqlx.DB, error) {
	target, ok := os.LookupEnv(cfg.URLEnv)
	if !ok || strings.TrimSpace(target) == "" {
		if cfg.DefaultURL == "" {
			return nil, &errors.ConfigurationError{Variable: cfg.URLEnv, Reason: "is not set"}
		}
		target = cfg.DefaultURL
	}

	db, err := sqlx.Open(DriverName, NormalizeDSN(target))
	if err != nil {
		return nil, &errors.ConnectionError{Target: target, Err: err}
	}

	maxConns := max(cfg.MaxOpenConns, 1)
	db.SetMaxOpenConns(maxConns)
	// In-memory databases vanish with their last connection, idle ones must stay open.
	db.SetMaxIdleConns(maxConns)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &errors.ConnectionError{Target: target, Err: err}
	}
	return db, nil
}
