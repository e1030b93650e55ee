package internal

import (
	"fmt"
	"time"
)

// Config is decoded from the environment with Netflix/go-env.
// DATABASE_URL is not part of it: the pool manager reads it on first use.
type Config struct {
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	Host             string        `env:"HOST,default=0.0.0.0"`
	GRPCPort         int           `env:"GRPC_PORT,default=8080"`
	HTTPPort         int           `env:"HTTP_PORT,default=8081"`
	AutoMigrate      bool          `env:"AUTO_MIGRATE,default=true"`
	StrictTimestamps bool          `env:"STRICT_TIMESTAMPS,default=false"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
	MonitorInterval  time.Duration `env:"MONITOR_INTERVAL,default=10s"`
}

func (c Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort)
}

func (c Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}

// Validate rejects settings go-env accepts but the servers cannot use.
func (c Config) Validate() error {
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("GRPC_PORT must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 0 and 65535, got %d", c.HTTPPort)
	}
	if c.HTTPPort != 0 && c.HTTPPort == c.GRPCPort {
		return fmt.Errorf("HTTP_PORT and GRPC_PORT must differ, both are %d", c.GRPCPort)
	}
	if c.MonitorInterval <= 0 {
		return fmt.Errorf("MONITOR_INTERVAL must be positive, got %s", c.MonitorInterval)
	}
	return nil
}
