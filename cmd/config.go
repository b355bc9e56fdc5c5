package main

import "time"

type Config struct {
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080"`
	LogLevel          string        `env:"LOG_LEVEL,default=info"`
	BatchWorkers      int           `env:"BATCH_WORKERS,default=8"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}
