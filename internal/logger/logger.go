// Package logger provides the process-wide structured logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger for the given environment: JSON output in
// production, silent under "test", and a human-readable console encoder
// everywhere else. Later calls are no-ops.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger

		switch env {
		case "production":
			cfg := zap.NewProductionConfig()
			cfg.DisableStacktrace = true
			built, err := cfg.Build()
			if err != nil {
				built = zap.NewNop()
			}
			base = built
		case "test":
			base = zap.NewNop()
		default:
			built, err := zap.NewDevelopment()
			if err != nil {
				built = zap.NewNop()
			}
			base = built
		}

		sugar = base.Named("moneta").Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger
// if Init has not run.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
