// Package logging builds the zap loggers used by the agentmem CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a logger at the given level ("debug", "info", "warn", "error").
// The caller owns the result and hands it to the store with
// sqlite.WithLogger. Debug selects zap's development encoder; every
// other level uses the production JSON encoder on stderr.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if lvl.Level() == zap.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
