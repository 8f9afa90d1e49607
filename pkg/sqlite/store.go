// Package sqlite provides the public API for the SQLite-backed agentmem Store.
// It exposes the factory while keeping the implementation internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/agentmem/internal/sqlite"
	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// Option configures a Store at Open.
type Option = sqlite.Option

// WithLogger sets the logger used to report storage faults.
func WithLogger(l *zap.Logger) Option {
	return sqlite.WithLogger(l)
}

// Open opens (creating if needed) the catalog described by cfg and
// initializes its schema.
//
// Example:
//
//	store, err := sqlite.Open(types.Config{DataDir: "/var/lib/agentmem"})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func Open(cfg types.Config, opts ...Option) (types.Store, error) {
	s, err := sqlite.Open(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}
