package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// setupStore opens a Store on a fresh temp directory and closes it when the
// test finishes. The returned observer captures everything the store logs.
func setupStore(t *testing.T, mutate ...func(*types.Config)) (*Store, *observer.ObservedLogs) {
	t.Helper()
	cfg := types.Config{DataDir: t.TempDir()}
	for _, m := range mutate {
		m(&cfg)
	}
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := Open(cfg, WithLogger(zap.New(core)))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, logs
}
