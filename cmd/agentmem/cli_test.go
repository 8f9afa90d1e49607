package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/agentmem/internal/paths"
	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// testEnv holds isolated config and data directories for one test.
type testEnv struct {
	configDir string
	dataDir   string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	root := t.TempDir()
	return testEnv{
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
	}
}

// run executes the CLI in-process and returns stdout and the command error.
func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, "agentmem %s", strings.Join(args, " "))
	return out
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "init")
	assert.Contains(t, out, "Database initialized")

	_, err := os.Stat(paths.ConfigFile(env.configDir))
	assert.NoError(t, err, "config.yaml written")
	_, err = os.Stat(filepath.Join(env.dataDir, types.DefaultDBName))
	assert.NoError(t, err, "catalog created")

	t.Run("second init keeps rows", func(t *testing.T) {
		env.mustRun(t, "user", "create", "a@x.com")
		out := env.mustRun(t, "--json", "init")

		var got struct {
			ConfigCreated bool             `json:"config_created"`
			Rows          map[string]int64 `json:"rows"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.False(t, got.ConfigCreated)
		assert.Equal(t, int64(1), got.Rows[types.TableUsers])
	})
}

func TestInit_ConfigDBName(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(env.configDir, 0o755))
	require.NoError(t, os.WriteFile(paths.ConfigFile(env.configDir), []byte("db_name: custom.db\n"), 0o644))

	env.mustRun(t, "init")
	_, err := os.Stat(filepath.Join(env.dataDir, "custom.db"))
	assert.NoError(t, err)
}

func TestUserCommands(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun(t, "user", "create", "a@x.com", "--name", "A")
	env.mustRun(t, "user", "update", "a@x.com", "--role", "friend")
	env.mustRun(t, "user", "update", "a@x.com", "--role", "colleague", "--email-count", "3")

	out := env.mustRun(t, "--json", "user", "get", "a@x.com")
	var u types.User
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	assert.Equal(t, "A", *u.Name)
	assert.Equal(t, "colleague", *u.Role)
	assert.Equal(t, int64(3), u.EmailCount)
	assert.Equal(t, 0.5, u.AvgUrgency)
	assert.Nil(t, u.CommonEmailType)

	out = env.mustRun(t, "user", "get", "a@x.com")
	assert.Contains(t, out, "role:               colleague")
	assert.Contains(t, out, "common_email_type:  -")

	t.Run("duplicate create is a user error", func(t *testing.T) {
		_, err := env.run(t, "user", "create", "a@x.com", "--name", "B")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrDuplicate)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("update of unknown user", func(t *testing.T) {
		_, err := env.run(t, "user", "update", "ghost@x.com", "--name", "X")
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.Equal(t, exitUserError, exitCode(err))

		_, err = env.run(t, "user", "get", "ghost@x.com")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("update without fields", func(t *testing.T) {
		_, err := env.run(t, "user", "update", "a@x.com")
		assert.Error(t, err)
		assert.Equal(t, exitUserError, exitCode(err))
	})
}

func TestEmailCommands(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun(t, "user", "create", "bob@acme.com", "--name", "Bob")
	out := env.mustRun(t, "email", "add", "bob@acme.com",
		"--id", "e1", "--subject", "Hi", "--body", "Body", "--type", "request", "--urgency", "0.8")
	assert.Equal(t, "e1\n", out)

	out = env.mustRun(t, "email", "get", "e1")
	var e types.Email
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, "bob@acme.com", *e.SenderEmail)
	assert.Equal(t, "request", *e.Type)
	assert.Equal(t, 0.8, *e.Urgency)
	assert.Nil(t, e.Sentiment)
	assert.False(t, e.Processed)

	t.Run("duplicate id", func(t *testing.T) {
		_, err := env.run(t, "email", "add", "bob@acme.com", "--id", "e1", "--subject", "Other")
		assert.ErrorIs(t, err, types.ErrDuplicate)
	})

	t.Run("generated id is a UUID v7", func(t *testing.T) {
		out := env.mustRun(t, "email", "add", "bob@acme.com", "--subject", "No id")
		id, err := uuid.Parse(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("user statistics untouched", func(t *testing.T) {
		out := env.mustRun(t, "--json", "user", "get", "bob@acme.com")
		var u types.User
		require.NoError(t, json.Unmarshal([]byte(out), &u))
		assert.Zero(t, u.EmailCount)
		assert.Equal(t, 0.5, u.AvgUrgency)
	})
}

func TestClear(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "user", "create", "a@x.com")

	_, err := env.run(t, "clear")
	assert.Error(t, err, "clear requires --yes")

	env.mustRun(t, "clear", "--yes")
	_, err = env.run(t, "user", "get", "a@x.com")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "version")
	assert.Contains(t, out, "agentmem v")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(types.ErrNotFound))
	assert.Equal(t, exitUserError, exitCode(errors.New("bad flag")))
	assert.Equal(t, exitSysError, exitCode(sysError("open catalog", errors.New("disk full"))))
	assert.Equal(t, exitSysError, exitCode(errors.Join(types.ErrStorage, errors.New("io"))))
}
