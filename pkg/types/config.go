package types

import (
	"errors"
	"path/filepath"
)

// DefaultDBName is the catalog file created inside DataDir when DBName is empty.
const DefaultDBName = "agent_memory.db"

// DefaultBusyTimeoutMS bounds how long a connection waits on the engine's
// file lock before a write fails.
const DefaultBusyTimeoutMS = 5000

// Config locates the catalog and selects connection behavior for sqlite.Open.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
	DBName  string `json:"db_name" yaml:"db_name"`

	// EnforceForeignKeys turns on emails.sender_email -> users.email checking.
	// Off by default: emails for unknown senders are accepted.
	EnforceForeignKeys bool `json:"enforce_foreign_keys" yaml:"enforce_foreign_keys"`

	// BusyTimeoutMS of zero means DefaultBusyTimeoutMS.
	BusyTimeoutMS int `json:"busy_timeout_ms" yaml:"busy_timeout_ms"`
}

// Config validation errors.
var (
	ErrDataDirEmpty       = errors.New("data directory must not be empty")
	ErrDBNameInvalid      = errors.New("database name must be a plain file name")
	ErrBusyTimeoutInvalid = errors.New("busy timeout must not be negative")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.DBName == "." || c.DBName == ".." || (c.DBName != "" && filepath.Base(c.DBName) != c.DBName) {
		return ErrDBNameInvalid
	}
	if c.BusyTimeoutMS < 0 {
		return ErrBusyTimeoutInvalid
	}
	return nil
}

// DBPath returns the catalog file location.
func (c Config) DBPath() string {
	name := c.DBName
	if name == "" {
		name = DefaultDBName
	}
	return filepath.Join(c.DataDir, name)
}

// BusyTimeout returns the effective busy timeout in milliseconds.
func (c Config) BusyTimeout() int {
	if c.BusyTimeoutMS == 0 {
		return DefaultBusyTimeoutMS
	}
	return c.BusyTimeoutMS
}
