// Shared helpers for agentmem CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/agentmem/internal/sqlite"
	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// systemError marks a failure of the environment or the catalog rather than
// of the caller's input.
type systemError struct {
	msg string
	err error
}

func (e *systemError) Error() string { return e.msg + ": " + e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysError(msg string, err error) error {
	return &systemError{msg: msg, err: err}
}

// exitCode maps a command error onto the process exit status. Storage faults
// and environment failures are system errors; everything else (unknown
// entities, duplicates, bad flags) is the caller's.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *systemError
	if errors.As(err, &se) || errors.Is(err, types.ErrStorage) || errors.Is(err, types.ErrStoreClosed) {
		return exitSysError
	}
	return exitUserError
}

// openStore resolves the data directory and opens the catalog. The caller
// must Close the returned store.
func (a *app) openStore() (*sqlite.Store, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return nil, sysError("resolve data dir", err)
	}
	s, err := sqlite.Open(storeConfig(a.cfg, dataDir), sqlite.WithLogger(a.log))
	if err != nil {
		if errors.Is(err, types.ErrStorage) {
			return nil, fmt.Errorf("initialize schema: %w", err)
		}
		return nil, sysError("open catalog", err)
	}
	return s, nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// orNone renders an optional field for text output.
func orNone[T any](p *T) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}
