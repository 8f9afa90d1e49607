package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// constraintKind names which catalog constraint rejected a statement.
type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintKey                 // primary key or unique
	constraintForeignKey
	constraintOther
)

// classifyConstraint inspects a driver error for a constraint violation.
// Extended result codes are preferred; the message is the fallback when the
// driver reports only the primary SQLITE_CONSTRAINT code.
func classifyConstraint(err error) constraintKind {
	var serr *msqlite.Error
	if !errors.As(err, &serr) {
		return constraintNone
	}

	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return constraintKey
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return constraintForeignKey
	}

	if serr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return constraintNone
	}
	msg := serr.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "PRIMARY KEY"):
		return constraintKey
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return constraintForeignKey
	default:
		return constraintOther
	}
}

// fault logs err at the point of capture and converts it into a storage
// error. The driver error is flattened into the message so it cannot be
// unwrapped past the Store boundary.
func (s *Store) fault(op string, err error, fields ...zap.Field) error {
	if errors.Is(err, types.ErrStoreClosed) {
		return types.ErrStoreClosed
	}
	s.log.Error("storage fault", append([]zap.Field{zap.String("op", op), zap.Error(err)}, fields...)...)
	return fmt.Errorf("%w: %s: %v", types.ErrStorage, op, err)
}

// rejected logs a constraint rejection at info level and returns the outcome
// error unchanged.
func (s *Store) rejected(op string, outcome error, fields ...zap.Field) error {
	s.log.Info("write rejected", append([]zap.Field{zap.String("op", op), zap.NamedError("outcome", outcome)}, fields...)...)
	return outcome
}
