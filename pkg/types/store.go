package types

import (
	"context"
	"errors"
)

// Store is the persistence boundary consumed by the analysis component.
// Every method runs against the on-disk catalog on a connection acquired and
// released within the call; no state is carried between calls.
type Store interface {
	// InitSchema creates the users and emails tables if they do not exist.
	// Safe to call repeatedly; existing tables and rows are left untouched.
	InitSchema(ctx context.Context) error

	// GetUser returns the user with the given email.
	// Returns ErrNotFound if no such user exists.
	GetUser(ctx context.Context, email string) (*User, error)

	// CreateUser inserts a user with default statistics and returns the row
	// sequence number. Returns ErrDuplicate if the email is already recorded.
	CreateUser(ctx context.Context, email string, name *string) (int64, error)

	// UpdateUser applies the non-nil fields of upd to the user in a single
	// statement. Reports false, with a nil error, when no such user exists.
	UpdateUser(ctx context.Context, email string, upd UserUpdate) (bool, error)

	// InsertEmail records an email and echoes its ID.
	// Returns ErrDuplicate if the ID is already recorded.
	InsertEmail(ctx context.Context, e *Email) (string, error)

	// GetEmail returns the email with the given ID.
	// Returns ErrNotFound if no such email exists.
	GetEmail(ctx context.Context, id string) (*Email, error)

	// ClearAll deletes every email and every user, keeping the schema.
	// Intended for test fixtures and maintenance only.
	ClearAll(ctx context.Context) error

	// Close releases the catalog handle. Idempotent.
	Close() error
}

// Outcome errors. ErrNotFound is a normal negative result; ErrDuplicate means
// the entity is already recorded and the call should not be retried;
// ErrStorage wraps any engine fault and carries only a diagnostic message.
var (
	ErrNotFound  = errors.New("entity not found")
	ErrDuplicate = errors.New("duplicate entity")
	ErrStorage   = errors.New("storage error")
)

// Input and lifecycle errors.
var (
	ErrInvalidEmail  = errors.New("email must not be empty")
	ErrInvalidID     = errors.New("email ID must not be empty")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrUnknownSender = errors.New("sender is not a known user")
	ErrStoreClosed   = errors.New("store is closed")
)
