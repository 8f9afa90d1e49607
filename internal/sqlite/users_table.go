package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// GetUser retrieves a user by exact email match.
// Returns ErrInvalidEmail if email is empty, ErrNotFound if absent.
func (s *Store) GetUser(ctx context.Context, email string) (*types.User, error) {
	if email == "" {
		return nil, types.ErrInvalidEmail
	}

	var u *types.User
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx,
			"SELECT "+userColumns+" FROM users WHERE email = ?", email)
		var err error
		u, err = hydrateUser(row)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, s.fault("get user", err, zap.String("email", email))
	}
	return u, nil
}

// hydrateUser scans one users row. A row that does not fit types.User fails.
func hydrateUser(row *sql.Row) (*types.User, error) {
	var (
		u                            types.User
		name, emailType, topic, role sql.NullString
		count                        sql.NullInt64
		avg                          sql.NullFloat64
	)
	err := row.Scan(&u.Email, &name, &count, &avg, &emailType, &topic, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.Name = stringPtr(name)
	u.EmailCount = count.Int64
	u.AvgUrgency = avg.Float64
	if !avg.Valid {
		u.AvgUrgency = types.DefaultAvgUrgency
	}
	u.CommonEmailType = stringPtr(emailType)
	u.CommonEmailTopic = stringPtr(topic)
	u.Role = stringPtr(role)
	return &u, nil
}

// CreateUser inserts a user with default statistics and returns its rowid.
// Returns ErrDuplicate if the email already exists; the existing row is not
// modified.
func (s *Store) CreateUser(ctx context.Context, email string, name *string) (int64, error) {
	if email == "" {
		return 0, types.ErrInvalidEmail
	}

	var rowID int64
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx,
			"INSERT INTO users (email, name) VALUES (?, ?)", email, nullable(name))
		if err != nil {
			return err
		}
		rowID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		if classifyConstraint(err) == constraintKey {
			return 0, s.rejected("create user", types.ErrDuplicate, zap.String("email", email))
		}
		return 0, s.fault("create user", err, zap.String("email", email))
	}
	return rowID, nil
}

// updateUserSQL coalesces each parameter with the stored column, so a NULL
// parameter keeps the current value. The whole merge is one statement.
const updateUserSQL = `UPDATE users SET
    name = COALESCE(?, name),
    email_count = COALESCE(?, email_count),
    avg_urgency = COALESCE(?, avg_urgency),
    common_email_type = COALESCE(?, common_email_type),
    common_email_topic = COALESCE(?, common_email_topic),
    role = COALESCE(?, role)
WHERE email = ?`

// UpdateUser merges the supplied fields of upd into the stored user.
// Returns false with a nil error when no user has that email.
func (s *Store) UpdateUser(ctx context.Context, email string, upd types.UserUpdate) (bool, error) {
	if email == "" {
		return false, types.ErrInvalidEmail
	}
	if err := upd.Validate(); err != nil {
		return false, err
	}

	var touched int64
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, updateUserSQL,
			nullable(upd.Name),
			nullable(upd.EmailCount),
			nullable(upd.AvgUrgency),
			nullable(upd.CommonEmailType),
			nullable(upd.CommonEmailTopic),
			nullable(upd.Role),
			email,
		)
		if err != nil {
			return err
		}
		touched, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, s.fault("update user", err, zap.String("email", email))
	}
	return touched > 0, nil
}

// nullable converts an optional field into a statement argument: nil binds
// SQL NULL, anything else binds the pointed-to value.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// stringPtr maps a nullable column onto an optional field.
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
