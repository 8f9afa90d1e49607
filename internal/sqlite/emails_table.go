package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// InsertEmail records e and returns its ID. Returns ErrDuplicate if the ID is
// already recorded; the stored row is left as it was. When foreign keys are
// enforced an unknown sender returns ErrUnknownSender.
func (s *Store) InsertEmail(ctx context.Context, e *types.Email) (string, error) {
	if e == nil {
		return "", types.ErrInvalidData
	}
	if err := e.Validate(); err != nil {
		return "", err
	}

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx,
			"INSERT INTO emails ("+emailColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			e.ID,
			nullable(e.SenderEmail),
			e.Subject,
			e.Body,
			nullable(e.Type),
			nullable(e.Urgency),
			nullable(e.Sentiment),
			nullable(e.Intent),
			nullable(e.ActionsDone),
			e.Processed,
		)
		return err
	})
	if err != nil {
		fields := []zap.Field{zap.String("id", e.ID), zap.Stringp("sender", e.SenderEmail)}
		switch classifyConstraint(err) {
		case constraintKey:
			return "", s.rejected("insert email", types.ErrDuplicate, fields...)
		case constraintForeignKey:
			return "", s.rejected("insert email", types.ErrUnknownSender, fields...)
		}
		return "", s.fault("insert email", err, fields...)
	}
	return e.ID, nil
}

// GetEmail retrieves an email by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if absent.
func (s *Store) GetEmail(ctx context.Context, id string) (*types.Email, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	var e *types.Email
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx,
			"SELECT "+emailColumns+" FROM emails WHERE id = ?", id)
		var err error
		e, err = hydrateEmail(row)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, s.fault("get email", err, zap.String("id", id))
	}
	return e, nil
}

// hydrateEmail scans one emails row.
func hydrateEmail(row *sql.Row) (*types.Email, error) {
	var (
		e                                types.Email
		sender, subject, body            sql.NullString
		kind, sentiment, intent, actions sql.NullString
		urgency                          sql.NullFloat64
		processed                        sql.NullBool
	)
	err := row.Scan(&e.ID, &sender, &subject, &body, &kind, &urgency,
		&sentiment, &intent, &actions, &processed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning email: %w", err)
	}
	e.SenderEmail = stringPtr(sender)
	e.Subject = subject.String
	e.Body = body.String
	e.Type = stringPtr(kind)
	if urgency.Valid {
		u := urgency.Float64
		e.Urgency = &u
	}
	e.Sentiment = stringPtr(sentiment)
	e.Intent = stringPtr(intent)
	e.ActionsDone = stringPtr(actions)
	e.Processed = processed.Bool
	return &e, nil
}
