package sqlite

import (
	"context"
	"database/sql"

	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// ClearAll deletes every email and then every user in one transaction.
// The schema is preserved. Not part of the operational contract; tests and
// the CLI clear command use it to reset the catalog.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.withTx(ctx, "clear all", func(tx *sql.Tx) error {
		for _, stmt := range clearDML {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

// Counts returns the number of rows per catalog table, keyed by table name.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(types.StandardTableNames))
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		for _, table := range types.StandardTableNames {
			var n int64
			if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
				return err
			}
			out[table] = n
		}
		return nil
	})
	if err != nil {
		return nil, s.fault("count rows", err)
	}
	return out, nil
}
