package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/agentmem/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements types.Store on a single SQLite catalog file.
// The handle keeps no idle connections: each operation acquires a fresh
// connection and releases it before returning.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	config types.Config
	log    *zap.Logger
}

// Option configures a Store at Open.
type Option func(*Store)

// WithLogger sets the logger used to report storage faults.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open validates cfg, creates DataDir if needed, opens the catalog file and
// initializes the schema. A schema failure closes the handle and is returned;
// the caller cannot proceed without the tables.
func Open(cfg types.Config, opts ...Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{config: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	db.SetMaxIdleConns(0)
	s.db = db

	if err := s.InitSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	s.log.Debug("catalog opened",
		zap.String("path", cfg.DBPath()),
		zap.Bool("foreign_keys", cfg.EnforceForeignKeys))
	return s, nil
}

// dsn builds the driver data source name as a file: URI so that '?', '#'
// and '%' in the catalog path are escaped rather than read as a query.
// Pragmas given as _pragma query parameters are applied by the driver to
// every new connection.
func dsn(cfg types.Config) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout("+strconv.Itoa(cfg.BusyTimeout())+")")
	if cfg.EnforceForeignKeys {
		q.Add("_pragma", "foreign_keys(1)")
	}
	u := url.URL{Scheme: "file", OmitHost: true, Path: cfg.DBPath(), RawQuery: q.Encode()}
	return u.String()
}

// Path returns the catalog file location.
func (s *Store) Path() string {
	return s.config.DBPath()
}

// Close releases the catalog handle. After Close every operation returns
// ErrStoreClosed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// InitSchema creates the users and emails tables if they do not exist.
func (s *Store) InitSchema(ctx context.Context) error {
	const op = "init schema"
	return s.withTx(ctx, op, func(tx *sql.Tx) error {
		for _, ddl := range schemaDDL {
			if _, err := tx.ExecContext(ctx, ddl); err != nil {
				return err
			}
		}
		return nil
	})
}

// withConn acquires a dedicated connection, runs fn and releases the
// connection on every exit path.
func (s *Store) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return types.ErrStoreClosed
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}

// withTx runs fn inside a transaction on a fresh connection and commits.
// Any failure rolls back and is reported as a storage fault for op.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return s.fault(op, err)
	}
	return nil
}
