package store

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db     *sqlx.DB
	logger *log.Logger
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithLogger sets the logger used for informational messages such as
// skipped duplicate lists. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *SQLiteStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables foreign keys, and creates any missing tables.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, dalError("opening sqlite db", err)
	}

	// One connection for the process lifetime. PRAGMAs and :memory:
	// databases are per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, dalError("enabling foreign keys", err)
	}

	s := &SQLiteStore{db: db, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}

	ctx := context.Background()
	if err := s.EnsureListTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.EnsureTaskTable(ctx); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Debug("store opened", "path", dbPath)
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
