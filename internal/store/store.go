// Package store persists memos in a SQLite database. It belongs to
// the demo embedding; the parsing engine itself never touches storage.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/replkit-tools/replkit/internal/store/migrations"
)

// Store wraps a SQLite connection for memo storage.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and runs any pending
// migrations. Use ":memory:" for an ephemeral store.
func New(path string) (*Store, error) {
	logrus.WithField("path", path).Debug("store: opening database")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB creates a Store from an existing connection. Useful for
// tests with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
