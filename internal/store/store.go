package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
)

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(dsn string) (*Store, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing connection; used by tests with sqlmock.
func NewStoreWithDB(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Healthcheck runs a trivial query to verify the connection is alive.
func (s *Store) Healthcheck(ctx context.Context) error {
	var probe int
	if err := s.db.GetContext(ctx, &probe, "SELECT 1 AS test"); err != nil {
		return fmt.Errorf("healthcheck query failed: %w", err)
	}
	return nil
}
