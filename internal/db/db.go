// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db provides the client-local persistence layer for Rentmaster.
// It stores the authenticated session and a history of local actions
// behind a consistent interface, so the rest of the application does not
// care which database engine backs it. The default is a SQLite file next
// to the configuration; PostgreSQL and MySQL DSNs are accepted for shared
// deployments.
package db // import "github.com/toeirei/rentmaster/internal/db"

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/toeirei/rentmaster/internal/model"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	// SQL drivers for the non-default backends.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store defines the interface for all local database operations.
type Store interface {
	// Session state: the three values are written together and removed
	// together; LoadSession reports absence with empty strings, not an
	// error.
	SaveSession(role, profile, token string) error
	LoadSession() (role, profile, token string, err error)
	DeleteSession() error

	// Action history.
	LogAction(role, action, details string) error
	GetHistory(limit int) ([]model.HistoryEntry, error)

	Close() error
}

var (
	store Store
	// sqlOpenFunc allows tests to override database opening behavior.
	sqlOpenFunc = sql.Open
)

// InitDB initializes the database connection based on the provided type and
// DSN and sets the package-level store.
func InitDB(dbType, dsn string) error {
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	store = s
	return nil
}

// IsInitialized reports whether the package-level store has been set.
func IsInitialized() bool {
	return store != nil
}

// Get returns the package-level store. It is nil before InitDB.
func Get() Store {
	return store
}

// SetStore replaces the package-level store. Used by tests.
func SetStore(s Store) {
	store = s
}

// NewStoreFromDSN opens the database and returns a bun-backed Store.
func NewStoreFromDSN(dbType, dsn string) (Store, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
	if dbType == "postgres" {
		driverName = "pgx"
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Conservative pool defaults for a single-user client; overridable via
	// environment for unusual deployments.
	maxOpen := 5
	if v := os.Getenv("RENTMASTER_DB_MAX_OPEN_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			maxOpen = n
		}
	}
	// In-memory SQLite databases are per-connection; force a single open
	// connection so schema changes stay visible. Tests rely on ":memory:".
	if dbType == "sqlite" && dsn == ":memory:" {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	var bdb *bun.DB
	switch dbType {
	case "sqlite":
		bdb = bun.NewDB(sqlDB, sqlitedialect.New())
	case "postgres":
		bdb = bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		bdb = bun.NewDB(sqlDB, mysqldialect.New())
	default:
		_ = sqlDB.Close()
		return nil, fmt.Errorf("unsupported database type: %q", dbType)
	}

	s := &BunStore{db: sqlDB, bun: bdb}
	if err := s.ensureSchema(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	dbLogf("db: opened %s store in %s", dbType, time.Since(start))
	return s, nil
}

// Package-level wrappers over the current store, mirroring the Store
// interface for call sites that don't carry a handle.

// SaveSession persists the three session values through the current store.
func SaveSession(role, profile, token string) error {
	return store.SaveSession(role, profile, token)
}

// LoadSession reads the persisted session through the current store.
func LoadSession() (string, string, string, error) {
	return store.LoadSession()
}

// DeleteSession removes the persisted session through the current store.
func DeleteSession() error {
	return store.DeleteSession()
}

// LogAction records a local action through the current store.
func LogAction(role, action, details string) error {
	return store.LogAction(role, action, details)
}

// GetHistory returns the most recent local actions through the current store.
func GetHistory(limit int) ([]model.HistoryEntry, error) {
	return store.GetHistory(limit)
}
