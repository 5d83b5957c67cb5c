// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/migrations"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	// DialectSQLite is the embedded single-file backend.
	DialectSQLite Dialect = migrations.DialectSQLite

	// DialectPostgres is the PostgreSQL backend.
	DialectPostgres Dialect = migrations.DialectPostgres
)

// DialectFromDSN selects PostgreSQL for postgres:// and postgresql:// URLs
// and SQLite for everything else.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// DB wraps *sql.DB with the dialect-specific query builder and error
// classifier used by every repository.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	now                func() time.Time
}

func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// Connect opens the backend selected by dsn.
func Connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(dsn) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

// Dialect reports the backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		return fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	return nil
}

// classify converts a driver error into a store sentinel when it is
// recognised and wraps it with fallback otherwise.
func (db *DB) classify(err error, fallback error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case Transient:
		return fmt.Errorf("%w: %w: %w", fallback, ErrStoreBusy, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
