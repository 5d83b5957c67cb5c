// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/onboarding-intake/internal/logger"
)

// sqliteDefaultParams are appended to the DSN unless the caller set them.
var sqliteDefaultParams = map[string]string{
	"_foreign_keys": "on",
	"_busy_timeout": "5000",
	"_txlock":       "immediate",
	"_journal_mode": "WAL",
}

// NewConnectSQLite opens (and creates, when absent) the SQLite database file
// named by dsn.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	path, connDSN, err := sqliteDSN(dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("invalid sqlite dsn")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	// db will be in file
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error creating database file")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	conn, err := sql.Open("sqlite3", connDSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newDB(conn, DialectSQLite, NewSQLiteErrorClassifier(), log), nil
}

// sqliteDSN splits dsn into the file path and the driver DSN with default
// connection parameters applied.
func sqliteDSN(dsn string) (string, string, error) {
	dsn = strings.TrimSpace(dsn)
	dsn = strings.TrimPrefix(dsn, "file:")
	path, rawQuery, _ := strings.Cut(dsn, "?")
	if path == "" {
		return "", "", fmt.Errorf("empty sqlite database path")
	}

	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", fmt.Errorf("parse sqlite dsn params: %w", err)
	}
	for k, v := range sqliteDefaultParams {
		if !params.Has(k) {
			params.Set(k, v)
		}
	}

	return path, "file:" + path + "?" + params.Encode(), nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dir := filepath.Dir(dbFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
