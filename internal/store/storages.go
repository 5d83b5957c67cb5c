// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
)

// Storages is the record store handle shared by the service layer: pool-level
// repositories for reads plus a [Transactor] for units of work.
type Storages struct {
	Repositories
	Transactor Transactor

	db *DB
}

// NewStorages connects to the configured backend, applies the embedded
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewStorages").Str("dialect", string(db.Dialect())).Msg("migrations applied")

	return newStorages(db), nil
}

func newStorages(db *DB) *Storages {
	return &Storages{
		Repositories: Repositories{
			Users:      NewUserRepository(db),
			Resumes:    NewResumeRepository(db),
			Onboarding: NewOnboardingRepository(db),
		},
		Transactor: NewTransactor(db),
		db:         db,
	}
}

// Ping checks that the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
