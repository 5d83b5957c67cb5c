// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/onboarding-intake/internal/logger"
)

type sqlTransactor struct {
	db *DB
}

// NewTransactor constructs a [Transactor] opening transactions on db.
func NewTransactor(db *DB) Transactor {
	return &sqlTransactor{db: db}
}

// WithinTransaction implements [Transactor].
func (t *sqlTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, t.db.classify(err, ErrExecutingQuery))
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to roll back transaction")
		}
	}()

	if err = fn(ctx, t.db.repositories(tx)); err != nil {
		log.Debug().Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("rolling back transaction")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	committed = true

	return nil
}
