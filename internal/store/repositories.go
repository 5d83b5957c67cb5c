// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
)

// Repositories groups the repositories that share one connection or
// transaction.
type Repositories struct {
	Users      UserRepository
	Resumes    ResumeRepository
	Onboarding OnboardingRepository
}

// repositories builds a [Repositories] set executing on q.
func (db *DB) repositories(q querier) Repositories {
	return Repositories{
		Users:      &userRepository{db: db, q: q},
		Resumes:    &resumeRepository{db: db, q: q},
		Onboarding: &onboardingRepository{db: db, q: q},
	}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
