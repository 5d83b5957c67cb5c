// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/onboarding-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists [models.User] rows keyed by email.
type UserRepository interface {
	// FindUserByEmail returns the user with exactly this email or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpsertUser creates the user when the email is unknown, otherwise
	// overwrites the mutable profile fields. The returned user always
	// carries its id, even before the surrounding transaction commits.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
}

// ResumeRepository persists insert-only [models.Resume] rows.
type ResumeRepository interface {
	AddResume(ctx context.Context, resume models.Resume) (models.Resume, error)

	// GetLatestResume returns the most recently inserted resume of the user
	// or [ErrResumeNotFound].
	GetLatestResume(ctx context.Context, userID int64) (models.Resume, error)
}

// OnboardingRepository persists insert-only [models.OnboardingRecord] rows.
type OnboardingRepository interface {
	AddOnboardingRecord(ctx context.Context, record models.OnboardingRecord) (models.OnboardingRecord, error)

	// GetRecordByUser returns the latest record of the user or
	// [ErrRecordNotFound].
	GetRecordByUser(ctx context.Context, userID int64) (models.OnboardingRecord, error)

	// ListRecords returns every record, newest first.
	ListRecords(ctx context.Context) ([]models.OnboardingRecord, error)
}

// Transactor runs a unit of work inside one database transaction.
type Transactor interface {
	// WithinTransaction calls fn with repositories bound to a fresh
	// transaction. The transaction is committed only when fn returns nil and
	// rolled back on any error or panic.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
