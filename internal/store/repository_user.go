// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/models"
)

// userRepository is the SQL implementation of [UserRepository]. It runs on
// either the connection pool or an open transaction.
type userRepository struct {
	db *DB
	q  querier
}

// NewUserRepository constructs a [UserRepository] executing directly on the
// connection pool.
func NewUserRepository(db *DB) UserRepository {
	return &userRepository{db: db, q: db.DB}
}

// FindUserByEmail retrieves the user whose email matches exactly.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - query build failure → [ErrBuildingSQLQuery].
//   - any other driver-level error → [ErrScanningRow].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Email,
		&user.FullName,
		&user.Phone,
		&user.CurrentRole,
		&user.TargetRole,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, r.db.classify(err, ErrScanningRow)
	}

	return user, nil
}

// UpsertUser inserts the user when its email is unknown and overwrites
// full_name, phone, current_role and target_role otherwise.
//
// A unique violation on insert means a concurrent transaction created the
// same email first; it is reported as [ErrEmailAlreadyExists].
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := r.FindUserByEmail(ctx, user.Email)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return r.insertUser(ctx, user)
	case err != nil:
		return models.User{}, err
	}

	now := r.db.now()
	user.UserID = existing.UserID
	query, args, err := buildUpdateUserQuery(r.db.builder, user, now)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpsertUser").
			Int64("user_id", existing.UserID).
			Msg("failed to update user")
		return models.User{}, r.db.classify(err, ErrExecutingQuery)
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = now

	log.Debug().
		Str("func", "*userRepository.UpsertUser").
		Int64("user_id", user.UserID).
		Msg("user profile updated")

	return user, nil
}

func (r *userRepository) insertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	query, args, err := buildInsertUserQuery(r.db.builder, user, now)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.insertUser").Msg("failed to build insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.insertUser").Msg("failed to insert user")
		return models.User{}, r.db.classify(err, ErrExecutingQuery)
	}

	user.CreatedAt = now
	user.UpdatedAt = now

	log.Debug().
		Str("func", "*userRepository.insertUser").
		Int64("user_id", user.UserID).
		Msg("user created")

	return user, nil
}
