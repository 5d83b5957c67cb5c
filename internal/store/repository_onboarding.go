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

type onboardingRepository struct {
	db *DB
	q  querier
}

// NewOnboardingRepository constructs an [OnboardingRepository] executing
// directly on the connection pool.
func NewOnboardingRepository(db *DB) OnboardingRepository {
	return &onboardingRepository{db: db, q: db.DB}
}

// AddOnboardingRecord always inserts a new record. Job links and the
// analysis are stored as JSON text.
func (r *onboardingRepository) AddOnboardingRecord(ctx context.Context, record models.OnboardingRecord) (models.OnboardingRecord, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.JobLinks == nil {
		record.JobLinks = models.JobLinks{}
	}

	query, args, err := buildInsertOnboardingRecordQuery(r.db.builder, record)
	if err != nil {
		log.Err(err).Str("func", "*onboardingRepository.AddOnboardingRecord").Msg("failed to build query")
		return models.OnboardingRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&record.RecordID); err != nil {
		log.Err(err).
			Str("func", "*onboardingRepository.AddOnboardingRecord").
			Int64("user_id", record.UserID).
			Msg("failed to insert onboarding record")
		return models.OnboardingRecord{}, r.db.classify(err, ErrExecutingQuery)
	}

	log.Debug().
		Str("func", "*onboardingRepository.AddOnboardingRecord").
		Int64("user_id", record.UserID).
		Int64("onboarding_id", record.RecordID).
		Str("workflow_id", record.WorkflowID).
		Msg("onboarding record stored")

	return record, nil
}

// GetRecordByUser returns the latest record of the user.
func (r *onboardingRepository) GetRecordByUser(ctx context.Context, userID int64) (models.OnboardingRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordByUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*onboardingRepository.GetRecordByUser").Msg("failed to build query")
		return models.OnboardingRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanOnboardingRecord(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.OnboardingRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*onboardingRepository.GetRecordByUser").
			Int64("user_id", userID).
			Msg("failed to scan onboarding record row")
		return models.OnboardingRecord{}, r.db.classify(err, ErrScanningRow)
	}

	return record, nil
}

// ListRecords returns every stored record, newest first. An empty store
// yields an empty, non-nil slice.
func (r *onboardingRepository) ListRecords(ctx context.Context) ([]models.OnboardingRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllRecordsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*onboardingRepository.ListRecords").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*onboardingRepository.ListRecords").Msg("failed to execute query")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	records := make([]models.OnboardingRecord, 0, 16)
	for rows.Next() {
		record, scanErr := scanOnboardingRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*onboardingRepository.ListRecords").Msg("failed to scan onboarding record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*onboardingRepository.ListRecords").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOnboardingRecord(row rowScanner) (models.OnboardingRecord, error) {
	var record models.OnboardingRecord
	err := row.Scan(
		&record.RecordID,
		&record.UserID,
		&record.JobLinks,
		&record.GetJobInMonths,
		&record.DailyTimeCommitment,
		&record.LearningStyle,
		&record.CareerTransition,
		&record.Budget,
		&record.Analysis,
		&record.WorkflowID,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	return record, err
}
