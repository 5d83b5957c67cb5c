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

type resumeRepository struct {
	db *DB
	q  querier
}

// NewResumeRepository constructs a [ResumeRepository] executing directly on
// the connection pool.
func NewResumeRepository(db *DB) ResumeRepository {
	return &resumeRepository{db: db, q: db.DB}
}

// AddResume always inserts a new resume row and returns it with its id.
func (r *resumeRepository) AddResume(ctx context.Context, resume models.Resume) (models.Resume, error) {
	log := logger.FromContext(ctx)

	if resume.UploadedAt.IsZero() {
		resume.UploadedAt = r.db.now()
	}
	if resume.Content == nil {
		resume.Content = []byte{}
	}

	query, args, err := buildInsertResumeQuery(r.db.builder, resume)
	if err != nil {
		log.Err(err).Str("func", "*resumeRepository.AddResume").Msg("failed to build query")
		return models.Resume{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&resume.ResumeID); err != nil {
		log.Err(err).
			Str("func", "*resumeRepository.AddResume").
			Int64("user_id", resume.UserID).
			Msg("failed to insert resume")
		return models.Resume{}, r.db.classify(err, ErrExecutingQuery)
	}

	log.Debug().
		Str("func", "*resumeRepository.AddResume").
		Int64("user_id", resume.UserID).
		Int64("resume_id", resume.ResumeID).
		Int("size", len(resume.Content)).
		Msg("resume stored")

	return resume, nil
}

// GetLatestResume returns the resume with the highest id for the user.
func (r *resumeRepository) GetLatestResume(ctx context.Context, userID int64) (models.Resume, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLatestResumeQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*resumeRepository.GetLatestResume").Msg("failed to build query")
		return models.Resume{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		resume   models.Resume
		encoding string
	)
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&resume.ResumeID,
		&resume.UserID,
		&resume.Content,
		&encoding,
		&resume.Version,
		&resume.FileType,
		&resume.UploadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resume{}, ErrResumeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*resumeRepository.GetLatestResume").
			Int64("user_id", userID).
			Msg("failed to scan resume row")
		return models.Resume{}, r.db.classify(err, ErrScanningRow)
	}
	resume.Encoding = models.ContentEncoding(encoding)

	return resume, nil
}
