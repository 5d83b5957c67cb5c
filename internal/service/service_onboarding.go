// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/onboarding-intake/internal/adapter"
	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/store"
	"github.com/MKhiriev/onboarding-intake/models"
)

// MsgOnboardingCompleted is the message of a successful submission envelope.
const MsgOnboardingCompleted = "Onboarding completed successfully"

type onboardingService struct {
	repositories store.Repositories
	transactor   store.Transactor
	gateway      adapter.AnalysisGateway

	gatewayTimeout time.Duration

	logger *logger.Logger
}

// NewOnboardingService wires the intake pipeline. repositories serve the read
// operations; every write goes through transactor.
func NewOnboardingService(repositories store.Repositories, transactor store.Transactor, gateway adapter.AnalysisGateway, cfg config.Adapter, logger *logger.Logger) OnboardingService {
	return &onboardingService{
		repositories:   repositories,
		transactor:     transactor,
		gateway:        gateway,
		gatewayTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

func (s *onboardingService) SubmitOnboarding(ctx context.Context, req models.OnboardingRequest) (models.OnboardingResult, error) {
	log := logger.FromContext(ctx)

	req.Normalize()
	content, encoding, err := req.ResumeBytes()
	if err != nil {
		return models.OnboardingResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var result models.OnboardingResult
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		user, err := repos.Users.UpsertUser(ctx, req.Profile())
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		resume, err := repos.Resumes.AddResume(ctx, models.Resume{
			UserID:   user.UserID,
			Content:  content,
			Encoding: encoding,
			Version:  cmp.Or(req.ResumeVersion, models.DefaultResumeVersion),
			FileType: cmp.Or(req.FileType, models.DefaultResumeFileType),
		})
		if err != nil {
			return fmt.Errorf("add resume: %w", err)
		}

		analysis, err := s.analyze(ctx, buildAnalysisRequest(user, req, resume))
		if err != nil {
			return err
		}

		record, err := repos.Onboarding.AddOnboardingRecord(ctx, models.OnboardingRecord{
			UserID:              user.UserID,
			JobLinks:            req.JobLinks,
			GetJobInMonths:      req.GetJobInMonths,
			DailyTimeCommitment: req.DailyTimeCommitment,
			LearningStyle:       req.LearningStyle,
			CareerTransition:    req.CareerTransition,
			Budget:              req.Budget,
			Analysis:            analysis,
			WorkflowID:          analysis.WorkflowID,
		})
		if err != nil {
			return fmt.Errorf("add onboarding record: %w", err)
		}

		result = models.OnboardingResult{
			Success:      true,
			Message:      MsgOnboardingCompleted,
			UserID:       user.UserID,
			OnboardingID: record.RecordID,
			User:         user.Summary(),
			Resume:       resume.Summary(),
			Analysis:     analysis,
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*onboardingService.SubmitOnboarding").Msg("onboarding submission rolled back")
		return models.OnboardingResult{}, err
	}

	log.Info().
		Str("func", "*onboardingService.SubmitOnboarding").
		Int64("user_id", result.UserID).
		Int64("onboarding_id", result.OnboardingID).
		Int64("resume_id", result.Resume.ResumeID).
		Msg("onboarding submission stored")

	return result, nil
}

// analyze calls the gateway under the configured deadline.
func (s *onboardingService) analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if s.gatewayTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.gatewayTimeout)
		defer cancel()
	}

	result, err := s.gateway.Analyze(ctx, req)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("analyze submission: %w", err)
	}
	return result, nil
}

func (s *onboardingService) GetOnboarding(ctx context.Context, userID int64) (models.OnboardingRecord, error) {
	return s.repositories.Onboarding.GetRecordByUser(ctx, userID)
}

func (s *onboardingService) GetLatestResume(ctx context.Context, userID int64) (models.Resume, error) {
	return s.repositories.Resumes.GetLatestResume(ctx, userID)
}

func (s *onboardingService) ListOnboarding(ctx context.Context) ([]models.OnboardingRecord, error) {
	return s.repositories.Onboarding.ListRecords(ctx)
}

// buildAnalysisRequest assembles the canonical gateway payload. The persisted
// user and resume are the source of identity and resume fields so that the
// payload does not depend on how the submission was encoded.
func buildAnalysisRequest(user models.User, req models.OnboardingRequest, resume models.Resume) models.AnalysisRequest {
	jobLinks := make([]string, len(req.JobLinks))
	copy(jobLinks, req.JobLinks)

	return models.AnalysisRequest{
		UserID:              user.UserID,
		Email:               user.Email,
		FullName:            user.FullName,
		CurrentRole:         user.CurrentRole,
		TargetRole:          user.TargetRole,
		JobLinks:            jobLinks,
		GetJobInMonths:      req.GetJobInMonths,
		DailyTimeCommitment: req.DailyTimeCommitment,
		LearningStyle:       req.LearningStyle,
		CareerTransition:    req.CareerTransition,
		Budget:              req.Budget,
		ResumeVersion:       resume.Version,
		ResumeFileType:      resume.FileType,
	}
}
