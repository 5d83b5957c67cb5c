// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/validators"
	"github.com/MKhiriev/onboarding-intake/models"
)

// OnboardingValidationService rejects malformed input before it reaches the
// wrapped service. A rejected call never touches the store.
type OnboardingValidationService struct {
	inner     OnboardingService
	validator validators.Validator
}

func NewOnboardingValidationService() OnboardingServiceWrapper {
	return &OnboardingValidationService{
		validator: validators.NewOnboardingValidator(),
	}
}

func (v *OnboardingValidationService) SubmitOnboarding(ctx context.Context, req models.OnboardingRequest) (models.OnboardingResult, error) {
	req.Normalize()
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "*OnboardingValidationService.SubmitOnboarding").
			Msg("onboarding request rejected")
		return models.OnboardingResult{}, fmt.Errorf("error during onboarding request validation: %w", err)
	}

	return v.inner.SubmitOnboarding(ctx, req)
}

func (v *OnboardingValidationService) GetOnboarding(ctx context.Context, userID int64) (models.OnboardingRecord, error) {
	if err := v.validator.Validate(ctx, userID, validators.FieldUserID); err != nil {
		return models.OnboardingRecord{}, err
	}

	return v.inner.GetOnboarding(ctx, userID)
}

func (v *OnboardingValidationService) GetLatestResume(ctx context.Context, userID int64) (models.Resume, error) {
	if err := v.validator.Validate(ctx, userID, validators.FieldUserID); err != nil {
		return models.Resume{}, err
	}

	return v.inner.GetLatestResume(ctx, userID)
}

func (v *OnboardingValidationService) ListOnboarding(ctx context.Context) ([]models.OnboardingRecord, error) {
	return v.inner.ListOnboarding(ctx)
}

func (v *OnboardingValidationService) Wrap(wrapper OnboardingService) OnboardingService {
	v.inner = wrapper
	return v
}
