// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/onboarding-intake/internal/adapter"
	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/store"
	"github.com/MKhiriev/onboarding-intake/models"
)

type Services struct {
	OnboardingService OnboardingService
	AppInfoService    AppInfoService
}

// NewServices builds the service layer on top of storages. The onboarding
// service is wrapped with input validation.
func NewServices(storages *store.Storages, gateway adapter.AnalysisGateway, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, storages, logger)
	if err != nil {
		return nil, err
	}

	onboardingService := NewOnboardingService(storages.Repositories, storages.Transactor, gateway, cfg.Adapter, logger)

	return &Services{
		OnboardingService: NewOnboardingValidationService().Wrap(onboardingService),
		AppInfoService:    appInfoService,
	}, nil
}
