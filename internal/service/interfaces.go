// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the intake pipeline and the read operations
// served over HTTP.
//
// A submission is processed by [OnboardingService.SubmitOnboarding]: the
// request is validated, the user is upserted, a new resume version is stored,
// the analysis gateway is consulted and an onboarding record is written. All
// writes share one transaction, so a failure at any step leaves the store
// untouched.
package service

import (
	"context"

	"github.com/MKhiriev/onboarding-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../handler/http/service_mock_test.go -package=http

type OnboardingService interface {
	// SubmitOnboarding runs the intake pipeline for one submission.
	SubmitOnboarding(ctx context.Context, req models.OnboardingRequest) (models.OnboardingResult, error)

	// GetOnboarding returns the latest onboarding record of the user.
	GetOnboarding(ctx context.Context, userID int64) (models.OnboardingRecord, error)

	// GetLatestResume returns the most recently stored resume of the user.
	GetLatestResume(ctx context.Context, userID int64) (models.Resume, error)

	// ListOnboarding returns every onboarding record, newest first.
	ListOnboarding(ctx context.Context) ([]models.OnboardingRecord, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo

	// CheckHealth reports whether the record store is reachable.
	CheckHealth(ctx context.Context) error
}

// OnboardingServiceWrapper defines middleware composition for OnboardingService.
// Implementations wrap an existing OnboardingService to add behavior such as
// logging or validating.
type OnboardingServiceWrapper interface {
	Wrap(OnboardingService) OnboardingService // returns a decorated OnboardingService applying additional behavior
}

// Pinger is satisfied by the record store handle.
type Pinger interface {
	Ping(ctx context.Context) error
}
