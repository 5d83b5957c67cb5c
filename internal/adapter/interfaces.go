// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the External Analysis Gateway: the boundary
// between the intake pipeline and the workflow that analyses a submission.
//
// The primary abstraction is [AnalysisGateway]. Two implementations ship
// with the package: a deterministic stub ([NewStubAnalysisGateway]) used when
// no workflow is configured, and an HTTP/REST client
// ([NewHTTPAnalysisGateway]) posting to a workflow webhook.
//
// Every failure is reported as an error wrapping [ErrGateway] so callers can
// use [errors.Is] regardless of the implementation.
package adapter

import (
	"context"

	"github.com/MKhiriev/onboarding-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/analysis_gateway_mock.go -package=mock

// AnalysisGateway turns a canonical submission payload into a structured
// analysis. Implementations must honour ctx cancellation and deadlines.
type AnalysisGateway interface {
	// Analyze submits req to the analysis workflow and returns its result.
	// The result has passed [models.AnalysisResult.Validate].
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
}
