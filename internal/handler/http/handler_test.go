// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/service"
	"github.com/MKhiriev/onboarding-intake/models"
)

type handlerMocks struct {
	onboarding *MockOnboardingService
	appInfo    *MockAppInfoService
}

// newTestRouter returns the fully wired router backed by service mocks.
func newTestRouter(t *testing.T, cfg config.Server) (http.Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		onboarding: NewMockOnboardingService(ctrl),
		appInfo:    NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		OnboardingService: mocks.onboarding,
		AppInfoService:    mocks.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()).Init(), mocks
}

func serve(router http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func sampleResult() models.OnboardingResult {
	return models.OnboardingResult{
		Success:      true,
		Message:      service.MsgOnboardingCompleted,
		UserID:       1,
		OnboardingID: 1,
		User:         models.UserSummary{UserID: 1, Email: "a@b.co", FullName: "Ann"},
		Resume:       models.ResumeSummary{ResumeID: 1, Version: models.DefaultResumeVersion, FileType: models.DefaultResumeFileType, Size: 2},
		Analysis: models.AnalysisResult{
			Status:     "success",
			WorkflowID: "wf-1",
			RecommendedLearningPath: models.LearningPath{
				DurationWeeks: 24,
			},
		},
	}
}
