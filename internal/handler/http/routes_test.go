// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/onboarding-intake/internal/app"
	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/service"
	"github.com/MKhiriev/onboarding-intake/models"
)

func TestRoutes_Root(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	rec := serve(router, http.MethodGet, "/", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.HealthResponse](t, rec)
	assert.Equal(t, app.MsgHealthy, got.Status)
	assert.Equal(t, app.MsgServiceRunning, got.Message)
}

func TestRoutes_Health(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "store reachable", wantStatus: http.StatusOK, wantBody: app.MsgHealthy},
		{name: "store down", err: service.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable, wantBody: app.MsgUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t, config.Server{})
			mocks.appInfo.EXPECT().CheckHealth(gomock.Any()).Return(tt.err)

			rec := serve(router, http.MethodGet, "/health", nil, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decodeBody[models.HealthResponse](t, rec).Status)
		})
	}
}

func TestRoutes_Version(t *testing.T) {
	router, mocks := newTestRouter(t, config.Server{})
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	mocks.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123"))

	rec := serve(router, http.MethodGet, "/version", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VersionResponse{
		Version:     "1.0.0",
		BuildDate:   "2026-03-01",
		BuildCommit: "abc123",
	}, decodeBody[models.VersionResponse](t, rec))
}

func TestRoutes_UnsupportedMethodsAreNotFound(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/onboarding"},
		{http.MethodPut, "/api/v1/onboarding"},
		{http.MethodPost, "/onboarding/1"},
		{http.MethodPatch, "/api/v1/onboarding/1"},
		{http.MethodDelete, "/user/1/resume"},
		{http.MethodPost, "/health"},
		{http.MethodPut, "/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			router, _ := newTestRouter(t, config.Server{})

			rec := serve(router, tt.method, tt.path, strings.NewReader(`{}`), "application/json")

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, app.MsgRouteNotFound, decodeBody[models.ErrorResponse](t, rec).Detail)
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	for _, path := range []string{"/nope", "/api/v1/health", "/api/v2/onboarding"} {
		rec := serve(router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestRoutes_CORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantOrigin string
	}{
		{name: "any origin", origin: "http://localhost:3000", wantOrigin: "*"},
		{name: "listed origin", origins: []string{"https://app.example"}, origin: "https://app.example", wantOrigin: "https://app.example"},
		{name: "unlisted origin", origins: []string{"https://app.example"}, origin: "https://evil.example", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, config.Server{AllowedOrigins: tt.origins})

			req := httptest.NewRequest(http.MethodOptions, "/onboarding", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRoutes_GZipResponse(t *testing.T) {
	router, mocks := newTestRouter(t, config.Server{})
	mocks.appInfo.EXPECT().CheckHealth(gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"status":"healthy"}`, gunzip(t, rec.Body.Bytes()))
}

func TestRoutes_RecoversFromPanic(t *testing.T) {
	router, mocks := newTestRouter(t, config.Server{})
	mocks.onboarding.EXPECT().ListOnboarding(gomock.Any()).DoAndReturn(func(any) ([]models.OnboardingRecord, error) {
		panic(errors.New("boom"))
	})

	rec := serve(router, http.MethodGet, "/onboarding", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
