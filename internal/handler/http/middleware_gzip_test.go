// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/onboarding-intake/internal/config"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echo writes the request body back together with the Content-Encoding
// header the handler saw.
func echo(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("X-Seen-Encoding", r.Header.Get("Content-Encoding"))
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(body)
}

func TestWithGUnzip(t *testing.T) {
	payload := `{"email":"a@b.co","full_name":"Ann"}`

	tests := []struct {
		name     string
		body     []byte
		encoding string
	}{
		{name: "plain body", body: []byte(payload)},
		{name: "gzip body", body: gzipBytes(t, []byte(payload)), encoding: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/onboarding", bytes.NewReader(tt.body))
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			rec := httptest.NewRecorder()

			withGUnzip(http.HandlerFunc(echo)).ServeHTTP(rec, req)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, payload, rec.Body.String())
			assert.Empty(t, rec.Header().Get("X-Seen-Encoding"))
		})
	}
}

func TestWithGUnzip_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/onboarding", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	called := false
	withGUnzip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGUnzip_ConcurrentRequests(t *testing.T) {
	handler := withGUnzip(http.HandlerFunc(echo))

	bodies := make([][]byte, 20)
	for i := range bodies {
		bodies[i] = gzipBytes(t, []byte(strings.Repeat(string(rune('a'+i)), 512)))
	}

	var wg sync.WaitGroup
	results := make([]string, len(bodies))
	for i, body := range bodies {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			req.Header.Set("Content-Encoding", "gzip")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			results[i] = rec.Body.String()
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, strings.Repeat(string(rune('a'+i)), 512), got)
	}
}

func TestPooledGzipBody_ReleaseOnce(t *testing.T) {
	zr, err := gzip.NewReader(bytes.NewReader(gzipBytes(t, []byte("x"))))
	require.NoError(t, err)

	body := &pooledGzipBody{Reader: zr, source: io.NopCloser(strings.NewReader(""))}
	body.release()
	body.release()

	assert.True(t, body.released)
	assert.NoError(t, body.Close())
}

func TestRoutes_GZipRequestBody(t *testing.T) {
	router, mocks := newTestRouter(t, config.Server{})
	mocks.onboarding.EXPECT().SubmitOnboarding(gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

	req := httptest.NewRequest(http.MethodPost, "/onboarding", bytes.NewReader(gzipBytes(t, []byte(`{"email":"a@b.co"}`))))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
