// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/onboarding-intake/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with the X-Trace-ID header value, or a fresh
// UUIDv7 when the header is absent, and attaches a child logger carrying it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		ctx := utils.WithTraceID(r.Context(), traceID)
		r = r.WithContext(h.logger.WithTraceID(traceID).WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
