// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// withBodyLimit caps request bodies at the configured upload size. Reads past
// the limit fail with *http.MaxBytesError.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.MaxUploadSize > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
		}
		next.ServeHTTP(w, r)
	})
}
