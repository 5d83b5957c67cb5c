// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/onboarding-intake/internal/app"
	"github.com/MKhiriev/onboarding-intake/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A known
// path requested with an unsupported method is answered with 404 instead of
// chi's default 405, so callers cannot probe which methods a route accepts.
//
// Requests that do match a route (including nested /api/v1 routes and
// parameterised patterns) are forwarded to the router unchanged.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.MsgRouteNotFound)
}
