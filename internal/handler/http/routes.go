// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const apiV1Prefix = "/api/v1"

// Init builds the router. Onboarding routes are served both at the root and
// under /api/v1.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withCORS())
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(gzip.DefaultCompression, compressedTypes...))
	router.Use(withGUnzip, h.withBodyLimit)

	// service info
	router.Get("/", h.root)
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.Group(h.onboardingRoutes)
	router.Route(apiV1Prefix, h.onboardingRoutes)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) onboardingRoutes(r chi.Router) {
	r.Post("/onboarding", h.submitOnboarding)
	r.Get("/onboarding", h.listOnboarding)
	r.Get("/onboarding/{user_id}", h.getOnboarding)
	r.Get("/user/{user_id}/resume", h.getLatestResume)
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           300,
	})
}
