// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/service"
	"github.com/MKhiriev/onboarding-intake/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// traceIDs mints ids for requests arriving without X-Trace-ID.
	traceIDs utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
