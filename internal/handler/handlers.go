// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the service.
package handler

import (
	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/handler/http"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
