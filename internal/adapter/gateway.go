// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
)

// NewAnalysisGateway selects the gateway implementation from cfg: the HTTP
// client when an analysis URL is configured, the stub otherwise.
func NewAnalysisGateway(cfg config.Adapter, log *logger.Logger) (AnalysisGateway, error) {
	if cfg.AnalysisURL == "" {
		log.Info().Str("func", "NewAnalysisGateway").Msg("no analysis url configured, using stub gateway")
		return NewStubAnalysisGateway(), nil
	}

	gateway, err := NewHTTPAnalysisGateway(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewAnalysisGateway").Msg("failed to create http analysis gateway")
		return nil, err
	}

	log.Info().
		Str("func", "NewAnalysisGateway").
		Str("url", cfg.AnalysisURL).
		Dur("timeout", cfg.RequestTimeout).
		Msg("using http analysis gateway")
	return gateway, nil
}
