// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/utils"
	"github.com/MKhiriev/onboarding-intake/models"
)

type httpAnalysisGateway struct {
	client     *utils.HTTPClient
	webhookURL string
}

// NewHTTPAnalysisGateway constructs an HTTP/REST implementation of
// [AnalysisGateway] posting JSON to cfg.AnalysisURL. Every call is bounded by
// cfg.RequestTimeout.
//
// Returns an error if cfg.AnalysisURL is empty or is not an absolute URL.
func NewHTTPAnalysisGateway(cfg config.Adapter) (AnalysisGateway, error) {
	webhookURL, err := normalizeWebhookURL(cfg.AnalysisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid analysis url: %w", err)
	}

	client := utils.NewHTTPClient().
		WithTimeout(cfg.RequestTimeout).
		WithJSON()

	return &httpAnalysisGateway{client: client, webhookURL: webhookURL}, nil
}

func normalizeWebhookURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Analyze implements [AnalysisGateway]. It POSTs req to the webhook and
// decodes the body into [models.AnalysisResult].
func (h *httpAnalysisGateway) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(h.webhookURL)
	if err != nil {
		log.Err(err).
			Str("func", "*httpAnalysisGateway.Analyze").
			Int64("user_id", req.UserID).
			Msg("analysis request failed")
		return models.AnalysisResult{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().
			Str("func", "*httpAnalysisGateway.Analyze").
			Int("status", resp.StatusCode()).
			Int64("user_id", req.UserID).
			Msg("analysis workflow answered with error status")
		return models.AnalysisResult{}, err
	}

	var result models.AnalysisResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		log.Err(err).Str("func", "*httpAnalysisGateway.Analyze").Msg("failed to decode analysis response")
		return models.AnalysisResult{}, fmt.Errorf("%w: %w: decode: %w", ErrGateway, ErrGatewayResponse, err)
	}

	if err = result.Validate(); err != nil {
		log.Err(err).Str("func", "*httpAnalysisGateway.Analyze").Msg("analysis response failed validation")
		return models.AnalysisResult{}, fmt.Errorf("%w: %w: %w", ErrGateway, ErrGatewayResponse, err)
	}

	log.Debug().
		Str("func", "*httpAnalysisGateway.Analyze").
		Int64("user_id", req.UserID).
		Str("workflow_id", result.WorkflowID).
		Dur("elapsed", resp.Time()).
		Msg("analysis received")

	return result, nil
}
