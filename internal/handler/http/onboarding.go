// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/utils"
	"github.com/MKhiriev/onboarding-intake/models"
)

const userIDParam = "user_id"

func (h *Handler) submitOnboarding(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeOnboardingRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitOnboarding").Msg("invalid onboarding request body")
		writeError(w, err)
		return
	}

	result, err := h.services.OnboardingService.SubmitOnboarding(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitOnboarding").Int("status", statusFromError(err)).Msg("onboarding submission failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getOnboarding(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getOnboarding").Msg("invalid user id")
		writeError(w, err)
		return
	}

	record, err := h.services.OnboardingService.GetOnboarding(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getOnboarding").Int64("user_id", userID).Msg("error getting onboarding record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OnboardingRecordResponse{Success: true, Data: record}, http.StatusOK)
}

func (h *Handler) listOnboarding(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.OnboardingService.ListOnboarding(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listOnboarding").Msg("error listing onboarding records")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OnboardingListResponse{Success: true, Count: len(records), Data: records}, http.StatusOK)
}

func (h *Handler) getLatestResume(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLatestResume").Msg("invalid user id")
		writeError(w, err)
		return
	}

	resume, err := h.services.OnboardingService.GetLatestResume(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLatestResume").Int64("user_id", userID).Msg("error getting latest resume")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resume.View(), http.StatusOK)
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, userIDParam)
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return userID, nil
}
