// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/onboarding-intake/internal/adapter"
	"github.com/MKhiriev/onboarding-intake/internal/app"
	"github.com/MKhiriev/onboarding-intake/internal/service"
	"github.com/MKhiriev/onboarding-intake/internal/store"
	"github.com/MKhiriev/onboarding-intake/internal/utils"
	"github.com/MKhiriev/onboarding-intake/internal/validators"
)

// errorResponse is the status and message written for a matched error.
type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{ErrPayloadTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge}},
	{ErrUnsupportedContentType, errorResponse{http.StatusUnsupportedMediaType, app.MsgUnsupportedContentType}},
	{ErrMalformedBody, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidUserID, errorResponse{http.StatusBadRequest, app.MsgInvalidUserID}},
	{service.ErrValidation, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrRecordNotFound, errorResponse{http.StatusNotFound, app.MsgRecordNotFound}},
	{store.ErrResumeNotFound, errorResponse{http.StatusNotFound, app.MsgResumeNotFound}},
	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},

	{adapter.ErrGatewayTimeout, errorResponse{http.StatusInternalServerError, app.MsgAnalysisTimeout}},
	{adapter.ErrGateway, errorResponse{http.StatusInternalServerError, app.MsgAnalysisFailed}},

	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.MsgPersistenceFailed}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.MsgPersistenceFailed}},
	{store.ErrBeginningTransaction, errorResponse{http.StatusInternalServerError, app.MsgPersistenceFailed}},
	{store.ErrCommittingTransaction, errorResponse{http.StatusInternalServerError, app.MsgPersistenceFailed}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, app.MsgPersistenceFailed}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, app.MsgPersistenceFailed}},
	{store.ErrStoreBusy, errorResponse{http.StatusInternalServerError, app.MsgPersistenceFailed}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError writes the mapped status and an error body. Validation errors
// also list the offending fields.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		utils.WriteError(w, resp.status, resp.message, vErr.Fields()...)
		return
	}

	utils.WriteError(w, resp.status, resp.message)
}
