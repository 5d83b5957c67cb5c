// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// onboarding server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnsupportedContentType is returned when a submission arrives in an
	// encoding other than JSON, multipart or urlencoded form.
	MsgUnsupportedContentType = "unsupported content type"

	// MsgPayloadTooLarge is returned when a submission exceeds the configured
	// upload limit.
	MsgPayloadTooLarge = "payload too large"

	// MsgInvalidUserID is returned when the {user_id} path parameter is not a
	// positive integer.
	MsgInvalidUserID = "invalid user id"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRouteNotFound is returned for unknown paths and for known paths
	// requested with an unsupported method.
	MsgRouteNotFound = "Not Found"

	// MsgRecordNotFound is returned when the user has no onboarding record.
	MsgRecordNotFound = "Onboarding record not found"

	// MsgResumeNotFound is returned when the user has no stored resume.
	MsgResumeNotFound = "Resume not found"

	// MsgUserNotFound is returned when a lookup targets an unknown user.
	MsgUserNotFound = "User not found"

	// MsgEmailAlreadyExists is returned when two first-time submissions for
	// the same email race and the second one loses.
	MsgEmailAlreadyExists = "email already exists, please retry"

	// MsgAnalysisFailed is returned when the analysis workflow failed or
	// timed out. Nothing was stored.
	MsgAnalysisFailed = "analysis workflow failed"

	// MsgAnalysisTimeout is returned when the analysis workflow did not answer
	// in time. Nothing was stored.
	MsgAnalysisTimeout = "analysis workflow timed out"

	// MsgPersistenceFailed is returned when the record store failed during a
	// submission. Nothing was stored.
	MsgPersistenceFailed = "error storing onboarding submission"

	// MsgServiceRunning is the body message of the root endpoint.
	MsgServiceRunning = "Onboarding Intake API is running"

	// MsgHealthy is the status reported by a healthy service.
	MsgHealthy = "healthy"

	// MsgUnhealthy is the status reported when the record store is down.
	MsgUnhealthy = "unhealthy"
)
