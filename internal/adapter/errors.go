// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrGateway is wrapped by every error returned from an [AnalysisGateway].
	ErrGateway = errors.New("analysis gateway error")

	// ErrGatewayTimeout marks a call that exceeded its deadline.
	ErrGatewayTimeout = errors.New("analysis gateway timeout")

	// ErrGatewayStatus marks a non-2xx answer of the workflow.
	ErrGatewayStatus = errors.New("analysis gateway returned unexpected status")

	// ErrGatewayResponse marks an answer that could not be decoded or did
	// not pass validation.
	ErrGatewayResponse = errors.New("analysis gateway returned invalid response")
)
