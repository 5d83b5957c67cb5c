// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/onboarding-intake/internal/validators"
)

var (
	// ErrValidation marks rejected input. Every *validators.ValidationError
	// wraps it.
	ErrValidation = validators.ErrValidation

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStoreUnavailable      = errors.New("record store is unavailable")
)
