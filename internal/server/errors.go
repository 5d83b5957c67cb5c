// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errHTTPServerNotConfigured is returned when NewServer has no router or listen address.
var errHTTPServerNotConfigured = errors.New("http server is not configured: missing handlers or address")
