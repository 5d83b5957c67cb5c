// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen bounds how much of an error body ends up in messages.
const maxErrorBodyLen = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}

	if resp.StatusCode() == http.StatusGatewayTimeout || resp.StatusCode() == http.StatusRequestTimeout {
		return fmt.Errorf("%w: %w: http %d: %s", ErrGateway, ErrGatewayTimeout, resp.StatusCode(), body)
	}

	return fmt.Errorf("%w: %w: http %d: %s", ErrGateway, ErrGatewayStatus, resp.StatusCode(), body)
}

// mapTransportError wraps a failed round trip, marking deadline expiry.
func mapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w: %w", ErrGateway, ErrGatewayTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrGateway, err)
}
