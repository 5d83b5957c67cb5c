// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "onboarding-intake/1.0"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithTimeout(30 * time.Second).WithJSON()
//	resp, err := client.R().SetBody(payload).Post("https://example.com/webhook")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client. Automatic retries are
// disabled.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}

// WithTimeout bounds every request of the client. Non-positive values leave
// the client without a timeout.
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// WithJSON makes the client send and accept JSON by default.
func (c *HTTPClient) WithJSON() *HTTPClient {
	c.SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return c
}
