// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so adapters can embed it and add their own
// request helpers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client for baseURL with the given request
// timeout. A non-empty token is sent as a bearer token on every request.
// Retries are left to the callers.
func NewHTTPClient(baseURL string, timeout time.Duration, token string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}

	return &HTTPClient{Client: client}
}
