// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// responseMessage extracts {"error": "..."} from the body, falling back to
// the raw body or the status text.
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(resp.Body(), &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}

// mapHTTPError maps a daemon API response to a sentinel error.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := responseMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusPreconditionRequired:
		return fmt.Errorf("%w: %s", ErrPreconditionRequired, msg)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// mapCloudHTTPError maps a cloud gateway response: throttling and server
// errors are transient, other client errors reject the write.
func mapCloudHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrCloudNotFound, responseMessage(resp))
	case code == http.StatusTooManyRequests,
		code == http.StatusRequestTimeout,
		code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrCloudUnavailable, code, responseMessage(resp))
	default:
		return fmt.Errorf("%w: http %d: %s", ErrCloudRejected, code, responseMessage(resp))
	}
}
