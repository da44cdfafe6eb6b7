// Package api is stockpilot's typed client for the inventory backend.
//
// Every call is a thin wrapper around pkg/http: build the request, send it,
// map non-2xx responses to *api.Error and decode the body into the model
// types. Calls are instrumented with pkg/metrics under the logical operation
// name ("products.list", "orders.update_status", ...).
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stockpilot/config"
	"stockpilot/pkg/http"
	"stockpilot/pkg/metrics"
)

// Client talks to one backend. Zero-value is not usable; construct with New
// or NewWithBase.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
}

// New builds a client from config: API_BASE_URL, API_TOKEN, HTTP_TIMEOUT.
func New() *Client {
	return &Client{
		baseURL: config.APIBaseURL(),
		token:   config.APIToken(),
		timeout: config.HTTPTimeout(),
	}
}

// NewWithBase builds a client against an explicit base URL, keeping the
// configured token and timeout. Used by tests and the demo command.
func NewWithBase(baseURL string) *Client {
	c := New()
	c.baseURL = baseURL
	return c
}

// Error is a non-2xx backend response. Detail carries the backend's own
// message when the body had one, so callers can surface "sku exists"
// verbatim instead of a generic failure.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// send executes req and decodes a 2xx body into dest (skipped when dest is
// nil). Transport failures and non-2xx responses come back as errors; the
// latter always as *Error.
func (c *Client) send(op string, req *http.Request, dest interface{}) error {
	start := time.Now()
	metrics.APICallsInFlight.Inc()
	defer metrics.APICallsInFlight.Dec()

	resp, err := req.Timeout(c.timeout).Bearer(c.token).Send()
	if err != nil {
		metrics.ObserveAPICall(op, 0, start)
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.ObserveAPICall(op, resp.StatusCode, start)

	if !resp.OK() {
		return &Error{StatusCode: resp.StatusCode, Detail: errorDetail(resp.Raw)}
	}
	if dest == nil {
		return nil
	}
	if err := resp.JSON(dest); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// errorDetail pulls the backend's {"detail": "..."} message out of an error
// body. Bodies without one yield an empty detail.
func errorDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}
