// Package apiclient talks to the remote commerce API. Customer endpoints
// live under /api/livejs/v1/customer/{path}, admin endpoints under
// /api/livejs/v1/admin/{path} and require the admin token.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"storefront/internal/logger"
)

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiPath    string
	adminToken string
	timeout    time.Duration
	http       *http.Client
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	APIPath    string
	AdminToken string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New builds a Client. A nil HTTPClient uses http.DefaultClient.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    opts.BaseURL,
		apiPath:    opts.APIPath,
		adminToken: opts.AdminToken,
		timeout:    opts.Timeout,
		http:       httpClient,
	}
}

// APIError is a failed call: transport error, non-2xx status or a
// status:false body.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// envelope wraps every request body as {"data": ...}.
type envelope struct {
	Data any `json:"data"`
}

type statusBody struct {
	Status  *bool  `json:"status"`
	Message string `json:"message"`
}

func (c *Client) customerPath(parts ...string) string {
	return c.buildPath("customer", parts...)
}

func (c *Client) adminPath(parts ...string) string {
	return c.buildPath("admin", parts...)
}

func (c *Client) buildPath(scope string, parts ...string) string {
	p := "/api/livejs/v1/" + scope + "/" + url.PathEscape(c.apiPath)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

func (c *Client) do(ctx context.Context, op, method, path string, admin bool, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(envelope{Data: body})
		if err != nil {
			return &APIError{Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", c.adminToken)
	}

	log := logger.WithArea("API").WithField("op", op)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Error("request failed")
		return &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	log = log.WithField("status", resp.StatusCode).WithField("duration", time.Since(started).String())

	var status statusBody
	if err := json.Unmarshal(raw, &status); err != nil {
		log.WithError(err).Debug("response has no status body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := status.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		log.WithField("message", message).Warn("request rejected")
		return &APIError{Op: op, StatusCode: resp.StatusCode, Message: message}
	}
	if status.Status != nil && !*status.Status {
		log.WithField("message", status.Message).Warn("request rejected")
		return &APIError{Op: op, StatusCode: resp.StatusCode, Message: status.Message}
	}

	log.Debug("request completed")

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
