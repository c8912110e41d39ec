// Package client implements the ParkMate API client: an authenticated
// request wrapper with single refresh-and-retry on 401, and typed façades
// over the admin and user endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/parkmate/parkmate-client/internal/client/metrics"
	"github.com/parkmate/parkmate-client/internal/core/domain"
	"github.com/parkmate/parkmate-client/internal/core/ports"
)

const defaultHTTPTimeout = 30 * time.Second

// Client talks to the ParkMate API on behalf of one session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    ports.SessionStore
	validate   *payloadValidator
	logger     zerolog.Logger

	// refreshMu serialises token refreshes so concurrent 401s cannot spend
	// the refresh token twice.
	refreshMu sync.Mutex
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (custom transport,
// different timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a Client against baseURL, e.g. "http://localhost:5000/api".
func New(baseURL string, session ports.SessionStore, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		session:    session,
		validate:   newPayloadValidator(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues an authenticated request and decodes the JSON response into out.
//
// On a 401 with a token attached it refreshes the access token once and
// retries once with the new bearer header. If the refresh fails the session
// is torn down (local clear plus best-effort server logout) and
// domain.ErrSessionExpired is returned. At most one refresh and one retry
// happen per call.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	start := time.Now()

	body, err := encodePayload(payload)
	if err != nil {
		return err
	}

	token := c.session.GetAccessToken(ctx)
	resp, err := c.send(ctx, method, path, body, token)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "network_error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		drain(resp)

		if !c.refreshAfter401(ctx, token) {
			metrics.RequestsTotal.WithLabelValues(method, "401").Inc()
			c.logger.Info().Str("path", path).Msg("token refresh failed, tearing down session")
			c.Logout(ctx)
			return domain.ErrSessionExpired
		}

		resp, err = c.send(ctx, method, path, body, c.session.GetAccessToken(ctx))
		if err != nil {
			metrics.RequestsTotal.WithLabelValues(method, "network_error").Inc()
			return fmt.Errorf("%s %s (retry): %w", method, path, err)
		}
	}

	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	return decodeResponse(resp, out, "")
}

// bare issues an unauthenticated request with no refresh-and-retry. Used by
// the auth endpoints themselves (login, register, refresh, verify), which
// must never recurse into the refresh flow.
func (c *Client) bare(ctx context.Context, method, path string, payload, out any, fallback string) error {
	body, err := encodePayload(payload)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, body, "")
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "network_error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	return decodeResponse(resp, out, fallback)
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}

// refreshAfter401 runs the refresh flow for a request that just got a 401
// while holding staleToken. Refreshes are serialised: a caller that waited on
// the mutex while a peer rotated the token reuses the new token instead of
// spending the refresh token again.
func (c *Client) refreshAfter401(ctx context.Context, staleToken string) bool {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if cur := c.session.GetAccessToken(ctx); cur != "" && cur != staleToken {
		metrics.TokenRefreshTotal.WithLabelValues("reused").Inc()
		return true
	}
	return c.refreshLocked(ctx)
}

func encodePayload(payload any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return body, nil
}

// decodeResponse consumes and closes the response body. Non-success statuses
// become an APIError carrying the body's "error" field when present, the
// fallback otherwise.
func decodeResponse(resp *http.Response, out any, fallback string) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Tolerate non-JSON error bodies.
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &envelope)
		if envelope.Error == "" {
			envelope.Error = fallback
		}
		return domain.NewAPIError(resp.StatusCode, envelope.Error)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
