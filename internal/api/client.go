// Package api wraps the storefront REST API behind a typed client. All
// authenticated calls share one refresh-and-retry path: a 401 triggers at
// most one token refresh, after which the original request is retried once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"furnistore/internal/localstore"
)

// Error is a non-2xx response from the API.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Body)
}

// IsStatus reports whether err is an API error with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client issues requests against the storefront backend. Tokens live in the
// shared local state file so a session survives process restarts.
type Client struct {
	baseURL string
	http    *http.Client
	state   *localstore.Store
	logger  *slog.Logger
}

// New builds a Client for the given base URL.
func New(baseURL string, timeout time.Duration, state *localstore.Store, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		state:   state,
		logger:  logger,
	}
}

// do performs one API call, decoding a JSON response into out when non-nil.
// A 401 on an authenticated call is retried exactly once after refreshing the
// access token; a failed refresh clears both tokens and surfaces the original
// failure.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	token := c.state.GetString(localstore.KeyAccessToken)
	status, data, err := c.send(ctx, method, path, body, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && token != "" {
		newToken, refreshErr := c.refreshAccessToken(ctx)
		if refreshErr != nil {
			c.logger.Debug("token refresh failed", "err", refreshErr)
			_ = c.state.Delete(localstore.KeyAccessToken, localstore.KeyRefreshToken)
			return &Error{Status: status, Body: string(data)}
		}
		status, data, err = c.send(ctx, method, path, body, newToken)
		if err != nil {
			return err
		}
	}

	if status < 200 || status > 299 {
		return &Error{Status: status, Body: string(data)}
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// send issues a single request and drains the body.
func (c *Client) send(ctx context.Context, method, path string, body interface{}, token string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token and persists it.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	refresh := c.state.GetString(localstore.KeyRefreshToken)
	if refresh == "" {
		return "", fmt.Errorf("no refresh token")
	}

	status, data, err := c.send(ctx, http.MethodPost, "/accounts/token/refresh/", map[string]string{"refresh": refresh}, "")
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &Error{Status: status, Body: string(data)}
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if resp.Access == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	if err := c.state.Set(localstore.KeyAccessToken, resp.Access); err != nil {
		return "", err
	}
	return resp.Access, nil
}
