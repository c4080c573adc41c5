// Package apiclient talks to the menu-studio REST API on behalf of the
// dashboard forms.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Config wires a Client.
type Config struct {
	BaseURL    string
	Auth       AuthProvider
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client is a typed client for the /api endpoints.
type Client struct {
	baseURL    string
	auth       AuthProvider
	httpClient *http.Client
	logger     *zap.Logger
}

// New validates cfg and returns a Client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("apiclient: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("apiclient: invalid base URL: %w", err)
	}
	if cfg.Auth == nil {
		return nil, errors.New("apiclient: auth provider is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{baseURL: base, auth: cfg.Auth, httpClient: httpClient, logger: logger}, nil
}

// do sends one request and returns the envelope data.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	session, err := c.auth.Session(ctx)
	if err != nil {
		return zero, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return zero, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+session.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return zero, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	env, err := decodeEnvelope[T](res.StatusCode, raw)
	if err != nil {
		return zero, err
	}
	return env.Data, nil
}
