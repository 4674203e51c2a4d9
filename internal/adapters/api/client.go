package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethgrid/pester"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
)

// RequestIDHeader carries a per-request correlation id
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of an error response is read
const maxErrorBody = 64 << 10

// HTTPDoer executes HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the governance platform REST API
type Client struct {
	baseURL *url.URL
	token   string
	doer    HTTPDoer
	log     *slog.Logger
}

// NewClient creates an API client from the runtime configuration.
// MaxAttempts of 1 means every request is sent exactly once.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	attempts := max(cfg.MaxAttempts, 1)
	ec := pester.NewExtendedClient(&http.Client{Timeout: timeout})
	{
		ec.MaxRetries = attempts
		ec.Concurrency = 1
		ec.Backoff = func(retry int) time.Duration {
			// no wait after the final attempt
			if retry >= attempts {
				return 0
			}
			return pester.ExponentialJitterBackoff(retry)
		}
	}

	return NewClientWithDoer(cfg.APIURL, cfg.Token, ec, log)
}

// NewClientWithDoer creates an API client on top of an arbitrary doer
func NewClientWithDoer(apiURL, token string, doer HTTPDoer, log *slog.Logger) (*Client, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("api url is not configured (use --api-url, GOVCTL_API_URL or a govctl.toml profile)")
	}
	base, err := url.Parse(strings.TrimRight(apiURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", apiURL, err)
	}

	return &Client{
		baseURL: base,
		token:   token,
		doer:    doer,
		log:     log,
	}, nil
}

// getJSON issues a GET and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// doJSON sends an optional JSON body and decodes an optional JSON response
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	body, err := c.do(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// do sends the request and returns the raw body of a 2xx response
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, query, in)
	if err != nil {
		return nil, err
	}

	requestID := req.Header.Get(RequestIDHeader)
	start := time.Now()

	resp, err := c.doer.Do(req)
	if err != nil {
		c.log.Debug("api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp, method, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, in any) (*http.Request, error) {
	u := *c.baseURL
	u.Path = u.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// errorBody matches both {"message": ...} and {"Error": ...} payloads
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeError(resp *http.Response, method, path string) error {
	apiErr := &domain.APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		apiErr.Message = eb.Message
		if apiErr.Message == "" {
			apiErr.Message = eb.Error
		}
	}
	return apiErr
}

// segment escapes a single path segment
func segment(id string) string {
	return url.PathEscape(id)
}
