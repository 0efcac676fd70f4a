// Package api is a client for the dog adoption service.
//
// Every call carries the session cookie set by Login; the cookie jar is owned
// by the client, so callers never see credentials after logging in.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"pupfinder/internal/domain"
	"pupfinder/internal/logging"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 10 << 20

// Options configures a Client
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables rate limiting
	Burst             int
	Transport         http.RoundTripper // nil uses a pooled default
}

// Client calls the remote dog adoption API
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// SearchResponse is the body returned by GET /dogs/search
type SearchResponse struct {
	ResultIDs []string `json:"resultIds"`
	Total     int      `json:"total"`
	Next      string   `json:"next,omitempty"`
	Prev      string   `json:"prev,omitempty"`
}

type matchResponse struct {
	Match string `json:"match"`
}

// New creates a Client with its own cookie jar
func New(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", opts.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("api: failed to create cookie jar: %w", err)
	}

	transport := opts.Transport
	if transport == nil {
		transport = defaultTransport()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(base.String(), "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			Jar:       jar,
		},
		limiter: limiter,
	}, nil
}

func defaultTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// Login posts credentials. A nil error means the session cookie is set.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) error {
	return c.do(ctx, "login", http.MethodPost, "/auth/login", nil, creds, nil)
}

// Logout ends the remote session
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Breeds returns every breed name known to the service
func (c *Client) Breeds(ctx context.Context) ([]string, error) {
	var breeds []string
	if err := c.do(ctx, "breeds", http.MethodGet, "/dogs/breeds", nil, nil, &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

// Search runs a dog search with already-built query parameters
func (c *Client) Search(ctx context.Context, params url.Values) (SearchResponse, error) {
	var resp SearchResponse
	if err := c.do(ctx, "search", http.MethodGet, "/dogs/search", params, nil, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

// Dogs resolves IDs to full records. The service does not promise to return
// them in input order.
func (c *Client) Dogs(ctx context.Context, ids []string) ([]domain.Dog, error) {
	if ids == nil {
		ids = []string{}
	}
	var dogs []domain.Dog
	if err := c.do(ctx, "dogs", http.MethodPost, "/dogs", nil, ids, &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

// Match submits favorite IDs and returns the single matched ID
func (c *Client) Match(ctx context.Context, ids []string) (string, error) {
	var resp matchResponse
	if err := c.do(ctx, "match", http.MethodPost, "/dogs/match", nil, ids, &resp); err != nil {
		return "", err
	}
	if resp.Match == "" {
		return "", fmt.Errorf("api: match: empty match in response")
	}
	return resp.Match, nil
}

// do sends one request. body is JSON-encoded when non-nil, out is decoded
// from the response when non-nil. No retries are attempted.
func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: op, Err: err}
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: %s: failed to marshal request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("api: %s: failed to create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logging.Warn("api request failed", "op", op, "request_id", requestID, "err", err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	logging.Debug("api request", "op", op, "method", method, "path", path,
		"status", resp.StatusCode, "request_id", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: %s: failed to parse response: %w", op, err)
	}
	return nil
}
