package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// Default client settings.
const (
	// DefaultTimeout bounds each request. CTF targets are usually nearby
	// and fast; slow resources are skipped rather than stalling the run.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is a browser-like User-Agent. Some challenge
	// servers hide flags from obvious scanner traffic.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultMaxBodySize caps how much of a response body is read.
	// 5MB covers any realistic page or asset while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024
)

// Client fetches text resources over HTTP.
//
// Design decision: We wrap *http.Client rather than exposing it because:
//  1. Every call site needs the same headers, limit, and decode steps
//  2. Non-2xx must surface as an error, which net/http does not do
//  3. Tests can inject a stub transport without touching the scanner
type Client struct {
	// httpClient performs the actual requests.
	httpClient *http.Client

	// userAgent is sent with every request.
	userAgent string

	// headers are extra request headers (per-site auth, cookies).
	headers map[string]string

	// maxBodySize limits how many bytes of a response body are read.
	maxBodySize int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHeaders sets extra headers sent with every request.
// Used for per-site cookies and authorization from the config file.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithMaxBodySize sets the maximum response body size to read.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client with default timeout, User-Agent, and size cap.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get fetches the given URL and returns its body as text.
// Transport errors, timeouts, and non-2xx statuses all surface as a
// non-nil error; the scanner does not need to distinguish between them.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid request for %s: %w", rawURL, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: %w: %s", rawURL, ErrBadStatus, resp.Status)
	}

	body, err := decodeBody(io.LimitReader(resp.Body, c.maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}

	return body, nil
}

// decodeBody converts a response body to a UTF-8 string.
// The declared charset (Content-Type parameter or HTML meta sniffing) is
// honored when present; whatever remains invalid after conversion is
// dropped so binary responses degrade to best-effort partial text.
func decodeBody(r io.Reader, contentType string) (string, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		// Undecodable declared charset: fall back to the raw bytes.
		decoded = r
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}

	return strings.ToValidUTF8(string(data), ""), nil
}
