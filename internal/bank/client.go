package bank

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single bank request.
const DefaultTimeout = 10 * time.Second

// maxBankBytes caps the size of a bank payload.
const maxBankBytes = 8 << 20

// Fetcher retrieves the question bank for a course.
type Fetcher interface {
	Fetch(ctx context.Context, courseCode string) (*Bank, error)
}

// HTTPClient fetches banks from <baseURL>/courses/<courseCode>.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ Fetcher = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewHTTPClient creates a bank client for the service at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CourseURL returns the bank URL for a course code.
func (c *HTTPClient) CourseURL(courseCode string) string {
	return c.baseURL + "/courses/" + url.PathEscape(courseCode)
}

// Fetch performs a one-shot GET for the course bank. Non-success responses
// and transport failures return *NetworkError; malformed payloads return
// *InvalidBankError.
func (c *HTTPClient) Fetch(ctx context.Context, courseCode string) (*Bank, error) {
	target := c.CourseURL(courseCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("fetch question bank: %w", err)
		}
		return nil, &NetworkError{URL: target, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{StatusCode: resp.StatusCode, URL: target}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBankBytes+1))
	if err != nil {
		return nil, &NetworkError{URL: target, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(raw) > maxBankBytes {
		return nil, &InvalidBankError{Err: fmt.Errorf("%w: over %d bytes", ErrBankTooLarge, maxBankBytes)}
	}

	return Decode(raw)
}
