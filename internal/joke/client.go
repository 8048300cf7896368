package joke

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/jokebox/internal/logging"
)

const (
	// DefaultURL is the public random joke endpoint
	DefaultURL = "https://official-joke-api.appspot.com/random_joke"

	// DefaultTimeout bounds the whole request, including reading the body
	DefaultTimeout = 5 * time.Second

	// maxBodySize caps how much of the response body is read
	maxBodySize = 1 << 20

	// maxErrorBodySize caps the body kept on an HTTP status error
	maxErrorBodySize = 512
)

// Client fetches jokes from a single HTTP endpoint.
// It performs exactly one request per call: no retries, no caching.
type Client struct {
	// URL is the endpoint queried by FetchJoke
	URL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for DefaultURL with DefaultTimeout
func NewClient() *Client {
	return NewClientWithURL(DefaultURL)
}

// NewClientWithURL creates a client for an arbitrary endpoint URL
func NewClientWithURL(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Fetch retrieves a joke and formats it as "<setup>\n<punchline>"
func (c *Client) Fetch(ctx context.Context) (string, error) {
	j, err := c.FetchJoke(ctx)
	if err != nil {
		return "", err
	}
	return j.String(), nil
}

// FetchJoke issues one GET request to the endpoint and decodes the response.
// Every returned error is a *Error.
func (c *Client) FetchJoke(ctx context.Context) (*Joke, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create GET request", err)
	}

	logging.LogHTTPRequest(req.Method, c.URL)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		jokeErr := NewNetworkError("GET request failed", err)
		logging.LogFetchFailure(c.URL, jokeErr.Type.String(), err)
		return nil, jokeErr
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogHTTPResponse(c.URL, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d %s",
			resp.StatusCode, http.StatusText(resp.StatusCode)))
		// Read error response if available
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		httpErr.Body = string(body)
		logging.Debug("Error response body",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", httpErr.Body),
		)
		return nil, httpErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	j, err := ParseJoke(body)
	if err != nil {
		logging.Debug("Rejected joke response",
			zap.Int("length", len(body)),
			zap.Error(err),
		)
		return nil, err
	}

	return j, nil
}
