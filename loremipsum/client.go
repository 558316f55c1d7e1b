package loremipsum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the api-ninjas lorem ipsum endpoint
	DefaultBaseURL = "https://api.api-ninjas.com/v1/loremipsum"
	// DefaultTimeout bounds a single request when no timeout is configured
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent when no user agent is configured
	DefaultUserAgent = "lorem-cli"

	apiKeyHeader    = "X-Api-Key"
	paragraphsParam = "paragraphs"
	maxErrorBody    = 8 * 1024
)

// Client talks to the api-ninjas lorem ipsum endpoint
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new api-ninjas client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api-ninjas API key is required")
	}

	o := clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    o.baseURL,
		apiKey:     apiKey,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// requestURL appends the paragraph count to the base URL
func (c *Client) requestURL(paragraphs int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", &Error{Kind: ErrInvalidURL, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &Error{Kind: ErrInvalidURL, Err: fmt.Errorf("base URL %q must be absolute", c.baseURL)}
	}

	q := u.Query()
	q.Set(paragraphsParam, strconv.Itoa(paragraphs))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Get performs one GET request and returns the body of a 2xx response
func (c *Client) Get(ctx context.Context, paragraphs int) (*Response, error) {
	requestURL, err := c.requestURL(paragraphs)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidURL, Err: err}
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("url", requestURL).
		Int("paragraphs", paragraphs).
		Msg("Requesting lorem ipsum")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Received lorem ipsum response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &Response{
		Body:       body,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}, nil
}
