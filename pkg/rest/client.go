package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/datazip-inc/source-shopify/constants"
	"github.com/datazip-inc/source-shopify/utils"
)

// Client issues one GET per page against the Shopify Admin REST API. Each
// call blocks on the rate limiter, retries transport failures with a fixed
// delay and returns the raw page payload plus the next-page token parsed
// from the Link header.
type Client struct {
	baseURL    string
	token      string
	http       *http.Client
	limiter    *Limiter
	retryCount int
	retryDelay time.Duration
}

type Option func(c *Client)

func WithRetry(count int, delay time.Duration) Option {
	return func(c *Client) {
		c.retryCount = count
		c.retryDelay = delay
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func WithLimiter(limiter *Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient builds a client rooted at baseURL, e.g.
// https://{shop}.myshopify.com/admin/api/2021-07/
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL:    baseURL,
		token:      token,
		http:       &http.Client{Timeout: 60 * time.Second},
		limiter:    NewLimiter(constants.DefaultRequestRate),
		retryCount: constants.DefaultRetryCount,
		retryDelay: constants.DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// StatusError is a non-2xx response; surfaced to the caller after retries
// so the runner can decide retry-or-abort for the whole stream.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Body)
}

// Fetch requests one page at path with the given query parameters and
// returns its payload along with the token for the following page, nil when
// pagination is exhausted.
func (c *Client) Fetch(ctx context.Context, path string, params url.Values) ([]byte, PageToken, error) {
	var payload []byte
	var token PageToken

	err := utils.RetryExec(ctx, func() error {
		var attemptErr error
		payload, token, attemptErr = c.fetchOnce(ctx, path, params)
		return attemptErr
	}, c.retryCount, c.retryDelay)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch page %s: %s", path, err)
	}

	return payload, token, nil
}

func (c *Client) fetchOnce(ctx context.Context, path string, params url.Values) ([]byte, PageToken, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request: %s", err)
	}
	req.Header.Set(constants.AuthHeader, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %s", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s", err)
	}

	c.limiter.Observe(resp.Header.Get(constants.CallLimitHeader))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return body, NextPageToken(resp.Header.Get("Link")), nil
}

// CheckConnection probes shop.json with the configured credentials; any
// non-error status counts as success.
func (c *Client) CheckConnection(ctx context.Context) error {
	_, _, err := c.fetchOnce(ctx, "shop.json", nil)
	return err
}
