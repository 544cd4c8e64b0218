package catalog

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"alescout/internal/domain"
	"alescout/internal/logging"
)

const (
	DefaultEndpoint  = "https://api.sampleapis.com/beers/ale"
	DefaultUserAgent = "alescout/1.0"
	DefaultTimeout   = 15 * time.Second

	// upper bound for a catalog body; the real payload is well under 1MB
	maxBodyBytes = 16 << 20
)

// Fetcher loads the full catalog
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.CatalogItem, error)
}

// ClientOption configures a Client
type ClientOption func(*Client)

// Client fetches the catalog from the upstream HTTP endpoint
type Client struct {
	Endpoint   string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
	log        zerolog.Logger
}

func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.UserAgent = userAgent
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.Timeout = timeout
	}
}

// WithHTTPClient replaces the default client. Timeout is then left to the caller.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTPClient = client
	}
}

// NewClient creates a client for endpoint
func NewClient(endpoint string, options ...ClientOption) *Client {
	c := &Client{
		Endpoint:  endpoint,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
		log:       logging.Component("catalog"),
	}
	for _, opt := range options {
		opt(c)
	}

	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Timeout:   c.Timeout,
			Transport: newTransport(),
		}
	}
	return c
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		IdleConnTimeout:       30 * time.Second,
		MaxIdleConns:          4,
		ForceAttemptHTTP2:     true,
	}
}

// Fetch performs one GET against the endpoint and decodes the JSON array.
// Every failure is returned as a *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]domain.CatalogItem, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("endpoint", c.Endpoint).Msg("catalog request failed")
		return nil, &FetchError{Kind: KindNetwork, Err: err}
	}
	defer func() {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("endpoint", c.Endpoint).Msg("catalog request rejected")
		return nil, &FetchError{Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	var items []domain.CatalogItem
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&items); err != nil {
		c.log.Warn().Err(err).Str("endpoint", c.Endpoint).Msg("catalog body could not be decoded")
		return nil, &FetchError{Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}

	c.log.Info().
		Int("items", len(items)).
		Dur("duration", time.Since(start)).
		Str("endpoint", c.Endpoint).
		Msg("catalog fetched")
	return items, nil
}
