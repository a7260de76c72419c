package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Default endpoint settings.
const (
	DefaultURL       = "https://spotifyreplicatry.onrender.com/allsongs"
	DefaultMethod    = http.MethodPost
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "onestop/1.0 (https://github.com/llehouerou/onestop)"

	maxCoverSize = 8 << 20
)

// maxCatalogSize caps the catalog response body.
var maxCatalogSize = 16 << 20

// Provider fetches the catalog once at startup.
type Provider interface {
	Fetch(ctx context.Context) (Catalog, error)
}

// Client is an HTTP client for the song catalog endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	method     string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithURL sets the catalog endpoint.
func WithURL(url string) Option {
	return func(c *Client) { c.url = url }
}

// WithMethod sets the HTTP method used to query the endpoint.
func WithMethod(method string) Option {
	return func(c *Client) { c.method = strings.ToUpper(method) }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a catalog client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		url:        DefaultURL,
		method:     DefaultMethod,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the configured endpoint.
func (c *Client) URL() string {
	return c.url
}

// Fetch requests the track list and builds a Catalog from it.
func (c *Client) Fetch(ctx context.Context) (Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, c.method, c.url, http.NoBody)
	if err != nil {
		return Catalog{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Catalog{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Catalog{}, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxCatalogSize)+1))
	if err != nil {
		return Catalog{}, fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxCatalogSize {
		return Catalog{}, fmt.Errorf("response larger than %d bytes", maxCatalogSize)
	}

	tracks, err := decodeSongs(body)
	if err != nil {
		return Catalog{}, fmt.Errorf("decode response: %w", err)
	}

	return New(tracks), nil
}

// FetchCover downloads a cover image.
func (c *Client) FetchCover(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCoverSize+1))
	if err != nil {
		return nil, fmt.Errorf("read cover: %w", err)
	}
	if len(data) > maxCoverSize {
		return nil, fmt.Errorf("cover larger than %d bytes", maxCoverSize)
	}
	return data, nil
}

// Verify Client implements Provider at compile time.
var _ Provider = (*Client)(nil)
