package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL serves raw file contents from GitHub repositories
	DefaultBaseURL = "https://raw.githubusercontent.com/"

	// DefaultTimeout bounds a single document download
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every request
	DefaultUserAgent = "docsection-fetcher/1.0"

	// DefaultMaxConcurrency limits parallel downloads in FetchAll
	DefaultMaxConcurrency = 4
)

// Environment variables read by NewFromEnv
const (
	EnvBaseURL        = "DOCSECTION_BASE_URL"
	EnvTimeout        = "DOCSECTION_FETCH_TIMEOUT"
	EnvUserAgent      = "DOCSECTION_USER_AGENT"
	EnvMaxConcurrency = "DOCSECTION_FETCH_CONCURRENCY"
)

// Common errors
var (
	ErrTransport     = errors.New("document transport failed")
	ErrEmptyLocator  = errors.New("locator cannot be empty")
	ErrInvalidConfig = errors.New("invalid fetcher configuration")
)

// StatusError reports a non-success HTTP status for a document request
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap allows errors.Is(err, ErrTransport)
func (e *StatusError) Unwrap() error {
	return ErrTransport
}

// Downloader returns the full text of the document identified by locator
type Downloader interface {
	Fetch(ctx context.Context, locator string) (string, error)
}

// HTTPClient is the subset of *http.Client used by the Fetcher
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds fetcher configuration
type Config struct {
	BaseURL        string        // Prefix joined with every locator
	Timeout        time.Duration // Per-request timeout when HTTPClient is nil
	UserAgent      string
	MaxConcurrency int        // Parallel downloads in FetchAll
	HTTPClient     HTTPClient // Optional: override the default client
}

// DefaultConfig returns the configuration for raw GitHub downloads
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Timeout:        DefaultTimeout,
		UserAgent:      DefaultUserAgent,
		MaxConcurrency: DefaultMaxConcurrency,
	}
}

// Fetcher downloads documents with a single GET per locator.
// It does not retry or cache.
type Fetcher struct {
	baseURL        string
	userAgent      string
	maxConcurrency int
	httpClient     HTTPClient
}

// New creates a Fetcher, filling unset fields from DefaultConfig
func New(cfg Config) *Fetcher {
	defaults := DefaultConfig()

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = defaults.MaxConcurrency
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Fetcher{
		baseURL:        cfg.BaseURL,
		userAgent:      cfg.UserAgent,
		maxConcurrency: cfg.MaxConcurrency,
		httpClient:     client,
	}
}

// NewFromEnv creates a Fetcher configured from environment variables:
//   - DOCSECTION_BASE_URL (default https://raw.githubusercontent.com/)
//   - DOCSECTION_FETCH_TIMEOUT as a Go duration (default 30s)
//   - DOCSECTION_USER_AGENT
//   - DOCSECTION_FETCH_CONCURRENCY (default 4)
func NewFromEnv() (*Fetcher, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("%w: %s=%q is not a positive duration", ErrInvalidConfig, EnvTimeout, v)
		}
		cfg.Timeout = timeout
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv(EnvMaxConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %s=%q is not a positive integer", ErrInvalidConfig, EnvMaxConcurrency, v)
		}
		cfg.MaxConcurrency = n
	}

	return New(cfg), nil
}

// BaseURL returns the prefix joined with locators
func (f *Fetcher) BaseURL() string {
	return f.baseURL
}

// URL returns the address requested for locator
func (f *Fetcher) URL(locator string) string {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return locator
	}
	return strings.TrimSuffix(f.baseURL, "/") + "/" + strings.TrimPrefix(locator, "/")
}

// Fetch downloads the document identified by locator.
// Any non-2xx status fails with *StatusError.
func (f *Fetcher) Fetch(ctx context.Context, locator string) (string, error) {
	if strings.TrimSpace(locator) == "" {
		return "", ErrEmptyLocator
	}

	url := f.URL(locator)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	return string(body), nil
}

// FetchAll downloads several documents concurrently and returns their text in
// locator order. The first failure cancels the remaining downloads.
func (f *Fetcher) FetchAll(ctx context.Context, locators []string) ([]string, error) {
	texts := make([]string, len(locators))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.maxConcurrency)

	for i, locator := range locators {
		g.Go(func() error {
			text, err := f.Fetch(gctx, locator)
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", locator, err)
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}
