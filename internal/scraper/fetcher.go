// Package scraper handles web page fetching and parsing.
package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageContent represents fetched page data.
type PageContent struct {
	URL         string
	HTML        string
	Doc         *goquery.Document // Parsed document, nil until parse succeeds
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// FetcherConfig holds common fetcher configuration.
type FetcherConfig struct {
	UserAgent   string
	Timeout     time.Duration
	Delay       time.Duration // Pause after each successful fetch
	MaxBodySize int           // Response size cap in bytes (static only, 0 = unlimited)
}

// DefaultFetcherConfig returns sensible defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		Timeout:   15 * time.Second,
		Delay:     time.Second,
	}
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves and parses page content from a URL.
	Fetch(ctx context.Context, url string) (PageContent, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static", "dynamic" or "auto".
	Type() string
}

// FetchMode determines how pages are fetched.
type FetchMode string

const (
	FetchModeAuto    FetchMode = "auto"
	FetchModeStatic  FetchMode = "static"
	FetchModeDynamic FetchMode = "dynamic"
)

// NewFetcher creates an appropriate fetcher based on mode.
func NewFetcher(mode FetchMode, cfg FetcherConfig) (Fetcher, error) {
	switch mode {
	case FetchModeStatic:
		return NewStaticFetcher(cfg), nil
	case FetchModeDynamic:
		return NewDynamicFetcher(cfg)
	case FetchModeAuto:
		return NewAutoFetcher(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s", mode)
	}
}

// pause blocks for the configured post-fetch delay, honoring cancellation.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
