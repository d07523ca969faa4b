package scraper

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/gleanhq/gleaner/internal/logger"
)

// StaticFetcher uses Colly for static HTML fetching.
type StaticFetcher struct {
	config FetcherConfig
}

// NewStaticFetcher creates a new static fetcher.
func NewStaticFetcher(cfg FetcherConfig) *StaticFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultFetcherConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultFetcherConfig().Timeout
	}
	return &StaticFetcher{config: cfg}
}

// Fetch retrieves and parses page content using Colly. After a successful
// fetch the configured delay is applied before returning, to throttle the
// request rate against the target host.
func (f *StaticFetcher) Fetch(ctx context.Context, targetURL string) (PageContent, error) {
	result := PageContent{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	logger.Debug("static fetch starting", "url", targetURL)

	// Create a new collector for each request
	opts := []colly.CollectorOption{
		colly.UserAgent(f.config.UserAgent),
	}
	if f.config.MaxBodySize > 0 {
		opts = append(opts, colly.MaxBodySize(f.config.MaxBodySize))
	}
	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(f.config.Timeout)

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.HTML = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = err
	})

	if err := c.Visit(targetURL); err != nil {
		return result, &FetchError{URL: targetURL, Err: err}
	}
	if fetchErr != nil {
		return result, &FetchError{URL: targetURL, Err: fetchErr}
	}

	if err := f.parseContent(&result); err != nil {
		return result, &ParseError{URL: targetURL, Err: err}
	}

	logger.Debug("static fetch complete",
		"url", targetURL,
		"status", result.StatusCode,
		"html_size", len(result.HTML))

	if err := pause(ctx, f.config.Delay); err != nil {
		return result, err
	}

	return result, nil
}

// parseContent parses HTML into a document and extracts the page title.
func (f *StaticFetcher) parseContent(content *PageContent) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return err
	}

	content.Doc = doc
	content.Title = strings.TrimSpace(doc.Find("title").First().Text())
	return nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return "static"
}
