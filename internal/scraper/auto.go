package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/gleanhq/gleaner/internal/logger"
)

// AutoFetcher tries a static fetch first and falls back to the headless
// browser when the page appears to require JavaScript rendering.
type AutoFetcher struct {
	static  *StaticFetcher
	dynamic *DynamicFetcher
}

// NewAutoFetcher creates a fetcher that auto-detects JS requirements.
func NewAutoFetcher(cfg FetcherConfig) (*AutoFetcher, error) {
	dynamic, err := NewDynamicFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic fetcher: %w", err)
	}

	return &AutoFetcher{
		static:  NewStaticFetcher(cfg),
		dynamic: dynamic,
	}, nil
}

// Fetch tries static first, then falls back to dynamic if needed.
func (f *AutoFetcher) Fetch(ctx context.Context, url string) (PageContent, error) {
	content, err := f.static.Fetch(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return content, err
		}
		logger.Debug("static fetch failed, retrying with browser", "url", url, "error", err)
		return f.dynamic.Fetch(ctx, url)
	}

	if needsJavaScript(content) {
		logger.Debug("page looks JS-rendered, retrying with browser", "url", url)
		return f.dynamic.Fetch(ctx, url)
	}

	return content, nil
}

// needsJavaScript checks if a page appears to require JS rendering.
func needsJavaScript(content PageContent) bool {
	html := strings.ToLower(content.HTML)

	// SPA framework markers
	spaMarkers := []string{
		"<div id=\"root\"></div>",   // React
		"<div id=\"app\"></div>",    // Vue
		"<app-root></app-root>",     // Angular
		"<div id=\"__next\"></div>", // Next.js
		"<div id=\"__nuxt\"></div>", // Nuxt.js
		"<div data-reactroot",       // React
	}
	for _, marker := range spaMarkers {
		if strings.Contains(html, marker) {
			return true
		}
	}

	// Near-empty body with a loading indicator suggests an SPA shell
	var bodyText string
	if content.Doc != nil {
		bodyText = strings.TrimSpace(content.Doc.Find("body").Text())
	}
	if len(bodyText) < 100 {
		jsIndicators := []string{
			"loading",
			"please wait",
			"javascript required",
			"enable javascript",
		}
		lower := strings.ToLower(bodyText)
		for _, indicator := range jsIndicators {
			if strings.Contains(lower, indicator) {
				return true
			}
		}
	}

	// A noscript warning about JavaScript counts too
	if strings.Contains(html, "<noscript>") {
		noscript := extractBetween(html, "<noscript>", "</noscript>")
		warningIndicators := []string{"javascript", "enable", "required", "browser"}
		for _, indicator := range warningIndicators {
			if strings.Contains(noscript, indicator) {
				return true
			}
		}
	}

	return false
}

// extractBetween extracts content between two markers.
func extractBetween(s, start, end string) string {
	startIdx := strings.Index(s, start)
	if startIdx == -1 {
		return ""
	}
	startIdx += len(start)

	endIdx := strings.Index(s[startIdx:], end)
	if endIdx == -1 {
		return ""
	}

	return s[startIdx : startIdx+endIdx]
}

// Close releases all fetcher resources.
func (f *AutoFetcher) Close() error {
	if f.dynamic != nil {
		return f.dynamic.Close()
	}
	return nil
}

// Type returns the fetcher type.
func (f *AutoFetcher) Type() string {
	return "auto"
}
