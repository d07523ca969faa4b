// Package feed discovers and parses RSS/Atom feeds advertised by a page.
package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/gleanhq/gleaner/internal/extractor"
	"github.com/gleanhq/gleaner/internal/logger"
)

// feedTypes lists the link types that advertise a syndication feed.
var feedTypes = map[string]bool{
	"application/rss+xml":  true,
	"application/atom+xml": true,
}

// Discover returns feed URLs advertised via <link rel="alternate"> on the
// page, resolved against baseURL and deduplicated in document order.
func Discover(doc *goquery.Document, baseURL string) []string {
	feeds := make([]string, 0)
	if doc == nil {
		return feeds
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	seen := make(map[string]bool)
	doc.Find(`link[rel="alternate"]`).Each(func(_ int, s *goquery.Selection) {
		typ := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))
		if !feedTypes[typ] {
			return
		}
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		if !ref.IsAbs() {
			if base == nil {
				return
			}
			ref = base.ResolveReference(ref)
		}

		abs := ref.String()
		if seen[abs] {
			return
		}
		seen[abs] = true
		feeds = append(feeds, abs)
	})

	return feeds
}

// Fetch parses the feed at feedURL and maps its entries to article records.
// gofeed detects RSS and Atom automatically. Entries without a title or
// with an implausible link are skipped; duplicate links keep their first
// occurrence.
func Fetch(ctx context.Context, feedURL string) ([]extractor.Article, error) {
	fp := gofeed.NewParser()
	parsed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return Articles(parsed), nil
}

// Articles converts parsed feed items to article records, applying the
// same URL validity and dedup policy as the selector extractor.
func Articles(parsed *gofeed.Feed) []extractor.Article {
	articles := make([]extractor.Article, 0)
	if parsed == nil {
		return articles
	}

	seen := make(map[string]bool)
	for _, item := range parsed.Items {
		title := strings.Join(strings.Fields(item.Title), " ")
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		if !extractor.IsArticleURL(link) {
			continue
		}
		if seen[link] {
			continue
		}
		seen[link] = true
		articles = append(articles, extractor.Article{Title: title, URL: link})
	}

	logger.Debug("feed parsed", "title", parsed.Title, "items", len(parsed.Items), "articles", len(articles))
	return articles
}
