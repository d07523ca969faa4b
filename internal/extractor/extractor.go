// Package extractor turns parsed pages into article records using an
// ordered selector fallback chain.
package extractor

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/gleanhq/gleaner/internal/logger"
)

// DefaultMinTitleLen is the minimum anchor text length, in runes, for the
// generic anchor fallback. Anchors at or below this length are treated as
// navigation chrome rather than article titles.
const DefaultMinTitleLen = 10

// Article is a validated, de-duplicated title and absolute URL pair.
type Article struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Config controls extraction behavior.
type Config struct {
	Rules       []Rule // Ordered fallback chain; DefaultRules() when empty
	MinTitleLen int    // Fallback-mode minimum text length; DefaultMinTitleLen when 0
}

// Extractor derives article records from parsed documents. It holds only
// static configuration and is safe to reuse across pages.
type Extractor struct {
	rules       []Rule
	minTitleLen int
}

// New creates an extractor.
func New(cfg Config) *Extractor {
	if len(cfg.Rules) == 0 {
		cfg.Rules = DefaultRules()
	}
	if cfg.MinTitleLen == 0 {
		cfg.MinTitleLen = DefaultMinTitleLen
	}
	return &Extractor{
		rules:       cfg.Rules,
		minTitleLen: cfg.MinTitleLen,
	}
}

// Articles extracts title/link pairs from the document. The rule chain is
// evaluated in order and the first rule with at least one match supplies
// all candidates; if no rule matches, every anchor with substantial text is
// considered. Candidates with empty text or no destination are skipped,
// hrefs are resolved against baseURL, implausible URLs are silently
// dropped, and duplicates (by absolute URL) keep their first occurrence.
//
// The result is never nil and an empty document is not an error.
func (e *Extractor) Articles(doc *goquery.Document, baseURL string) []Article {
	articles := make([]Article, 0)
	if doc == nil {
		return articles
	}

	sel := e.match(doc)

	base, err := url.Parse(baseURL)
	if err != nil {
		// Relative links cannot resolve without a base; absolute ones
		// still qualify.
		base = nil
	}

	seen := make(map[string]bool)
	sel.Each(func(_ int, s *goquery.Selection) {
		title := normalizeSpace(s.Text())
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if title == "" || href == "" {
			return
		}
		if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}

		abs, ok := resolve(base, href)
		if !ok || !IsArticleURL(abs) {
			return
		}

		if seen[abs] {
			return
		}
		seen[abs] = true

		articles = append(articles, Article{Title: title, URL: abs})
	})

	return articles
}

// match returns the candidate set from the first rule that matches, or the
// generic anchor fallback when the whole chain comes up empty.
func (e *Extractor) match(doc *goquery.Document) *goquery.Selection {
	for _, rule := range e.rules {
		sel := doc.Find(rule.Selector)
		if sel.Length() > 0 {
			logger.Debug("selector rule matched",
				"rule", rule.Name,
				"selector", rule.Selector,
				"matches", sel.Length())
			return sel
		}
	}

	sel := doc.Find("a[href]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return utf8.RuneCountInString(normalizeSpace(s.Text())) > e.minTitleLen
	})
	logger.Debug("no rule matched, using anchor fallback", "matches", sel.Length())
	return sel
}

// resolve turns an href into an absolute URL string, dropping any fragment.
func resolve(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if !ref.IsAbs() {
		if base == nil {
			return "", false
		}
		ref = base.ResolveReference(ref)
	}
	ref.Fragment = ""
	return ref.String(), true
}

// normalizeSpace trims and collapses runs of whitespace to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
