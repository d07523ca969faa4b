package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// nonVisible lists elements whose text content never renders.
var nonVisible = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// Text collects every non-empty, whitespace-trimmed visible text node in
// document order. No deduplication, no URL handling.
func Text(doc *goquery.Document) []string {
	out := make([]string, 0)
	if doc == nil || len(doc.Nodes) == 0 {
		return out
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				out = append(out, t)
			}
			return
		}
		if n.Type == html.ElementNode && nonVisible[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	return out
}

// TagText collects the trimmed text of every element matching the given
// tag name, optionally narrowed by class and/or id. Texts at or below
// minLen runes are skipped (0 keeps everything non-empty).
func TagText(doc *goquery.Document, tag, class, id string, minLen int) []string {
	out := make([]string, 0)
	if doc == nil || tag == "" {
		return out
	}

	selector := tag
	if class != "" {
		selector += "." + class
	}
	if id != "" {
		selector += "#" + id
	}

	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		text := normalizeSpace(s.Text())
		if text == "" || utf8.RuneCountInString(text) <= minLen {
			return
		}
		out = append(out, text)
	})

	return out
}
