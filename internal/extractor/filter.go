package extractor

import (
	"net/url"
	"strings"
)

// denyList marks URLs that point at listings, metadata pages or static
// assets rather than content pages. Matched case-insensitively against the
// whole URL.
var denyList = []string{
	"/tag/", "/category/", "/author/", "/feed/",
	".pdf", ".jpg", ".png", ".gif", ".css", ".js",
}

// IsArticleURL reports whether an absolute URL is a plausible content page.
// Only http and https schemes qualify, so javascript:, mailto:, tel: and
// fragment-only references are all rejected. Unparseable URLs are invalid,
// not errors.
func IsArticleURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}

	lower := strings.ToLower(raw)
	for _, deny := range denyList {
		if strings.Contains(lower, deny) {
			return false
		}
	}

	return true
}
