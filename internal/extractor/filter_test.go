package extractor

import "testing"

func TestIsArticleURL_Accepts(t *testing.T) {
	urls := []string{
		"https://example.com/post/42",
		"http://example.com/blog/hello-world",
		"HTTPS://EXAMPLE.COM/POST/UPPER",
		"https://example.com/2024/01/some-article",
	}
	for _, u := range urls {
		if !IsArticleURL(u) {
			t.Errorf("IsArticleURL(%q) = false, want true", u)
		}
	}
}

func TestIsArticleURL_RejectsSchemes(t *testing.T) {
	urls := []string{
		"javascript:void(0)",
		"mailto:editor@example.com",
		"tel:+15551234567",
		"ftp://example.com/file",
		"#section",
		"",
	}
	for _, u := range urls {
		if IsArticleURL(u) {
			t.Errorf("IsArticleURL(%q) = true, want false", u)
		}
	}
}

func TestIsArticleURL_RejectsDenyList(t *testing.T) {
	urls := []string{
		"https://example.com/tag/golang",
		"https://example.com/category/news",
		"https://example.com/author/jane",
		"https://example.com/feed/",
		"https://example.com/img.png",
		"https://example.com/paper.pdf",
		"https://example.com/photo.jpg",
		"https://example.com/anim.gif",
		"https://example.com/styles.css",
		"https://example.com/bundle.js",
		"https://example.com/TAG/golang", // deny list is case-insensitive
	}
	for _, u := range urls {
		if IsArticleURL(u) {
			t.Errorf("IsArticleURL(%q) = true, want false", u)
		}
	}
}

func TestIsArticleURL_Unparseable(t *testing.T) {
	if IsArticleURL("https://exa mple.com/%zz") {
		t.Error("unparseable URL should be invalid, not an error")
	}
}
