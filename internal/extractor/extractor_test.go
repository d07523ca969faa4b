package extractor

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// parseHTML parses an HTML snippet into a document.
func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

// parseTestdata parses an HTML file from the testdata directory.
func parseTestdata(t *testing.T, filename string) *goquery.Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("failed to read testdata %s: %v", filename, err)
	}
	return parseHTML(t, string(data))
}

func TestArticles_BlogPage(t *testing.T) {
	doc := parseTestdata(t, "blog.html")

	e := New(Config{})
	got := e.Articles(doc, "https://example.com/blog/")

	want := []Article{
		{Title: "Understanding the scheduler", URL: "https://example.com/post/1"},
		{Title: "Profiling in production", URL: "https://example.com/post/2"},
		{Title: "Mirrored announcement post", URL: "https://mirror.example.org/post/9"},
		{Title: "Whitespace heavy title", URL: "https://example.com/post/3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Articles() = %#v, want %#v", got, want)
	}
}

func TestArticles_EmptyDocument(t *testing.T) {
	doc := parseHTML(t, "<html><body></body></html>")

	e := New(Config{})
	got := e.Articles(doc, "https://example.com/")
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no articles, got %v", got)
	}
}

func TestArticles_NilDocument(t *testing.T) {
	e := New(Config{})
	got := e.Articles(nil, "https://example.com/")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice for nil document, got %v", got)
	}
}

func TestArticles_FirstMatchWins(t *testing.T) {
	doc := parseHTML(t, `
		<h2><a href="/post/only-this-one">The single h2 headline</a></h2>
		<h3><a href="/post/b1">First of many h3 headlines</a></h3>
		<h3><a href="/post/b2">Second of many h3 headlines</a></h3>
		<h3><a href="/post/b3">Third of many h3 headlines</a></h3>`)

	e := New(Config{Rules: []Rule{
		{Name: "h2", Selector: "h2 a"},
		{Name: "h3", Selector: "h3 a"},
	}})
	got := e.Articles(doc, "https://example.com/")

	// The h3 rule would have matched three anchors, but the h2 rule comes
	// first and is non-empty, so only its match is used.
	if len(got) != 1 {
		t.Fatalf("expected 1 article from the first matching rule, got %d: %v", len(got), got)
	}
	if got[0].URL != "https://example.com/post/only-this-one" {
		t.Errorf("unexpected article: %v", got[0])
	}
}

func TestArticles_Idempotent(t *testing.T) {
	doc := parseTestdata(t, "blog.html")
	e := New(Config{})

	first := e.Articles(doc, "https://example.com/blog/")
	second := e.Articles(doc, "https://example.com/blog/")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}

func TestArticles_DedupKeepsFirst(t *testing.T) {
	doc := parseHTML(t, `
		<h2><a href="/post/1">Original phrasing of the title</a></h2>
		<h2><a href="https://example.com/post/1">Different phrasing, same page</a></h2>`)

	e := New(Config{})
	got := e.Articles(doc, "https://example.com/")
	if len(got) != 1 {
		t.Fatalf("expected 1 deduplicated article, got %d: %v", len(got), got)
	}
	if got[0].Title != "Original phrasing of the title" {
		t.Errorf("dedup should keep the first occurrence, got %q", got[0].Title)
	}
}

func TestArticles_RelativeResolution(t *testing.T) {
	doc := parseHTML(t, `<h2><a href="/post/42">The forty-second post</a></h2>`)

	e := New(Config{})
	got := e.Articles(doc, "https://example.com/blog/")
	if len(got) != 1 {
		t.Fatalf("expected 1 article, got %v", got)
	}
	if got[0].URL != "https://example.com/post/42" {
		t.Errorf("expected https://example.com/post/42, got %q", got[0].URL)
	}
}

func TestArticles_SkipsEmptyTextAndMissingHref(t *testing.T) {
	doc := parseHTML(t, `
		<h2><a href="/post/1">   </a></h2>
		<h2><a>No destination at all</a></h2>
		<h2><a href="">Empty destination string</a></h2>
		<h2><a href="#top">Fragment only reference here</a></h2>
		<h2><a href="/post/2">The one that qualifies</a></h2>`)

	e := New(Config{})
	got := e.Articles(doc, "https://example.com/")
	if len(got) != 1 {
		t.Fatalf("expected 1 article, got %d: %v", len(got), got)
	}
	if got[0].URL != "https://example.com/post/2" {
		t.Errorf("unexpected article: %v", got[0])
	}
}

func TestArticles_FallbackMinLength(t *testing.T) {
	doc := parseHTML(t, `
		<a href="/page/a">Hi</a>
		<a href="/page/b">Read the full announcement</a>
		<a href="/page/c">Another sufficiently long link text</a>`)

	// A chain that matches nothing forces the anchor fallback.
	e := New(Config{Rules: []Rule{{Name: "none", Selector: ".does-not-exist a"}}})
	got := e.Articles(doc, "https://example.com/")

	want := []Article{
		{Title: "Read the full announcement", URL: "https://example.com/page/b"},
		{Title: "Another sufficiently long link text", URL: "https://example.com/page/c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback Articles() = %#v, want %#v", got, want)
	}
}

func TestArticles_MalformedBaseURL(t *testing.T) {
	doc := parseHTML(t, `
		<h2><a href="/post/relative">Relative link cannot resolve</a></h2>
		<h2><a href="https://example.com/post/absolute">Absolute link still works</a></h2>`)

	e := New(Config{})
	got := e.Articles(doc, "://not-a-base")
	if len(got) != 1 {
		t.Fatalf("expected only the absolute link, got %v", got)
	}
	if got[0].URL != "https://example.com/post/absolute" {
		t.Errorf("unexpected article: %v", got[0])
	}
}

func TestLoadRules_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "rules:\n  - name: custom\n    selector: \"div.story a\"\n  - selector: \"h2 a\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Selector != "div.story a" || rules[0].Name != "custom" {
		t.Errorf("unexpected first rule: %+v", rules[0])
	}
}

func TestLoadRules_MissingSelector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "rules:\n  - name: broken\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRules(path); err == nil {
		t.Fatal("expected validation error for rule without selector")
	}
}

func TestLoadRules_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("rules: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRules(path); err == nil {
		t.Fatal("expected validation error for empty rule list")
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing rules file")
	}
}
