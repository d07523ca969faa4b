package extractor

import (
	"reflect"
	"testing"
)

func TestText_DocumentOrder(t *testing.T) {
	doc := parseHTML(t, `
		<html><body>
		<h1>  First heading  </h1>
		<p>Body paragraph</p>
		<div><span>Nested</span> trailing</div>
		</body></html>`)

	got := Text(doc)
	want := []string{"First heading", "Body paragraph", "Nested", "trailing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Text() = %v, want %v", got, want)
	}
}

func TestText_SkipsInvisibleElements(t *testing.T) {
	doc := parseHTML(t, `
		<html><body>
		<script>var hidden = true;</script>
		<style>.x { color: red }</style>
		<noscript>Enable JavaScript</noscript>
		<p>Visible</p>
		</body></html>`)

	got := Text(doc)
	want := []string{"Visible"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Text() = %v, want %v", got, want)
	}
}

func TestText_EmptyDocument(t *testing.T) {
	doc := parseHTML(t, "")
	got := Text(doc)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no text, got %v", got)
	}
}

func TestText_NoDedup(t *testing.T) {
	doc := parseHTML(t, `<p>Repeat</p><p>Repeat</p>`)
	got := Text(doc)
	want := []string{"Repeat", "Repeat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Text() = %v, want %v", got, want)
	}
}

func TestTagText_TagOnly(t *testing.T) {
	doc := parseHTML(t, `
		<h2>A heading long enough to keep</h2>
		<h2>Another heading that qualifies</h2>
		<p>Paragraph text is not requested</p>`)

	got := TagText(doc, "h2", "", "", 10)
	want := []string{
		"A heading long enough to keep",
		"Another heading that qualifies",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagText() = %v, want %v", got, want)
	}
}

func TestTagText_ClassFilter(t *testing.T) {
	doc := parseHTML(t, `
		<div class="story">Story text inside the right class</div>
		<div class="ad">Advertising text to be ignored</div>`)

	got := TagText(doc, "div", "story", "", 0)
	want := []string{"Story text inside the right class"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagText() = %v, want %v", got, want)
	}
}

func TestTagText_IDFilter(t *testing.T) {
	doc := parseHTML(t, `
		<section id="main">Main section body text</section>
		<section id="footer">Footer section body text</section>`)

	got := TagText(doc, "section", "", "main", 0)
	want := []string{"Main section body text"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagText() = %v, want %v", got, want)
	}
}

func TestTagText_MinLength(t *testing.T) {
	doc := parseHTML(t, `<h3>Hi</h3><h3>Read the full announcement</h3>`)

	got := TagText(doc, "h3", "", "", 10)
	want := []string{"Read the full announcement"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagText() = %v, want %v", got, want)
	}
}

func TestTagText_EmptyTag(t *testing.T) {
	doc := parseHTML(t, `<p>Something</p>`)
	if got := TagText(doc, "", "", "", 0); len(got) != 0 {
		t.Errorf("expected no results without a tag, got %v", got)
	}
}
