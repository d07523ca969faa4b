package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gleanhq/gleaner/internal/extractor"
)

// TextWriter writes the plain-text report: a total header followed by one
// numbered entry per record. Article records render as a title line plus an
// indented URL line; plain strings render as numbered lines.
type TextWriter struct {
	w     *bufio.Writer
	items []any
}

// NewTextWriter creates a text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		w:     bufio.NewWriter(w),
		items: make([]any, 0),
	}
}

// Write buffers a single item.
func (w *TextWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// WriteAll buffers multiple items.
func (w *TextWriter) WriteAll(data []any) error {
	w.items = append(w.items, data...)
	return nil
}

// Flush writes the report.
func (w *TextWriter) Flush() error {
	if _, err := fmt.Fprintf(w.w, "Scraped Articles - Total: %d\n", len(w.items)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.w, strings.Repeat("=", 60)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.w); err != nil {
		return err
	}

	for i, item := range w.items {
		var err error
		switch v := item.(type) {
		case extractor.Article:
			_, err = fmt.Fprintf(w.w, "%d. %s\n   URL: %s\n\n", i+1, v.Title, v.URL)
		default:
			_, err = fmt.Fprintf(w.w, "%d. %v\n", i+1, v)
		}
		if err != nil {
			return err
		}
	}

	return w.w.Flush()
}

// Close flushes the writer.
func (w *TextWriter) Close() error {
	return w.Flush()
}
