package output

import (
	"encoding/csv"
	"io"

	"github.com/gleanhq/gleaner/internal/extractor"
)

// CSVWriter writes records as UTF-8 CSV with a header row. Article records
// produce a "URL,Content" table; plain strings produce a single "Content"
// column.
type CSVWriter struct {
	w     *csv.Writer
	items []any
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{
		w:     csv.NewWriter(w),
		items: make([]any, 0),
	}
}

// Write buffers a single item.
func (w *CSVWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// WriteAll buffers multiple items.
func (w *CSVWriter) WriteAll(data []any) error {
	w.items = append(w.items, data...)
	return nil
}

// Flush writes the header and all buffered rows.
func (w *CSVWriter) Flush() error {
	header := []string{"Content"}
	for _, item := range w.items {
		if _, ok := item.(extractor.Article); ok {
			header = []string{"URL", "Content"}
			break
		}
	}
	if err := w.w.Write(header); err != nil {
		return err
	}

	for _, item := range w.items {
		var row []string
		switch v := item.(type) {
		case extractor.Article:
			row = []string{v.URL, v.Title}
		case string:
			row = []string{v}
		default:
			continue
		}
		if err := w.w.Write(row); err != nil {
			return err
		}
	}

	w.w.Flush()
	return w.w.Error()
}

// Close flushes the writer.
func (w *CSVWriter) Close() error {
	return w.Flush()
}
