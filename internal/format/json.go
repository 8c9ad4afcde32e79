package format

import (
	"encoding/json"
	"io"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/domain"
)

// JSONFormatter prints items as an indented JSON array.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) FormatReasons(entries []catalog.ReasonEntry, writer io.Writer) error {
	if entries == nil {
		entries = []catalog.ReasonEntry{}
	}
	return writeJSON(writer, entries)
}

func (f *JSONFormatter) FormatRecords(records []domain.Record, writer io.Writer) error {
	if records == nil {
		records = []domain.Record{}
	}
	return writeJSON(writer, records)
}

func writeJSON(writer io.Writer, v any) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
