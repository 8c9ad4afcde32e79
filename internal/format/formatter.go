// Package format renders catalog reasons and collected records for CLI output.
package format

import (
	"io"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/domain"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatReasons writes catalog entries in display order.
	FormatReasons(entries []catalog.ReasonEntry, writer io.Writer) error

	// FormatRecords writes collected records.
	FormatRecords(records []domain.Record, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints one line per item.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints aligned columns under a header.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON prints the items as a JSON array.
	FormatterTypeJSON FormatterType = "json"
)

// Types lists the accepted formatter names.
func Types() []string {
	return []string{string(FormatterTypeSimple), string(FormatterTypeTable), string(FormatterTypeJSON)}
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Unknown types fall back to simple output.
		return NewSimpleFormatter()
	}
}
