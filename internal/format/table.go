package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
	}
}

// TableColumn represents a column in a table of T.
type TableColumn[T any] struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in terminal cells.
	Width int

	// Alignment is the text alignment (left, right).
	Alignment string

	// Extractor extracts the cell value from an item.
	Extractor func(T) string
}

// TableFormatter prints reasons and records as aligned columns.
type TableFormatter struct {
	config        *TableConfig
	reasonColumns []TableColumn[catalog.ReasonEntry]
	recordColumns []TableColumn[domain.Record]
}

// NewTableFormatter creates a new TableFormatter with default columns.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		config: DefaultTableConfig(),
		reasonColumns: []TableColumn[catalog.ReasonEntry]{
			{Name: "ID", Width: 32, Extractor: func(e catalog.ReasonEntry) string { return e.ID }},
			{Name: "TITLE", Width: 40, Extractor: func(e catalog.ReasonEntry) string { return e.Title }},
			{Name: "FIELDS", Width: 6, Alignment: "right", Extractor: func(e catalog.ReasonEntry) string { return strconv.Itoa(len(e.Fields)) }},
			{Name: "VARIANTS", Width: 8, Alignment: "right", Extractor: func(e catalog.ReasonEntry) string { return strconv.Itoa(len(e.Variants)) }},
		},
		recordColumns: []TableColumn[domain.Record]{
			{Name: "ID", Width: 4, Alignment: "right", Extractor: func(r domain.Record) string { return strconv.FormatInt(r.ID, 10) }},
			{Name: "CREATED", Width: 16, Extractor: func(r domain.Record) string { return r.CreatedAt.Local().Format(timeLayout) }},
			{Name: "REASON", Width: 28, Extractor: func(r domain.Record) string { return r.ReasonTitle }},
			{Name: "VARIANT", Width: 14, Extractor: func(r domain.Record) string { return r.VariantLabel }},
			{Name: "TEXT", Width: 48, Extractor: func(r domain.Record) string { return r.Text }},
		},
	}
}

// WithConfig replaces the table configuration.
func (f *TableFormatter) WithConfig(config *TableConfig) *TableFormatter {
	f.config = config
	return f
}

// FormatReasons formats catalog entries as a table.
func (f *TableFormatter) FormatReasons(entries []catalog.ReasonEntry, writer io.Writer) error {
	return writeTable(writer, f.config, f.reasonColumns, entries)
}

// FormatRecords formats records as a table.
func (f *TableFormatter) FormatRecords(records []domain.Record, writer io.Writer) error {
	return writeTable(writer, f.config, f.recordColumns, records)
}

func writeTable[T any](writer io.Writer, config *TableConfig, columns []TableColumn[T], items []T) error {
	if len(items) == 0 {
		return nil
	}

	if config.ShowHeaders {
		headers := make([]string, len(columns))
		separators := make([]string, len(columns))
		for i, col := range columns {
			headers[i] = formatCell(col.Name, col.Width, "left")
			separators[i] = strings.Repeat("-", col.Width)
		}
		if err := writeColored(writer, config.HeaderColor, strings.Join(headers, "  ")); err != nil {
			return err
		}
		if err := writeColored(writer, config.HeaderColor, strings.Join(separators, "  ")); err != nil {
			return err
		}
	}

	cells := make([]string, len(columns))
	for _, item := range items {
		for i, col := range columns {
			cells[i] = formatCell(singleLine(col.Extractor(item)), col.Width, col.Alignment)
		}
		if _, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func writeColored(writer io.Writer, color, line string) error {
	if color == "" {
		_, err := fmt.Fprintln(writer, line)
		return err
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n", color, line, colors.Reset)
	return err
}

// formatCell pads or truncates s to width terminal cells.
func formatCell(s string, width int, alignment string) string {
	s = truncate(s, width)
	if alignment == "right" {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// truncate shortens s to width cells, ending in "..." when cut.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width < 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
