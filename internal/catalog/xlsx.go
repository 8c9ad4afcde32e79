package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cristianoliveira/noshow/internal/token"
)

// ErrMissingColumn indicates that a spreadsheet catalog lacks an expected header.
var ErrMissingColumn = errors.New("missing expected column")

// The spreadsheet catalog holds three tables side by side on the first sheet,
// separated by one empty column, with headers on row 2 (row 1 is a title).
const xlsxHeaderRow = 2

type xlsxColumn struct {
	index  int // zero-based column index
	header string
}

var (
	colReasonID  = xlsxColumn{0, "ID"}
	colTitle     = xlsxColumn{1, "Motivo"}
	colUsage     = xlsxColumn{2, "Quando usar"}
	colTemplate  = xlsxColumn{3, "Máscara"}
	colActionID  = xlsxColumn{5, "ID"}
	colAction    = xlsxColumn{6, "Ação sistêmica"}
	colExampleID = xlsxColumn{8, "ID"}
	colExample   = xlsxColumn{9, "Exemplo"}
	xlsxColumns  = []xlsxColumn{colReasonID, colTitle, colUsage, colTemplate, colActionID, colAction, colExampleID, colExample}
)

// LoadXLSX reads a spreadsheet catalog from path.
func LoadXLSX(path string, n *token.Normalizer) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open spreadsheet %s: %w", path, err)
	}
	defer f.Close()
	return readXLSX(f, n)
}

// ReadXLSX reads a spreadsheet catalog from r.
func ReadXLSX(r io.Reader, n *token.Normalizer) (*Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: open spreadsheet: %w", err)
	}
	defer f.Close()
	return readXLSX(f, n)
}

func readXLSX(f *excelize.File, n *token.Normalizer) (*Catalog, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog: %w: spreadsheet has no sheets", ErrInvalidCatalog)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("catalog: read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < xlsxHeaderRow {
		return nil, fmt.Errorf("catalog: %w: header row %d not found", ErrMissingColumn, xlsxHeaderRow)
	}

	header := rows[xlsxHeaderRow-1]
	for _, col := range xlsxColumns {
		got := cell(header, col.index)
		if token.Slug(got) != token.Slug(col.header) {
			name, _ := excelize.ColumnNumberToName(col.index + 1)
			return nil, fmt.Errorf("catalog: %w: column %s%d should be %q, found %q", ErrMissingColumn, name, xlsxHeaderRow, col.header, got)
		}
	}

	var entries []ReasonEntry
	actions := make(map[string]string)
	examples := make(map[string][]string)
	for _, row := range rows[xlsxHeaderRow:] {
		if id := cell(row, colReasonID.index); id != "" {
			template := cell(row, colTemplate.index)
			entries = append(entries, ReasonEntry{
				ID:       id,
				Title:    cell(row, colTitle.index),
				Usage:    cell(row, colUsage.index),
				Fields:   DeriveFields(n, template),
				Variants: standard(template),
			})
		}
		if id := cell(row, colActionID.index); id != "" {
			actions[id] = cell(row, colAction.index)
		}
		if id := cell(row, colExampleID.index); id != "" {
			if ex := cell(row, colExample.index); ex != "" {
				examples[id] = append(examples[id], ex)
			}
		}
	}

	for i := range entries {
		entries[i].Action = actions[entries[i].ID]
		entries[i].Examples = examples[entries[i].ID]
	}
	return New(entries)
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
