// Package export writes collected records as a spreadsheet.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/domain"
)

// ErrNothingToExport is returned when there are no records to write.
var ErrNothingToExport = errors.New("nothing to export yet")

// Format selects the output file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// SheetName is the worksheet that holds the rows in XLSX exports.
const SheetName = "No-show"

// Fixed leading columns; field labels follow.
const (
	ColumnReason  = "Motivo"
	ColumnVariant = "Versão máscara"
	ColumnAction  = "Ação sistêmica"
	ColumnUsage   = "Quando usar"
	ColumnText    = "Máscara"
)

var fixedColumns = []string{ColumnReason, ColumnVariant, ColumnAction, ColumnUsage, ColumnText}

const utf8BOM = "\ufeff"

// ParseFormat accepts "xlsx" or "csv" in any case; empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid export format %q: must be one of: csv, xlsx", s)
	}
}

// FileName returns no_show_YYYYMMDD_HHMMSS.<ext> for the given time.
func FileName(f Format, now time.Time) string {
	return fmt.Sprintf("no_show_%s.%s", now.Format("20060102_150405"), f)
}

// Table flattens records into a header row and one row per record. Field
// columns appear in first-seen order across records; a record without a
// given field leaves its cell blank. A field label that matches a fixed
// column gets a " (campo)" suffix.
func Table(records []domain.Record) ([]string, [][]string) {
	headers := append([]string(nil), fixedColumns...)
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	columns := make([][]string, len(records))
	for i := range records {
		labels := records[i].FieldLabels()
		for j, label := range labels {
			if isFixed(label) {
				label += " (campo)"
				labels[j] = label
			}
			if _, ok := index[label]; !ok {
				index[label] = len(headers)
				headers = append(headers, label)
			}
		}
		columns[i] = labels
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(headers))
		copy(row, []string{r.ReasonTitle, r.VariantLabel, r.Action, r.Usage, r.Text})
		for j, label := range columns[i] {
			row[index[label]] = r.Fields[j].Value
		}
		rows[i] = row
	}
	return headers, rows
}

func isFixed(label string) bool {
	for _, c := range fixedColumns {
		if c == label {
			return true
		}
	}
	return false
}

// Write renders records to w in the given format.
func Write(w io.Writer, f Format, records []domain.Record) error {
	if len(records) == 0 {
		return ErrNothingToExport
	}
	headers, rows := Table(records)
	switch f {
	case FormatXLSX:
		return writeXLSX(w, headers, rows)
	case FormatCSV:
		return writeCSV(w, headers, rows)
	default:
		return fmt.Errorf("export: unsupported format %q", f)
	}
}

func writeXLSX(w io.Writer, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("export: name sheet: %w", err)
	}
	if err := setRow(f, 1, headers); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("export: header range: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, style); err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "D", 28); err != nil {
		return fmt.Errorf("export: column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "E", "E", 80); err != nil {
		return fmt.Errorf("export: column width: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("export: freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write xlsx: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, n int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("export: row %d: %w", n, err)
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
		return fmt.Errorf("export: row %d: %w", n, err)
	}
	return nil
}

// writeCSV writes UTF-8 with a byte order mark so spreadsheet tools detect the encoding.
func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

// ToFile writes records into dir under FileName and returns the written path
// and the format actually used. An XLSX failure falls back to CSV.
func ToFile(dir string, f Format, records []domain.Record, now time.Time) (string, Format, error) {
	if len(records) == 0 {
		return "", "", ErrNothingToExport
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("export: create directory: %w", err)
	}

	path, err := writeFile(dir, f, records, now)
	if err == nil {
		return path, f, nil
	}
	if f != FormatXLSX {
		return "", "", err
	}

	colors.Warning(fmt.Sprintf("xlsx export failed, writing csv instead: %v", err))
	path, err = writeFile(dir, FormatCSV, records, now)
	if err != nil {
		return "", "", err
	}
	return path, FormatCSV, nil
}

func writeFile(dir string, f Format, records []domain.Record, now time.Time) (string, error) {
	path := filepath.Join(dir, FileName(f, now))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create file: %w", err)
	}
	if err := Write(out, f, records); err != nil {
		out.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("export: close file: %w", err)
	}
	return path, nil
}
