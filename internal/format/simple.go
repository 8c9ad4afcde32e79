package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/domain"
)

const simpleTextWidth = 60

// SimpleFormatter prints one line per reason or record.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatReasons prints "id  title (n variants)".
func (f *SimpleFormatter) FormatReasons(entries []catalog.ReasonEntry, writer io.Writer) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(writer, "%-32s  %s (%s)\n", e.ID, e.Title, plural(len(e.Variants), "variant")); err != nil {
			return err
		}
	}
	return nil
}

// FormatRecords prints "id  created  reason - text".
func (f *SimpleFormatter) FormatRecords(records []domain.Record, writer io.Writer) error {
	for _, r := range records {
		_, err := fmt.Fprintf(writer, "%-4d  %s  %s - %s\n",
			r.ID, r.CreatedAt.Local().Format(timeLayout), r.ReasonTitle, truncate(r.Text, simpleTextWidth))
		if err != nil {
			return err
		}
	}
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
