package errors

import (
	stderrors "errors"
	"strings"

	"github.com/cristianoliveira/noshow/internal/catalog"
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/export"
	"github.com/cristianoliveira/noshow/internal/form"
)

// Describe returns the operator-facing text for err. Known failures get a hint
// on what to do next; anything else is reported as is.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var missing *form.MissingFieldsError
	switch {
	case stderrors.As(err, &missing):
		labels := make([]string, len(missing.Warnings))
		for i, w := range missing.Warnings {
			labels[i] = w.Label
		}
		return "fill in the required fields: " + strings.Join(labels, ", ")
	case stderrors.Is(err, catalog.ErrReasonNotFound):
		return err.Error() + " (list the reasons with 'noshow reasons')"
	case stderrors.Is(err, catalog.ErrVariantNotFound):
		return err.Error() + " (list the variants with 'noshow show <reason>')"
	case stderrors.Is(err, export.ErrNothingToExport):
		return "nothing to export yet: add a justification first"
	case stderrors.Is(err, domain.ErrRecordNotFound), stderrors.Is(err, domain.ErrInvalidRecordID):
		return err.Error() + " (list the records with 'noshow records')"
	}
	return err.Error()
}
