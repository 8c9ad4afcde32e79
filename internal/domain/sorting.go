package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SortByField specifies which field to sort records by.
type SortByField string

const (
	SortByIDField      SortByField = "id"
	SortByCreatedField SortByField = "created"
	SortByReasonField  SortByField = "reason"
	SortByVariantField SortByField = "variant"
	SortByTextField    SortByField = "text"
)

// SortFields lists the accepted sort fields.
func SortFields() []string {
	return []string{
		SortByIDField.String(), SortByCreatedField.String(), SortByReasonField.String(),
		SortByVariantField.String(), SortByTextField.String(),
	}
}

// IsValid checks if the sort by field is valid.
func (s SortByField) IsValid() bool {
	switch s {
	case SortByIDField, SortByCreatedField, SortByReasonField, SortByVariantField, SortByTextField:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort by field.
func (s SortByField) String() string {
	return string(s)
}

// SortOrder specifies the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// IsValid checks if the sort order is valid.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortOrderAsc, SortOrderDesc:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort order.
func (s SortOrder) String() string {
	return string(s)
}

// SortOptions holds sorting options for records.
type SortOptions struct {
	Field SortByField
	Order SortOrder
}

// DefaultSortOptions returns the default sort options: insertion order.
func DefaultSortOptions() SortOptions {
	return SortOptions{Field: SortByIDField, Order: SortOrderAsc}
}

// SortRecords sorts records based on the given options.
// Returns a new sorted slice without modifying the original. Ties keep their
// insertion order.
func SortRecords(records []Record, opts SortOptions) []Record {
	if len(records) == 0 {
		return records
	}

	opts = normalizeSortOptions(opts)

	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareByField(sorted[i], sorted[j], opts.Field)
		if opts.Order == SortOrderDesc {
			return c > 0
		}
		return c < 0
	})

	return sorted
}

// normalizeSortOptions normalizes sort options by setting defaults.
func normalizeSortOptions(opts SortOptions) SortOptions {
	def := DefaultSortOptions()
	if !opts.Field.IsValid() {
		opts.Field = def.Field
	}
	if !opts.Order.IsValid() {
		opts.Order = def.Order
	}
	return opts
}

// compareByField returns -1, 0 or 1. Text fields compare case-insensitively.
func compareByField(i, j Record, field SortByField) int {
	switch field {
	case SortByCreatedField:
		return i.CreatedAt.Compare(j.CreatedAt)
	case SortByReasonField:
		return strings.Compare(strings.ToLower(i.ReasonTitle), strings.ToLower(j.ReasonTitle))
	case SortByVariantField:
		return strings.Compare(strings.ToLower(i.VariantLabel), strings.ToLower(j.VariantLabel))
	case SortByTextField:
		return strings.Compare(strings.ToLower(i.Text), strings.ToLower(j.Text))
	default:
		switch {
		case i.ID < j.ID:
			return -1
		case i.ID > j.ID:
			return 1
		}
		return 0
	}
}

// ParseSortByField parses a string into a SortByField.
func ParseSortByField(field string) (SortByField, error) {
	f := SortByField(strings.ToLower(strings.TrimSpace(field)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid sort field: %s", field)
	}
	return f, nil
}

// ParseSortOrder parses a string into a SortOrder.
func ParseSortOrder(order string) (SortOrder, error) {
	o := SortOrder(strings.ToLower(strings.TrimSpace(order)))
	if !o.IsValid() {
		return "", fmt.Errorf("invalid sort order: %s", order)
	}
	return o, nil
}
