// Package domain holds the accepted justification rows collected during a session.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// FieldValue is one filled-in form field as it was shown to the operator.
type FieldValue struct {
	Label string `json:"label"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Record is an accepted justification ready to be exported.
type Record struct {
	ID           int64        `json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	ReasonID     string       `json:"reason_id"`
	ReasonTitle  string       `json:"reason_title"`
	VariantLabel string       `json:"variant_label"`
	Action       string       `json:"action"`
	Usage        string       `json:"usage"`
	Text         string       `json:"text"`
	Fields       []FieldValue `json:"fields"`
}

// Validate checks the record before it is persisted.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.ReasonID) == "" {
		return fmt.Errorf("record reason id cannot be empty")
	}
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("record text cannot be empty")
	}
	for i, f := range r.Fields {
		if strings.TrimSpace(f.Label) == "" {
			return fmt.Errorf("record field %d has an empty label", i+1)
		}
	}
	return nil
}

// FieldLabels numbers repeated labels the way the form shows them ("Data", "Data 2").
func (r *Record) FieldLabels() []string {
	labels := make([]string, len(r.Fields))
	seen := make(map[string]int, len(r.Fields))
	for i, f := range r.Fields {
		seen[f.Label]++
		if n := seen[f.Label]; n > 1 {
			labels[i] = fmt.Sprintf("%s %d", f.Label, n)
			continue
		}
		labels[i] = f.Label
	}
	return labels
}
