// Package dedupconfig exposes helpers to read duplicate detection settings from config.
package dedupconfig

import (
	"github.com/cristianoliveira/noshow/internal/config"
	"github.com/cristianoliveira/noshow/internal/dedup"
)

// Load returns duplicate detection options using current configuration values.
func Load() dedup.Options {
	config.Load()
	criteria := dedup.ParseCriteria(config.Get("dedup_criteria", string(dedup.CriteriaReasonText)))
	window := config.GetDuration("dedup_window", 0)
	return dedup.Options{Criteria: criteria, Window: window}
}
