// Package dedup finds justifications that were added more than once during a
// consultation.
package dedup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/token"
)

// Criteria defines how duplicate records are detected.
type Criteria string

const (
	// CriteriaText compares only the final text.
	CriteriaText Criteria = "text"
	// CriteriaReasonText compares the reason and the final text.
	CriteriaReasonText Criteria = "reason_text"
	// CriteriaExact also compares the variant and every field value.
	CriteriaExact Criteria = "exact"

	bucketSeparator = "\x1f" // Unit Separator to avoid conflicts with record text
)

// Options configure duplicate detection.
type Options struct {
	Criteria Criteria
	// Window only groups records added within this span of each other; zero
	// groups regardless of time.
	Window time.Duration
}

// ParseCriteria converts user-provided strings into a Criteria value.
func ParseCriteria(value string) Criteria {
	switch strings.ToLower(value) {
	case string(CriteriaText):
		return CriteriaText
	case string(CriteriaExact):
		return CriteriaExact
	default:
		return CriteriaReasonText
	}
}

// String returns the string value for Criteria.
func (c Criteria) String() string {
	return string(c)
}

// BuildKeys returns a deduplication key for each record based on the provided options.
// The output slice has the same order and length as the input slice.
func BuildKeys(records []domain.Record, opts Options) []string {
	criteria := opts.Criteria
	if criteria == "" {
		criteria = CriteriaReasonText
	}
	keys := make([]string, len(records))
	for i := range records {
		keys[i] = buildBaseKey(records[i], criteria)
	}
	if opts.Window <= 0 {
		return keys
	}
	buckets := assignWindowBuckets(records, keys, opts.Window)
	for i, bucket := range buckets {
		if bucket > 0 {
			keys[i] = appendBucketSuffix(keys[i], bucket)
		}
	}
	return keys
}

// Groups returns every set of two or more records sharing a key, ordered by the
// ID of their first record. Records keep their input order inside a group.
func Groups(records []domain.Record, opts Options) [][]domain.Record {
	keys := BuildKeys(records, opts)
	byKey := make(map[string][]domain.Record, len(keys))
	var order []string
	for i, key := range keys {
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], records[i])
	}

	var groups [][]domain.Record
	for _, key := range order {
		if g := byKey[key]; len(g) > 1 {
			groups = append(groups, g)
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i][0].ID < groups[j][0].ID
	})
	return groups
}

// StripBucketSuffix removes the internal window-based suffix from a dedup key.
func StripBucketSuffix(key string) string {
	if idx := strings.Index(key, bucketSeparator); idx >= 0 {
		return key[:idx]
	}
	return key
}

// BucketFromKey returns the window bucket index encoded in the key, or -1 if none.
func BucketFromKey(key string) int {
	idx := strings.Index(key, bucketSeparator)
	if idx < 0 {
		return -1
	}
	bucket, err := strconv.Atoi(key[idx+len(bucketSeparator):])
	if err != nil {
		return -1
	}
	return bucket
}

// Text is compared folded and with whitespace collapsed, so "Cliente  ausente."
// and "cliente ausente." count as the same justification.
func buildBaseKey(record domain.Record, criteria Criteria) string {
	text := strings.Join(strings.Fields(token.Fold(record.Text)), " ")
	switch criteria {
	case CriteriaText:
		return text
	case CriteriaExact:
		parts := []string{record.ReasonID, record.VariantLabel, text}
		for _, f := range record.Fields {
			parts = append(parts, f.Key+"="+strings.TrimSpace(f.Value))
		}
		return joinParts(parts...)
	case CriteriaReasonText:
		fallthrough
	default:
		return joinParts(record.ReasonID, text)
	}
}

func joinParts(parts ...string) string {
	return strings.Join(parts, "\x00")
}

func appendBucketSuffix(base string, bucket int) string {
	return fmt.Sprintf("%s%s%d", base, bucketSeparator, bucket)
}

// assignWindowBuckets splits each key's records, newest first, into runs whose
// members are at most window apart from the run's newest record.
func assignWindowBuckets(records []domain.Record, keys []string, window time.Duration) []int {
	assignments := make([]int, len(records))
	type entry struct {
		idx       int
		timestamp time.Time
	}
	grouped := make(map[string][]entry)
	for i, key := range keys {
		grouped[key] = append(grouped[key], entry{idx: i, timestamp: records[i].CreatedAt})
	}
	for _, entries := range grouped {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].timestamp.After(entries[j].timestamp)
		})
		bucketIndex := -1
		var bucketLatest time.Time
		for _, entry := range entries {
			if entry.timestamp.IsZero() {
				if bucketIndex == -1 {
					bucketIndex = 0
				}
				assignments[entry.idx] = bucketIndex
				continue
			}
			if bucketIndex == -1 {
				bucketIndex = 0
				bucketLatest = entry.timestamp
				assignments[entry.idx] = bucketIndex
				continue
			}
			if bucketLatest.Sub(entry.timestamp) <= window {
				assignments[entry.idx] = bucketIndex
				continue
			}
			bucketIndex++
			bucketLatest = entry.timestamp
			assignments[entry.idx] = bucketIndex
		}
	}
	return assignments
}
