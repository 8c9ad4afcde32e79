package dedup

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/noshow/internal/domain"
)

func TestBuildKeysCriteria(t *testing.T) {
	records := []domain.Record{
		{ID: 1, ReasonID: "chuva", VariantLabel: "Padrão", Text: "Atendimento  suspenso.", Fields: []domain.FieldValue{{Key: "date", Value: "16/10"}}},
		{ID: 2, ReasonID: "greve", VariantLabel: "Padrão", Text: "ATENDIMENTO suspenso.", Fields: []domain.FieldValue{{Key: "date", Value: "17/10"}}},
	}

	keys := BuildKeys(records, Options{Criteria: CriteriaText})
	require.Equal(t, []string{"atendimento suspenso.", "atendimento suspenso."}, keys)

	keys = BuildKeys(records, Options{Criteria: CriteriaReasonText})
	require.Equal(t, []string{"chuva\x00atendimento suspenso.", "greve\x00atendimento suspenso."}, keys)

	keys = BuildKeys(records, Options{Criteria: CriteriaExact})
	require.Equal(t, "chuva\x00Padrão\x00atendimento suspenso.\x00date=16/10", keys[0])

	require.Equal(t, BuildKeys(records, Options{Criteria: CriteriaReasonText}), BuildKeys(records, Options{}),
		"reason_text is the default criteria")
}

func TestBuildKeysWindow(t *testing.T) {
	base := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	records := []domain.Record{
		{ReasonID: "chuva", Text: "x", CreatedAt: base},
		{ReasonID: "chuva", Text: "x", CreatedAt: base.Add(-5 * time.Minute)},
		{ReasonID: "chuva", Text: "x", CreatedAt: base.Add(-20 * time.Minute)},
		{ReasonID: "chuva", Text: "x"},
	}

	keys := BuildKeys(records, Options{Criteria: CriteriaReasonText, Window: 10 * time.Minute})
	require.Equal(t, keys[0], keys[1])
	require.NotEqual(t, keys[1], keys[2])
	require.Equal(t, 1, BucketFromKey(keys[2]))
	require.Equal(t, -1, BucketFromKey(keys[0]))
	require.Equal(t, keys[2], keys[3], "records without a timestamp join the oldest bucket")
	require.True(t, strings.HasPrefix(keys[2], StripBucketSuffix(keys[2])))
	require.Equal(t, keys[0], StripBucketSuffix(keys[2]))
}

func TestGroups(t *testing.T) {
	records := []domain.Record{
		{ID: 1, ReasonID: "chuva", Text: "Suspenso."},
		{ID: 2, ReasonID: "greve", Text: "Greve."},
		{ID: 3, ReasonID: "greve", Text: "greve."},
		{ID: 4, ReasonID: "chuva", Text: "suspenso."},
		{ID: 5, ReasonID: "placa", Text: "Sem OS."},
	}

	groups := Groups(records, Options{})
	require.Len(t, groups, 2)
	require.Equal(t, []int64{1, 4}, ids(groups[0]))
	require.Equal(t, []int64{2, 3}, ids(groups[1]))

	exact := Groups(records[:3], Options{Criteria: CriteriaExact, Window: time.Hour})
	require.Len(t, exact, 1)
	require.Equal(t, []int64{2, 3}, ids(exact[0]))
	require.Nil(t, Groups(nil, Options{}))
}

func TestParseCriteria(t *testing.T) {
	require.Equal(t, CriteriaText, ParseCriteria("TEXT"))
	require.Equal(t, CriteriaExact, ParseCriteria("exact"))
	require.Equal(t, CriteriaReasonText, ParseCriteria("anything"))
	require.Equal(t, "reason_text", CriteriaReasonText.String())
}

func ids(records []domain.Record) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
