package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveKeysSuffixRepeatedFields(t *testing.T) {
	entry := ReasonEntry{
		Fields: []FieldDefinition{
			{Key: "date", Label: "Data"},
			{Key: "hour", Label: "Hora"},
			{Key: "specialist", Label: "Especialista"},
			{Key: "date", Label: "Data"},
			{Key: "hour", Label: "Hora"},
			{Key: "date", Label: "Data"},
		},
	}

	wantKeys := []string{"date", "hour", "specialist", "date_2", "hour_2", "date_3"}
	if diff := cmp.Diff(wantKeys, entry.EffectiveKeys()); diff != "" {
		t.Fatalf("EffectiveKeys() mismatch (-want +got):\n%s", diff)
	}

	wantLabels := []string{"Data", "Hora", "Especialista", "Data 2", "Hora 2", "Data 3"}
	if diff := cmp.Diff(wantLabels, entry.EffectiveLabels()); diff != "" {
		t.Fatalf("EffectiveLabels() mismatch (-want +got):\n%s", diff)
	}
}

func TestEffectiveKeysNeverCollideWithDeclaredSuffixes(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantKeys   []string
		wantLabels []string
	}{
		{
			name:       "declared suffix before repeat",
			keys:       []string{"date", "date_2", "date"},
			wantKeys:   []string{"date", "date_2", "date_3"},
			wantLabels: []string{"date", "date_2", "date 2"},
		},
		{
			name:       "declared suffix after repeat",
			keys:       []string{"date", "date", "date_2"},
			wantKeys:   []string{"date", "date_2", "date_2_2"},
			wantLabels: []string{"date", "date 2", "date_2"},
		},
		{
			name:       "many repeats around declared suffixes",
			keys:       []string{"date", "date_3", "date", "date", "date_2"},
			wantKeys:   []string{"date", "date_3", "date_2", "date_4", "date_2_2"},
			wantLabels: []string{"date", "date_3", "date 2", "date 3", "date_2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ReasonEntry{}
			for _, k := range tt.keys {
				entry.Fields = append(entry.Fields, FieldDefinition{Key: k, Label: k})
			}
			if diff := cmp.Diff(tt.wantKeys, entry.EffectiveKeys()); diff != "" {
				t.Fatalf("EffectiveKeys() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantLabels, entry.EffectiveLabels()); diff != "" {
				t.Fatalf("EffectiveLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEffectiveKeysNoFields(t *testing.T) {
	assert.Empty(t, ReasonEntry{}.EffectiveKeys())
}

func TestVariantLookup(t *testing.T) {
	entry := ReasonEntry{
		ID: "r",
		Variants: []TemplateVariant{
			{ID: "com_os", Template: "a"},
			{ID: "sem_os", Template: "b"},
		},
	}

	v, err := entry.Variant("")
	require.NoError(t, err)
	assert.Equal(t, "com_os", v.ID)

	v, err = entry.Variant("sem_os")
	require.NoError(t, err)
	assert.Equal(t, "b", v.Template)

	_, err = entry.Variant("other")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVariantNotFound))

	_, err = ReasonEntry{ID: "empty"}.Variant("")
	assert.True(t, errors.Is(err, ErrVariantNotFound))
}

func TestRequiresKey(t *testing.T) {
	v := TemplateVariant{ExtraRequired: []string{"work_order_number"}}

	assert.True(t, v.RequiresKey("work_order_number"))
	assert.False(t, v.RequiresKey("name"))
}

func TestNewValidatesEntries(t *testing.T) {
	valid := ReasonEntry{ID: "a", Title: "A", Variants: []TemplateVariant{{ID: "padrao"}}}

	tests := []struct {
		name    string
		entries []ReasonEntry
		wantErr string
	}{
		{name: "empty id", entries: []ReasonEntry{{Title: "x", Variants: valid.Variants}}, wantErr: "empty id"},
		{name: "empty title", entries: []ReasonEntry{{ID: "x", Variants: valid.Variants}}, wantErr: "empty title"},
		{name: "no variants", entries: []ReasonEntry{{ID: "x", Title: "X"}}, wantErr: "no template variants"},
		{name: "duplicate id", entries: []ReasonEntry{valid, valid}, wantErr: "duplicate id a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	c, err := New([]ReasonEntry{valid})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestCatalogGet(t *testing.T) {
	c, err := New([]ReasonEntry{
		{ID: "a", Title: "Primeiro", Variants: []TemplateVariant{{ID: "padrao"}}},
		{ID: "b", Title: "Segundo", Variants: []TemplateVariant{{ID: "padrao"}}},
	})
	require.NoError(t, err)

	e, err := c.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "Segundo", e.Title)

	e, err = c.Get("Primeiro")
	require.NoError(t, err)
	assert.Equal(t, "a", e.ID)

	_, err = c.Get("zzz")
	assert.True(t, errors.Is(err, ErrReasonNotFound))
}

func TestEntriesReturnsCopy(t *testing.T) {
	c, err := New([]ReasonEntry{{ID: "a", Title: "A", Variants: []TemplateVariant{{ID: "padrao"}}}})
	require.NoError(t, err)

	entries := c.Entries()
	entries[0].Title = "changed"

	e, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "A", e.Title)
}
