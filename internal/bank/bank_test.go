package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() Tables {
	return Tables{
		Metadata: []ContextDescriptor{
			{ID: "tips", Name: "Tips", ValueMin: 20, ValueMax: 150, TypicalMean: 85,
				Unit: "$", UnitPosition: UnitPrefix, DisplayAs: DisplayCurrency},
			{ID: "scores", Name: "Scores", ValueMin: 50, ValueMax: 100, TypicalMean: 75,
				Unit: "%", UnitPosition: UnitSuffix, DisplayAs: DisplayPercent},
		},
		Compatibility: []CompatibilityRecord{
			{ContextID: "tips", Calculate: true, MissingValue: true, Compare: true},
			{ContextID: "scores", Calculate: true, MissingValue: false},
		},
		Templates: []NarrativeTemplate{
			{ContextID: "tips", Level: LevelMinimal, Type: TemplateComplete, Template: "T1 {data} {question}"},
			{ContextID: "tips", Level: LevelMinimal, Type: TemplateComplete, Template: "T2 {data} {question}"},
			{ContextID: "tips", Level: LevelStandard, Type: TemplateIntro, Template: "intro"},
		},
		Stems: []SentenceStem{
			{ContextID: "tips", Type: StemQuestion, Variation: "calculate", Text: "Calculate the mean."},
			{ContextID: "tips", Type: StemDataIntro, Variation: "", Text: "Values:"},
		},
		Durations: []DurationLabel{
			{ContextID: "tips", Singular: "shift", Plural: "shifts"},
		},
	}
}

func TestMetadataFor(t *testing.T) {
	b := New(testTables())

	m, err := b.MetadataFor("tips")
	require.NoError(t, err)
	assert.Equal(t, "Tips", m.Name)
	assert.Equal(t, DisplayCurrency, m.DisplayAs)
}

func TestMetadataFor_Unknown(t *testing.T) {
	b := New(testTables())

	_, err := b.MetadataFor("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownContext))
}

func TestIsCompatible(t *testing.T) {
	b := New(testTables())

	tests := []struct {
		name      string
		contextID string
		variation Variation
		want      bool
	}{
		{"flag true", "tips", VariationCalculate, true},
		{"flag false", "scores", VariationMissingValue, false},
		{"flag unset", "tips", VariationEstimation, false},
		{"absent record fails closed", "nope", VariationCalculate, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsCompatible(tt.contextID, tt.variation))
		})
	}
}

func TestCompatibleContexts(t *testing.T) {
	b := New(testTables())

	assert.Equal(t, []string{"scores", "tips"}, b.CompatibleContexts(VariationCalculate))
	assert.Equal(t, []string{"tips"}, b.CompatibleContexts(VariationMissingValue))
	assert.Empty(t, b.CompatibleContexts(VariationEstimation))
}

func TestTemplatesFor(t *testing.T) {
	b := New(testTables())

	assert.Len(t, b.TemplatesFor("tips", LevelMinimal), 2)
	assert.Len(t, b.TemplatesFor("tips", LevelStandard), 1)
	assert.Empty(t, b.TemplatesFor("tips", LevelRich))
	assert.Empty(t, b.TemplatesFor("nope", LevelMinimal))
}

func TestStemsFor_EmptyVariationBecomesAll(t *testing.T) {
	b := New(testTables())

	stems := b.StemsFor("tips", StemDataIntro, StemAnyVariation)
	require.Len(t, stems, 1)
	assert.Equal(t, "Values:", stems[0].Text)
}

func TestDurationsFor(t *testing.T) {
	b := New(testTables())

	d := b.DurationsFor("tips")
	require.Len(t, d, 1)
	assert.Equal(t, "shifts", d[0].Plural)
	assert.Empty(t, b.DurationsFor("scores"))
}

func TestSeed_Integrity(t *testing.T) {
	tables := Seed()
	b := New(tables)

	// Every context referenced anywhere must have exactly one metadata
	// and one compatibility record.
	for _, m := range tables.Metadata {
		_, ok := b.Compatibility(m.ID)
		assert.True(t, ok, "context %s missing compatibility record", m.ID)
	}
	for _, tmpl := range tables.Templates {
		_, err := b.MetadataFor(tmpl.ContextID)
		assert.NoError(t, err, "template references unknown context %s", tmpl.ContextID)
	}
	for _, s := range tables.Stems {
		_, err := b.MetadataFor(s.ContextID)
		assert.NoError(t, err, "stem references unknown context %s", s.ContextID)
	}

	// concert_attendance cannot be driven toward a target value.
	assert.False(t, b.IsCompatible("concert_attendance", VariationMissingValue))
	assert.True(t, b.IsCompatible("concert_attendance", VariationCalculate))

	// Every seeded context supports at least calculate and has a
	// minimal-level complete template.
	for _, m := range tables.Metadata {
		assert.True(t, b.IsCompatible(m.ID, VariationCalculate), "context %s", m.ID)
		found := false
		for _, tmpl := range b.TemplatesFor(m.ID, LevelMinimal) {
			if tmpl.Type == TemplateComplete {
				found = true
			}
		}
		assert.True(t, found, "context %s has no minimal complete template", m.ID)
	}
}
