package narrative

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalmer/statgen/internal/bank"
)

func testBank() *bank.Bank {
	return bank.New(bank.Tables{
		Metadata: []bank.ContextDescriptor{
			{
				ID:          "server_tips",
				Name:        "Server Tips",
				ValueMin:    20,
				ValueMax:    150,
				TypicalMean: 85,
				Unit:        "$",
				UnitPosition: bank.UnitPrefix,
				DisplayAs:   bank.DisplayCurrency,
			},
			{
				ID:          "test_scores",
				Name:        "Test Scores",
				ValueMin:    50,
				ValueMax:    100,
				TypicalMean: 75,
				Unit:        "%",
				UnitPosition: bank.UnitSuffix,
				DisplayAs:   bank.DisplayPercent,
			},
		},
		Compatibility: []bank.CompatibilityRecord{
			{ContextID: "server_tips", Calculate: true, MissingValue: true, Compare: true},
			{ContextID: "test_scores", Calculate: true},
		},
		Templates: []bank.NarrativeTemplate{
			{
				ContextID: "server_tips",
				Level:     bank.LevelMinimal,
				Type:      bank.TemplateComplete,
				Template:  "Tips over {duration}: {data} {question}",
			},
		},
	})
}

func TestGenerate_RejectsBadParameters(t *testing.T) {
	g := NewDatasetGenerator(testBank(), rand.New(rand.NewSource(1)))

	_, err := g.Generate("server_tips", 3, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = g.Generate("server_tips", 0, 5)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = g.Generate("server_tips", 6, 5)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = g.Generate("no_such_context", 3, 5)
	assert.ErrorIs(t, err, bank.ErrUnknownContext)
}

func TestGenerate_Tier3StaysInRange(t *testing.T) {
	g := NewDatasetGenerator(testBank(), rand.New(rand.NewSource(7)))

	for trial := 0; trial < 50; trial++ {
		values, err := g.Generate("server_tips", 3, 8)
		require.NoError(t, err)
		require.Len(t, values, 8)
		for _, v := range values {
			assert.GreaterOrEqual(t, v, 20.0)
			assert.LessOrEqual(t, v, 150.0)
		}
	}
}

func TestGenerate_Tier4HasExactlyOneExtreme(t *testing.T) {
	g := NewDatasetGenerator(testBank(), rand.New(rand.NewSource(11)))

	// Range [20,150], span 130: middle band is [46,124] and the outer
	// 10% bands are [20,33] and [137,150].
	for trial := 0; trial < 50; trial++ {
		values, err := g.Generate("server_tips", 4, 7)
		require.NoError(t, err)
		require.Len(t, values, 7)

		extremes, middles := 0, 0
		for _, v := range values {
			switch {
			case v <= 33 || v >= 137:
				extremes++
			case v >= 46 && v <= 124:
				middles++
			}
		}
		assert.Equal(t, 1, extremes, "values: %v", values)
		assert.Equal(t, 6, middles, "values: %v", values)
	}
}

func TestGenerate_LowTiersClusterAroundTypicalMean(t *testing.T) {
	g := NewDatasetGenerator(testBank(), rand.New(rand.NewSource(3)))

	// Tier 1 spread is 20% of the 130 span, so values land within
	// [59,111] before nice rounding (which moves them by at most 5).
	values, err := g.Generate("server_tips", 1, 20)
	require.NoError(t, err)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 50.0)
		assert.LessOrEqual(t, v, 120.0)
	}
}

func TestNiceRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.678, 0.68},
		{7.34, 7.3},
		{43.2, 45},
		{87.4, 85},
		{447, 450},
		{1234, 1200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NiceRound(tt.in), "NiceRound(%v)", tt.in)
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	a := NewDatasetGenerator(testBank(), rand.New(rand.NewSource(42)))
	b := NewDatasetGenerator(testBank(), rand.New(rand.NewSource(42)))

	va, err := a.Generate("server_tips", 3, 6)
	require.NoError(t, err)
	vb, err := b.Generate("server_tips", 3, 6)
	require.NoError(t, err)
	assert.Equal(t, va, vb)
}
