package narrative

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalmer/statgen/internal/bank"
	"github.com/mbalmer/statgen/internal/refdata"
)

func assemblerBank() *bank.Bank {
	return bank.New(bank.Tables{
		Metadata: []bank.ContextDescriptor{
			{
				ID:           "server_tips",
				Name:         "Server Tips",
				ValueMin:     20,
				ValueMax:     150,
				TypicalMean:  85,
				Unit:         "$",
				UnitPosition: bank.UnitPrefix,
				DisplayAs:    bank.DisplayCurrency,
			},
			{
				ID:          "heart_rate",
				Name:        "Heart Rate",
				ValueMin:    55,
				ValueMax:    110,
				TypicalMean: 72,
				Unit:        "bpm",
				UnitPosition: bank.UnitSuffix,
				DisplayAs:   bank.DisplayGeneric,
			},
		},
		Compatibility: []bank.CompatibilityRecord{
			{ContextID: "server_tips", Calculate: true, MissingValue: true},
			{ContextID: "heart_rate", Calculate: true},
		},
		Templates: []bank.NarrativeTemplate{
			{
				ContextID: "server_tips",
				Level:     bank.LevelMinimal,
				Type:      bank.TemplateComplete,
				Template:  "{name} recorded tips over {duration}: {data} {question}",
				UsesName:  true,
			},
			{
				ContextID: "server_tips",
				Level:     bank.LevelStandard,
				Type:      bank.TemplateIntro,
				Template:  "{name} works at a restaurant in {city} and tracked tips over {duration}.",
				UsesName:  true, UsesLocation: true,
			},
			{
				ContextID: "server_tips",
				Level:     bank.LevelStandard,
				Type:      bank.TemplateMotivation,
				Template:  "Knowing the average helps plan a budget.",
			},
			{
				ContextID: "server_tips",
				Level:     bank.LevelRich,
				Type:      bank.TemplateIntro,
				Template:  "{name} has been waiting tables for three years.",
				UsesName:  true,
			},
			{
				ContextID: "server_tips",
				Level:     bank.LevelRich,
				Type:      bank.TemplateBackground,
				Template:  "Last month {pronoun} averaged {previous_amount} per shift.",
				UsesName:  true,
			},
		},
		Stems: []bank.SentenceStem{
			{ContextID: "server_tips", Type: bank.StemQuestion, Variation: "calculate", Text: "What was the mean tip amount?"},
			{ContextID: "server_tips", Type: bank.StemDataIntro, Variation: "all", Text: "The amounts were:"},
		},
		Durations: []bank.DurationLabel{
			{ContextID: "server_tips", Singular: "shift", Plural: "shifts"},
		},
		Presentations: []bank.DataPresentation{
			{ContextID: "server_tips", Format: bank.PresentationList, Label: "Shift"},
		},
	})
}

func newTestAssembler(seed int64) *Assembler {
	rng := rand.New(rand.NewSource(seed))
	return NewAssembler(assemblerBank(), refdata.New(rng), rng)
}

func TestAssemble_IncompatibleVariation(t *testing.T) {
	a := newTestAssembler(5)

	_, err := a.Assemble(Params{
		ContextID: "heart_rate",
		Variation: bank.VariationMissingValue,
		Level:     bank.LevelMinimal,
		Difficulty: 2, Count: 5,
	})
	assert.ErrorIs(t, err, ErrIncompatibleVariation)
}

// An incompatible request must fail before any random draw, so a
// subsequent call sees the same stream as a fresh assembler.
func TestAssemble_IncompatibleDrawsNoRandomness(t *testing.T) {
	a := newTestAssembler(5)
	_, err := a.Assemble(Params{
		ContextID: "heart_rate",
		Variation: bank.VariationCompare,
		Level:     bank.LevelMinimal,
		Difficulty: 2, Count: 5,
	})
	require.ErrorIs(t, err, ErrIncompatibleVariation)

	got, err := a.Assemble(Params{
		ContextID: "server_tips",
		Variation: bank.VariationCalculate,
		Level:     bank.LevelMinimal,
		Difficulty: 2, Count: 5,
	})
	require.NoError(t, err)

	fresh := newTestAssembler(5)
	want, err := fresh.Assemble(Params{
		ContextID: "server_tips",
		Variation: bank.VariationCalculate,
		Level:     bank.LevelMinimal,
		Difficulty: 2, Count: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, want.Dataset, got.Dataset)
}

func TestAssemble_MissingTemplate(t *testing.T) {
	a := newTestAssembler(5)

	// heart_rate supports calculate but has no templates at all.
	_, err := a.Assemble(Params{
		ContextID: "heart_rate",
		Variation: bank.VariationCalculate,
		Level:     bank.LevelMinimal,
		Difficulty: 2, Count: 5,
	})
	assert.ErrorIs(t, err, ErrMissingTemplate)
}

func TestAssemble_Minimal(t *testing.T) {
	a := newTestAssembler(9)

	n, err := a.Assemble(Params{
		ContextID: "server_tips",
		Variation: bank.VariationCalculate,
		Level:     bank.LevelMinimal,
		Difficulty: 2, Count: 5,
	})
	require.NoError(t, err)

	assert.Len(t, n.Dataset, 5)
	assert.Equal(t, bank.LevelMinimal, n.Level)
	assert.NotContains(t, n.FullText, "{", "all placeholders must be resolved")
	assert.Contains(t, n.FullText, "5 shifts")
	assert.Contains(t, n.FullText, "What was the mean tip amount?")
	assert.Contains(t, n.FullText, "$", "currency values appear inline")
}

func TestAssemble_Standard(t *testing.T) {
	a := newTestAssembler(9)

	n, err := a.Assemble(Params{
		ContextID: "server_tips",
		Variation: bank.VariationCalculate,
		Level:     bank.LevelStandard,
		Difficulty: 2, Count: 6,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, n.Intro)
	assert.Equal(t, "Knowing the average helps plan a budget.", n.Motivation)
	assert.True(t, strings.HasPrefix(n.DataPresentation, "The amounts were: "))
	assert.Equal(t, "What was the mean tip amount?", n.QuestionStem)

	paragraphs := strings.Split(n.FullText, "\n\n")
	assert.Len(t, paragraphs, 4)
	assert.NotContains(t, n.FullText, "{")
}

func TestAssemble_Rich(t *testing.T) {
	a := newTestAssembler(13)

	n, err := a.Assemble(Params{
		ContextID: "server_tips",
		Variation: bank.VariationCalculate,
		Level:     bank.LevelRich,
		Difficulty: 3, Count: 4,
		Extras: map[string]string{"previous_amount": "$80.00"},
	})
	require.NoError(t, err)

	assert.Contains(t, n.Background, "$80.00")
	assert.Contains(t, n.DataPresentation, "Shift 1: ")
	assert.Contains(t, n.DataPresentation, "Shift 4: ")
	assert.Len(t, strings.Split(n.DataPresentation, "\n"), 4)
	assert.NotContains(t, n.FullText, "{")
}

func TestAssemble_QuestionStemFallbacks(t *testing.T) {
	// Bank with a compatible context and a complete template but no
	// stems, so the generic per-variation fallback applies.
	b := bank.New(bank.Tables{
		Metadata: []bank.ContextDescriptor{
			{ID: "plain", Name: "Plain", ValueMin: 10, ValueMax: 50, TypicalMean: 30, DisplayAs: bank.DisplayGeneric},
		},
		Compatibility: []bank.CompatibilityRecord{
			{ContextID: "plain", Calculate: true, MissingValue: true, Compare: true, Estimation: true},
		},
		Templates: []bank.NarrativeTemplate{
			{ContextID: "plain", Level: bank.LevelMinimal, Type: bank.TemplateComplete, Template: "{data} {question}"},
		},
	})
	rng := rand.New(rand.NewSource(1))
	a := NewAssembler(b, refdata.New(rng), rng)

	tests := []struct {
		variation bank.Variation
		want      string
	}{
		{bank.VariationCalculate, "Calculate the mean."},
		{bank.VariationMissingValue, "Find the missing value needed."},
		{bank.VariationCompare, "Compare the means."},
		{bank.VariationEstimation, "Answer the question."},
	}
	for _, tt := range tests {
		n, err := a.Assemble(Params{
			ContextID: "plain", Variation: tt.variation,
			Level: bank.LevelMinimal, Difficulty: 1, Count: 4,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, n.QuestionStem)
	}
}

func TestAssemble_DurationFallback(t *testing.T) {
	// No duration labels defined: the count-of-values phrasing is used.
	b := bank.New(bank.Tables{
		Metadata: []bank.ContextDescriptor{
			{ID: "plain", Name: "Plain", ValueMin: 10, ValueMax: 50, TypicalMean: 30, DisplayAs: bank.DisplayGeneric},
		},
		Compatibility: []bank.CompatibilityRecord{
			{ContextID: "plain", Calculate: true},
		},
		Templates: []bank.NarrativeTemplate{
			{ContextID: "plain", Level: bank.LevelMinimal, Type: bank.TemplateComplete, Template: "Over {duration}: {data} {question}"},
		},
	})
	rng := rand.New(rand.NewSource(1))
	a := NewAssembler(b, refdata.New(rng), rng)

	n, err := a.Assemble(Params{
		ContextID: "plain", Variation: bank.VariationCalculate,
		Level: bank.LevelMinimal, Difficulty: 1, Count: 6,
	})
	require.NoError(t, err)
	assert.Contains(t, n.FullText, "Over 6 values:")
}

func TestAssemble_PronounsFollowHonorific(t *testing.T) {
	b := bank.New(bank.Tables{
		Metadata: []bank.ContextDescriptor{
			{ID: "plain", Name: "Plain", ValueMin: 10, ValueMax: 50, TypicalMean: 30, DisplayAs: bank.DisplayGeneric},
		},
		Compatibility: []bank.CompatibilityRecord{
			{ContextID: "plain", Calculate: true},
		},
		Templates: []bank.NarrativeTemplate{
			{
				ContextID: "plain", Level: bank.LevelMinimal, Type: bank.TemplateComplete,
				Template: "{name} said {pronoun} tracked {pronoun_possessive} numbers. {data} {question}",
				UsesName: true,
			},
		},
	})

	// Sample until both honorific classes have been seen.
	rng := rand.New(rand.NewSource(2))
	a := NewAssembler(b, refdata.New(rng), rng)

	sawHe, sawShe := false, false
	for i := 0; i < 40 && !(sawHe && sawShe); i++ {
		n, err := a.Assemble(Params{
			ContextID: "plain", Variation: bank.VariationCalculate,
			Level: bank.LevelMinimal, Difficulty: 1, Count: 3,
		})
		require.NoError(t, err)
		if strings.Contains(n.FullText, " he tracked his ") {
			sawHe = true
		}
		if strings.Contains(n.FullText, " she tracked her ") {
			sawShe = true
		}
	}
	assert.True(t, sawHe, "expected a he/his narrative")
	assert.True(t, sawShe, "expected a she/her narrative")
}
