package generators

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/mbalmer/statgen/internal/question"
	"github.com/mbalmer/statgen/internal/refdata"
	"github.com/mbalmer/statgen/internal/stats"
)

// percentileContext is one scenario for percentile rank calculations.
type percentileContext struct {
	id        string
	template  string
	uses      []string
	valueMin  int
	valueMax  int
	sizeMin   int
	sizeMax   int
	unit      string // "", "%", "k", "g"
	valueName string
}

var percentileContexts = []percentileContext{
	{
		id:        "credit_scores",
		template:  "Financial institutions use credit scores to decide whether people qualify for loans. Below is a list of credit scores for people applying for a bank loan.",
		valueMin:  600, valueMax: 850,
		sizeMin: 20, sizeMax: 20,
		valueName: "score",
	},
	{
		id:        "test_scores",
		template:  "{name} teaches a class of {n} students. The test scores are shown below.",
		uses:      []string{"name"},
		valueMin:  50, valueMax: 100,
		sizeMin: 15, sizeMax: 25,
		unit:      "%",
		valueName: "score",
	},
	{
		id:        "property_values",
		template:  "A real estate agent compiled home prices in {city}. The prices (in thousands of dollars) are shown below.",
		uses:      []string{"city"},
		valueMin:  200, valueMax: 800,
		sizeMin: 20, sizeMax: 20,
		unit:      "k",
		valueName: "price",
	},
	{
		id:        "produce_weights",
		template:  "{name} is a farmer who grows produce. The weights (in grams) of items from new plants are shown below.",
		uses:      []string{"name"},
		valueMin:  90, valueMax: 180,
		sizeMin: 12, sizeMax: 18,
		unit:      "g",
		valueName: "weight",
	},
}

// PercentileKind selects between the numeric calculation and the
// written justification question.
type PercentileKind string

const (
	PercentileCalculation PercentileKind = "calculation"
	PercentileConceptual  PercentileKind = "conceptual"
)

// PercentileRankGenerator builds percentile rank questions: either a
// strictly-below calculation over a sorted dataset, or a conceptual
// question about what a percentile rank does and does not tell you.
type PercentileRankGenerator struct {
	ref *refdata.Provider
	rng *rand.Rand
}

// NewPercentileRankGenerator returns a generator drawing from rng.
func NewPercentileRankGenerator(ref *refdata.Provider, rng *rand.Rand) *PercentileRankGenerator {
	return &PercentileRankGenerator{ref: ref, rng: rng}
}

// Generate builds one percentile rank question of the requested kind.
func (g *PercentileRankGenerator) Generate(difficulty int, kind PercentileKind) *question.Question {
	if kind == PercentileConceptual {
		return g.generateConceptual(difficulty)
	}
	return g.generateCalculation(difficulty)
}

func (g *PercentileRankGenerator) generateCalculation(difficulty int) *question.Question {
	ctx := percentileContexts[g.rng.Intn(len(percentileContexts))]

	n := ctx.sizeMin
	if ctx.sizeMax > ctx.sizeMin {
		n = ctx.sizeMin + g.rng.Intn(ctx.sizeMax-ctx.sizeMin+1)
	}

	dataset := make([]float64, n)
	for i := range dataset {
		dataset[i] = float64(ctx.valueMin + g.rng.Intn(ctx.valueMax-ctx.valueMin+1))
	}
	sort.Float64s(dataset)

	// Target from the 30th-80th position band so the rank is neither
	// trivial nor extreme.
	lo := int(float64(n) * 0.3)
	hi := int(float64(n) * 0.8)
	target := dataset[lo+g.rng.Intn(hi-lo+1)]

	below := 0
	for _, v := range dataset {
		if v < target {
			below++
		}
	}
	pr := stats.PercentileRank(target, dataset)
	prInt := int(pr)

	contextStr := g.populate(ctx, n)
	targetDisplay := g.displayValue(target, ctx.unit)

	text := fmt.Sprintf("%s\n\n%s\n\nCalculate the percentile rank for a %s of %s.",
		contextStr, g.chunkedDataset(dataset, ctx.unit), ctx.valueName, targetDisplay)

	// Provincial marking accepts several answer notations.
	answer := fmt.Sprintf("%dth percentile (or P%d or %d)", prInt, prInt, prInt)

	steps := []string{
		fmt.Sprintf("b = %d (number of scores below %s)", below, targetDisplay),
		fmt.Sprintf("n = %d (total number of scores)", n),
		"PR = (b/n) × 100",
		fmt.Sprintf("PR = (%d/%d) × 100", below, n),
		fmt.Sprintf("PR = %.1f", pr),
		fmt.Sprintf("Answer: %s", answer),
	}

	return &question.Question{
		ID:         question.NewID(g.rng, "Statistics"),
		Unit:       "Statistics",
		Outcomes:   []string{"12E5.S.2"},
		Type:       question.TypeCalculation,
		Difficulty: difficulty,
		TotalMarks: 2,
		MarkBreakdown: map[string]float64{
			"formula_substitution": 1,
			"answer":               1,
		},
		Context:      contextStr,
		QuestionText: text,
		GivenData: map[string]any{
			"dataset":      dataset,
			"target_value": target,
			"b":            below,
			"n":            n,
			"unit":         ctx.unit,
		},
		Answer:             answer,
		AnswerFormat:       question.FormatText,
		SolutionSteps:      steps,
		ContextTemplateID:  ctx.id,
		RequiresCalculator: true,
	}
}

func (g *PercentileRankGenerator) generateConceptual(difficulty int) *question.Question {
	var contextStr, text, answer, templateID string

	if g.rng.Intn(2) == 0 {
		templateID = "entrance_exam"
		name := g.ref.SampleName()
		minGrade := []int{70, 75, 80}[g.rng.Intn(3)]

		lastYear := 60 + g.rng.Intn(minGrade-5-60+1)
		thisYear := lastYear + 5 + g.rng.Intn(95-(lastYear+5)+1)

		contextStr = fmt.Sprintf(
			"%s must write an entrance exam to enter university. A minimum grade of %d%% is required for acceptance.",
			name.FullName, minGrade)
		text = fmt.Sprintf(
			"%s\n\nLast year their mark was in the %dth percentile. They were not accepted.\nThis year their mark is in the %dth percentile.\n\nJustify why it cannot be determined if they will be accepted this year.",
			contextStr, lastYear, thisYear)
		answer = fmt.Sprintf(
			"It cannot be determined because percentile rank only indicates their position relative to other test-takers, not their actual grade. A higher percentile does not guarantee the minimum grade of %d%% is achieved.",
			minGrade)
	} else {
		templateID = "job_ranking"
		topPercent := []int{10, 15, 20, 25}[g.rng.Intn(4)]
		candidatePR := 75 + g.rng.Intn(16)

		contextStr = fmt.Sprintf(
			"A company ranks job applicants based on their interview scores. The top %d%% of candidates move to the next round.",
			topPercent)
		text = fmt.Sprintf(
			"%s\n\nA candidate scored in the %dth percentile.\n\nExplain whether this candidate will move to the next round.",
			contextStr, candidatePR)

		if candidatePR >= 100-topPercent {
			answer = fmt.Sprintf(
				"Yes, the candidate will move forward. The %dth percentile means %d%% scored higher, so they are in the top %d%% which is better than the required top %d%%.",
				candidatePR, 100-candidatePR, 100-candidatePR, topPercent)
		} else {
			answer = fmt.Sprintf(
				"No, the candidate will not move forward. The %dth percentile means %d%% scored higher, which is more than the top %d%% requirement.",
				candidatePR, 100-candidatePR, topPercent)
		}
	}

	steps := []string{
		"Key concept: Percentile rank indicates relative position, not actual score",
		fmt.Sprintf("Answer: %s", answer),
	}

	return &question.Question{
		ID:            question.NewID(g.rng, "Statistics"),
		Unit:          "Statistics",
		Outcomes:      []string{"12E5.S.2"},
		Type:          question.TypeJustification,
		Difficulty:    difficulty,
		TotalMarks:    1,
		MarkBreakdown: map[string]float64{"reasoning": 1},
		Context:       contextStr,
		QuestionText:  text,
		GivenData: map[string]any{
			"context_template": templateID,
		},
		Answer:             answer,
		AnswerFormat:       question.FormatText,
		SolutionSteps:      steps,
		ContextTemplateID:  templateID,
		RequiresCalculator: false,
	}
}

// chunkedDataset lays the dataset out in rows of five so long lists stay
// readable on paper.
func (g *PercentileRankGenerator) chunkedDataset(dataset []float64, unit string) string {
	const chunkSize = 5
	var rows []string
	for i := 0; i < len(dataset); i += chunkSize {
		end := i + chunkSize
		if end > len(dataset) {
			end = len(dataset)
		}
		parts := make([]string, 0, chunkSize)
		for _, v := range dataset[i:end] {
			parts = append(parts, g.displayValue(v, unit))
		}
		rows = append(rows, strings.Join(parts, ", "))
	}
	return strings.Join(rows, "\n")
}

func (g *PercentileRankGenerator) displayValue(v float64, unit string) string {
	switch unit {
	case "k":
		return fmt.Sprintf("$%sk", trimFloat(v))
	case "g":
		return fmt.Sprintf("%sg", trimFloat(v))
	case "%":
		return fmt.Sprintf("%s%%", trimFloat(v))
	default:
		return trimFloat(v)
	}
}

func (g *PercentileRankGenerator) populate(ctx percentileContext, n int) string {
	text := ctx.template
	for _, use := range ctx.uses {
		switch use {
		case "name":
			text = strings.ReplaceAll(text, "{name}", g.ref.SampleName().FullName)
		case "city":
			text = strings.ReplaceAll(text, "{city}", g.ref.SampleCity().City)
		}
	}
	return strings.ReplaceAll(text, "{n}", fmt.Sprintf("%d", n))
}
