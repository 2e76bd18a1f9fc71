package generators

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/mbalmer/statgen/internal/question"
	"github.com/mbalmer/statgen/internal/refdata"
	"github.com/mbalmer/statgen/internal/stats"
)

// percentageContext is one scenario for weight-of-total questions.
type percentageContext struct {
	id          string
	template    string
	uses        []string
	categories  []string
	unitDisplay string
}

var percentageContexts = []percentageContext{
	{
		id:          "course_grades",
		template:    "{name} is calculating their final grade in {course}. The grading breakdown is shown below.",
		uses:        []string{"name", "course"},
		categories:  []string{"Homework", "Quizzes", "Midterm", "Project", "Final Exam"},
		unitDisplay: "points",
	},
	{
		id:          "portfolio_evaluation",
		template:    "{name} is evaluating candidates for a position at {business}. The evaluation criteria are shown below.",
		uses:        []string{"name", "business"},
		categories:  []string{"Experience", "Education", "Interview", "References", "Skills Test"},
		unitDisplay: "points",
	},
	{
		id:          "art_competition",
		template:    "{name} entered a competition with scores in different categories.",
		uses:        []string{"name"},
		categories:  []string{"Originality", "Design", "Colour", "Technique"},
		unitDisplay: "points",
	},
}

// frequencyContext is one scenario for repeated-value questions.
type frequencyContext struct {
	id           string
	template     string
	valueMin     int
	valueMax     int
	freqMin      int
	freqMax      int
	unit         string
	unitPrefix   bool
	itemSingular string
	itemPlural   string
}

var frequencyContexts = []frequencyContext{
	{
		id:           "server_tips",
		template:     "{name} works as a server and received tips during one shift.",
		valueMin:     5, valueMax: 15,
		freqMin: 2, freqMax: 6,
		unit: "$", unitPrefix: true,
		itemSingular: "tip", itemPlural: "tips",
	},
	{
		id:       "weekly_hours",
		template: "{name} tracked the number of days worked per week over a year.",
		valueMin: 1, valueMax: 7,
		freqMin: 2, freqMax: 14,
		unit:         "days",
		itemSingular: "week", itemPlural: "weeks",
	},
	{
		id:       "item_prices",
		template: "{name} sells crafts at markets. The prices and quantities sold are shown below.",
		valueMin: 10, valueMax: 50,
		freqMin: 3, freqMax: 12,
		unit: "$", unitPrefix: true,
		itemSingular: "item", itemPlural: "items",
	},
}

// WeightedKind selects which weighted mean family to generate.
type WeightedKind string

const (
	WeightedPercentage WeightedKind = "percentage"
	WeightedFrequency  WeightedKind = "frequency"
)

// WeightedMeanGenerator builds weighted mean questions of two kinds:
// percentage-of-total gradebooks and frequency tables of repeated
// values.
type WeightedMeanGenerator struct {
	ref *refdata.Provider
	rng *rand.Rand
}

// NewWeightedMeanGenerator returns a generator drawing from rng.
func NewWeightedMeanGenerator(ref *refdata.Provider, rng *rand.Rand) *WeightedMeanGenerator {
	return &WeightedMeanGenerator{ref: ref, rng: rng}
}

// Generate builds one weighted mean question of the requested kind.
func (g *WeightedMeanGenerator) Generate(difficulty int, kind WeightedKind) (*question.Question, error) {
	if kind == WeightedPercentage {
		return g.generatePercentage(difficulty)
	}
	return g.generateFrequency(difficulty)
}

func (g *WeightedMeanGenerator) generatePercentage(difficulty int) (*question.Question, error) {
	ctx := percentageContexts[g.rng.Intn(len(percentageContexts))]
	contextStr := g.populate(ctx.template, ctx.uses)

	numCategories := 3
	if difficulty == 3 {
		numCategories = 4
	} else if difficulty > 3 {
		numCategories = 5
	}
	if numCategories > len(ctx.categories) {
		numCategories = len(ctx.categories)
	}
	categories := ctx.categories[:numCategories]

	weights := g.weights(numCategories, difficulty)
	scores := g.scores(numCategories, difficulty)

	weightedMean, err := stats.WeightedMean(scores, weights)
	if err != nil {
		return nil, err
	}

	var table strings.Builder
	table.WriteString("Category | Score | Weight\n")
	table.WriteString("---------|-------|-------\n")
	for i, cat := range categories {
		fmt.Fprintf(&table, "%s | %s | %.0f%%\n", cat, trimFloat(scores[i]), weights[i]*100)
	}

	text := fmt.Sprintf("%s\n\n%s\nCalculate the final score using a weighted mean.",
		contextStr, table.String())

	answer := fmt.Sprintf("%.2f %s", weightedMean, ctx.unitDisplay)

	var steps []string
	for i := range categories {
		steps = append(steps, fmt.Sprintf("%.0f%% × %s = %.2f",
			weights[i]*100, trimFloat(scores[i]), scores[i]*weights[i]))
	}
	steps = append(steps, fmt.Sprintf("Total: %.2f %s", weightedMean, ctx.unitDisplay))

	return &question.Question{
		ID:         question.NewID(g.rng, "Statistics"),
		Unit:       "Statistics",
		Outcomes:   []string{"12E5.S.1"},
		Type:       question.TypeCalculation,
		Difficulty: difficulty,
		TotalMarks: 2,
		MarkBreakdown: map[string]float64{
			"process": 1,
			"answer":  1,
		},
		Context:      contextStr,
		QuestionText: text,
		GivenData: map[string]any{
			"categories":       categories,
			"scores":           scores,
			"weights":          weights,
			"context_template": ctx.id,
			"unit":             ctx.unitDisplay,
		},
		Answer:             answer,
		AnswerFormat:       question.FormatNumericWithUnit,
		SolutionSteps:      steps,
		ContextTemplateID:  ctx.id,
		RequiresCalculator: true,
	}, nil
}

func (g *WeightedMeanGenerator) generateFrequency(difficulty int) (*question.Question, error) {
	ctx := frequencyContexts[g.rng.Intn(len(frequencyContexts))]
	contextStr := g.populate(ctx.template, []string{"name"})

	numItems := 4
	if difficulty == 3 {
		numItems = 5
	} else if difficulty > 3 {
		numItems = 6
	}

	values := g.distinctValues(ctx.valueMin, ctx.valueMax, numItems)
	frequencies := make([]int, numItems)
	for i := range frequencies {
		frequencies[i] = ctx.freqMin + g.rng.Intn(ctx.freqMax-ctx.freqMin+1)
	}

	weightedMean, err := stats.WeightedMeanFrequency(values, frequencies)
	if err != nil {
		return nil, err
	}

	var lines []string
	for i, v := range values {
		freq := frequencies[i]
		item := ctx.itemPlural
		if freq == 1 {
			item = ctx.itemSingular
		}
		switch ctx.id {
		case "server_tips", "item_prices":
			lines = append(lines, fmt.Sprintf("%d %s of $%.2f", freq, item, v))
		case "weekly_hours":
			days := "days"
			if v == 1 {
				days = "day"
			}
			lines = append(lines, fmt.Sprintf("%d %s working %s %s", freq, item, trimFloat(v), days))
		default:
			lines = append(lines, fmt.Sprintf("%d items at %s %s", freq, trimFloat(v), ctx.unit))
		}
	}

	text := fmt.Sprintf("%s\n\n%s\n\nCalculate the mean.", contextStr, strings.Join(lines, "\n"))

	var answer string
	if ctx.unitPrefix {
		answer = fmt.Sprintf("%s%.2f", ctx.unit, weightedMean)
	} else {
		answer = fmt.Sprintf("%.2f %s", weightedMean, ctx.unit)
	}

	totalValue := 0.0
	totalCount := 0
	var products []string
	for i, v := range values {
		totalValue += v * float64(frequencies[i])
		totalCount += frequencies[i]
		products = append(products, fmt.Sprintf("(%s × %d)", trimFloat(v), frequencies[i]))
	}

	steps := []string{
		"Weighted sum: " + strings.Join(products, " + "),
		fmt.Sprintf("= %s", trimFloat(totalValue)),
		fmt.Sprintf("Total items: %d", totalCount),
		fmt.Sprintf("Mean: %s ÷ %d = %s", trimFloat(totalValue), totalCount, answer),
	}

	return &question.Question{
		ID:         question.NewID(g.rng, "Statistics"),
		Unit:       "Statistics",
		Outcomes:   []string{"12E5.S.1"},
		Type:       question.TypeCalculation,
		Difficulty: difficulty,
		TotalMarks: 2,
		MarkBreakdown: map[string]float64{
			"process": 1,
			"answer":  1,
		},
		Context:      contextStr,
		QuestionText: text,
		GivenData: map[string]any{
			"values":           values,
			"frequencies":      frequencies,
			"context_template": ctx.id,
			"unit":             ctx.unit,
		},
		Answer:             answer,
		AnswerFormat:       question.FormatNumericWithUnit,
		SolutionSteps:      steps,
		ContextTemplateID:  ctx.id,
		RequiresCalculator: true,
	}, nil
}

// weights builds a weight vector summing to 1. Low difficulties draw
// from a fixed set of clean percentages; higher difficulties normalize
// random draws and push the rounding residual into the first weight.
func (g *WeightedMeanGenerator) weights(n, difficulty int) []float64 {
	if difficulty <= 2 {
		nice := []float64{0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40}
		weights := make([]float64, 0, n)
		remaining := 1.0

		for i := 0; i < n-1; i++ {
			maxWeight := math.Min(remaining-0.1*float64(n-i-1), 0.40)
			var available []float64
			for _, w := range nice {
				if w <= maxWeight {
					available = append(available, w)
				}
			}
			var w float64
			if len(available) > 0 {
				w = available[g.rng.Intn(len(available))]
			} else {
				w = math.Round(remaining/float64(n-i)*100) / 100
			}
			weights = append(weights, w)
			remaining -= w
		}
		return append(weights, math.Round(remaining*100)/100)
	}

	weights := make([]float64, n)
	total := 0.0
	for i := range weights {
		weights[i] = g.rng.Float64()
		total += weights[i]
	}
	sum := 0.0
	for i := range weights {
		weights[i] = math.Round(weights[i]/total*100) / 100
		sum += weights[i]
	}
	weights[0] += 1.0 - sum
	return weights
}

// scores draws per-category scores; higher difficulties allow decimals.
func (g *WeightedMeanGenerator) scores(n, difficulty int) []float64 {
	scores := make([]float64, n)
	switch {
	case difficulty <= 2:
		for i := range scores {
			scores[i] = float64(60 + g.rng.Intn(41))
		}
	case difficulty == 3:
		for i := range scores {
			scores[i] = float64(50 + g.rng.Intn(51))
		}
	default:
		for i := range scores {
			scores[i] = math.Round((50+g.rng.Float64()*50)*10) / 10
		}
	}
	return scores
}

// distinctValues samples n distinct integers from [lo,hi] in ascending
// order.
func (g *WeightedMeanGenerator) distinctValues(lo, hi, n int) []float64 {
	perm := g.rng.Perm(hi - lo + 1)
	values := make([]float64, n)
	for i, p := range perm[:n] {
		values[i] = float64(lo + p)
	}
	sort.Float64s(values)
	return values
}

func (g *WeightedMeanGenerator) populate(template string, uses []string) string {
	text := template
	for _, use := range uses {
		switch use {
		case "name":
			text = strings.ReplaceAll(text, "{name}", g.ref.SampleName().FullName)
		case "course":
			text = strings.ReplaceAll(text, "{course}", g.ref.SampleCourse())
		case "business":
			text = strings.ReplaceAll(text, "{business}", g.ref.SampleBusiness())
		}
	}
	return text
}
