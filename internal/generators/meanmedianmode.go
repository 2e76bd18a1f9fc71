package generators

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/mbalmer/statgen/internal/question"
	"github.com/mbalmer/statgen/internal/refdata"
	"github.com/mbalmer/statgen/internal/stats"
)

// mmmContext is one scenario wrapper for central tendency questions.
type mmmContext struct {
	id       string
	template string
	uses     []string
}

var mmmContexts = []mmmContext{
	{
		id:       "concert_attendance",
		template: "{name} tracked nightly attendance at {venue} in {city} over {period} nights.",
		uses:     []string{"name", "venue", "city", "period"},
	},
	{
		id:       "quiz_scores",
		template: "{name} recorded quiz scores for students taking {course}.",
		uses:     []string{"name", "course"},
	},
	{
		id:       "job_earnings",
		template: "{name} tracked daily earnings from {job} over {period} days.",
		uses:     []string{"name", "job", "period"},
	},
	{
		id:       "tips_received",
		template: "{name} works as a server and received the following tips during one shift.",
		uses:     []string{"name"},
	},
	{
		id:       "product_sales",
		template: "{name} manages {business} and recorded daily sales over {period} days.",
		uses:     []string{"name", "business", "period"},
	},
}

var mmmPhrasings = []string{
	"Calculate the mean, median, and mode.",
	"Determine the measures of central tendency.",
	"Find the mean (average), median (middle value), and mode (most frequent value).",
}

// MeanMedianModeGenerator builds the classic three-measure question.
// At difficulty 1 a duplicate value is planted so a mode always exists.
type MeanMedianModeGenerator struct {
	ref *refdata.Provider
	rng *rand.Rand
}

// NewMeanMedianModeGenerator returns a generator drawing from rng.
func NewMeanMedianModeGenerator(ref *refdata.Provider, rng *rand.Rand) *MeanMedianModeGenerator {
	return &MeanMedianModeGenerator{ref: ref, rng: rng}
}

// Generate builds one mean/median/mode question at the given difficulty.
func (g *MeanMedianModeGenerator) Generate(difficulty, marks int) *question.Question {
	if marks <= 0 {
		marks = 2
	}
	dataset := g.dataset(difficulty)

	mean := stats.Mean(dataset)
	median := stats.Median(dataset)
	mode := stats.Mode(dataset)

	ctx := mmmContexts[g.rng.Intn(len(mmmContexts))]
	contextStr := g.populate(ctx, len(dataset))
	datasetStr := joinValues(dataset, ", ")
	phrasing := mmmPhrasings[g.rng.Intn(len(mmmPhrasings))]

	text := fmt.Sprintf("%s The values recorded were:\n\n%s\n\n%s", contextStr, datasetStr, phrasing)

	steps := []string{
		fmt.Sprintf("Dataset: %s", datasetStr),
		fmt.Sprintf("Mean: %s ÷ %d = %.1f", joinValues(dataset, " + "), len(dataset), mean),
		fmt.Sprintf("Median: %.1f (middle value when sorted)", median),
		fmt.Sprintf("Mode: %s", mode),
	}

	breakdown := map[string]float64{"calculations": 1, "answer": 1}
	if marks == 1 {
		breakdown = map[string]float64{"answer": 1}
	}

	medianDisplay := fmt.Sprintf("%.1f", median)
	if median == math.Trunc(median) {
		medianDisplay = fmt.Sprintf("%d", int(median))
	}

	return &question.Question{
		ID:            question.NewID(g.rng, "Statistics"),
		Unit:          "Statistics",
		Outcomes:      []string{"12E5.S.1"},
		Type:          question.TypeCalculation,
		Difficulty:    difficulty,
		TotalMarks:    marks,
		MarkBreakdown: breakdown,
		Context:       contextStr,
		QuestionText:  text,
		GivenData: map[string]any{
			"dataset":          dataset,
			"context_template": ctx.id,
		},
		Answer:             fmt.Sprintf("Mean: %.1f, Median: %s, Mode: %s", mean, medianDisplay, mode),
		AnswerFormat:       question.FormatMultipleValues,
		SolutionSteps:      steps,
		ContextTemplateID:  ctx.id,
		RequiresCalculator: true,
	}
}

// dataset draws values whose size and texture scale with difficulty.
func (g *MeanMedianModeGenerator) dataset(difficulty int) []float64 {
	switch difficulty {
	case 1:
		size := 5 + g.rng.Intn(3)
		values := make([]float64, size)
		for i := range values {
			values[i] = float64(g.rng.Intn(11))
		}
		// Plant a duplicate so a mode exists.
		values = append(values, values[g.rng.Intn(size)])
		g.rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		return values

	case 2:
		size := 7 + g.rng.Intn(4)
		values := make([]float64, size)
		for i := range values {
			values[i] = float64(g.rng.Intn(21))
		}
		return values

	case 3:
		size := 8 + g.rng.Intn(5)
		values := make([]float64, size)
		for i := range values {
			values[i] = float64(10 + g.rng.Intn(91))
		}
		return values

	case 4:
		size := 8 + g.rng.Intn(3)
		values := make([]float64, size)
		if g.rng.Intn(2) == 0 {
			for i := range values {
				values[i] = math.Round((10+g.rng.Float64()*90)*10) / 10
			}
		} else {
			for i := range values {
				values[i] = float64(50 + g.rng.Intn(151))
			}
		}
		return values

	default:
		size := 10 + g.rng.Intn(6)
		if g.rng.Intn(2) == 0 {
			// Distinct sorted values: no mode by construction.
			perm := g.rng.Perm(90)
			values := make([]float64, size)
			for i := 0; i < size; i++ {
				values[i] = float64(perm[i] + 10)
			}
			return values
		}
		values := make([]float64, size)
		for i := range values {
			values[i] = math.Round((10+g.rng.Float64()*90)*100) / 100
		}
		return values
	}
}

func (g *MeanMedianModeGenerator) populate(ctx mmmContext, n int) string {
	text := ctx.template
	for _, use := range ctx.uses {
		switch use {
		case "name":
			text = strings.ReplaceAll(text, "{name}", g.ref.SampleName().FullName)
		case "venue":
			text = strings.ReplaceAll(text, "{venue}", g.ref.SampleVenue())
		case "city":
			text = strings.ReplaceAll(text, "{city}", g.ref.SampleCity().DisplayForm)
		case "course":
			text = strings.ReplaceAll(text, "{course}", g.ref.SampleCourse())
		case "job":
			text = strings.ReplaceAll(text, "{job}", g.ref.SampleJob())
		case "business":
			text = strings.ReplaceAll(text, "{business}", g.ref.SampleBusiness())
		case "period":
			text = strings.ReplaceAll(text, "{period}", fmt.Sprintf("%d", n))
		}
	}
	return text
}
