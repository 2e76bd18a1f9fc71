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

// trimmedContext is one scenario wrapper for trimmed mean questions.
type trimmedContext struct {
	id       string
	template string
	uses     []string
	unit     string
}

var trimmedContexts = []trimmedContext{
	{
		id:       "employee_salaries",
		template: "The annual salaries for employees at {business} are shown below.",
		uses:     []string{"business"},
		unit:     "dollars",
	},
	{
		id:       "product_times",
		template: "{name} tracked the time to complete each item over {period} items.",
		uses:     []string{"name", "period"},
		unit:     "hours",
	},
	{
		id:       "temperature_data",
		template: "Daily high temperatures in {city} during one week in January are shown below.",
		uses:     []string{"city"},
		unit:     "°C",
	},
	{
		id:       "test_scores",
		template: "{name} recorded quiz scores for students in {course}.",
		uses:     []string{"name", "course"},
		unit:     "points",
	},
}

// TrimmedMeanGenerator builds the two-part outlier question: the
// arithmetic mean over everything, then the trimmed mean after removing
// the extreme value at each end. Datasets are built as a tight cluster
// with one deliberate outlier below and one above.
type TrimmedMeanGenerator struct {
	ref *refdata.Provider
	rng *rand.Rand
}

// NewTrimmedMeanGenerator returns a generator drawing from rng.
func NewTrimmedMeanGenerator(ref *refdata.Provider, rng *rand.Rand) *TrimmedMeanGenerator {
	return &TrimmedMeanGenerator{ref: ref, rng: rng}
}

// Generate builds one trimmed mean question at the given difficulty.
func (g *TrimmedMeanGenerator) Generate(difficulty, marks int) (*question.Question, error) {
	if marks <= 0 {
		marks = 2
	}
	dataset := g.datasetWithOutliers(difficulty)

	arithmeticMean := stats.Mean(dataset)
	sorted := append([]float64(nil), dataset...)
	sort.Float64s(sorted)

	outlierLow := sorted[0]
	outlierHigh := sorted[len(sorted)-1]
	trimmedMean, err := stats.TrimmedMean(dataset, 1)
	if err != nil {
		return nil, err
	}

	ctx := trimmedContexts[g.rng.Intn(len(trimmedContexts))]
	contextStr := g.populate(ctx, len(dataset))
	datasetStr := joinValues(dataset, ", ")

	text := fmt.Sprintf(
		"%s The values are:\n\n%s\n\na) Calculate the arithmetic mean.\nb) Identify any outliers and calculate the trimmed mean.",
		contextStr, datasetStr)

	steps := []string{
		fmt.Sprintf("a) Arithmetic mean: %s ÷ %d = %.1f %s",
			joinValues(dataset, " + "), len(dataset), arithmeticMean, ctx.unit),
		fmt.Sprintf("b) Sorted data: %s", joinValues(sorted, ", ")),
		fmt.Sprintf("   Outliers: %s (low) and %s (high)", trimFloat(outlierLow), trimFloat(outlierHigh)),
		fmt.Sprintf("   Trimmed data: %s", joinValues(sorted[1:len(sorted)-1], ", ")),
		fmt.Sprintf("   Trimmed mean: %.1f %s", trimmedMean, ctx.unit),
	}

	parts := []question.Part{
		{
			Letter:        "a",
			Instruction:   "Calculate the arithmetic mean.",
			Marks:         1,
			Answer:        fmt.Sprintf("%.1f %s", arithmeticMean, ctx.unit),
			AnswerFormat:  question.FormatNumericWithUnit,
			SolutionSteps: steps[:1],
		},
		{
			Letter:        "b",
			Instruction:   "Identify any outliers and calculate the trimmed mean.",
			Marks:         1,
			Answer:        fmt.Sprintf("%.1f %s", trimmedMean, ctx.unit),
			AnswerFormat:  question.FormatNumericWithUnit,
			SolutionSteps: steps[1:],
		},
	}

	return &question.Question{
		ID:         question.NewID(g.rng, "Statistics"),
		Unit:       "Statistics",
		Outcomes:   []string{"12E5.S.1"},
		Type:       question.TypeMixed,
		Difficulty: difficulty,
		TotalMarks: marks,
		MarkBreakdown: map[string]float64{
			"arithmetic_mean": 1,
			"trimmed_mean":    1,
		},
		Context:      contextStr,
		QuestionText: text,
		GivenData: map[string]any{
			"dataset": dataset,
			"unit":    ctx.unit,
		},
		Parts:              parts,
		SolutionSteps:      steps,
		ContextTemplateID:  ctx.id,
		RequiresCalculator: true,
	}, nil
}

// datasetWithOutliers builds a cluster plus one low and one high
// outlier, shuffled. Value scale and cluster width grow with difficulty.
func (g *TrimmedMeanGenerator) datasetWithOutliers(difficulty int) []float64 {
	intn := func(lo, hi int) float64 { // inclusive range draw
		return float64(lo + g.rng.Intn(hi-lo+1))
	}

	var dataset []float64
	switch {
	case difficulty <= 2:
		size := 6 + g.rng.Intn(3)
		clusterMin := 20 + g.rng.Intn(21)
		clusterMax := clusterMin + 10 + g.rng.Intn(11)

		for i := 0; i < size; i++ {
			dataset = append(dataset, intn(clusterMin, clusterMax))
		}
		dataset = append(dataset,
			intn(clusterMin/3, clusterMin-10),
			intn(clusterMax+30, clusterMax*2))

	case difficulty == 3:
		size := 7 + g.rng.Intn(4)
		clusterMin := 100 + g.rng.Intn(51)
		clusterMax := clusterMin + 30 + g.rng.Intn(21)

		for i := 0; i < size; i++ {
			dataset = append(dataset, intn(clusterMin, clusterMax))
		}
		dataset = append(dataset,
			intn(clusterMin/2, clusterMin-30),
			intn(clusterMax+50, clusterMax*2))

	default:
		size := 8 + g.rng.Intn(5)
		if g.rng.Intn(2) == 0 {
			clusterMin := math.Round((50+g.rng.Float64()*50)*10) / 10
			for i := 0; i < size; i++ {
				v := clusterMin + g.rng.Float64()*30
				dataset = append(dataset, math.Round(v*10)/10)
			}
			dataset = append(dataset,
				math.Round(clusterMin/2*10)/10,
				math.Round(clusterMin*2*10)/10)
		} else {
			clusterMin := -5 + g.rng.Intn(11)
			for i := 0; i < size; i++ {
				dataset = append(dataset, intn(clusterMin, clusterMin+10))
			}
			dataset = append(dataset,
				intn(-20, clusterMin-5),
				intn(clusterMin+20, clusterMin+40))
		}
	}

	g.rng.Shuffle(len(dataset), func(i, j int) {
		dataset[i], dataset[j] = dataset[j], dataset[i]
	})
	return dataset
}

func (g *TrimmedMeanGenerator) populate(ctx trimmedContext, n int) string {
	text := ctx.template
	for _, use := range ctx.uses {
		switch use {
		case "name":
			text = strings.ReplaceAll(text, "{name}", g.ref.SampleName().FullName)
		case "business":
			text = strings.ReplaceAll(text, "{business}", g.ref.SampleBusiness())
		case "city":
			text = strings.ReplaceAll(text, "{city}", g.ref.SampleCity().City)
		case "course":
			text = strings.ReplaceAll(text, "{course}", g.ref.SampleCourse())
		case "period":
			text = strings.ReplaceAll(text, "{period}", fmt.Sprintf("%d", n))
		}
	}
	return text
}
