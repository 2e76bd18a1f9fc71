package generators

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalmer/statgen/internal/question"
	"github.com/mbalmer/statgen/internal/refdata"
	"github.com/mbalmer/statgen/internal/stats"
)

func newMMMGenerator(seed int64) *MeanMedianModeGenerator {
	rng := rand.New(rand.NewSource(seed))
	return NewMeanMedianModeGenerator(refdata.New(rng), rng)
}

func TestMeanMedianModeGenerate(t *testing.T) {
	g := newMMMGenerator(1)

	q := g.Generate(2, 2)

	assert.Equal(t, question.TypeCalculation, q.Type)
	assert.Equal(t, 2, q.TotalMarks)
	assert.Equal(t, question.FormatMultipleValues, q.AnswerFormat)
	assert.Contains(t, q.Answer, "Mean:")
	assert.Contains(t, q.Answer, "Median:")
	assert.Contains(t, q.Answer, "Mode:")

	dataset := q.GivenData["dataset"].([]float64)
	assert.Contains(t, q.Answer, fmt.Sprintf("%.1f", stats.Mean(dataset)))
	assert.Contains(t, q.Answer, stats.Mode(dataset))

	require.Len(t, q.SolutionSteps, 4)
	assert.Contains(t, q.SolutionSteps[1], "Mean:")
	assert.Contains(t, q.SolutionSteps[2], "(middle value when sorted)")
}

func TestMeanMedianMode_Difficulty1HasMode(t *testing.T) {
	g := newMMMGenerator(2)

	// A duplicate is planted at difficulty 1, so a mode always exists.
	for trial := 0; trial < 30; trial++ {
		dataset := g.dataset(1)
		mode := stats.Mode(dataset)
		assert.NotEqual(t, "no mode", mode, "dataset %v", dataset)
	}
}

func TestMeanMedianMode_DatasetSizes(t *testing.T) {
	g := newMMMGenerator(3)

	tests := []struct {
		difficulty int
		min, max   int
	}{
		{1, 6, 8}, // 5-7 draws plus the planted duplicate
		{2, 7, 10},
		{3, 8, 12},
		{4, 8, 10},
		{5, 10, 15},
	}
	for _, tt := range tests {
		for trial := 0; trial < 20; trial++ {
			dataset := g.dataset(tt.difficulty)
			assert.GreaterOrEqual(t, len(dataset), tt.min, "difficulty %d", tt.difficulty)
			assert.LessOrEqual(t, len(dataset), tt.max, "difficulty %d", tt.difficulty)
		}
	}
}

func TestMeanMedianMode_MarkBreakdown(t *testing.T) {
	g := newMMMGenerator(4)

	single := g.Generate(2, 1)
	assert.Equal(t, map[string]float64{"answer": 1}, single.MarkBreakdown)

	double := g.Generate(2, 2)
	assert.Equal(t, map[string]float64{"calculations": 1, "answer": 1}, double.MarkBreakdown)
}
