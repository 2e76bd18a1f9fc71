package generators

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalmer/statgen/internal/question"
	"github.com/mbalmer/statgen/internal/refdata"
	"github.com/mbalmer/statgen/internal/stats"
)

func newWeightedGenerator(seed int64) *WeightedMeanGenerator {
	rng := rand.New(rand.NewSource(seed))
	return NewWeightedMeanGenerator(refdata.New(rng), rng)
}

func TestWeightedGenerate_Percentage(t *testing.T) {
	g := newWeightedGenerator(1)

	q, err := g.Generate(2, WeightedPercentage)
	require.NoError(t, err)

	assert.Equal(t, question.TypeCalculation, q.Type)
	assert.Equal(t, 2, q.TotalMarks)
	assert.Contains(t, q.QuestionText, "Calculate the final score using a weighted mean.")
	assert.Contains(t, q.QuestionText, "Category | Score | Weight")

	scores := q.GivenData["scores"].([]float64)
	weights := q.GivenData["weights"].([]float64)
	require.Equal(t, len(scores), len(weights))
	assert.Len(t, scores, 3, "difficulty 2 uses three categories")

	// Answer matches recomputation.
	want, err := stats.WeightedMean(scores, weights)
	require.NoError(t, err)
	assert.Contains(t, q.Answer, trimWant(want))
}

func TestWeightedGenerate_Frequency(t *testing.T) {
	g := newWeightedGenerator(2)

	q, err := g.Generate(2, WeightedFrequency)
	require.NoError(t, err)

	values := q.GivenData["values"].([]float64)
	frequencies := q.GivenData["frequencies"].([]int)
	require.Equal(t, len(values), len(frequencies))
	assert.Len(t, values, 4, "difficulty 2 uses four rows")

	// Values are distinct and ascending.
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}

	want, err := stats.WeightedMeanFrequency(values, frequencies)
	require.NoError(t, err)
	assert.Contains(t, q.Answer, trimWant(want))
	assert.Contains(t, q.QuestionText, "Calculate the mean.")
}

func TestWeights_SumToOne(t *testing.T) {
	g := newWeightedGenerator(3)

	for difficulty := 1; difficulty <= 5; difficulty++ {
		for n := 3; n <= 5; n++ {
			for trial := 0; trial < 20; trial++ {
				weights := g.weights(n, difficulty)
				require.Len(t, weights, n)

				sum := 0.0
				for _, w := range weights {
					sum += w
				}
				assert.InDelta(t, 1.0, sum, 1e-9,
					"difficulty %d, n %d: weights %v", difficulty, n, weights)
			}
		}
	}
}

func TestWeights_NiceValuesAtLowDifficulty(t *testing.T) {
	g := newWeightedGenerator(4)

	nice := map[float64]bool{
		0.10: true, 0.15: true, 0.20: true, 0.25: true,
		0.30: true, 0.35: true, 0.40: true,
	}
	for trial := 0; trial < 30; trial++ {
		weights := g.weights(3, 1)
		// All but the residual last weight come from the fixed set.
		for _, w := range weights[:len(weights)-1] {
			rounded := math.Round(w*100) / 100
			assert.True(t, nice[rounded], "weight %v not a clean percentage", w)
		}
	}
}

func trimWant(v float64) string {
	return trimFloat(math.Round(v*100) / 100)
}
