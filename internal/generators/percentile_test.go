package generators

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalmer/statgen/internal/question"
	"github.com/mbalmer/statgen/internal/refdata"
	"github.com/mbalmer/statgen/internal/stats"
)

func newPercentileGenerator(seed int64) *PercentileRankGenerator {
	rng := rand.New(rand.NewSource(seed))
	return NewPercentileRankGenerator(refdata.New(rng), rng)
}

func TestPercentileGenerate_Calculation(t *testing.T) {
	g := newPercentileGenerator(1)

	for trial := 0; trial < 20; trial++ {
		q := g.Generate(2, PercentileCalculation)

		assert.Equal(t, question.TypeCalculation, q.Type)
		assert.Equal(t, []string{"12E5.S.2"}, q.Outcomes)
		assert.Equal(t, 2, q.TotalMarks)

		dataset := q.GivenData["dataset"].([]float64)
		target := q.GivenData["target_value"].(float64)
		below := q.GivenData["b"].(int)
		n := q.GivenData["n"].(int)

		require.Equal(t, len(dataset), n)

		// b counts strictly-below values; ties with the target do not
		// count.
		wantBelow := 0
		for _, v := range dataset {
			if v < target {
				wantBelow++
			}
		}
		assert.Equal(t, wantBelow, below)

		pr := stats.PercentileRank(target, dataset)
		prInt := int(pr)
		assert.Equal(t, fmt.Sprintf("%dth percentile (or P%d or %d)", prInt, prInt, prInt), q.Answer)

		// Dataset is chunked five per row.
		rows := strings.Split(strings.SplitN(q.QuestionText, "\n\n", 3)[1], "\n")
		for i, row := range rows {
			count := len(strings.Split(row, ", "))
			if i < len(rows)-1 {
				assert.Equal(t, 5, count)
			} else {
				assert.LessOrEqual(t, count, 5)
			}
		}
	}
}

func TestPercentileGenerate_Conceptual(t *testing.T) {
	g := newPercentileGenerator(2)

	sawExam, sawRanking := false, false
	for trial := 0; trial < 40 && !(sawExam && sawRanking); trial++ {
		q := g.Generate(2, PercentileConceptual)

		assert.Equal(t, question.TypeJustification, q.Type)
		assert.Equal(t, 1, q.TotalMarks)
		assert.False(t, q.RequiresCalculator)
		assert.NotEmpty(t, q.Answer)

		switch q.ContextTemplateID {
		case "entrance_exam":
			sawExam = true
			assert.Contains(t, q.QuestionText, "Justify why it cannot be determined")
			assert.Contains(t, q.Answer, "not their actual grade")
		case "job_ranking":
			sawRanking = true
			assert.Contains(t, q.QuestionText, "Explain whether this candidate will move to the next round.")
		}
	}
	assert.True(t, sawExam)
	assert.True(t, sawRanking)
}

func TestPercentileTargetFromMiddleBand(t *testing.T) {
	g := newPercentileGenerator(3)

	// The target value is drawn from the sorted 30th-80th position
	// band, so its rank is never at either extreme.
	for trial := 0; trial < 30; trial++ {
		q := g.Generate(2, PercentileCalculation)
		below := q.GivenData["b"].(int)
		n := q.GivenData["n"].(int)

		assert.Less(t, below, n, "target cannot exceed every value")
		pr := float64(below) / float64(n) * 100
		assert.Less(t, pr, 100.0)
	}
}
