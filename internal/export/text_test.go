package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalmer/statgen/internal/question"
)

func testAssessment() *question.Assessment {
	a := question.NewAssessment("Statistics Unit Test", "Statistics", []*question.Question{
		{
			ID:            "STAT_00001",
			TotalMarks:    1,
			QuestionText:  "Calculate the mean of 2, 4, 6.",
			Answer:        "4.0",
			SolutionSteps: []string{"Sum: 2 + 4 + 6 = 12", "Mean: 12 ÷ 3 = 4.0"},
			Outcomes:      []string{"12E5.S.1"},
		},
		{
			ID:           "STAT_00002",
			TotalMarks:   2,
			QuestionText: "Two-part outlier question.",
			Parts: []question.Part{
				{Letter: "a", Answer: "31.5 points", SolutionSteps: []string{"a) mean step"}},
				{Letter: "b", Answer: "30.0 points", SolutionSteps: []string{"b) trim step"}},
			},
			Outcomes: []string{"12E5.S.1"},
		},
	})
	a.DateGenerated = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return a
}

func TestTextRender(t *testing.T) {
	a := testAssessment()

	var out strings.Builder
	require.NoError(t, NewTextRenderer().Render(&out, a))
	text := out.String()

	assert.Contains(t, text, "Statistics Unit Test")
	assert.Contains(t, text, "Total marks: 3")
	assert.Contains(t, text, "Estimated time: 6 minutes")
	assert.Contains(t, text, "Date: 2026-03-14")
	assert.Contains(t, text, "Question 1 [1 mark]")
	assert.Contains(t, text, "Question 2 [2 marks]")

	assert.Contains(t, text, "ANSWER KEY")
	assert.Contains(t, text, "Answer: 4.0")
	assert.Contains(t, text, "a) 31.5 points")
	assert.Contains(t, text, "b) 30.0 points")
}

func TestTextRender_NoAnswerKey(t *testing.T) {
	a := testAssessment()
	a.IncludeAnswerKey = false

	var out strings.Builder
	require.NoError(t, NewTextRenderer().Render(&out, a))
	text := out.String()

	assert.NotContains(t, text, "ANSWER KEY")
	assert.NotContains(t, text, "Answer: 4.0")
}

func TestTextRender_WorkSpace(t *testing.T) {
	a := testAssessment()

	var withSpace strings.Builder
	require.NoError(t, NewTextRenderer().Render(&withSpace, a))
	assert.Contains(t, withSpace.String(), "____")

	a.IncludeWorkSpace = false
	var without strings.Builder
	require.NoError(t, NewTextRenderer().Render(&without, a))
	assert.NotContains(t, without.String(), "____")
}

func TestTextRender_ShowOutcomes(t *testing.T) {
	a := testAssessment()
	a.ShowOutcomes = true

	var out strings.Builder
	require.NoError(t, NewTextRenderer().Render(&out, a))
	assert.Contains(t, out.String(), "Outcomes: 12E5.S.1")
}
