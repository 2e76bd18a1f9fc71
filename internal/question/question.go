// Package question defines the question and assessment models shared by
// every generator: a universal question shape with optional multi-part
// structure, plus an assessment that rolls questions up into a test.
package question

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type classifies the cognitive shape of a question.
type Type string

const (
	TypeCalculation    Type = "calculation"
	TypeMultiStep      Type = "multi_step"
	TypeJustification  Type = "justification"
	TypeIdentification Type = "identification"
	TypeMixed          Type = "mixed"
)

// AnswerFormat says what shape of answer the marker should expect.
type AnswerFormat string

const (
	FormatNumeric         AnswerFormat = "numeric"
	FormatNumericWithUnit AnswerFormat = "numeric_unit"
	FormatText            AnswerFormat = "text"
	FormatMultipleValues  AnswerFormat = "multiple_values"
)

// Part is one lettered part of a multi-part question.
type Part struct {
	Letter        string
	Instruction   string
	Marks         float64
	Answer        string
	AnswerFormat  AnswerFormat
	SolutionSteps []string
}

// Question is the universal question model. Single-part questions carry
// their answer directly; multi-part questions carry it in Parts.
type Question struct {
	ID       string
	Unit     string
	Outcomes []string
	Type     Type

	Difficulty    int // 1-5
	TotalMarks    int
	MarkBreakdown map[string]float64

	Context      string
	QuestionText string
	GivenData    map[string]any

	Parts []Part

	Answer        string
	AnswerFormat  AnswerFormat
	SolutionSteps []string

	ContextTemplateID  string
	RequiresCalculator bool
}

// NewID builds a question ID like "STAT_48271" from the unit name and a
// random five-digit suffix.
func NewID(rng *rand.Rand, unit string) string {
	code := strings.ToUpper(unit)
	if len(code) > 4 {
		code = code[:4]
	}
	return fmt.Sprintf("%s_%05d", code, rng.Intn(100000))
}

// MarksDisplay renders "[1 mark]" or "[N marks]".
func (q *Question) MarksDisplay() string {
	if q.TotalMarks == 1 {
		return "[1 mark]"
	}
	return fmt.Sprintf("[%d marks]", q.TotalMarks)
}

// OutcomesDisplay joins the outcome codes for headers and footers.
func (q *Question) OutcomesDisplay() string {
	return strings.Join(q.Outcomes, ", ")
}

// Assessment is a complete generated test.
type Assessment struct {
	Title     string
	Unit      string
	VersionID string

	Questions []*Question

	DateGenerated        time.Time
	TotalMarks           int
	EstimatedTimeMinutes int

	IncludeAnswerKey bool
	IncludeWorkSpace bool
	ShowOutcomes     bool
}

// NewAssessment builds an assessment over questions and computes the
// derived totals. Time is estimated at roughly three minutes per
// question.
func NewAssessment(title, unit string, questions []*Question) *Assessment {
	a := &Assessment{
		Title:            title,
		Unit:             unit,
		VersionID:        uuid.NewString(),
		Questions:        questions,
		DateGenerated:    time.Now(),
		IncludeAnswerKey: true,
		IncludeWorkSpace: true,
	}
	a.Recompute()
	return a
}

// Recompute refreshes the derived totals after the question list
// changes.
func (a *Assessment) Recompute() {
	total := 0
	for _, q := range a.Questions {
		total += q.TotalMarks
	}
	a.TotalMarks = total
	a.EstimatedTimeMinutes = len(a.Questions) * 3
}

// OutcomeCoverage counts questions per outcome code.
func (a *Assessment) OutcomeCoverage() map[string]int {
	counts := make(map[string]int)
	for _, q := range a.Questions {
		for _, outcome := range q.Outcomes {
			counts[outcome]++
		}
	}
	return counts
}

// DifficultyDistribution counts questions per difficulty level.
func (a *Assessment) DifficultyDistribution() map[int]int {
	counts := make(map[int]int)
	for _, q := range a.Questions {
		counts[q.Difficulty]++
	}
	return counts
}

// TypeDistribution counts questions per question type.
func (a *Assessment) TypeDistribution() map[Type]int {
	counts := make(map[Type]int)
	for _, q := range a.Questions {
		counts[q.Type]++
	}
	return counts
}

// OutcomesCovered returns the sorted set of outcome codes across all
// questions.
func (a *Assessment) OutcomesCovered() []string {
	coverage := a.OutcomeCoverage()
	outcomes := make([]string, 0, len(coverage))
	for outcome := range coverage {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)
	return outcomes
}
