// Package generators produces complete, marked statistics questions.
// Each generator owns one question family and builds its prose through
// the narrative engine or its own context templates, its numbers through
// the stats package, and its result as a question.Question with a full
// solution trace.
package generators

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mbalmer/statgen/internal/bank"
	"github.com/mbalmer/statgen/internal/narrative"
	"github.com/mbalmer/statgen/internal/question"
	"github.com/mbalmer/statgen/internal/refdata"
	"github.com/mbalmer/statgen/internal/stats"
)

// MeanGenerator builds mean questions in four variations: calculate,
// missing_value, missing_count, and compare. Narratives come from the
// assembly engine, so every compatible context and level is available.
type MeanGenerator struct {
	bank      *bank.Bank
	assembler *narrative.Assembler
	ref       *refdata.Provider
	rng       *rand.Rand
}

// NewMeanGenerator wires a mean generator over the shared engine state.
func NewMeanGenerator(b *bank.Bank, asm *narrative.Assembler, ref *refdata.Provider, rng *rand.Rand) *MeanGenerator {
	return &MeanGenerator{bank: b, assembler: asm, ref: ref, rng: rng}
}

// MeanParams selects what to generate. An empty ContextID picks a
// random compatible context; zero Marks uses the variation's default.
type MeanParams struct {
	Variation  bank.Variation
	Difficulty int
	ContextID  string
	Level      bank.Level
	Marks      int
}

// Generate routes to the variation generator, picking a compatible
// context first when none was requested.
func (g *MeanGenerator) Generate(p MeanParams) (*question.Question, error) {
	if p.Level == "" {
		p.Level = bank.LevelStandard
	}
	if p.ContextID == "" {
		compatible := g.bank.CompatibleContexts(p.Variation)
		if len(compatible) == 0 {
			return nil, fmt.Errorf("%w: no context supports variation %q",
				narrative.ErrIncompatibleVariation, p.Variation)
		}
		p.ContextID = compatible[g.rng.Intn(len(compatible))]
	}

	switch p.Variation {
	case bank.VariationCalculate:
		return g.generateCalculate(p, defaultMarks(p.Marks, 1))
	case bank.VariationMissingValue:
		return g.generateMissingValue(p, defaultMarks(p.Marks, 2))
	case bank.VariationMissingCount:
		return g.generateMissingCount(p, defaultMarks(p.Marks, 2))
	case bank.VariationCompare:
		return g.generateCompare(p, defaultMarks(p.Marks, 2))
	default:
		return nil, fmt.Errorf("%w: variation %q not implemented",
			narrative.ErrInvalidParameter, p.Variation)
	}
}

func defaultMarks(marks, fallback int) int {
	if marks > 0 {
		return marks
	}
	return fallback
}

// generateCalculate builds the plain "find the mean" question over a
// narrative-wrapped dataset.
func (g *MeanGenerator) generateCalculate(p MeanParams, marks int) (*question.Question, error) {
	var n int
	switch {
	case p.Difficulty == 1:
		n = 5 + g.rng.Intn(3) // 5-7
	case p.Difficulty == 2:
		n = 7 + g.rng.Intn(4) // 7-10
	case p.Difficulty == 3:
		n = 8 + g.rng.Intn(5) // 8-12
	default:
		n = 10 + g.rng.Intn(6) // 10-15
	}

	nar, err := g.assembler.Assemble(narrative.Params{
		ContextID:  p.ContextID,
		Variation:  bank.VariationCalculate,
		Level:      p.Level,
		Difficulty: p.Difficulty,
		Count:      n,
	})
	if err != nil {
		return nil, err
	}

	dataset := nar.Dataset
	mean := stats.Mean(dataset)
	answer, err := g.assembler.Formatter().Format(mean, p.ContextID)
	if err != nil {
		return nil, err
	}

	sum := stats.Sum(dataset)
	steps := []string{
		fmt.Sprintf("Dataset: %s", joinValues(dataset, ", ")),
		fmt.Sprintf("Sum: %s = %.2f", joinValues(dataset, " + "), sum),
		fmt.Sprintf("Count: %d", len(dataset)),
		fmt.Sprintf("Mean: %.2f ÷ %d = %.2f", sum, len(dataset), mean),
		fmt.Sprintf("Answer: %s", answer),
	}

	return &question.Question{
		ID:            question.NewID(g.rng, "Statistics"),
		Unit:          "Statistics",
		Outcomes:      []string{"12E5.S.1"},
		Type:          question.TypeCalculation,
		Difficulty:    p.Difficulty,
		TotalMarks:    marks,
		MarkBreakdown: map[string]float64{"calculation": float64(marks)},
		Context:       nar.Intro,
		QuestionText:  nar.FullText,
		GivenData: map[string]any{
			"dataset":    dataset,
			"context_id": p.ContextID,
			"variation":  string(bank.VariationCalculate),
			"level":      string(p.Level),
		},
		Answer:             answer,
		AnswerFormat:       question.FormatNumericWithUnit,
		SolutionSteps:      steps,
		ContextTemplateID:  p.ContextID,
		RequiresCalculator: true,
	}, nil
}

// generateMissingValue builds the "what value is needed next" question:
// existing values plus a nice-rounded target mean strictly above the
// current one, with the required value derived exactly and left
// unclamped even when it exceeds the context's realistic range.
func (g *MeanGenerator) generateMissingValue(p MeanParams, marks int) (*question.Question, error) {
	var existing int
	switch {
	case p.Difficulty <= 2:
		existing = 4 + g.rng.Intn(2) // 4-5
	case p.Difficulty == 3:
		existing = 5 + g.rng.Intn(3) // 5-7
	default:
		existing = 7 + g.rng.Intn(4) // 7-10
	}

	partial, err := g.assembler.Datasets().Generate(p.ContextID, p.Difficulty, existing)
	if err != nil {
		return nil, err
	}
	existingMean := stats.Mean(partial)

	var target float64
	if p.Difficulty <= 2 {
		target = existingMean + 2 + g.rng.Float64()*8
	} else {
		target = existingMean + 5 + g.rng.Float64()*15
	}
	target = narrative.NiceRound(target)
	// Rounding can pull the target back under the current mean; the
	// question only makes sense when the next value must push it up.
	for target <= existingMean {
		target = narrative.NiceRound(target + 5)
	}

	existingSum := stats.Sum(partial)
	totalNeeded := target * float64(existing+1)
	missing := totalNeeded - existingSum

	fmtr := g.assembler.Formatter()
	targetStr, err := fmtr.Format(target, p.ContextID)
	if err != nil {
		return nil, err
	}
	answer, err := fmtr.Format(missing, p.ContextID)
	if err != nil {
		return nil, err
	}

	name := g.ref.SampleName()
	intro := fmt.Sprintf("%s wants to achieve a mean of %s.", name.FullName, targetStr)

	display := make([]string, len(partial))
	for i, v := range partial {
		display[i], _ = fmtr.Format(v, p.ContextID)
	}

	text := fmt.Sprintf(
		"%s\n\nOver %d periods, the values were:\n%s\n\nTo achieve a mean of %s over %d periods, what value is needed next?",
		intro, existing, strings.Join(display, ", "), targetStr, existing+1)

	steps := []string{
		fmt.Sprintf("Target mean: %.2f", target),
		fmt.Sprintf("Total periods: %d", existing+1),
		fmt.Sprintf("Total needed: %.2f × %d = %.2f", target, existing+1, totalNeeded),
		fmt.Sprintf("Already have: %s = %.2f", joinValues2(partial, " + "), existingSum),
		fmt.Sprintf("Still need: %.2f - %.2f = %.2f", totalNeeded, existingSum, missing),
		fmt.Sprintf("Answer: %s", answer),
	}

	return &question.Question{
		ID:         question.NewID(g.rng, "Statistics"),
		Unit:       "Statistics",
		Outcomes:   []string{"12E5.S.1"},
		Type:       question.TypeCalculation,
		Difficulty: p.Difficulty,
		TotalMarks: marks,
		MarkBreakdown: map[string]float64{
			"understanding": float64(marks) / 2,
			"calculation":   float64(marks) / 2,
		},
		Context:      intro,
		QuestionText: text,
		GivenData: map[string]any{
			"existing_values": partial,
			"target_mean":     target,
			"missing_value":   missing,
			"context_id":      p.ContextID,
			"variation":       string(bank.VariationMissingValue),
			"level":           string(p.Level),
		},
		Answer:             answer,
		AnswerFormat:       question.FormatNumericWithUnit,
		SolutionSteps:      steps,
		ContextTemplateID:  p.ContextID,
		RequiresCalculator: true,
	}, nil
}

// generateMissingCount builds the "how many values" inversion: the mean
// is nice-rounded and the sum recomputed from it, so count = sum ÷ mean
// divides exactly.
func (g *MeanGenerator) generateMissingCount(p MeanParams, marks int) (*question.Question, error) {
	var n int
	if p.Difficulty <= 2 {
		n = 5 + g.rng.Intn(6) // 5-10
	} else {
		n = 10 + g.rng.Intn(11) // 10-20
	}

	dataset, err := g.assembler.Datasets().Generate(p.ContextID, p.Difficulty, n)
	if err != nil {
		return nil, err
	}

	mean := narrative.NiceRound(stats.Mean(dataset))
	sum := mean * float64(n)

	fmtr := g.assembler.Formatter()
	meanStr, err := fmtr.Format(mean, p.ContextID)
	if err != nil {
		return nil, err
	}
	sumStr, _ := fmtr.Format(sum, p.ContextID)

	intro := fmt.Sprintf("A set of values has a mean of %s.", meanStr)
	text := fmt.Sprintf("%s\n\nThe sum of all values is %s.\n\nHow many values are in the dataset?",
		intro, sumStr)

	steps := []string{
		fmt.Sprintf("Mean = %.2f", mean),
		fmt.Sprintf("Sum = %.2f", sum),
		"Formula: Count = Sum ÷ Mean",
		fmt.Sprintf("Count = %.2f ÷ %.2f", sum, mean),
		fmt.Sprintf("Count = %d", n),
		fmt.Sprintf("Answer: %d values", n),
	}

	return &question.Question{
		ID:         question.NewID(g.rng, "Statistics"),
		Unit:       "Statistics",
		Outcomes:   []string{"12E5.S.1"},
		Type:       question.TypeCalculation,
		Difficulty: p.Difficulty,
		TotalMarks: marks,
		MarkBreakdown: map[string]float64{
			"understanding": float64(marks) / 2,
			"calculation":   float64(marks) / 2,
		},
		Context:      intro,
		QuestionText: text,
		GivenData: map[string]any{
			"mean":       mean,
			"sum":        sum,
			"count":      n,
			"context_id": p.ContextID,
			"variation":  string(bank.VariationMissingCount),
			"level":      string(p.Level),
		},
		Answer:             fmt.Sprintf("%d values", n),
		AnswerFormat:       question.FormatText,
		SolutionSteps:      steps,
		ContextTemplateID:  p.ContextID,
		RequiresCalculator: true,
	}, nil
}

// generateCompare builds the two-period comparison with a strict
// increase/decrease/no-change verdict.
func (g *MeanGenerator) generateCompare(p MeanParams, marks int) (*question.Question, error) {
	var n int
	if p.Difficulty <= 2 {
		n = 5 + g.rng.Intn(3) // 5-7
	} else {
		n = 8 + g.rng.Intn(5) // 8-12
	}

	datasets := g.assembler.Datasets()
	first, err := datasets.Generate(p.ContextID, p.Difficulty, n)
	if err != nil {
		return nil, err
	}
	second, err := datasets.Generate(p.ContextID, p.Difficulty, n)
	if err != nil {
		return nil, err
	}

	mean1 := stats.Mean(first)
	mean2 := stats.Mean(second)

	var verdict string
	var change float64
	switch {
	case mean1 > mean2:
		verdict = "INCREASE"
		change = mean1 - mean2
	case mean2 > mean1:
		verdict = "DECREASE"
		change = mean2 - mean1
	default:
		verdict = "NO CHANGE"
	}

	meta, err := g.bank.MetadataFor(p.ContextID)
	if err != nil {
		return nil, err
	}

	fmtr := g.assembler.Formatter()
	format := func(values []float64) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i], _ = fmtr.Format(v, p.ContextID)
		}
		return strings.Join(parts, ", ")
	}

	// Prefer the context's own phrasing for part b.
	partB := "Did the mean increase, decrease, or stay the same from Period 1 to Period 2?"
	if phrases := g.bank.ComparisonsFor(p.ContextID); len(phrases) > 0 {
		partB = phrases[g.rng.Intn(len(phrases))].Phrase
	}

	intro := fmt.Sprintf("Comparing two sets of %s:", strings.ToLower(meta.Name))
	text := fmt.Sprintf(
		"%s\n\nPeriod 1:\n%s\n\nPeriod 2:\n%s\n\na) Calculate the mean for each period.\nb) %s",
		intro, format(first), format(second), partB)

	steps := []string{
		fmt.Sprintf("Period 1 mean: %.2f ÷ %d = %.2f", stats.Sum(first), len(first), mean1),
		fmt.Sprintf("Period 2 mean: %.2f ÷ %d = %.2f", stats.Sum(second), len(second), mean2),
		fmt.Sprintf("Comparison: %s", verdict),
	}
	if change > 0 {
		steps = append(steps, fmt.Sprintf("Change: %.2f", change))
	} else {
		steps = append(steps, "No change")
	}

	mean1Str, _ := fmtr.Format(mean1, p.ContextID)
	mean2Str, _ := fmtr.Format(mean2, p.ContextID)
	answer := fmt.Sprintf("Period 1: %s, Period 2: %s, %s", mean1Str, mean2Str, verdict)

	return &question.Question{
		ID:         question.NewID(g.rng, "Statistics"),
		Unit:       "Statistics",
		Outcomes:   []string{"12E5.S.1"},
		Type:       question.TypeMultiStep,
		Difficulty: p.Difficulty,
		TotalMarks: marks,
		MarkBreakdown: map[string]float64{
			"calculation": float64(marks) / 2,
			"comparison":  float64(marks) / 2,
		},
		Context:      intro,
		QuestionText: text,
		GivenData: map[string]any{
			"dataset1":   first,
			"dataset2":   second,
			"context_id": p.ContextID,
			"variation":  string(bank.VariationCompare),
			"level":      string(p.Level),
		},
		Answer:             answer,
		AnswerFormat:       question.FormatText,
		SolutionSteps:      steps,
		ContextTemplateID:  p.ContextID,
		RequiresCalculator: true,
	}, nil
}

// joinValues renders values rounded to 2 decimals without trailing
// zeros, matching how datasets are echoed in solution traces.
func joinValues(values []float64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = trimFloat(v)
	}
	return strings.Join(parts, sep)
}

// joinValues2 renders values with fixed 2-decimal precision.
func joinValues2(values []float64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, sep)
}

// trimFloat drops a trailing ".00" so whole numbers read naturally.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
