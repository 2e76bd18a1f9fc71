// Package narrative assembles leveled math-problem narratives: it
// generates a context-appropriate dataset, renders it with the right
// units, and stitches independently authored template fragments into a
// multi-paragraph story with placeholder substitution.
package narrative

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mbalmer/statgen/internal/bank"
	"github.com/mbalmer/statgen/internal/refdata"
)

// Params selects what to assemble.
type Params struct {
	ContextID  string
	Variation  bank.Variation
	Level      bank.Level
	Difficulty int // 1-5
	Count      int // number of observations
	// Extras are caller-supplied placeholders substituted literally,
	// e.g. "previous_amount" for missing-value backgrounds.
	Extras map[string]string
}

// Narrative is a fully assembled narrative with its generated dataset.
// It is created fresh per Assemble call and never mutated afterward.
type Narrative struct {
	ContextID        string
	Level            bank.Level
	Intro            string
	Background       string
	Motivation       string
	DataPresentation string
	QuestionStem     string
	FullText         string

	Dataset    []float64
	Variation  bank.Variation
	Difficulty int
}

// Assembler builds narratives from the bank, reference data, and a
// dataset generator, all sharing one random stream.
type Assembler struct {
	bank     *bank.Bank
	ref      *refdata.Provider
	datasets *DatasetGenerator
	format   *Formatter
	rng      *rand.Rand
}

// NewAssembler wires an assembler over the given bank and reference
// data. All random draws come from rng.
func NewAssembler(b *bank.Bank, ref *refdata.Provider, rng *rand.Rand) *Assembler {
	return &Assembler{
		bank:     b,
		ref:      ref,
		datasets: NewDatasetGenerator(b, rng),
		format:   NewFormatter(b),
		rng:      rng,
	}
}

// Datasets exposes the assembler's dataset generator so variation
// generators share the same random stream.
func (a *Assembler) Datasets() *DatasetGenerator { return a.datasets }

// Formatter exposes the assembler's value formatter.
func (a *Assembler) Formatter() *Formatter { return a.format }

// Assemble builds a narrative for the given parameters. Preconditions
// are checked in order: variation compatibility first (an incompatible
// pair never generates a dataset), then template availability.
func (a *Assembler) Assemble(p Params) (*Narrative, error) {
	if !a.bank.IsCompatible(p.ContextID, p.Variation) {
		return nil, fmt.Errorf("%w: context %q, variation %q",
			ErrIncompatibleVariation, p.ContextID, p.Variation)
	}

	templates := a.bank.TemplatesFor(p.ContextID, p.Level)
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: context %q, level %q",
			ErrMissingTemplate, p.ContextID, p.Level)
	}

	switch p.Level {
	case bank.LevelMinimal:
		return a.assembleMinimal(p, templates)
	case bank.LevelStandard:
		return a.assembleStandard(p, templates)
	case bank.LevelRich:
		return a.assembleRich(p, templates)
	default:
		return nil, fmt.Errorf("%w: unknown level %q", ErrInvalidParameter, p.Level)
	}
}

// assembleMinimal fills a single "complete" template with the inline
// dataset, question stem, and duration.
func (a *Assembler) assembleMinimal(p Params, templates []bank.NarrativeTemplate) (*Narrative, error) {
	complete := filterTemplates(templates, bank.TemplateComplete)
	if len(complete) == 0 {
		return nil, fmt.Errorf("%w: context %q has no complete template at minimal level",
			ErrMissingTemplate, p.ContextID)
	}
	tmpl := choose(a.rng, complete)

	dataset, err := a.datasets.Generate(p.ContextID, p.Difficulty, p.Count)
	if err != nil {
		return nil, err
	}
	formatted, err := a.formatInline(dataset, p.ContextID)
	if err != nil {
		return nil, err
	}

	question := a.questionStem(p.ContextID, p.Variation)
	duration := a.durationLabel(p.ContextID, p.Count)

	text := a.fillPlaceholders(tmpl, mergeExtras(p.Extras, map[string]string{
		"data":     formatted,
		"question": question,
		"duration": duration,
		"n":        fmt.Sprintf("%d", p.Count),
	}))

	return &Narrative{
		ContextID:    p.ContextID,
		Level:        bank.LevelMinimal,
		Intro:        text,
		QuestionStem: question,
		FullText:     text,
		Dataset:      dataset,
		Variation:    p.Variation,
		Difficulty:   p.Difficulty,
	}, nil
}

// assembleStandard joins a mandatory intro, an optional motivation, the
// data introduction phrase with the inline dataset, and a question stem.
func (a *Assembler) assembleStandard(p Params, templates []bank.NarrativeTemplate) (*Narrative, error) {
	intros := filterTemplates(templates, bank.TemplateIntro)
	if len(intros) == 0 {
		return nil, fmt.Errorf("%w: context %q has no intro template at standard level",
			ErrMissingTemplate, p.ContextID)
	}
	introTmpl := choose(a.rng, intros)

	dataset, err := a.datasets.Generate(p.ContextID, p.Difficulty, p.Count)
	if err != nil {
		return nil, err
	}
	formatted, err := a.formatInline(dataset, p.ContextID)
	if err != nil {
		return nil, err
	}

	duration := a.durationLabel(p.ContextID, p.Count)
	question := a.questionStem(p.ContextID, p.Variation)
	dataIntro := a.dataIntroStem(p.ContextID, p.Variation)

	intro := a.fillPlaceholders(introTmpl, mergeExtras(p.Extras, map[string]string{
		"duration": duration,
		"n":        fmt.Sprintf("%d", p.Count),
	}))

	var motivation string
	if motivations := filterTemplates(templates, bank.TemplateMotivation); len(motivations) > 0 {
		motivation = a.fillPlaceholders(choose(a.rng, motivations), p.Extras)
	}

	dataPresentation := dataIntro + " " + formatted

	parts := []string{intro}
	if motivation != "" {
		parts = append(parts, motivation)
	}
	parts = append(parts, dataPresentation, question)

	return &Narrative{
		ContextID:        p.ContextID,
		Level:            bank.LevelStandard,
		Intro:            intro,
		Motivation:       motivation,
		DataPresentation: dataPresentation,
		QuestionStem:     question,
		FullText:         strings.Join(parts, "\n\n"),
		Dataset:          dataset,
		Variation:        p.Variation,
		Difficulty:       p.Difficulty,
	}, nil
}

// assembleRich joins optional intro/background/motivation fragments with
// a per-item data layout and a question stem. The background may consume
// a caller-supplied previous_amount extra.
func (a *Assembler) assembleRich(p Params, templates []bank.NarrativeTemplate) (*Narrative, error) {
	dataset, err := a.datasets.Generate(p.ContextID, p.Difficulty, p.Count)
	if err != nil {
		return nil, err
	}

	duration := a.durationLabel(p.ContextID, p.Count)
	question := a.questionStem(p.ContextID, p.Variation)

	dataPresentation, err := a.formatRich(p.ContextID, dataset, duration)
	if err != nil {
		return nil, err
	}

	var intro, background, motivation string
	if intros := filterTemplates(templates, bank.TemplateIntro); len(intros) > 0 {
		intro = a.fillPlaceholders(choose(a.rng, intros), mergeExtras(p.Extras, map[string]string{
			"duration": duration,
			"n":        fmt.Sprintf("%d", p.Count),
		}))
	}
	if backgrounds := filterTemplates(templates, bank.TemplateBackground); len(backgrounds) > 0 {
		background = a.fillPlaceholders(choose(a.rng, backgrounds), p.Extras)
	}
	if motivations := filterTemplates(templates, bank.TemplateMotivation); len(motivations) > 0 {
		motivation = a.fillPlaceholders(choose(a.rng, motivations), p.Extras)
	}

	var parts []string
	for _, part := range []string{intro, background, motivation} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	parts = append(parts, dataPresentation, question)

	return &Narrative{
		ContextID:        p.ContextID,
		Level:            bank.LevelRich,
		Intro:            intro,
		Background:       background,
		Motivation:       motivation,
		DataPresentation: dataPresentation,
		QuestionStem:     question,
		FullText:         strings.Join(parts, "\n\n"),
		Dataset:          dataset,
		Variation:        p.Variation,
		Difficulty:       p.Difficulty,
	}, nil
}

// fillPlaceholders resolves exactly the placeholder categories the
// template declares, then substitutes the extras literally.
func (a *Assembler) fillPlaceholders(tmpl bank.NarrativeTemplate, extras map[string]string) string {
	text := tmpl.Template

	if tmpl.UsesName {
		name := a.ref.SampleName()
		text = strings.ReplaceAll(text, "{name}", name.FullName)

		// Pronouns are derived from the sampled honorific: "Mr." and
		// "Dr." map to he/his, everything else to she/her. This
		// conflates honorific with gender and is a deliberate product
		// simplification carried over from the source material, not a
		// bug to fix locally.
		pronoun, possessive := "she", "her"
		if name.Title == "Mr." || name.Title == "Dr." {
			pronoun, possessive = "he", "his"
		}
		text = strings.ReplaceAll(text, "{pronoun_possessive}", possessive)
		text = strings.ReplaceAll(text, "{pronoun}", pronoun)
	}
	if tmpl.UsesLocation {
		text = strings.ReplaceAll(text, "{city}", a.ref.SampleCity().City)
	}
	if tmpl.UsesVenue {
		text = strings.ReplaceAll(text, "{venue}", a.ref.SampleVenue())
	}
	if tmpl.UsesJob {
		text = strings.ReplaceAll(text, "{job}", a.ref.SampleJob())
	}
	if tmpl.UsesCourse {
		text = strings.ReplaceAll(text, "{course}", a.ref.SampleCourse())
	}

	for key, value := range extras {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}

// questionStem resolves a question prompt with fallback: context and
// variation specific, then context "all", then a fixed generic phrase
// per variation, then the hardcoded default.
func (a *Assembler) questionStem(contextID string, variation bank.Variation) string {
	stems := a.bank.StemsFor(contextID, bank.StemQuestion, string(variation))
	if len(stems) == 0 {
		stems = a.bank.StemsFor(contextID, bank.StemQuestion, bank.StemAnyVariation)
	}
	if len(stems) > 0 {
		return choose(a.rng, stems).Text
	}

	switch variation {
	case bank.VariationCalculate:
		return "Calculate the mean."
	case bank.VariationMissingValue:
		return "Find the missing value needed."
	case bank.VariationCompare:
		return "Compare the means."
	default:
		return "Answer the question."
	}
}

// dataIntroStem resolves the data introduction phrase, preferring the
// "all" pool, then variation-specific, then the fixed default.
func (a *Assembler) dataIntroStem(contextID string, variation bank.Variation) string {
	stems := a.bank.StemsFor(contextID, bank.StemDataIntro, bank.StemAnyVariation)
	if len(stems) == 0 {
		stems = a.bank.StemsFor(contextID, bank.StemDataIntro, string(variation))
	}
	if len(stems) == 0 {
		return "The values recorded were:"
	}
	return choose(a.rng, stems).Text
}

// durationLabel renders "7 shifts" from the context's duration labels,
// or "7 values" when the context defines none.
func (a *Assembler) durationLabel(contextID string, n int) string {
	durations := a.bank.DurationsFor(contextID)
	if len(durations) == 0 {
		return fmt.Sprintf("%d values", n)
	}
	d := choose(a.rng, durations)
	if n == 1 {
		return fmt.Sprintf("1 %s", d.Singular)
	}
	return fmt.Sprintf("%d %s", n, d.Plural)
}

// formatInline renders the dataset as a comma-joined list of formatted
// values.
func (a *Assembler) formatInline(dataset []float64, contextID string) (string, error) {
	parts := make([]string, len(dataset))
	for i, v := range dataset {
		s, err := a.format.Format(v, contextID)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// formatRich renders the dataset using the context's preferred rich
// layout: one labeled line per observation for list layouts, otherwise
// a duration-prefixed inline list.
func (a *Assembler) formatRich(contextID string, dataset []float64, duration string) (string, error) {
	presentations := a.bank.PresentationsFor(contextID)

	// Prefer list or table layouts at the rich level.
	var candidates []bank.DataPresentation
	for _, p := range presentations {
		if p.Format == bank.PresentationList || p.Format == bank.PresentationTable {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		candidates = presentations
	}

	inline, err := a.formatInline(dataset, contextID)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "Values: " + inline, nil
	}

	spec := choose(a.rng, candidates)
	if spec.Format != bank.PresentationList {
		return duration + ": " + inline, nil
	}

	label := spec.Label
	if label == "" {
		label = "Day"
	}
	lines := make([]string, len(dataset))
	for i, v := range dataset {
		s, err := a.format.Format(v, contextID)
		if err != nil {
			return "", err
		}
		lines[i] = fmt.Sprintf("%s %d: %s", label, i+1, s)
	}
	return strings.Join(lines, "\n"), nil
}

func filterTemplates(templates []bank.NarrativeTemplate, t bank.TemplateType) []bank.NarrativeTemplate {
	var out []bank.NarrativeTemplate
	for _, tmpl := range templates {
		if tmpl.Type == t {
			out = append(out, tmpl)
		}
	}
	return out
}

// choose picks one element uniformly. Callers guarantee a non-empty set.
func choose[T any](rng *rand.Rand, set []T) T {
	return set[rng.Intn(len(set))]
}

func mergeExtras(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
