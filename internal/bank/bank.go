package bank

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrUnknownContext is returned when a required context id has no
// metadata record.
var ErrUnknownContext = errors.New("unknown context")

type templateKey struct {
	contextID string
	level     Level
}

type stemKey struct {
	contextID string
	stemType  StemType
	variation string
}

// Bank is the indexed, read-only view over the loaded tables. Build it
// once with New; every accessor is pure and side-effect free.
type Bank struct {
	metadata      map[string]ContextDescriptor
	compatibility map[string]CompatibilityRecord
	templates     map[templateKey][]NarrativeTemplate
	stems         map[stemKey][]SentenceStem
	durations     map[string][]DurationLabel
	presentations map[string][]DataPresentation
	comparisons   map[string][]ComparisonPhrase
}

// New indexes the raw tables for O(1) lookup.
func New(tables Tables) *Bank {
	b := &Bank{
		metadata:      make(map[string]ContextDescriptor, len(tables.Metadata)),
		compatibility: make(map[string]CompatibilityRecord, len(tables.Compatibility)),
		templates:     make(map[templateKey][]NarrativeTemplate),
		stems:         make(map[stemKey][]SentenceStem),
		durations:     make(map[string][]DurationLabel),
		presentations: make(map[string][]DataPresentation),
		comparisons:   make(map[string][]ComparisonPhrase),
	}

	for _, m := range tables.Metadata {
		b.metadata[m.ID] = m
	}
	for _, c := range tables.Compatibility {
		b.compatibility[c.ContextID] = c
	}
	for _, t := range tables.Templates {
		k := templateKey{t.ContextID, t.Level}
		b.templates[k] = append(b.templates[k], t)
	}
	for _, s := range tables.Stems {
		variation := s.Variation
		if variation == "" {
			variation = StemAnyVariation
		}
		k := stemKey{s.ContextID, s.Type, variation}
		b.stems[k] = append(b.stems[k], s)
	}
	for _, d := range tables.Durations {
		b.durations[d.ContextID] = append(b.durations[d.ContextID], d)
	}
	for _, p := range tables.Presentations {
		b.presentations[p.ContextID] = append(b.presentations[p.ContextID], p)
	}
	for _, c := range tables.Comparisons {
		b.comparisons[c.ContextID] = append(b.comparisons[c.ContextID], c)
	}

	return b
}

// MetadataFor returns the descriptor for a context id.
func (b *Bank) MetadataFor(contextID string) (ContextDescriptor, error) {
	m, ok := b.metadata[contextID]
	if !ok {
		return ContextDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownContext, contextID)
	}
	return m, nil
}

// IsCompatible reports whether the context supports the variation.
// Contexts without a compatibility record support nothing (fail-closed).
func (b *Bank) IsCompatible(contextID string, v Variation) bool {
	c, ok := b.compatibility[contextID]
	if !ok {
		return false
	}
	return c.Allows(v)
}

// CompatibleContexts returns the ids of every context supporting the
// variation, sorted for deterministic iteration.
func (b *Bank) CompatibleContexts(v Variation) []string {
	var ids []string
	for id, c := range b.compatibility {
		if c.Allows(v) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// TemplatesFor returns all templates for a (context, level) pair, empty
// when none are defined.
func (b *Bank) TemplatesFor(contextID string, level Level) []NarrativeTemplate {
	return slices.Clone(b.templates[templateKey{contextID, level}])
}

// StemsFor returns the stems for the exact (context, type, variation)
// key. Fallback ordering across keys is the assembler's concern.
func (b *Bank) StemsFor(contextID string, stemType StemType, variation string) []SentenceStem {
	return slices.Clone(b.stems[stemKey{contextID, stemType, variation}])
}

// DurationsFor returns the duration labels defined for a context.
func (b *Bank) DurationsFor(contextID string) []DurationLabel {
	return slices.Clone(b.durations[contextID])
}

// PresentationsFor returns the data layout options for a context.
func (b *Bank) PresentationsFor(contextID string) []DataPresentation {
	return slices.Clone(b.presentations[contextID])
}

// ComparisonsFor returns the comparison phrasings for a context.
func (b *Bank) ComparisonsFor(contextID string) []ComparisonPhrase {
	return slices.Clone(b.comparisons[contextID])
}

// Contexts returns every descriptor sorted by id.
func (b *Bank) Contexts() []ContextDescriptor {
	out := make([]ContextDescriptor, 0, len(b.metadata))
	for _, m := range b.metadata {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Compatibility returns the compatibility record for a context, if any.
func (b *Bank) Compatibility(contextID string) (CompatibilityRecord, bool) {
	c, ok := b.compatibility[contextID]
	return c, ok
}
