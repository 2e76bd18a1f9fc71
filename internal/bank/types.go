// Package bank holds the context catalog and template bank: the typed,
// immutable tables that describe every narrative context and the text
// fragments questions are assembled from. Tables are loaded once (from
// the workbook, the JSON cache, or the built-in seed) and only read
// afterward.
package bank

// Variation is a math task shape a context may or may not support.
type Variation string

const (
	VariationCalculate    Variation = "calculate"
	VariationMissingValue Variation = "missing_value"
	VariationMissingCount Variation = "missing_count"
	VariationCompare      Variation = "compare"
	VariationEffectAdd    Variation = "effect_add"
	VariationEffectRemove Variation = "effect_remove"
	VariationWordProblem  Variation = "word_problem"
	VariationEstimation   Variation = "estimation"
)

// AllVariations returns every variation flag in display order.
func AllVariations() []Variation {
	return []Variation{
		VariationCalculate,
		VariationMissingValue,
		VariationMissingCount,
		VariationCompare,
		VariationEffectAdd,
		VariationEffectRemove,
		VariationWordProblem,
		VariationEstimation,
	}
}

// Level is the narrative depth wrapped around the math.
type Level string

const (
	LevelMinimal  Level = "minimal"
	LevelStandard Level = "standard"
	LevelRich     Level = "rich"
)

// TemplateType classifies a narrative fragment.
type TemplateType string

const (
	TemplateIntro      TemplateType = "intro"
	TemplateMotivation TemplateType = "motivation"
	TemplateBackground TemplateType = "background"
	TemplateComplete   TemplateType = "complete"
)

// StemType classifies a sentence stem.
type StemType string

const (
	StemQuestion  StemType = "question_stem"
	StemDataIntro StemType = "data_intro"
)

// StemAnyVariation matches stems usable for every variation.
const StemAnyVariation = "all"

// UnitPosition says which side of the number the unit sits on.
type UnitPosition string

const (
	UnitPrefix UnitPosition = "prefix"
	UnitSuffix UnitPosition = "suffix"
)

// DisplayKind selects the value rendering rule for a context.
type DisplayKind string

const (
	DisplayCurrency    DisplayKind = "currency"
	DisplayThousands   DisplayKind = "thousands"
	DisplayPercent     DisplayKind = "percent"
	DisplayTemperature DisplayKind = "temperature"
	DisplayCount       DisplayKind = "count"
	DisplayLength      DisplayKind = "length"
	DisplayArea        DisplayKind = "area"
	DisplayVolume      DisplayKind = "volume"
	DisplayMass        DisplayKind = "mass"
	DisplayGeneric     DisplayKind = "generic"
)

// ContextDescriptor describes one themed scenario: its realistic value
// range, typical mean, and unit display convention.
type ContextDescriptor struct {
	ID           string       `json:"context_id"`
	Name         string       `json:"context_name"`
	ValueMin     float64      `json:"value_min"`
	ValueMax     float64      `json:"value_max"`
	TypicalMean  float64      `json:"typical_mean"`
	Unit         string       `json:"unit"`
	UnitPosition UnitPosition `json:"unit_position"`
	DisplayAs    DisplayKind  `json:"display_as"`
	Category     string       `json:"category"`
	Description  string       `json:"description"`
}

// CompatibilityRecord says which variations are semantically valid for
// a context. A variation is usable iff its flag is true; contexts with
// no record support nothing.
type CompatibilityRecord struct {
	ContextID    string `json:"context_id"`
	Calculate    bool   `json:"calculate"`
	MissingValue bool   `json:"missing_value"`
	MissingCount bool   `json:"missing_count"`
	Compare      bool   `json:"compare"`
	EffectAdd    bool   `json:"effect_add"`
	EffectRemove bool   `json:"effect_remove"`
	WordProblem  bool   `json:"word_problem"`
	Estimation   bool   `json:"estimation"`
	Notes        string `json:"notes,omitempty"`
}

// Allows reports whether the record permits the given variation.
// Unknown variations are denied.
func (c CompatibilityRecord) Allows(v Variation) bool {
	switch v {
	case VariationCalculate:
		return c.Calculate
	case VariationMissingValue:
		return c.MissingValue
	case VariationMissingCount:
		return c.MissingCount
	case VariationCompare:
		return c.Compare
	case VariationEffectAdd:
		return c.EffectAdd
	case VariationEffectRemove:
		return c.EffectRemove
	case VariationWordProblem:
		return c.WordProblem
	case VariationEstimation:
		return c.Estimation
	default:
		return false
	}
}

// NarrativeTemplate is one independently authored narrative fragment.
// The Uses* flags declare which placeholder categories the fragment
// needs; the assembler resolves exactly those, never guessing from the
// template text.
type NarrativeTemplate struct {
	ContextID    string       `json:"context_id"`
	Level        Level        `json:"level"`
	Type         TemplateType `json:"template_type"`
	Template     string       `json:"template"`
	UsesName     bool         `json:"uses_name,omitempty"`
	UsesLocation bool         `json:"uses_location,omitempty"`
	UsesJob      bool         `json:"uses_job,omitempty"`
	UsesCourse   bool         `json:"uses_course,omitempty"`
	UsesVenue    bool         `json:"uses_venue,omitempty"`
}

// SentenceStem is one interchangeable phrasing for a question prompt or
// data introduction.
type SentenceStem struct {
	ContextID string   `json:"context_id"`
	Type      StemType `json:"stem_type"`
	Variation string   `json:"variation"` // specific variation or "all"
	Text      string   `json:"text"`
}

// DurationLabel names the context's unit of repetition.
type DurationLabel struct {
	ContextID string `json:"context_id"`
	Singular  string `json:"singular"`
	Plural    string `json:"plural"`
}

// PresentationFormat selects how a rich narrative lays out its data.
type PresentationFormat string

const (
	PresentationList   PresentationFormat = "list"
	PresentationTable  PresentationFormat = "table"
	PresentationInline PresentationFormat = "inline"
)

// DataPresentation describes one data layout option for a context. The
// label prefixes each line in list layouts ("Day 1: $42.50").
type DataPresentation struct {
	ContextID string             `json:"context_id"`
	Format    PresentationFormat `json:"format"`
	Label     string             `json:"label,omitempty"`
}

// ComparisonPhrase is a context-specific phrasing for describing the
// change between two periods.
type ComparisonPhrase struct {
	ContextID string `json:"context_id"`
	Phrase    string `json:"phrase"`
}

// Tables is the raw, unindexed bank content as delivered by a loader.
type Tables struct {
	Metadata      []ContextDescriptor   `json:"metadata"`
	Compatibility []CompatibilityRecord `json:"compatibility"`
	Templates     []NarrativeTemplate   `json:"templates"`
	Stems         []SentenceStem        `json:"stems"`
	Durations     []DurationLabel       `json:"durations"`
	Presentations []DataPresentation    `json:"presentations"`
	Comparisons   []ComparisonPhrase    `json:"comparisons"`
}
