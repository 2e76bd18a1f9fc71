package bank

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names in ContextBanks.xlsx.
const (
	sheetMetadata      = "ContextMetadata"
	sheetCompatibility = "ContextCompatibility"
	sheetTemplates     = "ContextTemplates"
	sheetStems         = "SentenceStems"
	sheetPresentations = "DataPresentations"
	sheetDurations     = "Durations"
	sheetComparisons   = "ComparisonPhrases"
)

// LoadWorkbook reads every bank sheet from the context banks workbook.
// The metadata and compatibility sheets are required; the rest may be
// empty.
func LoadWorkbook(path string) (Tables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	var t Tables
	if t.Metadata, err = loadMetadataSheet(f); err != nil {
		return Tables{}, fmt.Errorf("sheet %s: %w", sheetMetadata, err)
	}
	if t.Compatibility, err = loadCompatibilitySheet(f); err != nil {
		return Tables{}, fmt.Errorf("sheet %s: %w", sheetCompatibility, err)
	}
	t.Templates = loadTemplateSheet(f)
	t.Stems = loadStemSheet(f)
	t.Presentations = loadPresentationSheet(f)
	t.Durations = loadDurationSheet(f)
	t.Comparisons = loadComparisonSheet(f)

	slog.Info("context banks loaded from workbook",
		"contexts", len(t.Metadata), "templates", len(t.Templates), "stems", len(t.Stems))
	return t, nil
}

func loadMetadataSheet(f *excelize.File) ([]ContextDescriptor, error) {
	rows, err := f.GetRows(sheetMetadata)
	if err != nil {
		return nil, err
	}
	s := newSheet(rows)
	var out []ContextDescriptor
	for _, row := range s.data {
		id := s.cell(row, "ContextID")
		if id == "" {
			continue
		}
		out = append(out, ContextDescriptor{
			ID:           id,
			Name:         s.cell(row, "ContextName"),
			ValueMin:     s.float(row, "ValueMin"),
			ValueMax:     s.float(row, "ValueMax"),
			TypicalMean:  s.float(row, "TypicalMean"),
			Unit:         s.cell(row, "Unit"),
			UnitPosition: UnitPosition(s.cell(row, "UnitPosition")),
			DisplayAs:    DisplayKind(s.cell(row, "DisplayAs")),
			Category:     s.cell(row, "Category"),
			Description:  s.cell(row, "Description"),
		})
	}
	return out, nil
}

func loadCompatibilitySheet(f *excelize.File) ([]CompatibilityRecord, error) {
	rows, err := f.GetRows(sheetCompatibility)
	if err != nil {
		return nil, err
	}
	s := newSheet(rows)
	var out []CompatibilityRecord
	for _, row := range s.data {
		id := s.cell(row, "ContextID")
		if id == "" {
			continue
		}
		out = append(out, CompatibilityRecord{
			ContextID:    id,
			Calculate:    s.boolean(row, "calculate"),
			MissingValue: s.boolean(row, "missing_value"),
			MissingCount: s.boolean(row, "missing_count"),
			Compare:      s.boolean(row, "compare"),
			EffectAdd:    s.boolean(row, "effect_add"),
			EffectRemove: s.boolean(row, "effect_remove"),
			WordProblem:  s.boolean(row, "word_problem"),
			Estimation:   s.boolean(row, "estimation"),
			Notes:        s.cell(row, "Notes"),
		})
	}
	return out, nil
}

func loadTemplateSheet(f *excelize.File) []NarrativeTemplate {
	rows, err := f.GetRows(sheetTemplates)
	if err != nil {
		return nil
	}
	s := newSheet(rows)
	var out []NarrativeTemplate
	for _, row := range s.data {
		id := s.cell(row, "ContextID")
		if id == "" {
			continue
		}
		out = append(out, NarrativeTemplate{
			ContextID:    id,
			Level:        Level(s.cell(row, "Level")),
			Type:         TemplateType(s.cell(row, "TemplateType")),
			Template:     s.cell(row, "Template"),
			UsesName:     s.boolean(row, "UsesName"),
			UsesLocation: s.boolean(row, "UsesLocation"),
			UsesJob:      s.boolean(row, "UsesJob"),
			UsesCourse:   s.boolean(row, "UsesCourse"),
			UsesVenue:    s.boolean(row, "UsesVenue"),
		})
	}
	return out
}

func loadStemSheet(f *excelize.File) []SentenceStem {
	rows, err := f.GetRows(sheetStems)
	if err != nil {
		return nil
	}
	s := newSheet(rows)
	var out []SentenceStem
	for _, row := range s.data {
		id := s.cell(row, "ContextID")
		if id == "" {
			continue
		}
		variation := s.cell(row, "Variation")
		if variation == "" {
			variation = StemAnyVariation
		}
		out = append(out, SentenceStem{
			ContextID: id,
			Type:      StemType(s.cell(row, "StemType")),
			Variation: variation,
			Text:      s.cell(row, "Stem"),
		})
	}
	return out
}

func loadPresentationSheet(f *excelize.File) []DataPresentation {
	rows, err := f.GetRows(sheetPresentations)
	if err != nil {
		return nil
	}
	s := newSheet(rows)
	var out []DataPresentation
	for _, row := range s.data {
		id := s.cell(row, "ContextID")
		if id == "" {
			continue
		}
		out = append(out, DataPresentation{
			ContextID: id,
			Format:    PresentationFormat(s.cell(row, "Format")),
			Label:     s.cell(row, "Label"),
		})
	}
	return out
}

func loadDurationSheet(f *excelize.File) []DurationLabel {
	rows, err := f.GetRows(sheetDurations)
	if err != nil {
		return nil
	}
	s := newSheet(rows)
	var out []DurationLabel
	for _, row := range s.data {
		id := s.cell(row, "ContextID")
		if id == "" {
			continue
		}
		out = append(out, DurationLabel{
			ContextID: id,
			Singular:  s.cell(row, "SingularLabel"),
			Plural:    s.cell(row, "PluralLabel"),
		})
	}
	return out
}

func loadComparisonSheet(f *excelize.File) []ComparisonPhrase {
	rows, err := f.GetRows(sheetComparisons)
	if err != nil {
		return nil
	}
	s := newSheet(rows)
	var out []ComparisonPhrase
	for _, row := range s.data {
		id := s.cell(row, "ContextID")
		if id == "" {
			continue
		}
		out = append(out, ComparisonPhrase{
			ContextID: id,
			Phrase:    s.cell(row, "Phrase"),
		})
	}
	return out
}

// sheet pairs a header index with the data rows beneath it.
type sheet struct {
	cols map[string]int
	data [][]string
}

func newSheet(rows [][]string) sheet {
	s := sheet{cols: make(map[string]int)}
	if len(rows) == 0 {
		return s
	}
	for i, h := range rows[0] {
		s.cols[strings.TrimSpace(h)] = i
	}
	if len(rows) > 1 {
		s.data = rows[1:]
	}
	return s
}

func (s sheet) cell(row []string, column string) string {
	idx, ok := s.cols[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (s sheet) float(row []string, column string) float64 {
	v, err := strconv.ParseFloat(s.cell(row, column), 64)
	if err != nil {
		return 0
	}
	return v
}

// boolean treats "TRUE" (any case) as true; everything else, including
// a missing column, is false.
func (s sheet) boolean(row []string, column string) bool {
	return strings.EqualFold(s.cell(row, column), "TRUE")
}
