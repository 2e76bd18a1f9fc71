// Package blueprint reads assessment blueprints: YAML documents that
// describe which questions a built test should contain.
package blueprint

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidBlueprint marks a blueprint that parsed but fails
// validation.
var ErrInvalidBlueprint = errors.New("invalid blueprint")

// Item describes one question to generate.
type Item struct {
	// Family is the generator family: mean, mean_median_mode,
	// trimmed_mean, weighted_mean, percentile_rank.
	Family string `yaml:"family"`
	// Variation applies to the mean family (calculate, missing_value,
	// missing_count, compare).
	Variation string `yaml:"variation,omitempty"`
	// Kind applies to weighted_mean (percentage, frequency) and
	// percentile_rank (calculation, conceptual).
	Kind       string `yaml:"kind,omitempty"`
	Context    string `yaml:"context,omitempty"`
	Level      string `yaml:"level,omitempty"`
	Difficulty int    `yaml:"difficulty"`
	Marks      int    `yaml:"marks,omitempty"`
	// Repeat generates this item N times; zero means once.
	Repeat int `yaml:"repeat,omitempty"`
}

// Blueprint is a full assessment description.
type Blueprint struct {
	Title string `yaml:"title"`
	Unit  string `yaml:"unit"`
	Seed  int64  `yaml:"seed,omitempty"`

	IncludeAnswerKey *bool `yaml:"include_answer_key,omitempty"`
	IncludeWorkSpace *bool `yaml:"include_work_space,omitempty"`
	ShowOutcomes     bool  `yaml:"show_outcomes,omitempty"`

	Questions []Item `yaml:"questions"`
}

var validFamilies = map[string]bool{
	"mean":             true,
	"mean_median_mode": true,
	"trimmed_mean":     true,
	"weighted_mean":    true,
	"percentile_rank":  true,
}

// Load reads and validates a blueprint file.
func Load(path string) (*Blueprint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blueprint %s: %w", path, err)
	}
	var bp Blueprint
	if err := yaml.Unmarshal(raw, &bp); err != nil {
		return nil, fmt.Errorf("parse blueprint %s: %w", path, err)
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Validate checks structural requirements before generation starts.
func (b *Blueprint) Validate() error {
	if b.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidBlueprint)
	}
	if len(b.Questions) == 0 {
		return fmt.Errorf("%w: at least one question is required", ErrInvalidBlueprint)
	}
	for i, item := range b.Questions {
		if !validFamilies[item.Family] {
			return fmt.Errorf("%w: question %d has unknown family %q",
				ErrInvalidBlueprint, i+1, item.Family)
		}
		if item.Difficulty < 1 || item.Difficulty > 5 {
			return fmt.Errorf("%w: question %d difficulty %d out of range [1,5]",
				ErrInvalidBlueprint, i+1, item.Difficulty)
		}
		if item.Repeat < 0 {
			return fmt.Errorf("%w: question %d has negative repeat",
				ErrInvalidBlueprint, i+1)
		}
	}
	return nil
}

// Count returns the total number of questions after repeats.
func (b *Blueprint) Count() int {
	total := 0
	for _, item := range b.Questions {
		n := item.Repeat
		if n < 1 {
			n = 1
		}
		total += n
	}
	return total
}
