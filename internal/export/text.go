// Package export renders assessments into distributable documents.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mbalmer/statgen/internal/question"
)

// Renderer writes an assessment to a stream in some output format.
type Renderer interface {
	Render(w io.Writer, a *question.Assessment) error
}

// TextRenderer renders a plain-text test paper: a header with totals, a
// numbered question section with work space, and an optional answer key
// with full solution traces.
type TextRenderer struct {
	// WorkSpaceLines is the number of blank answer lines under each
	// question when the assessment asks for work space.
	WorkSpaceLines int
}

// NewTextRenderer returns a renderer with the default work space size.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{WorkSpaceLines: 4}
}

// Render writes the assessment as plain text.
func (r *TextRenderer) Render(w io.Writer, a *question.Assessment) error {
	var b strings.Builder

	rule := strings.Repeat("=", 64)
	b.WriteString(rule + "\n")
	b.WriteString(a.Title + "\n")
	fmt.Fprintf(&b, "Unit: %s    Version: %s\n", a.Unit, a.VersionID)
	fmt.Fprintf(&b, "Date: %s\n", a.DateGenerated.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total marks: %d    Estimated time: %d minutes\n",
		a.TotalMarks, a.EstimatedTimeMinutes)
	if a.ShowOutcomes {
		fmt.Fprintf(&b, "Outcomes: %s\n", strings.Join(a.OutcomesCovered(), ", "))
	}
	b.WriteString(rule + "\n\n")

	for i, q := range a.Questions {
		fmt.Fprintf(&b, "Question %d %s\n\n", i+1, q.MarksDisplay())
		b.WriteString(q.QuestionText + "\n")
		if a.ShowOutcomes {
			fmt.Fprintf(&b, "\n(Outcomes: %s)\n", q.OutcomesDisplay())
		}
		if a.IncludeWorkSpace {
			b.WriteString("\n")
			for j := 0; j < r.WorkSpaceLines; j++ {
				b.WriteString("____________________________________\n")
			}
		}
		b.WriteString("\n")
	}

	if a.IncludeAnswerKey {
		b.WriteString(rule + "\n")
		b.WriteString("ANSWER KEY\n")
		b.WriteString(rule + "\n\n")

		for i, q := range a.Questions {
			fmt.Fprintf(&b, "Question %d\n", i+1)
			if len(q.Parts) > 0 {
				for _, part := range q.Parts {
					fmt.Fprintf(&b, "%s) %s\n", part.Letter, part.Answer)
					for _, step := range part.SolutionSteps {
						fmt.Fprintf(&b, "   %s\n", step)
					}
				}
			} else {
				fmt.Fprintf(&b, "Answer: %s\n", q.Answer)
				for _, step := range q.SolutionSteps {
					fmt.Fprintf(&b, "   %s\n", step)
				}
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
