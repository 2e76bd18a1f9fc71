package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbalmer/statgen/internal/blueprint"
	"github.com/mbalmer/statgen/internal/export"
	"github.com/mbalmer/statgen/internal/question"
)

var buildCmd = &cobra.Command{
	Use:   "build <blueprint.yaml>",
	Short: "Build a full assessment from a blueprint",
	Long:  "Build reads a YAML blueprint, generates every question it describes, and writes the assembled test (with answer key) as plain text.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bp, err := blueprint.Load(args[0])
		if err != nil {
			return err
		}

		e, err := newEngine(cmd, bp.Seed)
		if err != nil {
			return err
		}

		var questions []*question.Question
		for i, item := range bp.Questions {
			repeat := item.Repeat
			if repeat < 1 {
				repeat = 1
			}
			for j := 0; j < repeat; j++ {
				q, err := e.generate(item)
				if err != nil {
					return fmt.Errorf("blueprint question %d: %w", i+1, err)
				}
				questions = append(questions, q)
			}
		}

		unit := bp.Unit
		if unit == "" {
			unit = "Statistics"
		}
		a := question.NewAssessment(bp.Title, unit, questions)
		if bp.IncludeAnswerKey != nil {
			a.IncludeAnswerKey = *bp.IncludeAnswerKey
		}
		if bp.IncludeWorkSpace != nil {
			a.IncludeWorkSpace = *bp.IncludeWorkSpace
		}
		a.ShowOutcomes = bp.ShowOutcomes

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return export.NewTextRenderer().Render(out, a)
	},
}

func init() {
	buildCmd.Flags().String("out", "", "Write the assessment to a file instead of stdout")
}
