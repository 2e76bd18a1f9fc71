package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbalmer/statgen/internal/blueprint"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single question",
	Long: `Generate one question and print it with its answer and solution steps.

Families: mean, mean_median_mode, trimmed_mean, weighted_mean, percentile_rank.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine(cmd, 0)
		if err != nil {
			return err
		}

		item := blueprint.Item{}
		item.Family, _ = cmd.Flags().GetString("family")
		item.Variation, _ = cmd.Flags().GetString("variation")
		item.Kind, _ = cmd.Flags().GetString("kind")
		item.Context, _ = cmd.Flags().GetString("context")
		item.Level, _ = cmd.Flags().GetString("level")
		item.Difficulty, _ = cmd.Flags().GetInt("difficulty")
		item.Marks, _ = cmd.Flags().GetInt("marks")

		q, err := e.generate(item)
		if err != nil {
			return fmt.Errorf("generate question: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n\n", q.ID, q.MarksDisplay())
		fmt.Fprintln(out, q.QuestionText)

		showAnswer, _ := cmd.Flags().GetBool("answer")
		if showAnswer {
			fmt.Fprintln(out, "\n---")
			if len(q.Parts) > 0 {
				for _, part := range q.Parts {
					fmt.Fprintf(out, "%s) %s\n", part.Letter, part.Answer)
				}
			} else {
				fmt.Fprintf(out, "Answer: %s\n", q.Answer)
			}
			fmt.Fprintln(out, "\nSolution:")
			fmt.Fprintln(out, strings.Join(q.SolutionSteps, "\n"))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("family", "mean", "Question family")
	generateCmd.Flags().String("variation", "calculate", "Mean variation (calculate, missing_value, missing_count, compare)")
	generateCmd.Flags().String("kind", "", "Sub-kind for weighted_mean (percentage, frequency) or percentile_rank (calculation, conceptual)")
	generateCmd.Flags().String("context", "", "Context ID (random compatible context when empty)")
	generateCmd.Flags().String("level", "standard", "Narrative level (minimal, standard, rich)")
	generateCmd.Flags().Int("difficulty", 2, "Difficulty 1-5")
	generateCmd.Flags().Int("marks", 0, "Override marks (0 uses the family default)")
	generateCmd.Flags().Bool("answer", false, "Print the answer and solution steps")
}
