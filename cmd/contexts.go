package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mbalmer/statgen/internal/bank"
)

var contextsCmd = &cobra.Command{
	Use:   "contexts",
	Short: "List available contexts and their supported variations",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine(cmd, 0)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CONTEXT\tNAME\tRANGE\tVARIATIONS")
		for _, meta := range e.bank.Contexts() {
			var supported []string
			for _, v := range bank.AllVariations() {
				if e.bank.IsCompatible(meta.ID, v) {
					supported = append(supported, string(v))
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%g-%g\t%s\n",
				meta.ID, meta.Name, meta.ValueMin, meta.ValueMax,
				strings.Join(supported, ","))
		}
		return w.Flush()
	},
}
