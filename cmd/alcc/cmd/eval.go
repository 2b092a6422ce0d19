package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var quiet bool

	evalCmd := &cobra.Command{
		Use:   "eval [source|-]",
		Short: "Evaluate a source",
		Long: `Evaluates every statement of a source with 64-bit integer arithmetic.
Division truncates toward zero.

Examples:
  alcc eval "1 + 2 * 3"
  alcc eval --quiet "(1 + 2) * 3; 10 - 3 - 2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			results, err := a.engine.Evaluate(source)
			out := cmd.OutOrStdout()
			for _, r := range results {
				if quiet {
					fmt.Fprintln(out, r.Value)
				} else {
					fmt.Fprintln(out, a.renderer.Result(r))
				}
			}
			if err != nil {
				return a.report(cmd, source, err)
			}
			return nil
		},
	}

	evalCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print values only")
	return evalCmd
}
