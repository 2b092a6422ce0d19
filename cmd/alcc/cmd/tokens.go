package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [source|-]",
		Short: "Show the tokens of a source",
		Long: `Tokenizes a source and prints one token per line with its position.

Without a source the sample expression is used; "-" reads standard input.

Examples:
  alcc tokens "1 + (10 / 100 - 1)"
  echo "2 * 3" | alcc tokens -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := a.engine.Tokenize(source)
			if err != nil {
				return a.report(cmd, source, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), a.renderer.Tokens(tokens))
			return nil
		},
	}
}
