package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/alcc/foundation/rlang/ast"
)

func newParseCmd(a *app) *cobra.Command {
	var format string

	parseCmd := &cobra.Command{
		Use:   "parse [source|-]",
		Short: "Show the syntax tree of a source",
		Long: `Parses a source and prints its syntax tree.

Formats:
  tree    indented node tree (default)
  source  canonical source, one statement per line
  json    nested node maps

Examples:
  alcc parse "1 + 2 * 3"
  alcc parse --format source "1+2;(3)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "tree" && format != "source" && format != "json" {
				return fmt.Errorf("unknown format %q, expected tree, source or json", format)
			}

			source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			tree, err := a.engine.Parse(source)
			if err != nil {
				return a.report(cmd, source, err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "tree":
				fmt.Fprint(out, a.renderer.Tree(tree))
			case "source":
				fmt.Fprint(out, a.renderer.Source(tree))
			case "json":
				statements := make([]map[string]interface{}, 0, tree.Len())
				for _, stmt := range tree.All() {
					statements = append(statements, ast.ASTToMap(stmt))
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(statements)
			}
			return nil
		},
	}

	parseCmd.Flags().StringVarP(&format, "format", "f", "tree", "output format: tree, source or json")
	return parseCmd
}
