package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/alcc/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var asJSON bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			fmt.Fprintf(out, "alcc v%s\n", info.Version)
			fmt.Fprintf(out, "  rlang:      v%s\n", info.Language)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}

	versionCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return versionCmd
}
