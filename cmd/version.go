package cmd

import (
	"fmt"

	"quantum-portctl/internal/pkg/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and git info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetGitInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "Tag: %s\nBranch: %s\nCommit: %s\nDirty: %v\nUser-Agent: %s\n",
				info.Tag, info.Branch, info.Commit, info.Dirty, version.UserAgent())
		},
	}
}
