package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Smart Task Planner tools",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newParseCommand())
	root.AddCommand(newAuthCommand())
	return root
}
