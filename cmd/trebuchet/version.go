package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curtis3389/advent-2023/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.Version, version.GitCommit)
		},
	}
}
