package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewParseCommand() *cobra.Command {
	var flags sumFlags

	cmd := &cobra.Command{
		Use:     "parse <line>...",
		GroupID: gBasic,
		Short:   "Print the calibration value of each argument",
		Long: `Print the calibration value of each argument, one per output line,
followed by a tab and the argument itself.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			parse, err := opts.Mode.Parser()
			if err != nil {
				return err
			}

			for _, line := range args {
				v, err := parse(line)
				if err != nil {
					return fmt.Errorf("failed to parse %q: %w", line, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", v, line)
			}
			return nil
		},
	}

	flags.registerMode(cmd)

	return cmd
}
