package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/curtis3389/advent-2023/pkg/total"
	"github.com/curtis3389/advent-2023/pkg/watch"
)

func NewWatchCommand() *cobra.Command {
	var (
		flags    sumFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:     "watch <file>",
		GroupID: gAdvanced,
		Short:   "Print the sum again every time the file changes",
		Long: `Print the sum of the calibration values of a file, then print it again
every time the file is written, until interrupted.

Errors while summing are logged and do not stop watching.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			path := args[0]

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printTotal := func() {
				report, err := total.File(path, opts)
				if report == nil {
					logrus.WithField("file", path).Errorf("failed to sum: %v", err)
					return
				}
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"file":   path,
						"failed": len(report.Failures),
					}).Warn("some lines could not be parsed")
				}
				fmt.Fprintln(cmd.OutOrStdout(), report.Total)
			}

			printTotal()
			logrus.WithField("file", path).Info("watching for changes")
			return watch.Watch(ctx, path, debounce, printTotal)
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period after a change before summing again")

	return cmd
}
