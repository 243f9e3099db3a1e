package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/curtis3389/advent-2023/pkg/calibration"
	"github.com/curtis3389/advent-2023/pkg/config"
	"github.com/curtis3389/advent-2023/pkg/lines"
	"github.com/curtis3389/advent-2023/pkg/total"
)

var (
	logLevel   = "info"
	configPath = config.DefaultPath()
)

var (
	gBasic        = "Basic:"
	gAdvanced     = "Advanced:"
	commandGroups = []string{
		gBasic,
		gAdvanced,
	}
)

func setupLogger(w io.Writer) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(w io.Writer, err error) {
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(w, "\nError: input file does not exist")
		fmt.Fprintln(w, "  - Check the path, or pass '-' to read from standard input")
	case errors.Is(err, lines.ErrInvalidText):
		fmt.Fprintln(w, "\nError: input is not UTF-8 text")
	case errors.Is(err, total.ErrLinesFailed):
		fmt.Fprintln(w, "\nError: some lines have no calibration value; the total only covers the other lines")
	case errors.Is(err, calibration.ErrNumericConversion):
		fmt.Fprintln(w, "\nError: a line starts or ends its digits with a numeric character other than 0-9")
		fmt.Fprintln(w, "  - Characters such as '½', '²' or non-ASCII digits count as digits but have no two-digit value")
		fmt.Fprintln(w, "  - Use '--on-error collect' to sum the remaining lines and list the bad ones")
	case errors.Is(err, calibration.ErrNoDigit), errors.Is(err, calibration.ErrNoMatch):
		fmt.Fprintln(w, "\nError: a line has no calibration value")
		fmt.Fprintln(w, "  - Try '--mode extended' if the input spells digits out as words")
		fmt.Fprintln(w, "  - Or '--on-error collect' to sum the remaining lines and list the bad ones")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(os.Stderr, err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trebuchet",
		Short: "trebuchet sums the calibration values of a text document",
		Long: `trebuchet sums the calibration values of a text document.

Every line holds one calibration value: the two-digit number formed by the
first and the last digit on the line. In extended mode the words "zero" to
"nine" count as digits too.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(cmd.ErrOrStderr())
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewVersionCommand(),
		NewSumCommand(),
		NewParseCommand(),
		NewWatchCommand(),
		NewConfigCommand(),
	)

	return cmd
}
