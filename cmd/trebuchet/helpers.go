package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/curtis3389/advent-2023/pkg/calibration"
	"github.com/curtis3389/advent-2023/pkg/config"
	"github.com/curtis3389/advent-2023/pkg/lines"
	"github.com/curtis3389/advent-2023/pkg/total"
)

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

// sumFlags are the flags shared by commands that parse input. Flags that are
// set on the command line override the config file.
type sumFlags struct {
	mode      string
	onError   string
	skipBlank bool
}

func (f *sumFlags) register(cmd *cobra.Command) {
	f.registerMode(cmd)
	fs := cmd.Flags()
	fs.StringVar(&f.onError, "on-error", string(total.PolicyFailFast), fmt.Sprintf("what to do with lines without a value, one of %v", total.Policies))
	fs.BoolVar(&f.skipBlank, "skip-blank", false, "ignore blank lines instead of failing on them")
}

// registerMode only adds --mode, for commands that never read a file.
func (f *sumFlags) registerMode(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", string(calibration.ModeSimple), fmt.Sprintf("digit rule, one of %v", calibration.Modes))
}

func (f *sumFlags) options(cmd *cobra.Command) (total.Options, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return total.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	opts := conf.SumOptions()

	fs := cmd.Flags()
	if fs.Changed("mode") {
		opts.Mode, err = calibration.ParseMode(f.mode)
		if err != nil {
			return total.Options{}, err
		}
	}
	if fs.Changed("on-error") {
		opts.Policy, err = total.ParsePolicy(f.onError)
		if err != nil {
			return total.Options{}, err
		}
	}
	if fs.Changed("skip-blank") {
		opts.SkipBlankLines = f.skipBlank
	}

	logrus.WithFields(logrus.Fields{
		"mode":           opts.Mode,
		"errorPolicy":    opts.Policy,
		"skipBlankLines": opts.SkipBlankLines,
	}).Debug("using options")

	return opts, nil
}

// sumInput sums the file at path, or stdin when path is "-".
func sumInput(stdin io.Reader, path string, opts total.Options) (*total.Report, error) {
	if path == "-" {
		return total.Sum(lines.NewReader(stdin), opts)
	}
	return total.File(path, opts)
}

func newEnableDisableCommand(
	use, short, long string,
	enableFunc func() (string, error),
	disableFunc func() (string, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Enable " + short,
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				ret, err := enableFunc()
				if err != nil {
					return fmt.Errorf("failed to enable %s: %v", use, err)
				}
				if ret != "" {
					logrus.Info(ret)
				}
				logrus.Infof("successfully enabled %s", use)
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Disable " + short,
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				ret, err := disableFunc()
				if err != nil {
					return fmt.Errorf("failed to disable %s: %v", use, err)
				}
				if ret != "" {
					logrus.Info(ret)
				}
				logrus.Infof("successfully disabled %s", use)
				return nil
			},
		},
	)

	return cmd
}
