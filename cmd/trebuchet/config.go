package main

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/curtis3389/advent-2023/pkg/calibration"
	"github.com/curtis3389/advent-2023/pkg/config"
	"github.com/curtis3389/advent-2023/pkg/total"
)

// updateConfig loads the config file, applies fn and saves the result.
func updateConfig(fn func(c config.Config) error) error {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := fn(conf); err != nil {
		return err
	}
	if err := conf.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	logrus.WithFields(conf.LogrusFields()).WithField("config", configPath).Debug("saved config")
	return nil
}

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		GroupID: gAdvanced,
		Short:   "Show or change the defaults used when summing",
		Long: `Show or change the defaults used when summing.

Defaults are stored in the file given by --config. Command-line flags always
take precedence over it.`,
	}

	var showJSON bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			out := cmd.OutOrStdout()
			if showJSON {
				raw, err := config.NewRawFileConfigFromConfig(conf)
				if err != nil {
					return err
				}
				b, err := json.MarshalIndent(raw, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode config: %w", err)
				}
				fmt.Fprintln(out, string(b))
				return nil
			}
			fmt.Fprintf(out, "Config file: %s\n", configPath)
			fmt.Fprintf(out, "  Mode: %s\n", bold("%s", conf.Mode()))
			fmt.Fprintf(out, "  Error policy: %s\n", bold("%s", conf.ErrorPolicy()))
			fmt.Fprintf(out, "  Skip blank lines: %s\n", bool2Text(conf.SkipBlankLines()))
			return nil
		},
	}

	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the effective configuration as JSON")

	modeCmd := &cobra.Command{
		Use:   "mode <mode>",
		Short: "Set the default digit rule",
		Long:  fmt.Sprintf("Set the default digit rule, one of %v.", calibration.Modes),
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := calibration.ParseMode(args[0])
			if err != nil {
				return err
			}
			if err := updateConfig(func(c config.Config) error {
				c.SetMode(m)
				return nil
			}); err != nil {
				return err
			}
			logrus.Infof("successfully set mode to %s", m)
			return nil
		},
	}

	onErrorCmd := &cobra.Command{
		Use:   "on-error <policy>",
		Short: "Set what happens to lines without a calibration value",
		Long: fmt.Sprintf(`Set what happens to lines without a calibration value, one of %v.

fail-fast aborts on the first such line. collect sums the other lines, lists
the bad ones and still exits with an error.`, total.Policies),
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := total.ParsePolicy(args[0])
			if err != nil {
				return err
			}
			if err := updateConfig(func(c config.Config) error {
				c.SetErrorPolicy(p)
				return nil
			}); err != nil {
				return err
			}
			logrus.Infof("successfully set error policy to %s", p)
			return nil
		},
	}

	setSkipBlank := func(b bool) func() (string, error) {
		return func() (string, error) {
			return "", updateConfig(func(c config.Config) error {
				c.SetSkipBlankLines(b)
				return nil
			})
		}
	}
	skipBlankCmd := newEnableDisableCommand(
		"skip-blank",
		"skipping blank lines",
		"Ignore lines that are empty or only whitespace instead of treating them as lines without a calibration value.",
		setSkipBlank(true),
		setSkipBlank(false),
	)

	cmd.AddCommand(showCmd, modeCmd, onErrorCmd, skipBlankCmd)
	return cmd
}
