package config

import (
	"github.com/sirupsen/logrus"

	"github.com/curtis3389/advent-2023/pkg/calibration"
	"github.com/curtis3389/advent-2023/pkg/total"
)

type Config interface {
	Mode() calibration.Mode
	ErrorPolicy() total.Policy
	SkipBlankLines() bool

	SetMode(calibration.Mode)
	SetErrorPolicy(total.Policy)
	SetSkipBlankLines(bool)

	// SumOptions converts the configuration to options for total.Sum.
	SumOptions() total.Options
	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
