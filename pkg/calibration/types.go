package calibration

import (
	pkgerrors "github.com/pkg/errors"
)

// Mode defines which digit rule is used to read a line.
type Mode string

const (
	// ModeSimple only accepts digit characters.
	ModeSimple Mode = "simple"
	// ModeExtended accepts digit characters and the words "zero".."nine".
	ModeExtended Mode = "extended"
)

// Modes lists all supported modes, in the order they are shown to users.
var Modes = []Mode{ModeSimple, ModeExtended}

// ParseMode converts user input to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", pkgerrors.Wrapf(ErrUnknownMode, "%q (want one of %v)", s, Modes)
}

// ParserFunc reads the calibration value of a single line.
type ParserFunc func(line string) (uint32, error)

// Parser returns the parser implementing the mode.
func (m Mode) Parser() (ParserFunc, error) {
	switch m {
	case ModeSimple:
		return ParseCalibrationValue, nil
	case ModeExtended:
		return BetterParseCalibrationValue, nil
	default:
		return nil, pkgerrors.Wrapf(ErrUnknownMode, "%q", string(m))
	}
}

// Parse reads the calibration value of line using mode.
func Parse(mode Mode, line string) (uint32, error) {
	p, err := mode.Parser()
	if err != nil {
		return 0, err
	}
	return p(line)
}
