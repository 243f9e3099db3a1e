package calibration

import "errors"

var (
	// ErrNoDigit is returned when a line has no digit character.
	ErrNoDigit = errors.New("no digit found")

	// ErrNoMatch is returned when a line has neither a digit nor a digit word.
	ErrNoMatch = errors.New("no digit or digit word found")

	// ErrUnknownToken is returned when a matched token has no digit value.
	ErrUnknownToken = errors.New("unknown digit token")

	// ErrNumericConversion is returned when the two digits do not form a
	// decimal number, e.g. digits from a non-ASCII script.
	ErrNumericConversion = errors.New("cannot convert digits to a number")

	// ErrUnknownMode is returned for a mode name that is not supported.
	ErrUnknownMode = errors.New("unknown parse mode")
)
