// Package calibration extracts calibration values from lines of text.
// It contains:
//
//   - ParseCalibrationValue: first and last decimal digit of a line
//   - BetterParseCalibrationValue: same, but English digit words count too
//   - Mode: selects one of the two rules for callers that are configured
//     at runtime (CLI flags, config file)
//
// A calibration value is always two decimal digits, 10*first + last. Both
// parsers are pure functions of the line.
package calibration
