package calibration

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
)

var (
	firstTokenRegex = regexp.MustCompile(`\d|one|two|three|four|five|six|seven|eight|nine|zero`)
	// Matched against the reversed line: the leftmost match there is the
	// rightmost token of the original, even when words overlap ("twone").
	lastTokenRegex = regexp.MustCompile(`\d|eno|owt|eerht|ruof|evif|xis|neves|thgie|enin|orez`)
)

var tokenDigits = map[string]rune{
	"0": '0', "zero": '0', "orez": '0',
	"1": '1', "one": '1', "eno": '1',
	"2": '2', "two": '2', "owt": '2',
	"3": '3', "three": '3', "eerht": '3',
	"4": '4', "four": '4', "ruof": '4',
	"5": '5', "five": '5', "evif": '5',
	"6": '6', "six": '6', "xis": '6',
	"7": '7', "seven": '7', "neves": '7',
	"8": '8', "eight": '8', "thgie": '8',
	"9": '9', "nine": '9', "enin": '9',
}

// ParseCalibrationValue returns the two-digit number formed by the first and
// the last numeric character of line. A line with a single digit uses it
// twice. Numeric characters other than '0'-'9' (such as '½' or '²') are still
// picked as first or last and then fail with ErrNumericConversion.
//
//	ParseCalibrationValue("1abc2")      // 12
//	ParseCalibrationValue("treb7uchet") // 77
func ParseCalibrationValue(line string) (uint32, error) {
	first := strings.IndexFunc(line, unicode.IsNumber)
	if first < 0 {
		return 0, pkgerrors.Wrapf(ErrNoDigit, "line %q", line)
	}
	last := strings.LastIndexFunc(line, unicode.IsNumber)

	f, _ := utf8.DecodeRuneInString(line[first:])
	l, _ := utf8.DecodeRuneInString(line[last:])
	return combine(f, l)
}

// BetterParseCalibrationValue is ParseCalibrationValue with the words
// "zero".."nine" counted as digits. Overlapping words are all candidates, so
// "eightwothree" yields 83 and "twone" yields 21.
func BetterParseCalibrationValue(line string) (uint32, error) {
	first, err := findToken(firstTokenRegex, line)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "line %q", line)
	}
	last, err := findToken(lastTokenRegex, reverse(line))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "line %q", line)
	}
	return combine(first, last)
}

func findToken(re *regexp.Regexp, s string) (rune, error) {
	tok := re.FindString(s)
	if tok == "" {
		return 0, ErrNoMatch
	}
	return toDigit(tok)
}

func toDigit(tok string) (rune, error) {
	d, ok := tokenDigits[tok]
	if !ok {
		return 0, pkgerrors.Wrapf(ErrUnknownToken, "%q", tok)
	}
	return d, nil
}

func combine(first, last rune) (uint32, error) {
	s := string([]rune{first, last})
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, pkgerrors.Wrapf(ErrNumericConversion, "%q: %v", s, err)
	}
	return uint32(v), nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
