// Package total sums the calibration values of every line of an input.
package total

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/curtis3389/advent-2023/pkg/calibration"
	"github.com/curtis3389/advent-2023/pkg/lines"
)

// Policy defines what happens when a line cannot be parsed.
type Policy string

const (
	// PolicyFailFast aborts on the first bad line and reports no sum.
	PolicyFailFast Policy = "fail-fast"
	// PolicyCollect skips bad lines, sums the rest and reports every failure.
	PolicyCollect Policy = "collect"
)

// Policies lists all supported policies.
var Policies = []Policy{PolicyFailFast, PolicyCollect}

var (
	// ErrUnknownPolicy is returned for a policy name that is not supported.
	ErrUnknownPolicy = errors.New("unknown error policy")

	// ErrLinesFailed is returned by PolicyCollect when at least one line
	// could not be parsed.
	ErrLinesFailed = errors.New("some lines could not be parsed")
)

// ParsePolicy converts user input to a Policy.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", pkgerrors.Wrapf(ErrUnknownPolicy, "%q (want one of %v)", s, Policies)
}

// Options configures Sum.
type Options struct {
	Mode   calibration.Mode
	Policy Policy
	// SkipBlankLines ignores lines that are empty after trimming whitespace
	// instead of treating them as parse failures.
	SkipBlankLines bool
	// Record keeps a LineResult for every parsed line in the Report.
	Record bool
}

// Source is a forward-only sequence of lines. *lines.Reader implements it.
type Source interface {
	Next() bool
	Text() string
	Line() int
	Err() error
}

// LineResult is the calibration value read from one line.
type LineResult struct {
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Value uint32 `json:"value"`
}

// LineError is a parse failure of one line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Report is the outcome of a Sum.
type Report struct {
	// Total wraps around on overflow.
	Total    uint32       `json:"total"`
	Lines    int          `json:"lines"`
	Parsed   int          `json:"parsed"`
	Skipped  int          `json:"skipped"`
	Results  []LineResult `json:"results,omitempty"`
	Failures []*LineError `json:"-"`
}

func (r *Report) add(v uint32) {
	r.Total += v
	r.Parsed++
}

// summer accumulates a Report one line at a time.
type summer struct {
	opts   Options
	parse  calibration.ParserFunc
	report *Report
}

func newSummer(opts Options) (*summer, error) {
	if opts.Mode == "" {
		opts.Mode = calibration.ModeSimple
	}
	if opts.Policy == "" {
		opts.Policy = PolicyFailFast
	}
	if _, err := ParsePolicy(string(opts.Policy)); err != nil {
		return nil, err
	}
	parse, err := opts.Mode.Parser()
	if err != nil {
		return nil, err
	}
	return &summer{opts: opts, parse: parse, report: &Report{}}, nil
}

// step handles line n. It only returns an error when the run must stop.
func (s *summer) step(n int, text string) error {
	s.report.Lines++
	if s.opts.SkipBlankLines && strings.TrimSpace(text) == "" {
		s.report.Skipped++
		return nil
	}

	v, err := s.parse(text)
	if err != nil {
		lineErr := &LineError{Line: n, Text: text, Err: err}
		if s.opts.Policy == PolicyFailFast {
			return lineErr
		}
		logrus.WithField("line", n).Debugf("skipping line: %v", err)
		s.report.Failures = append(s.report.Failures, lineErr)
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"line":  n,
		"value": v,
	}).Trace("parsed line")
	s.report.add(v)
	if s.opts.Record {
		s.report.Results = append(s.report.Results, LineResult{Line: n, Text: text, Value: v})
	}
	return nil
}

func (s *summer) finish() (*Report, error) {
	if len(s.report.Failures) > 0 {
		errs := make([]error, 0, len(s.report.Failures)+1)
		errs = append(errs, ErrLinesFailed)
		for _, f := range s.report.Failures {
			errs = append(errs, f)
		}
		return s.report, errors.Join(errs...)
	}
	return s.report, nil
}

// Sum parses every line of src and adds up the values.
//
// With PolicyFailFast the first read or parse error is returned together with
// a nil Report. With PolicyCollect parse errors are recorded in
// Report.Failures and returned joined under ErrLinesFailed; read errors still
// abort.
func Sum(src Source, opts Options) (*Report, error) {
	s, err := newSummer(opts)
	if err != nil {
		return nil, err
	}
	for src.Next() {
		if err := s.step(src.Line(), src.Text()); err != nil {
			return nil, err
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return s.finish()
}

// File sums the lines of the file at path like Sum. The file is closed
// before File returns.
func File(path string, opts Options) (*Report, error) {
	s, err := newSummer(opts)
	if err != nil {
		return nil, err
	}
	if err := lines.ForEach(path, s.step); err != nil {
		return nil, err
	}
	return s.finish()
}
