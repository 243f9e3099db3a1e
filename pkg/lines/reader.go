// Package lines reads a text file as a forward-only sequence of lines.
package lines

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInvalidText is returned when a line is not valid UTF-8.
var ErrInvalidText = errors.New("line is not valid UTF-8 text")

// Reader yields the lines of a file without their terminators.
// It is not safe for concurrent use.
type Reader struct {
	name   string
	closer io.Closer
	rd     *bufio.Reader
	text   string
	line   int
	done   bool
	err    error
}

// Open opens path for reading. The file is opened immediately, so a missing
// or unreadable file fails here and not on the first Next.
func Open(path string) (*Reader, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to open file %s", path)
	}

	r := NewReader(fp)
	r.name = path
	r.closer = fp
	return r, nil
}

// NewReader reads lines from rd. Lines may be of any length. Close is a
// no-op unless rd was opened by Open.
func NewReader(rd io.Reader) *Reader {
	return &Reader{
		name: "<stream>",
		rd:   bufio.NewReader(rd),
	}
}

// Next advances to the next line. It returns false at the end of input or on
// the first error, which is then reported by Err.
func (r *Reader) Next() bool {
	if r.err != nil || r.done {
		return false
	}

	s, err := r.rd.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = pkgerrors.Wrapf(err, "failed to read %s at line %d", r.name, r.line+1)
			return false
		}
		// The last line may lack a terminator.
		r.done = true
		if s == "" {
			return false
		}
	}

	r.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if !utf8.ValidString(s) {
		r.err = pkgerrors.Wrapf(ErrInvalidText, "%s:%d", r.name, r.line)
		return false
	}
	r.text = s
	return true
}

// Text returns the current line.
func (r *Reader) Text() string {
	return r.text
}

// Line returns the 1-based number of the current line.
func (r *Reader) Line() int {
	return r.line
}

// Err returns the error that stopped iteration, if any.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the underlying file. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to close file %s", r.name)
	}
	return nil
}

// ForEach calls fn for every line of path, in order, and stops at the first
// error returned by fn or by reading. The file is closed on every path out.
func ForEach(path string, fn func(n int, line string) error) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logrus.Warn(err)
		}
	}()

	for r.Next() {
		if err := fn(r.Line(), r.Text()); err != nil {
			return err
		}
	}
	return r.Err()
}
