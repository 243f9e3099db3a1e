package lines

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collect(t *testing.T, r *Reader) []string {
	t.Helper()
	var got []string
	for r.Next() {
		got = append(got, r.Text())
	}
	return got
}

func TestReader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "no trailing newline", content: "1abc2\npqr3", want: []string{"1abc2", "pqr3"}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "utf-8", content: "é1\nnine\n", want: []string{"é1", "nine"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Open(writeFile(t, tt.content))
			require.NoError(t, err)
			defer r.Close()

			assert.Equal(t, tt.want, collect(t, r))
			assert.NoError(t, r.Err())
			assert.Equal(t, len(tt.want), r.Line())
		})
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReader_InvalidText(t *testing.T) {
	r := NewReader(strings.NewReader("ok\n\xff\xfe\nnever\n"))
	assert.Equal(t, []string{"ok"}, collect(t, r))
	assert.ErrorIs(t, r.Err(), ErrInvalidText)
	assert.Contains(t, r.Err().Error(), ":2")
	assert.False(t, r.Next())
}

func TestReader_LongLine(t *testing.T) {
	long := "1" + strings.Repeat("a", 2*1024*1024) + "2"
	r := NewReader(strings.NewReader(long + "\nx\n"))
	assert.Equal(t, []string{long, "x"}, collect(t, r))
	assert.NoError(t, r.Err())
}

func TestReader_ReadError(t *testing.T) {
	failure := errors.New("disk on fire")
	r := NewReader(iotest.ErrReader(failure))
	assert.False(t, r.Next())
	assert.ErrorIs(t, r.Err(), failure)
	assert.Contains(t, r.Err().Error(), "at line 1")

	r = NewReader(io.MultiReader(strings.NewReader("a\nb\n"), iotest.ErrReader(failure)))
	assert.Equal(t, []string{"a", "b"}, collect(t, r))
	assert.Contains(t, r.Err().Error(), "at line 3")
}

func TestReader_CloseTwice(t *testing.T) {
	r, err := Open(writeFile(t, "x\n"))
	require.NoError(t, err)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
	assert.NoError(t, NewReader(strings.NewReader("")).Close())
}

func TestForEach(t *testing.T) {
	path := writeFile(t, "one\ntwo\nthree\n")

	var seen []int
	err := ForEach(path, func(n int, line string) error {
		seen = append(seen, n)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)

	stop := errors.New("stop")
	seen = nil
	err = ForEach(path, func(n int, line string) error {
		seen = append(seen, n)
		if line == "two" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{1, 2}, seen)

	err = ForEach(filepath.Join(t.TempDir(), "nope"), func(int, string) error {
		t.Fatal("fn must not be called")
		return nil
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
