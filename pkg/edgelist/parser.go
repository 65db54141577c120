package edgelist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineReader yields newline-terminated lines from r. Unlike bufio.Scanner it
// never fails on a long line: a line longer than MaxLineSize is drained and
// yielded as blank, so Parse counts it as malformed.
type LineReader struct {
	r        *bufio.Reader
	line     []byte
	err      error
	overlong int
}

// NewScanner returns a LineReader over r.
func NewScanner(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// Scan advances to the next line. It returns false at end of input or on a
// read error, which Err then reports.
func (lr *LineReader) Scan() bool {
	if lr.err != nil {
		return false
	}

	lr.line = lr.line[:0]
	overlong := false
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if !overlong {
			lr.line = append(lr.line, chunk...)
			// Allow room for the "\r\n" terminator.
			if len(lr.line) > MaxLineSize+2 {
				overlong = true
				lr.line = lr.line[:0]
			}
		}

		switch {
		case err == nil:
			return lr.emit(overlong)
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			lr.err = io.EOF
			if len(lr.line) == 0 && !overlong {
				return false
			}
			return lr.emit(overlong)
		default:
			lr.err = err
			return false
		}
	}
}

func (lr *LineReader) emit(overlong bool) bool {
	lr.line = bytes.TrimSuffix(lr.line, []byte("\n"))
	lr.line = bytes.TrimSuffix(lr.line, []byte("\r"))
	if overlong || len(lr.line) > MaxLineSize {
		lr.line = lr.line[:0]
		lr.overlong++
	}
	return true
}

// Text returns the current line without its terminator.
func (lr *LineReader) Text() string {
	return string(lr.line)
}

// Err returns the first read error, or nil at a clean end of input.
func (lr *LineReader) Err() error {
	if errors.Is(lr.err, io.EOF) {
		return nil
	}
	return lr.err
}

// Overlong returns how many lines exceeded MaxLineSize so far.
func (lr *LineReader) Overlong() int {
	return lr.overlong
}

// ParseLine parses "source target". It reports false for blank lines,
// lines without exactly two tokens, and tokens that are not unsigned integers.
func ParseLine(line string) (Edge, bool) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return Edge{}, false
	}

	src, err := strconv.ParseUint(tokens[0], 10, 64)
	if err != nil {
		return Edge{}, false
	}
	dst, err := strconv.ParseUint(tokens[1], 10, 64)
	if err != nil {
		return Edge{}, false
	}

	return Edge{Source: src, Target: dst}, true
}

// Parse reads every line from src. Malformed lines are counted in
// Result.Skipped and otherwise ignored; only a read failure is returned.
func Parse(src LineSource) (*Result, error) {
	result := &Result{Edges: make([]Edge, 0)}

	for src.Scan() {
		result.Lines++
		edge, ok := ParseLine(src.Text())
		if !ok {
			result.Skipped++
			continue
		}
		result.Edges = append(result.Edges, edge)
	}

	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("%w: read failed after %d lines: %v", ErrInputUnavailable, result.Lines, err)
	}

	return result, nil
}
