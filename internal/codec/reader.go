package codec

import (
	"bufio"
	"errors"
	"io"

	"treetool/internal/except"
	"treetool/internal/outline"
)

// line is one input line split into its indentation depth and entry text.
type line struct {
	num   int
	depth int
	text  string
}

// lineReader yields lines with one line of lookahead. The delimiter is fixed
// by the first line that starts with whitespace.
type lineReader struct {
	stack *except.Stack
	in    *bufio.Reader
	delim Delimiter
	num   int

	next    line
	hasNext bool
	eof     bool
}

func newLineReader(stack *except.Stack, r io.Reader) *lineReader {
	return &lineReader{stack: stack, in: bufio.NewReader(r)}
}

// peek returns the next line without consuming it; ok is false at end of input.
func (r *lineReader) peek() (line, bool) {
	for !r.hasNext && !r.eof {
		r.load()
	}
	return r.next, r.hasNext
}

func (r *lineReader) take() (line, bool) {
	l, ok := r.peek()
	r.hasNext = false
	return l, ok
}

func (r *lineReader) load() {
	b, err := r.in.ReadBytes('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.stack.Raise(except.IO, err.Error())
		}
		r.eof = true
	}
	terminated := len(b) > 0 && b[len(b)-1] == '\n'
	if terminated {
		b = b[:len(b)-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	if !terminated && len(b) == 0 {
		return
	}
	r.num++

	depth, rest := r.indent(b)
	if !terminated && len(rest) == 0 {
		// Trailing indentation with nothing after it.
		return
	}
	if len(rest) > outline.MaxTextLen {
		rest = rest[:outline.MaxTextLen]
	}
	r.next = line{num: r.num, depth: depth, text: string(rest)}
	r.hasNext = true
}

func (r *lineReader) indent(b []byte) (int, []byte) {
	if r.delim == None && len(b) > 0 && isBlank(b[0]) {
		r.delim = Delimiter(b[0])
	}
	n := 0
	if r.delim != None {
		for n < len(b) && b[n] == byte(r.delim) {
			n++
		}
	}
	// After the run the rest of the line is text, blanks included.
	if n == 0 && len(b) > 0 && isBlank(b[0]) {
		r.stack.Raisef(except.Format, "inconsistent indentation on line %d", r.num)
	}
	return n, b[n:]
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }
