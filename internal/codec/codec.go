// Package codec reads and writes outline files.
//
// An outline file is plain text, one entry per line. A run of a single
// delimiter character (tab or space), repeated once per level, encodes the
// depth of an entry. The delimiter is detected per file. Parse errors are
// raised through an except.Stack; Decode wraps that in an ordinary error.
package codec

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"treetool/internal/except"
	"treetool/internal/outline"
)

// Delimiter is the indentation character of a file.
type Delimiter byte

const (
	None  Delimiter = 0
	Tab   Delimiter = '\t'
	Space Delimiter = ' '
)

func (d Delimiter) String() string {
	switch d {
	case Tab:
		return "tab"
	case Space:
		return "space"
	default:
		return "none"
	}
}

// ParseDelimiter maps "tab"/"space" (or the characters themselves) to a
// Delimiter.
func ParseDelimiter(s string) (Delimiter, bool) {
	switch s {
	case "tab", "tabs", "\t":
		return Tab, true
	case "space", "spaces", " ":
		return Space, true
	}
	return None, false
}

// Parse reads a whole outline from r under a fresh implicit root. Malformed
// indentation raises except.Format and read failures raise except.IO on s,
// so Parse must run inside a protected region. The returned Delimiter is the
// one detected in the input, or None when no line is indented.
func Parse(s *except.Stack, r io.Reader) (*outline.Node, Delimiter) {
	lr := newLineReader(s, r)
	root := outline.NewRoot()
	for {
		if _, ok := lr.peek(); !ok {
			break
		}
		child := parseSubtree(lr, 0)
		if err := root.Attach(child); err != nil {
			s.Raise(except.Runtime, err.Error())
		}
	}
	return root, lr.delim
}

func parseSubtree(lr *lineReader, depth int) *outline.Node {
	l, _ := lr.take()
	if l.depth != depth {
		lr.stack.Raisef(except.Format, "invalid indentation on line %d", l.num)
	}
	n := outline.NewNode(l.text)
	for {
		next, ok := lr.peek()
		if !ok || next.depth <= depth {
			break
		}
		if next.depth > depth+1 {
			lr.stack.Raisef(except.Format, "invalid indentation on line %d", next.num)
		}
		if err := n.Attach(parseSubtree(lr, depth+1)); err != nil {
			lr.stack.Raise(except.Runtime, err.Error())
		}
	}
	// Entries read from a file start folded.
	outline.SetFold(n, outline.Collapsed)
	return n
}

// ReadFile opens path and parses it. A missing file raises
// except.FileNotFound with path as the message.
func ReadFile(s *except.Stack, path string) (*outline.Node, Delimiter) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Raise(except.FileNotFound, path)
		}
		s.Raise(except.IO, err.Error())
	}
	defer f.Close()
	return Parse(s, f)
}

// LoadKinds are the error kinds a load boundary is expected to catch.
var LoadKinds = []except.Kind{except.FileNotFound, except.IO, except.Format}

// CatchLoad catches any of LoadKinds pending on s and returns the caught
// error, or nil when nothing matched.
func CatchLoad(s *except.Stack) *except.Error {
	for _, k := range LoadKinds {
		if s.Catch(k) {
			return s.Err()
		}
	}
	return nil
}

// Decode parses r in its own protected region. On failure it returns a fresh
// empty root together with the *except.Error.
func Decode(r io.Reader) (*outline.Node, Delimiter, error) {
	s := except.NewStack()
	return decode(s, func() (*outline.Node, Delimiter) { return Parse(s, r) })
}

// DecodeFile is Decode for a named file.
func DecodeFile(path string) (*outline.Node, Delimiter, error) {
	s := except.NewStack()
	return decode(s, func() (*outline.Node, Delimiter) { return ReadFile(s, path) })
}

func decode(s *except.Stack, load func() (*outline.Node, Delimiter)) (*outline.Node, Delimiter, error) {
	var (
		root   *outline.Node
		delim  Delimiter
		failed *except.Error
	)
	s.Try(func() {
		root, delim = load()
	}, func() {
		failed = CatchLoad(s)
	})
	if failed != nil {
		return outline.NewRoot(), None, failed
	}
	return root, delim, nil
}
