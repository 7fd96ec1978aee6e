// Package session holds the document being edited: its tree, where it lives
// on disk and whether it has unsaved changes.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"treetool/internal/codec"
	"treetool/internal/except"
	"treetool/internal/outline"
)

// Untitled is shown in place of a file name before the first save.
const Untitled = "[Untitled]"

var ErrNoFilename = errors.New("no filename given")

type Session struct {
	Stack     *except.Stack
	Root      *outline.Node
	Path      string
	Modified  bool
	Delimiter codec.Delimiter

	// PreserveDelimiter makes saves reuse the delimiter the file was read
	// with instead of always writing tabs.
	PreserveDelimiter bool
}

// New returns an untitled, empty document. A nil stack gets a fresh one.
func New(stack *except.Stack) *Session {
	if stack == nil {
		stack = except.NewStack()
	}
	return &Session{Stack: stack, Root: outline.NewRoot()}
}

// Name is the base name of the document's file, or Untitled.
func (s *Session) Name() string {
	if s.Path == "" {
		return Untitled
	}
	return filepath.Base(s.Path)
}

// Touch records an unsaved change.
func (s *Session) Touch() { s.Modified = true }

// Open replaces the document with the contents of path. Loading runs in a
// protected region on s.Stack that catches missing files, read errors and
// format errors; on any of those the current document is left as it was and
// the caught *except.Error is returned.
func (s *Session) Open(path string) error {
	if path == "" {
		return ErrNoFilename
	}
	var (
		root   *outline.Node
		delim  codec.Delimiter
		failed *except.Error
	)
	s.Stack.Try(func() {
		root, delim = codec.ReadFile(s.Stack, path)
	}, func() {
		failed = codec.CatchLoad(s.Stack)
	})
	if failed != nil {
		return failed
	}
	s.Root = root
	s.Path = path
	s.Delimiter = delim
	s.Modified = false
	return nil
}

// Save writes the document to its current path.
func (s *Session) Save() error {
	if s.Path == "" {
		return ErrNoFilename
	}
	return s.write(s.Path)
}

// SaveAs writes the document to path and makes path the current file.
func (s *Session) SaveAs(path string) error {
	if path == "" {
		return ErrNoFilename
	}
	if err := s.write(path); err != nil {
		return err
	}
	s.Path = path
	return nil
}

func (s *Session) write(path string) error {
	delim := codec.Tab
	if s.PreserveDelimiter && s.Delimiter != codec.None {
		delim = s.Delimiter
	}
	if err := codec.WriteFile(path, s.Root, delim); err != nil {
		return err
	}
	s.Modified = false
	return nil
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureFile creates an empty file at path unless one already exists. It
// reports whether a file was created.
func EnsureFile(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, f.Close()
}
