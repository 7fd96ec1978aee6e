// Package except provides protected regions with raise/catch/finally semantics.
//
// A Stack is owned by one goroutine. Regions nest LIFO; Raise transfers control
// back to the innermost region, whose handler may Catch the error by kind. An
// error that is still pending when its region ends is fatal, as is raising with
// no region open.
package except

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// MaxMessageLen bounds the diagnostic text (label + message) stored on a frame.
const MaxMessageLen = 256

// Site is a source location.
type Site struct {
	File string
	Line int
}

func (s Site) String() string {
	if s.File == "" {
		return "?:0"
	}
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

func callerSite(skip int) Site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}
	return Site{File: filepath.Base(file), Line: line}
}

// Error is a raised error as recorded on its frame.
type Error struct {
	Kind    Kind
	Message string // label + message, bounded by MaxMessageLen
	Site    Site
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, msg string, site Site) *Error {
	text := kind.Label() + msg
	if len(text) > MaxMessageLen-1 {
		text = text[:MaxMessageLen-1]
	}
	return &Error{Kind: kind, Message: text, Site: site}
}

type frame struct {
	site    Site
	err     *Error
	pending bool
}

// signal is the panic value carrying a raise to its frame.
type signal struct {
	stack *Stack
	frame *frame
}

// FatalError is panicked when the Fatal hook returns instead of ending the process.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string { return e.Message }

// Stack is a LIFO of protected regions.
type Stack struct {
	frames []*frame

	// Fatal is called with a diagnostic when an error escapes every region.
	// It is expected not to return; nil means Die.
	Fatal func(msg string)
}

func NewStack() *Stack {
	return &Stack{}
}

// Depth is the number of open regions.
func (s *Stack) Depth() int { return len(s.frames) }

// Try opens a protected region at the caller's site and runs body in it.
// If body raises, handler runs with the error pending on the region; it should
// Catch the kinds it handles. The region is closed on every exit path; a still
// pending error at that point is fatal.
func (s *Stack) Try(body func(), handler func()) {
	f := &frame{site: callerSite(1)}
	s.frames = append(s.frames, f)
	defer s.leave(f)

	if s.run(f, body) && handler != nil {
		handler()
	}
}

func (s *Stack) run(f *frame, body func()) (raised bool) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(signal); ok && sig.stack == s && sig.frame == f {
				raised = true
				return
			}
			panic(r)
		}
	}()
	body()
	return false
}

func (s *Stack) leave(f *frame) {
	top := len(s.frames) - 1
	if top < 0 || s.frames[top] != f {
		s.fatal("finally() called without matching try()")
		return
	}
	if f.pending {
		msg := fmt.Sprintf("<UNCAUGHT EXCEPTION at %s>\n<try() at %s>\n%s", f.err.Site, f.site, f.err.Message)
		s.frames = s.frames[:top]
		s.fatal(msg)
		return
	}
	s.frames = s.frames[:top]
}

// Raise records an error on the innermost region and transfers control to it.
// Raise does not return.
func (s *Stack) Raise(kind Kind, msg string) {
	s.raise(newError(kind, msg, callerSite(1)))
}

// Raisef is Raise with a formatted message.
func (s *Stack) Raisef(kind Kind, format string, args ...any) {
	s.raise(newError(kind, fmt.Sprintf(format, args...), callerSite(1)))
}

func (s *Stack) raise(err *Error) {
	if len(s.frames) == 0 {
		s.fatal("Exception raised outside of try block: " + err.Message)
		return
	}
	f := s.frames[len(s.frames)-1]
	f.err = err
	f.pending = true
	panic(signal{stack: s, frame: f})
}

// Catch clears the innermost region's pending error if it is of kind.
func (s *Stack) Catch(kind Kind) bool {
	if len(s.frames) == 0 {
		return false
	}
	f := s.frames[len(s.frames)-1]
	if !f.pending || f.err == nil || f.err.Kind != kind {
		return false
	}
	f.pending = false
	return true
}

// Err returns the most recent error raised to the innermost region, caught or
// not, or nil.
func (s *Stack) Err() *Error {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1].err
}

// Message is the text of Err, or "".
func (s *Stack) Message() string {
	if err := s.Err(); err != nil {
		return err.Message
	}
	return ""
}

func (s *Stack) fatal(msg string) {
	hook := s.Fatal
	if hook == nil {
		hook = Die
	}
	hook(msg)
	panic(&FatalError{Message: msg})
}
