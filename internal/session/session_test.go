package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"treetool/internal/codec"
	"treetool/internal/except"
	"treetool/internal/outline"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNew_Untitled(t *testing.T) {
	s := New(nil)
	if s.Name() != Untitled || s.Root == nil || s.Stack == nil || s.Modified {
		t.Fatalf("expected empty untitled session, got %+v", s)
	}
}

func TestOpen_LoadsAndClearsModified(t *testing.T) {
	path := writeFile(t, "todo.txt", "a\n b\n")
	s := New(nil)
	s.Touch()
	if err := s.Open(path); err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Modified || s.Path != path || s.Delimiter != codec.Space {
		t.Fatalf("unexpected session state %+v", s)
	}
	if s.Root.Len() != 1 || s.Root.Child(0).Child(0).Text() != "b" {
		t.Fatalf("unexpected tree")
	}
	if s.Name() != "todo.txt" {
		t.Fatalf("expected base name, got %q", s.Name())
	}
}

func TestOpen_FailureKeepsDocument(t *testing.T) {
	good := writeFile(t, "good.txt", "keep\n")
	bad := writeFile(t, "bad.txt", "a\n\t\tb\n")
	s := New(nil)
	if err := s.Open(good); err != nil {
		t.Fatalf("open: %v", err)
	}
	before := s.Root

	err := s.Open(bad)
	var xe *except.Error
	if !errors.As(err, &xe) || xe.Kind != except.Format {
		t.Fatalf("expected format error, got %v", err)
	}
	if s.Root != before || s.Path != good {
		t.Fatalf("expected previous document kept")
	}
	if s.Stack.Depth() != 0 {
		t.Fatalf("expected region popped, depth %d", s.Stack.Depth())
	}

	err = s.Open(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.As(err, &xe) || xe.Kind != except.FileNotFound {
		t.Fatalf("expected file-not-found, got %v", err)
	}
	if s.Root != before {
		t.Fatalf("expected previous document kept")
	}
}

func TestOpen_NoFilename(t *testing.T) {
	if err := New(nil).Open(""); !errors.Is(err, ErrNoFilename) {
		t.Fatalf("expected ErrNoFilename, got %v", err)
	}
}

func TestSave_RequiresPath(t *testing.T) {
	s := New(nil)
	if err := s.Save(); !errors.Is(err, ErrNoFilename) {
		t.Fatalf("expected ErrNoFilename, got %v", err)
	}
	if err := s.SaveAs(""); !errors.Is(err, ErrNoFilename) {
		t.Fatalf("expected ErrNoFilename, got %v", err)
	}
}

func TestSaveAs_WritesTabsByDefault(t *testing.T) {
	src := writeFile(t, "src.txt", "a\n b\n")
	dst := filepath.Join(t.TempDir(), "dst.txt")
	s := New(nil)
	if err := s.Open(src); err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = s.Root.Attach(outline.NewNode("c"))
	s.Touch()
	if err := s.SaveAs(dst); err != nil {
		t.Fatalf("save as: %v", err)
	}
	b, _ := os.ReadFile(dst)
	if string(b) != "a\n\tb\nc\n" {
		t.Fatalf("unexpected output %q", b)
	}
	if s.Path != dst || s.Modified {
		t.Fatalf("expected path updated and modified cleared, got %q %v", s.Path, s.Modified)
	}
}

func TestSave_PreserveDelimiter(t *testing.T) {
	path := writeFile(t, "src.txt", "a\n b\n")
	s := New(nil)
	s.PreserveDelimiter = true
	if err := s.Open(path); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "a\n b\n" {
		t.Fatalf("expected spaces preserved, got %q", b)
	}
}

func TestSave_FailureKeepsModified(t *testing.T) {
	s := New(nil)
	s.Path = filepath.Join(t.TempDir(), "no-such-dir", "x.txt")
	s.Touch()
	if err := s.Save(); err == nil {
		t.Fatalf("expected save into missing directory to fail")
	}
	if !s.Modified {
		t.Fatalf("expected modified flag kept after failed save")
	}
}

func TestEnsureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	created, err := EnsureFile(path)
	if err != nil || !created {
		t.Fatalf("expected file created, got %v %v", created, err)
	}
	if !Exists(path) {
		t.Fatalf("expected file to exist")
	}
	created, err = EnsureFile(path)
	if err != nil || created {
		t.Fatalf("expected existing file left alone, got %v %v", created, err)
	}
	s := New(nil)
	if err := s.Open(path); err != nil || s.Root.Len() != 0 {
		t.Fatalf("expected empty file to open as empty tree, got %v", err)
	}
}
