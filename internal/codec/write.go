package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"treetool/internal/outline"
)

// Write emits every descendant of root in pre-order, one per line, indented
// with delim once per level below the root. None writes tabs. The root itself
// is never written.
//
// Leading whitespace the format cannot carry is dropped: any leading blanks
// on a top-level entry, and leading delimiters on a nested one.
func Write(w io.Writer, root *outline.Node, delim Delimiter) error {
	if root == nil {
		return nil
	}
	if delim == None {
		delim = Tab
	}
	bw := bufio.NewWriter(w)
	root.Walk(func(n *outline.Node, depth int) bool {
		if n == root {
			return true
		}
		for i := 1; i < depth; i++ {
			_ = bw.WriteByte(byte(delim))
		}
		_, _ = bw.WriteString(writableText(n.Text(), depth, delim))
		_ = bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}

func writableText(text string, depth int, delim Delimiter) string {
	if depth == 1 {
		return strings.TrimLeft(text, " \t")
	}
	return strings.TrimLeft(text, string(rune(delim)))
}

// Encode is Write into a byte slice.
func Encode(root *outline.Node, delim Delimiter) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, root, delim)
	return buf.Bytes()
}

// WriteFile replaces path with the encoded tree. The new content is written
// to a temporary file in the same directory and renamed into place, so a
// failed save leaves the old file untouched. An existing file keeps its mode.
func WriteFile(path string, root *outline.Node, delim Delimiter) error {
	perm := fs.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		if st.IsDir() {
			return fmt.Errorf("cannot write outline: %s is a directory", path)
		}
		perm = st.Mode().Perm()
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if err := Write(f, root, delim); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
