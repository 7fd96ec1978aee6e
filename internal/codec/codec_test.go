package codec

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"treetool/internal/except"
	"treetool/internal/outline"
)

func texts(n *outline.Node) []string {
	var out []string
	for _, c := range n.Children() {
		out = append(out, c.Text())
	}
	return out
}

func mustDecode(t *testing.T, in string) (*outline.Node, Delimiter) {
	t.Helper()
	root, delim, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode %q: %v", in, err)
	}
	return root, delim
}

func expectFormatError(t *testing.T, in string, want string) {
	t.Helper()
	root, _, err := Decode(strings.NewReader(in))
	var xe *except.Error
	if !errors.As(err, &xe) {
		t.Fatalf("expected *except.Error for %q, got %v", in, err)
	}
	if xe.Kind != except.Format {
		t.Fatalf("expected format error, got %v", xe.Kind)
	}
	if !strings.Contains(xe.Message, want) {
		t.Fatalf("expected message containing %q, got %q", want, xe.Message)
	}
	if root == nil || root.Len() != 0 {
		t.Fatalf("expected fresh empty root on failure")
	}
}

func TestRoundTrip_ShoppingList(t *testing.T) {
	in := "Buy milk\n\tGet 2%\n\tGet oat milk\nCall mom\n"
	root, delim := mustDecode(t, in)
	if delim != Tab {
		t.Fatalf("expected tab delimiter, got %v", delim)
	}
	if got := strings.Join(texts(root), "|"); got != "Buy milk|Call mom" {
		t.Fatalf("unexpected top level %q", got)
	}
	milk := root.Child(0)
	if got := strings.Join(texts(milk), "|"); got != "Get 2%|Get oat milk" {
		t.Fatalf("unexpected children %q", got)
	}
	if got := string(Encode(root, Tab)); got != in {
		t.Fatalf("expected %q, got %q", in, got)
	}
}

type walked struct {
	depth int
	text  string
}

func walkAll(root *outline.Node) []walked {
	var out []walked
	root.Walk(func(n *outline.Node, depth int) bool {
		if n != root {
			out = append(out, walked{depth, n.Text()})
		}
		return true
	})
	return out
}

func TestRoundTrip_NestedBlanksAndLengths(t *testing.T) {
	nested := []string{
		" indented note",
		"   ",
		"",
		"two  inner  gaps",
		" ",
		strings.Repeat("x", outline.MaxTextLen-1),
		strings.Repeat("y", outline.MaxTextLen),
		" " + strings.Repeat("z", outline.MaxTextLen-1),
	}
	root := outline.NewRoot()
	top := outline.NewNode("top")
	_ = root.Attach(top)
	for _, text := range nested {
		child := outline.NewNode(text)
		_ = top.Attach(child)
		_ = child.Attach(outline.NewNode(text))
	}
	_ = root.Attach(outline.NewNode("last"))

	out := Encode(root, Tab)
	back, delim, err := Decode(strings.NewReader(string(out)))
	if err != nil {
		t.Fatalf("decode of written tree failed: %v\ninput:\n%q", err, out)
	}
	if delim != Tab {
		t.Fatalf("expected tab delimiter, got %v", delim)
	}
	want, got := walkAll(root), walkAll(back)
	if len(want) != len(got) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestParse_NestedTextKeepsLeadingBlank(t *testing.T) {
	root, _ := mustDecode(t, "A\n\t indented note\n")
	if got := root.Child(0).Child(0).Text(); got != " indented note" {
		t.Fatalf("expected %q, got %q", " indented note", got)
	}
}

func TestWrite_DropsUnwritableLeadingWhitespace(t *testing.T) {
	root := outline.NewRoot()
	a := outline.NewNode("  a")
	_ = root.Attach(a)
	_ = a.Attach(outline.NewNode("  b"))

	if got := string(Encode(root, Tab)); got != "a\n\t  b\n" {
		t.Fatalf("unexpected tab output %q", got)
	}
	out := Encode(root, Space)
	if string(out) != "a\n b\n" {
		t.Fatalf("unexpected space output %q", out)
	}
	if _, _, err := Decode(strings.NewReader(string(out))); err != nil {
		t.Fatalf("expected written output to parse, got %v", err)
	}
}

func TestWrite_BuiltTree(t *testing.T) {
	root := outline.NewRoot()
	a := outline.NewNode("a")
	_ = root.Attach(a)
	b := outline.NewNode("b")
	_ = a.Attach(b)
	_ = b.Attach(outline.NewNode("c"))
	_ = root.Attach(outline.NewNode("d"))

	if got := string(Encode(root, None)); got != "a\n\tb\n\t\tc\nd\n" {
		t.Fatalf("unexpected tab output %q", got)
	}
	if got := string(Encode(root, Space)); got != "a\n b\n  c\nd\n" {
		t.Fatalf("unexpected space output %q", got)
	}
}

func TestParse_SpaceDelimiter(t *testing.T) {
	root, delim := mustDecode(t, "a\n b\n  c\n d\ne\n")
	if delim != Space {
		t.Fatalf("expected space delimiter, got %v", delim)
	}
	a := root.Child(0)
	if got := strings.Join(texts(a), "|"); got != "b|d" {
		t.Fatalf("unexpected children %q", got)
	}
	if a.Child(0).Child(0).Text() != "c" {
		t.Fatalf("expected c under b")
	}
	if got := string(Encode(root, delim)); got != "a\n b\n  c\n d\ne\n" {
		t.Fatalf("expected delimiter-preserving round trip, got %q", got)
	}
}

func TestParse_FoldStates(t *testing.T) {
	root, _ := mustDecode(t, "a\n\tb\nc\n")
	if root.Fold() != outline.Expanded {
		t.Fatalf("expected root expanded, got %v", root.Fold())
	}
	if root.Child(0).Fold() != outline.Collapsed {
		t.Fatalf("expected parsed parent collapsed, got %v", root.Child(0).Fold())
	}
	if root.Child(1).Fold() != outline.Empty {
		t.Fatalf("expected leaf empty, got %v", root.Child(1).Fold())
	}
}

func TestParse_EmptyInput(t *testing.T) {
	root, delim := mustDecode(t, "")
	if root.Len() != 0 || delim != None || root.Text() != outline.RootText {
		t.Fatalf("expected empty tree, got %d entries", root.Len())
	}
}

func TestParse_DedentSeveralLevels(t *testing.T) {
	root, _ := mustDecode(t, "a\n\tb\n\t\tc\nd\n")
	if got := strings.Join(texts(root), "|"); got != "a|d" {
		t.Fatalf("unexpected top level %q", got)
	}
}

func TestParse_SkippedLevelIsFormatError(t *testing.T) {
	expectFormatError(t, "a\n\t\tb\n", "invalid indentation on line 2")
}

func TestParse_IndentedFirstLineIsFormatError(t *testing.T) {
	expectFormatError(t, "\ta\n", "invalid indentation on line 1")
}

func TestParse_MixedWhitespaceIsFormatError(t *testing.T) {
	expectFormatError(t, "a\n\tb\n c\n", "inconsistent indentation on line 3")
	expectFormatError(t, "a\n b\n\tc\n", "inconsistent indentation on line 3")
}

func TestParse_FormatMessageCarriesLabel(t *testing.T) {
	_, _, err := Decode(strings.NewReader("a\n\t\tb\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "Format Error: ") {
		t.Fatalf("expected labelled message, got %v", err)
	}
}

func TestParse_CRLF(t *testing.T) {
	root, _ := mustDecode(t, "a\r\n\tb\r\nc\r\n")
	if got := strings.Join(texts(root), "|"); got != "a|c" {
		t.Fatalf("unexpected top level %q", got)
	}
	if root.Child(0).Child(0).Text() != "b" {
		t.Fatalf("expected CR stripped, got %q", root.Child(0).Child(0).Text())
	}
}

func TestParse_LastLineWithoutNewline(t *testing.T) {
	root, _ := mustDecode(t, "a\n\tb")
	if root.Child(0).Len() != 1 || root.Child(0).Child(0).Text() != "b" {
		t.Fatalf("expected unterminated last line kept")
	}
	root, _ = mustDecode(t, "a\n\t\t")
	if root.Len() != 1 || root.Child(0).Len() != 0 {
		t.Fatalf("expected trailing indentation ignored")
	}
}

func TestParse_BlankLineIsTopLevelEntry(t *testing.T) {
	root, _ := mustDecode(t, "a\n\n")
	if root.Len() != 2 || root.Child(1).Text() != "" {
		t.Fatalf("expected blank entry, got %v", texts(root))
	}
}

func TestParse_LongLineTruncated(t *testing.T) {
	long := strings.Repeat("x", outline.MaxTextLen+40)
	root, _ := mustDecode(t, "a\n\t"+long+"\nb\n")
	got := root.Child(0).Child(0).Text()
	if len(got) != outline.MaxTextLen {
		t.Fatalf("expected %d bytes, got %d", outline.MaxTextLen, len(got))
	}
	if root.Len() != 2 || root.Child(1).Text() != "b" {
		t.Fatalf("expected rest of long line discarded, got %v", texts(root))
	}
}

func TestParse_RaisesOnCallerStack(t *testing.T) {
	s := except.NewStack()
	var kind except.Kind
	s.Try(func() {
		Parse(s, strings.NewReader("a\n\t\tb\n"))
		t.Fatalf("expected parse to raise")
	}, func() {
		kind = s.Err().Kind
		s.Catch(except.Format)
	})
	if kind != except.Format || s.Depth() != 0 {
		t.Fatalf("expected caught format error and popped region, got %v depth %d", kind, s.Depth())
	}
}

func TestReadFile_MissingRaisesFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, _, err := DecodeFile(path)
	var xe *except.Error
	if !errors.As(err, &xe) || xe.Kind != except.FileNotFound {
		t.Fatalf("expected file-not-found, got %v", err)
	}
	if xe.Message != "File Not Found: "+path {
		t.Fatalf("unexpected message %q", xe.Message)
	}
}

func TestWriteFile_ReplacesAndKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte("old\n"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	root, _ := mustDecode(t, "a\n\tb\n")
	if err := WriteFile(path, root, Tab); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "a\n\tb\n" {
		t.Fatalf("unexpected file %q", b)
	}
	st, _ := os.Stat(path)
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", st.Mode().Perm())
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("expected temp file cleaned up, got %d entries", len(entries))
	}
}

func TestWriteFile_DirectoryRejected(t *testing.T) {
	if err := WriteFile(t.TempDir(), outline.NewRoot(), Tab); err == nil {
		t.Fatalf("expected error writing over a directory")
	}
}

func TestParseDelimiter(t *testing.T) {
	if d, ok := ParseDelimiter("spaces"); !ok || d != Space {
		t.Fatalf("expected space, got %v %v", d, ok)
	}
	if _, ok := ParseDelimiter("comma"); ok {
		t.Fatalf("expected unknown delimiter rejected")
	}
}
