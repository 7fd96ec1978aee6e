package publish

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"treetool/internal/codec"
	"treetool/internal/outline"
)

func sample(t *testing.T) *outline.Node {
	t.Helper()
	root, _, err := codec.Decode(strings.NewReader("Buy milk\n\tGet 2%\n\tGet oat milk\nCall mom\n\tabout :smile: trip\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return root
}

func TestRenderMarkdown_NestedList(t *testing.T) {
	got := RenderMarkdown(sample(t), Options{Title: "Errands"})
	want := "# Errands\n\n- Buy milk\n  - Get 2%\n  - Get oat milk\n- Call mom\n  - about :smile: trip\n"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderMarkdown_VisibleOnly(t *testing.T) {
	root := sample(t)
	// Parsed parents start collapsed; expand only the first one.
	outline.SetFold(root.Child(0), outline.Expanded)
	got := RenderMarkdown(root, Options{VisibleOnly: true})
	want := "- Buy milk\n  - Get 2%\n  - Get oat milk\n- Call mom\n"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderHTML_ListAndEmoji(t *testing.T) {
	b, err := RenderHTML(sample(t), Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "<ul>") || !strings.Contains(out, "<li>Buy milk") {
		t.Fatalf("expected nested list html, got:\n%s", out)
	}
	if strings.Contains(out, ":smile:") {
		t.Fatalf("expected emoji shortcode converted, got:\n%s", out)
	}
}

func TestRenderHTML_DropsRawHTML(t *testing.T) {
	root := outline.NewRoot()
	_ = root.Attach(outline.NewNode("<script>alert(1)</script>"))
	b, err := RenderHTML(root, Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(b), "<script>") {
		t.Fatalf("expected raw html dropped, got:\n%s", b)
	}
}

func TestRenderHTML_Standalone(t *testing.T) {
	b, err := RenderHTML(sample(t), Options{Standalone: true, Title: "A & B"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(b)
	if !strings.HasPrefix(out, "<!DOCTYPE html>") || !strings.Contains(out, "<title>A &amp; B</title>") {
		t.Fatalf("unexpected document:\n%s", out)
	}
}

func TestRender_SpacesAndTabs(t *testing.T) {
	root := sample(t)
	b, err := Render(root, FormatSpaces, Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(b) != "Buy milk\n Get 2%\n Get oat milk\nCall mom\n about :smile: trip\n" {
		t.Fatalf("unexpected spaces output %q", b)
	}
	b, _ = Render(root, FormatTabs, Options{VisibleOnly: true})
	if string(b) != "Buy milk\nCall mom\n" {
		t.Fatalf("expected collapsed children pruned, got %q", b)
	}
}

func TestRenderTerminal_ContainsEntries(t *testing.T) {
	out, err := RenderTerminal(sample(t), Options{}, StyleNoTTY, 60)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Buy milk", "Get oat milk", "Call mom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	empty, err := RenderTerminal(outline.NewRoot(), Options{}, StyleNoTTY, 60)
	if err != nil || empty != "" {
		t.Fatalf("expected empty output for empty outline, got %q %v", empty, err)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("MD"); err != nil || f != FormatMarkdown {
		t.Fatalf("expected markdown, got %v %v", f, err)
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestWriteFile_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	if err := WriteFile(path, []byte("one"), false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFile(path, []byte("two"), false); err == nil {
		t.Fatalf("expected refusal without overwrite")
	}
	if err := WriteFile(path, []byte("two"), true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "two" {
		t.Fatalf("expected overwritten content, got %q", b)
	}
}
