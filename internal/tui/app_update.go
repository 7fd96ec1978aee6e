package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treetool/internal/outline"
	"treetool/internal/session"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case flashTickMsg:
		if msg.seq != m.flashSeq || m.flashBlink <= 0 {
			return m, nil
		}
		m.flashBlink--
		return m, m.flashCmd()

	case recentDoneMsg:
		// The recent index is best effort; a failure never reaches the status bar.
		return m, nil

	case tea.KeyMsg:
		if m.prompt != nil {
			return m, m.updatePrompt(msg)
		}
		m.clearFlash()
		cmd := m.updateTree(msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, tea.Batch(cmd, m.flashCmd())
	}
	return m, nil
}

func (m *appModel) updateTree(msg tea.KeyMsg) tea.Cmd {
	sel := m.view.Selected()
	switch {
	case key.Matches(msg, m.keys.QuitHint):
		m.say("Shift+Q to quit")
	case key.Matches(msg, m.keys.Quit):
		return m.discardWarning(func(m *appModel) tea.Cmd {
			m.quitting = true
			return tea.Quit
		}, nil)
	case key.Matches(msg, m.keys.Up):
		m.view.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.view.MoveDown()
	case key.Matches(msg, m.keys.MoveUp):
		m.mutate(sel, outline.Reorder(sel, outline.Up))
	case key.Matches(msg, m.keys.MoveDown):
		m.mutate(sel, outline.Reorder(sel, outline.Down))
	case key.Matches(msg, m.keys.Promote):
		m.mutate(sel, outline.Promote(sel))
	case key.Matches(msg, m.keys.Demote):
		m.mutate(sel, outline.Demote(sel))
	case key.Matches(msg, m.keys.Expand):
		if outline.SetFold(sel, outline.Expanded) {
			m.view.Refresh()
		}
	case key.Matches(msg, m.keys.Collapse):
		if outline.SetFold(sel, outline.Collapsed) {
			m.view.Refresh()
		}
	case key.Matches(msg, m.keys.Toggle):
		if outline.ToggleFold(sel) {
			m.view.Refresh()
		}
	case key.Matches(msg, m.keys.Insert):
		m.insertEntry()
	case key.Matches(msg, m.keys.Edit):
		m.editEntry()
	case key.Matches(msg, m.keys.Delete):
		m.deleteEntry()
	case key.Matches(msg, m.keys.Copy):
		m.copyEntry()
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.SaveAs):
		m.openPrompt("Save as...", m.session.Path, func(m *appModel, text string, ok bool) tea.Cmd {
			if !ok {
				return nil
			}
			return m.saveAs(text)
		})
	case key.Matches(msg, m.keys.Open):
		m.openPrompt("Open...", m.session.Path, func(m *appModel, text string, ok bool) tea.Cmd {
			if !ok {
				return nil
			}
			return m.load(text)
		})
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.layout()
	}
	return nil
}

// mutate finishes a structural edit of n: the tree is re-flattened and n
// stays selected when it is still visible.
func (m *appModel) mutate(n *outline.Node, changed bool) {
	if !changed {
		return
	}
	m.session.Touch()
	m.view.Refresh()
	m.view.Select(n)
}

func (m *appModel) insertEntry() {
	m.openPrompt("New entry", "", func(m *appModel, text string, ok bool) tea.Cmd {
		if !ok {
			return nil
		}
		parent := m.view.Selected()
		if parent == nil {
			parent = m.session.Root
		}
		n := outline.NewNode(entryText(parent, text))
		if err := parent.Attach(n); err != nil {
			m.say(err.Error())
			return nil
		}
		m.session.Touch()
		m.view.Refresh()
		m.view.Select(n)
		return nil
	})
}

func (m *appModel) editEntry() {
	sel := m.view.Selected()
	if sel == nil {
		return
	}
	if sel.IsRoot() {
		m.say("Cannot modify root entry.")
		return
	}
	m.openPrompt("Edit entry", sel.Text(), func(m *appModel, text string, ok bool) tea.Cmd {
		if !ok {
			return nil
		}
		if err := sel.SetText(entryText(sel.Parent(), text)); err != nil {
			m.say("Cannot modify root entry.")
			return nil
		}
		m.session.Touch()
		m.say("Editing complete.")
		return nil
	})
}

func (m *appModel) deleteEntry() {
	sel := m.view.Selected()
	m.confirm("Delete entry? (y/n)", func(m *appModel, yes bool) tea.Cmd {
		if !yes {
			m.say("Deletion cancelled.")
			return nil
		}
		switch err := outline.Delete(sel); {
		case errors.Is(err, outline.ErrRoot):
			m.say("Cannot delete root entry.")
		case err != nil:
			m.say("No entry found.")
		default:
			m.session.Touch()
			m.view.Refresh()
			m.say("Entry deleted.")
		}
		return nil
	})
}

func (m *appModel) copyEntry() {
	sel := m.view.Selected()
	if sel == nil {
		return
	}
	if err := copyToClipboard(sel.Text()); err != nil {
		m.say("Copy failed: " + err.Error())
		return
	}
	m.say("Copied.")
}

// entryText drops leading blanks from a top-level entry; a file line that
// starts with whitespace is always indented.
func entryText(parent *outline.Node, text string) string {
	if parent != nil && parent.IsRoot() {
		return strings.TrimLeft(text, " \t")
	}
	return text
}

// discardWarning runs then right away when the document is unmodified, and
// otherwise only after the user agrees to discard their changes. cancelled
// runs on any other answer.
func (m *appModel) discardWarning(then func(m *appModel) tea.Cmd, cancelled func(m *appModel)) tea.Cmd {
	if !m.session.Modified {
		return then(m)
	}
	m.confirm("Discard unsaved changes? (y/n)", func(m *appModel, yes bool) tea.Cmd {
		if yes {
			return then(m)
		}
		if cancelled != nil {
			cancelled(m)
		}
		return nil
	})
	return nil
}

func (m *appModel) load(path string) tea.Cmd {
	if path == "" {
		m.say("No filename given.")
		return nil
	}
	return m.discardWarning(func(m *appModel) tea.Cmd {
		if err := m.session.Open(path); err != nil {
			m.say(err.Error())
			return nil
		}
		m.view.SetRoot(m.session.Root)
		m.layout()
		return m.touchRecent(m.session.Path, m.session.Root.Count())
	}, func(m *appModel) {
		if m.flash == "" {
			m.say("Cancelled.")
		}
	})
}

func (m *appModel) save() tea.Cmd {
	if m.session.Path == "" {
		m.openPrompt("Save as...", "", func(m *appModel, text string, ok bool) tea.Cmd {
			if !ok {
				m.say("No filename given.")
				return nil
			}
			return m.saveAs(text)
		})
		return nil
	}
	return m.saveAs(m.session.Path)
}

func (m *appModel) saveAs(path string) tea.Cmd {
	if path == "" {
		m.say("No filename given.")
		return nil
	}
	if !samePath(path, m.session.Path) && session.Exists(path) {
		m.confirm("File exists, overwrite? (y/n)", func(m *appModel, yes bool) tea.Cmd {
			if !yes {
				m.say("Save cancelled.")
				return nil
			}
			return m.writeTo(path)
		})
		return nil
	}
	return m.writeTo(path)
}

func (m *appModel) writeTo(path string) tea.Cmd {
	if err := m.session.SaveAs(path); err != nil {
		m.say("Error opening file.")
		return nil
	}
	m.say("Saved.")
	return m.touchRecent(m.session.Path, m.session.Root.Count())
}

func (m *appModel) touchRecent(path string, entries int) tea.Cmd {
	if m.recent == nil || path == "" {
		return nil
	}
	r := m.recent
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return recentDoneMsg{err: r.Touch(ctx, path, entries)}
	}
}

func samePath(a, b string) bool {
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// say shows msg in the status bar and restarts the blink countdown.
func (m *appModel) say(msg string) {
	if len(msg) > maxSayChars {
		msg = msg[:maxSayChars]
	}
	m.flash = msg
	m.flashSeq++
	m.flashBlink = 0
	if msg != "" && m.cfg.FlashBlinks > 0 {
		m.flashBlink = 2 * m.cfg.FlashBlinks
	}
}

func (m *appModel) clearFlash() {
	m.flash = ""
	m.flashBlink = 0
	m.flashSeq++
}

// flashCmd schedules the next blink frame of the current message.
func (m *appModel) flashCmd() tea.Cmd {
	if m.flashBlink <= 0 || m.flash == "" {
		return nil
	}
	seq := m.flashSeq
	interval := m.cfg.FlashInterval
	if interval <= 0 {
		interval = 96 * time.Millisecond
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return flashTickMsg{seq: seq} })
}

// flashBold reports whether the current blink frame is drawn bold.
func (m *appModel) flashBold() bool {
	return m.flashBlink > 1 && m.flashBlink%2 == 0
}
