package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"treetool/internal/lineedit"
)

// promptDone receives the accepted text. ok is false when the line was
// cancelled or left empty.
type promptDone func(m *appModel, text string, ok bool) tea.Cmd

type promptState struct {
	title string
	done  promptDone
}

// editorEvents translates a key press into line editor events. Runes arrive
// in batches when text is pasted into the terminal.
func editorEvents(msg tea.KeyMsg) []lineedit.Event {
	ev := func(k lineedit.Key) []lineedit.Event { return []lineedit.Event{{Key: k}} }

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return ev(lineedit.KeyInvalid)
		}
		out := make([]lineedit.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, lineedit.Event{Key: lineedit.KeyRune, Rune: r})
		}
		return out
	case tea.KeySpace:
		return []lineedit.Event{{Key: lineedit.KeyRune, Rune: ' '}}
	case tea.KeyEnter, tea.KeyCtrlJ:
		return ev(lineedit.KeyAccept)
	case tea.KeyCtrlC:
		return ev(lineedit.KeyCancel)
	case tea.KeyCtrlUnderscore:
		return ev(lineedit.KeyToggleHelp)
	case tea.KeyTab:
		return ev(lineedit.KeyIgnore)
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		return ev(lineedit.KeyInvalid)
	case tea.KeyCtrlK:
		return ev(lineedit.KeyCutToEnd)
	case tea.KeyCtrlU:
		return ev(lineedit.KeyCutToStart)
	case tea.KeyCtrlW:
		return ev(lineedit.KeyCutWordBackward)
	case tea.KeyCtrlX:
		return ev(lineedit.KeyCutWordForward)
	case tea.KeyCtrlV, tea.KeyCtrlY:
		return ev(lineedit.KeyPaste)
	case tea.KeyCtrlB, tea.KeyLeft:
		return ev(lineedit.KeyLeft)
	case tea.KeyCtrlF, tea.KeyRight:
		return ev(lineedit.KeyRight)
	case tea.KeyCtrlA, tea.KeyHome:
		return ev(lineedit.KeyHome)
	case tea.KeyCtrlE, tea.KeyEnd:
		return ev(lineedit.KeyEnd)
	case tea.KeyCtrlH, tea.KeyBackspace:
		return ev(lineedit.KeyBackspace)
	case tea.KeyCtrlD, tea.KeyDelete:
		return ev(lineedit.KeyDelete)
	case tea.KeyInsert:
		return ev(lineedit.KeyToggleMode)
	}
	return ev(lineedit.KeyInvalid)
}

// openPrompt starts a line editor session with the given title and initial
// text. The status message is cleared, as any redraw of the tree would.
func (m *appModel) openPrompt(title, initial string, done promptDone) {
	m.editor.Set(initial)
	m.prompt = &promptState{title: title, done: done}
	m.clearFlash()
	m.layout()
}

func (m *appModel) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	for _, ev := range editorEvents(msg) {
		switch m.editor.Handle(ev) {
		case lineedit.ToggleHelp:
			m.showHelp = !m.showHelp
			m.layout()
		case lineedit.Accept, lineedit.Cancel:
			return m.closePrompt()
		}
	}
	return nil
}

func (m *appModel) closePrompt() tea.Cmd {
	p := m.prompt
	m.prompt = nil
	m.layout()
	text := m.editor.Finish()
	ok := text != ""
	if !ok {
		m.say("Input cancelled.")
	}
	if p.done == nil {
		return m.flashCmd()
	}
	cmd := p.done(m, text, ok)
	return tea.Batch(cmd, m.flashCmd())
}

// confirm asks a y/n question. Answers other than y or n count as no and
// say so.
func (m *appModel) confirm(question string, then func(m *appModel, yes bool) tea.Cmd) {
	m.openPrompt(question, "", func(m *appModel, text string, ok bool) tea.Cmd {
		switch {
		case !ok:
		case text[0] == 'y':
			return then(m, true)
		case text[0] != 'n':
			m.say("Please type 'y' or 'n'.")
		}
		return then(m, false)
	})
}
