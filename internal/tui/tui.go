package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"treetool/internal/except"
	"treetool/internal/session"
	"treetool/internal/store"
)

// Options configures Run. Status, when set, is the first status message.
type Options struct {
	Session *session.Session
	Config  *store.Config
	Recent  *store.Recent
	Version string
	Status  string
}

func Run(opts Options) error {
	applyColorProfilePreference()

	m := newAppModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// A fatal exception must not leave the terminal in raw mode.
	m.session.Stack.Fatal = func(msg string) {
		_ = p.ReleaseTerminal()
		except.Die(msg)
	}

	_, err := p.Run()
	return err
}
