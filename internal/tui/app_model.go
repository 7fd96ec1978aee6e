package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"treetool/internal/lineedit"
	"treetool/internal/outline"
	"treetool/internal/session"
	"treetool/internal/store"
)

// maxSayChars bounds a stored status message; the status line truncates it
// further to fit.
const maxSayChars = 256

type appModel struct {
	session *session.Session
	view    *outline.View
	cfg     *store.Config
	recent  *store.Recent
	version string

	width  int
	height int

	keys     treeKeyMap
	editKeys editKeyMap
	help     help.Model
	showHelp bool
	glyphs   glyphSet

	prompt *promptState
	editor *lineedit.Editor

	flash      string
	flashBlink int
	flashSeq   int

	quitting bool
}

func newAppModel(opts Options) appModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = &store.Config{FlashBlinks: 2, FlashInterval: 96 * time.Millisecond}
	}
	s := opts.Session
	if s == nil {
		s = session.New(nil)
	}

	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "  "
	h.Styles.FullKey = styleHelpKey
	h.Styles.FullDesc = styleHelpDesc
	h.Styles.ShortKey = styleHelpKey
	h.Styles.ShortDesc = styleHelpDesc

	m := appModel{
		session:  s,
		view:     outline.NewView(s.Root),
		cfg:      cfg,
		recent:   opts.Recent,
		version:  opts.Version,
		keys:     newTreeKeyMap(),
		editKeys: newEditKeyMap(),
		help:     h,
		showHelp: cfg.ShowHelp,
		glyphs:   parseGlyphSet(cfg.Glyphs),
		editor:   lineedit.New(lineedit.DefaultCapacity, 80),
	}
	if opts.Status != "" {
		m.say(opts.Status)
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return m.flashCmd()
}

// treeHeight is the number of rows left for the outline once the status
// line, help bar and prompt are laid out.
func (m *appModel) treeHeight() int {
	h := m.height - 1
	if m.showHelp {
		h -= 2
	}
	if m.prompt != nil {
		h -= 2
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *appModel) editorWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m *appModel) layout() {
	m.view.SetHeight(m.treeHeight())
	m.help.Width = m.width
	m.editor.SetWidth(m.editorWidth())
}
