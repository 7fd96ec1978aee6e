package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"treetool/internal/lineedit"
)

// View stacks the outline, the prompt (while one is open), the status line
// and the help bar, top to bottom.
func (m appModel) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.viewTree()...)
	if m.prompt != nil {
		lines = append(lines, m.viewPrompt()...)
	}
	lines = append(lines, m.viewStatus())
	if m.showHelp {
		lines = append(lines, m.viewHelp()...)
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewTree() []string {
	h := m.treeHeight()
	out := make([]string, 0, h)
	sel := m.view.Selected()
	for _, row := range m.view.Visible() {
		indent := strings.Repeat("  ", row.Depth)
		marker := foldMarker(m.glyphs, row.Fold)
		col := xansi.StringWidth(indent) + xansi.StringWidth(marker)
		text := truncateText(row.Node.Text(), m.width-3-col)
		if row.Node == sel {
			text = styleSelected.Render(text)
		}
		out = append(out, fitLine(indent+styleMarker.Render(marker)+text, m.width))
	}
	for len(out) < h {
		out = append(out, "")
	}
	return out
}

func (m appModel) viewPrompt() []string {
	title := stylePromptHead.Render(m.prompt.title)
	if mode := m.editor.Mode(); mode == lineedit.Replace {
		title += " " + styleModeTag.Render(mode.String())
	}

	var input string
	if msg := m.editor.Message(); msg != "" {
		input = styleEditorMsg.Render(msg)
	} else {
		vis := m.editor.Visible()
		col := min(m.editor.Column(), len(vis))
		at := " "
		after := ""
		if col < len(vis) {
			at = vis[col : col+1]
			after = vis[col+1:]
		}
		input = vis[:col] + styleCursor.Render(at) + after
	}
	return []string{fitLine(title, m.width), fitLine(input, m.width)}
}

// viewStatus draws the reverse-video status line: file name and modified
// marker on the left, then the current message and the program version
// flush right.
func (m appModel) viewStatus() string {
	left := styleStatusName.Render(m.session.Name())
	if m.session.Modified {
		left += styleStatusMod.Render("*")
	}

	version := "treetool"
	if m.version != "" {
		version += " " + m.version
	}
	right := styleStatusName.Render(version)
	if m.flash != "" {
		st := styleFlash
		if m.flashBold() {
			st = styleFlashBold
		}
		room := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 5
		right = st.Render(truncateText("> "+m.flash, room-3)) + styleStatusBar.Render("    ") + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return fitLine(left+styleStatusBar.Render(" ")+right, m.width)
	}
	return left + styleStatusBar.Render(strings.Repeat(" ", gap)) + right
}

func (m appModel) viewHelp() []string {
	var groups string
	if m.prompt != nil {
		groups = m.help.FullHelpView(m.editKeys.FullHelp())
	} else {
		groups = m.help.FullHelpView(m.keys.FullHelp())
	}
	rows := strings.Split(groups, "\n")
	for len(rows) < 2 {
		rows = append(rows, "")
	}
	for i := range rows {
		rows[i] = fitLine(rows[i], m.width)
	}
	return rows[:2]
}
