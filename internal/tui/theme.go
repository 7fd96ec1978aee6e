package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The outline is drawn with terminal attributes only (reverse, bold,
// underline) so it stays readable on any background. Color is reserved for
// the modified marker and mode tag.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorModified lipgloss.TerminalColor = ac("160", "203")
	colorMode     lipgloss.TerminalColor = ac("27", "75")
)

var (
	styleSelected   = lipgloss.NewStyle().Reverse(true)
	styleMarker     = lipgloss.NewStyle()
	styleStatusBar  = lipgloss.NewStyle().Reverse(true)
	styleStatusName = styleStatusBar.Bold(true)
	styleStatusMod  = styleStatusName.Foreground(colorModified)
	styleFlash      = styleStatusBar
	styleFlashBold  = styleStatusBar.Bold(true)
	stylePromptHead = lipgloss.NewStyle().Bold(true).Underline(true)
	styleEditorMsg  = lipgloss.NewStyle().Foreground(colorMuted)
	styleCursor     = lipgloss.NewStyle().Reverse(true)
	styleModeTag    = lipgloss.NewStyle().Foreground(colorMode)
	styleHelpKey    = lipgloss.NewStyle().Reverse(true).Bold(true)
	styleHelpDesc   = lipgloss.NewStyle()
)

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile also honors CLICOLOR/CLICOLOR_FORCE, which can
// disable colors in a TUI by accident. Only NO_COLOR is honored here; otherwise
// the terminal's detected capabilities apply.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust COLORTERM/TERM when they claim more than the detector reports.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}
