package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal
// backgrounds. We use lipgloss.AdaptiveColor where possible and only
// apply "faint" styling on dark backgrounds (faint text on light
// terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    = ac("240", "243")
	colorAccent   = ac("27", "62") // blue
	colorHigh     = ac("160", "203")
	colorDone     = ac("241", "245")
	colorStatusOK = ac("28", "78")
)

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleStatus() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorStatusOK)
}

func styleHigh() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorHigh)
}

func styleDone() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorDone).Strikethrough(true)
}

func stylePrompt() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. Only NO_COLOR is honored here; CLICOLOR handling is
// left to non-interactive output.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
