package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var colorEnabled = termenv.EnvColorProfile() != termenv.Ascii

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// ColorChangeID styles a change id prefix
func ColorChangeID(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("5")), text)
}

// ColorBookmark styles a bookmark name
func ColorBookmark(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("6")), text)
}

// ColorDim styles secondary text
func ColorDim(text string) string {
	return render(lipgloss.NewStyle().Faint(true), text)
}

// ColorWarn styles warning text
func ColorWarn(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("3")), text)
}

// ColorConflict styles conflict markers
func ColorConflict(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), text)
}

// ColorWorkingCopy styles the working-copy indicator
func ColorWorkingCopy(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true), text)
}
