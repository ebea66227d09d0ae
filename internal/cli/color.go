package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/patlog/patlog/core"
)

var (
	styleUnknown = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleDebug   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleFatal   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true) // white on red
)

// styleLine colorizes a rendered line by severity. A trailing newline
// (the usual %n tail) is kept outside the styled region so the escape
// sequences never span line boundaries.
func styleLine(level core.Level, line string) string {
	suffix := ""
	if strings.HasSuffix(line, "\n") {
		line, suffix = line[:len(line)-1], "\n"
	}

	switch level {
	case core.DebugLevel:
		return styleDebug.Render(line) + suffix
	case core.InfoLevel:
		return styleInfo.Render(line) + suffix
	case core.WarnLevel:
		return styleWarn.Render(line) + suffix
	case core.ErrorLevel:
		return styleError.Render(line) + suffix
	case core.FatalLevel:
		return styleFatal.Render(line) + suffix
	default:
		return styleUnknown.Render(line) + suffix
	}
}
