package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	box     lipgloss.Style
	help    lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	error   lipgloss.Style
	oldVal  lipgloss.Style
	newVal  lipgloss.Style
}

// newStyles builds styles bound to out, so color is only emitted when out
// is a terminal that supports it.
func newStyles(out io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(out)

	s := styles{
		title:   r.NewStyle().Bold(true),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		help:    r.NewStyle().Faint(true),
		info:    r.NewStyle(),
		success: r.NewStyle(),
		warn:    r.NewStyle(),
		error:   r.NewStyle().Bold(true),
		oldVal:  r.NewStyle(),
		newVal:  r.NewStyle(),
	}
	if noColor {
		return s
	}

	s.box = s.box.BorderForeground(lipgloss.Color("12"))
	s.success = s.success.Foreground(lipgloss.Color("10"))
	s.warn = s.warn.Foreground(lipgloss.Color("11"))
	s.error = s.error.Foreground(lipgloss.Color("9"))
	s.oldVal = s.oldVal.Foreground(lipgloss.Color("9"))
	s.newVal = s.newVal.Foreground(lipgloss.Color("10"))
	return s
}
