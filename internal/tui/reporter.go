package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-console/internal/logger"
)

// ConsoleReporter prints styled messages to the console and mirrors them
// to the log.
type ConsoleReporter struct {
	out    io.Writer
	styles styles
	logger *logger.Logger
}

func NewConsoleReporter(out io.Writer, noColor bool, log *logger.Logger) *ConsoleReporter {
	if log == nil {
		log = logger.Nop()
	}
	return &ConsoleReporter{
		out:    out,
		styles: newStyles(out, noColor),
		logger: log,
	}
}

func (r *ConsoleReporter) Info(msg string) {
	r.print(r.styles.info, msg)
	r.logger.Info().Str("func", "ConsoleReporter.Info").Msg(msg)
}

func (r *ConsoleReporter) Success(msg string) {
	r.print(r.styles.success, msg)
	r.logger.Info().Str("func", "ConsoleReporter.Success").Msg(msg)
}

func (r *ConsoleReporter) Warn(msg string) {
	r.print(r.styles.warn, msg)
	r.logger.Warn().Str("func", "ConsoleReporter.Warn").Msg(msg)
}

func (r *ConsoleReporter) Error(msg string) {
	r.print(r.styles.error, msg)
	r.logger.Error().Str("func", "ConsoleReporter.Error").Msg(msg)
}

func (r *ConsoleReporter) print(style lipgloss.Style, msg string) {
	fmt.Fprintln(r.out, style.Render(msg))
}
