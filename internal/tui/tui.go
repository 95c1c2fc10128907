package tui

import (
	"io"
	"os"

	"github.com/MKhiriev/go-pass-console/internal/config"
	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/internal/service"
)

// TUI is the menu-driven console front end over a RecordService.
type TUI struct {
	records   service.RecordService
	prompter  Prompter
	reporter  Reporter
	clipboard Clipboard
	out       io.Writer
	styles    styles

	// reveal is the initial password visibility of the details view.
	reveal bool

	logger *logger.Logger
}

// Option overrides one of the console capabilities of a TUI.
type Option func(*TUI)

func WithPrompter(p Prompter) Option {
	return func(t *TUI) { t.prompter = p }
}

func WithReporter(r Reporter) Option {
	return func(t *TUI) { t.reporter = r }
}

func WithClipboard(c Clipboard) Option {
	return func(t *TUI) { t.clipboard = c }
}

// WithOutput sets where menus and record views are printed.
func WithOutput(w io.Writer) Option {
	return func(t *TUI) { t.out = w }
}

// New builds a TUI reading from stdin and writing to stdout unless opts
// say otherwise.
func New(services *service.ClientServices, cfg config.ClientUI, log *logger.Logger, opts ...Option) (*TUI, error) {
	if services == nil || services.RecordService == nil {
		return nil, ErrNoRecordService
	}
	if log == nil {
		log = logger.Nop()
	}

	t := &TUI{
		records: services.RecordService,
		out:     os.Stdout,
		reveal:  cfg.RevealPasswords,
		logger:  log,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.prompter == nil {
		t.prompter = NewConsolePrompter(os.Stdin, t.out, cfg.NoColor)
	}
	if t.reporter == nil {
		t.reporter = NewConsoleReporter(t.out, cfg.NoColor, log)
	}
	if t.clipboard == nil {
		t.clipboard = NewSystemClipboard()
	}
	t.styles = newStyles(t.out, cfg.NoColor)

	return t, nil
}
