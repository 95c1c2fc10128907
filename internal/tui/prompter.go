package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// clearAnswer given to Ask on a non-terminal input replaces the suggested
// value with an empty one.
const clearAnswer = "-"

// ConsolePrompter reads answers line by line. When the input is an
// interactive terminal, text fields are edited through a bubbles text input
// prefilled with the current value, and secrets through a masked one.
type ConsolePrompter struct {
	in     *bufio.Reader
	out    io.Writer
	tty    *os.File
	styles styles
}

func NewConsolePrompter(in io.Reader, out io.Writer, noColor bool) *ConsolePrompter {
	p := &ConsolePrompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(out, noColor),
	}

	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		p.tty = f
	}
	return p
}

// Ask on a terminal returns the edited value as is, so deleting the
// prefilled text clears the field. Otherwise an empty line keeps def and
// a single "-" clears it.
func (p *ConsolePrompter) Ask(ctx context.Context, label, def string) (string, error) {
	if p.tty != nil {
		return p.runInput(ctx, newInputModel(label, def, textinput.EchoNormal))
	}

	hint := ""
	if def != "" {
		hint = p.styles.help.Render(" (" + def + "; " + clearAnswer + ": очистить)")
	}
	fmt.Fprintf(p.out, "%s%s: ", label, hint)

	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	switch line {
	case "":
		return def, nil
	case clearAnswer:
		return "", nil
	}
	return line, nil
}

// AskSecret never shows def. An empty answer keeps it.
func (p *ConsolePrompter) AskSecret(ctx context.Context, label, def string) (string, error) {
	hint := ""
	if def != "" {
		hint = p.styles.help.Render(" (Enter: без изменений)")
	}

	var (
		answer string
		err    error
	)
	if p.tty != nil {
		answer, err = p.runInput(ctx, newInputModel(label+hint, "", textinput.EchoPassword))
	} else {
		fmt.Fprintf(p.out, "%s%s: ", label, hint)
		answer, err = p.readLine(ctx)
	}
	if err != nil {
		return "", err
	}

	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// runInput runs a single line input program on the terminal until enter,
// abort or cancellation of ctx.
func (p *ConsolePrompter) runInput(ctx context.Context, m inputModel) (string, error) {
	final, err := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithInput(p.tty),
		tea.WithOutput(p.out),
	).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("text input: %w", err)
	}

	res, ok := final.(inputModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if res.aborted {
		return "", ErrPromptAborted
	}
	return res.input.Value(), nil
}

func (p *ConsolePrompter) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	hint := " [y/N]"
	if def {
		hint = " [Y/n]"
	}

	for {
		fmt.Fprintf(p.out, "%s%s: ", question, hint)

		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes", "д", "да":
			return true, nil
		case "n", "no", "н", "нет":
			return false, nil
		}
		fmt.Fprintln(p.out, p.styles.warn.Render("Введите y или n"))
	}
}

func (p *ConsolePrompter) Choose(ctx context.Context, label string, choices []string, def string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s [%s]%s: ", label, strings.Join(choices, "/"), p.defaultHint(def))

		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "" {
			answer = def
		}
		if slices.Contains(choices, answer) {
			return answer, nil
		}
		fmt.Fprintln(p.out, p.styles.warn.Render("Выберите один из вариантов: "+strings.Join(choices, ", ")))
	}
}

func (p *ConsolePrompter) defaultHint(def string) string {
	if def == "" {
		return ""
	}
	return p.styles.help.Render(" (" + def + ")")
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned as is; io.EOF is returned only when
// nothing was read.
func (p *ConsolePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// inputModel is a single input line that quits on enter. A secret model
// never renders its value once finished.
type inputModel struct {
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(label, value string, echo textinput.EchoMode) inputModel {
	input := textinput.New()
	input.Prompt = label + ": "
	input.EchoMode = echo
	if echo != textinput.EchoNormal {
		input.EchoCharacter = '*'
		input.CharLimit = 256
	}
	input.SetValue(value)
	input.Focus()

	return inputModel{input: input}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		if m.input.EchoMode != textinput.EchoNormal || m.aborted {
			return m.input.Prompt + "\n"
		}
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}
