package tui

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*ConsolePrompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewConsolePrompter(strings.NewReader(input), out, true), out
}

func TestConsolePrompter_Ask(t *testing.T) {
	p, out := newTestPrompter("Mail\n\r\n  \nlast")

	got, err := p.Ask(t.Context(), "Название", "")
	require.NoError(t, err)
	assert.Equal(t, "Mail", got)

	got, err = p.Ask(t.Context(), "Логин", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", got, "empty answer yields the default")

	got, err = p.Ask(t.Context(), "Описание", "x")
	require.NoError(t, err)
	assert.Equal(t, "  ", got, "answers are not trimmed")

	got, err = p.Ask(t.Context(), "Прочее", "")
	require.NoError(t, err)
	assert.Equal(t, "last", got, "final line without newline is accepted")

	_, err = p.Ask(t.Context(), "Ещё", "")
	assert.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out.String(), "Логин (bob; -: очистить): ")
}

func TestConsolePrompter_AskSecret_NotTerminal(t *testing.T) {
	p, out := newTestPrompter("\nnewpass\n")
	assert.Nil(t, p.tty)

	got, err := p.AskSecret(t.Context(), "Пароль", "abcde")
	require.NoError(t, err)
	assert.Equal(t, "abcde", got)

	got, err = p.AskSecret(t.Context(), "Пароль", "abcde")
	require.NoError(t, err)
	assert.Equal(t, "newpass", got)

	assert.NotContains(t, out.String(), "abcde", "the default secret is never shown")
	assert.Contains(t, out.String(), "Enter: без изменений")
}

func TestConsolePrompter_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"russian yes", "да\n", false, true},
		{"upper case no", "NO\n", true, false},
		{"empty uses default true", "\n", true, true},
		{"empty uses default false", "\n", false, false},
		{"re-asks until valid", "maybe\nн\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			got, err := p.Confirm(t.Context(), "Сохранить?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsolePrompter_Confirm_EOF(t *testing.T) {
	p, out := newTestPrompter("what\n")

	_, err := p.Confirm(t.Context(), "Сохранить?", true)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "Введите y или n")
	assert.Contains(t, out.String(), "Сохранить? [Y/n]: ")
}

func TestConsolePrompter_Choose(t *testing.T) {
	p, out := newTestPrompter("x\nE\n\n")
	choices := []string{"e", "d", "b"}

	got, err := p.Choose(t.Context(), "Действие", choices, "b")
	require.NoError(t, err)
	assert.Equal(t, "e", got)
	assert.Contains(t, out.String(), "Выберите один из вариантов: e, d, b")

	got, err = p.Choose(t.Context(), "Действие", choices, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestConsolePrompter_Ask_ClearAnswer(t *testing.T) {
	p, _ := newTestPrompter("-\n-\n")

	got, err := p.Ask(t.Context(), "Логин", "bob")
	require.NoError(t, err)
	assert.Empty(t, got, "a single dash clears the suggested value")

	got, err = p.Ask(t.Context(), "Логин", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConsolePrompter_CancelledContext(t *testing.T) {
	p, _ := newTestPrompter("Mail\n")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := p.Ask(ctx, "Название", "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, isSessionEnd(err))

	_, err = p.Confirm(ctx, "Сохранить?", true)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsolePrompter_TerminalInputStopsOnCancel(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = w.Close()
		_ = r.Close()
	})

	p, _ := newTestPrompter("")
	p.tty = r

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err = p.Ask(ctx, "Логин", "bob")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── input model ──────────────────────────────────────────────────────────────

func typeRunes(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestInputModel_SecretEnter(t *testing.T) {
	var m tea.Model = newInputModel("Пароль", "", textinput.EchoPassword)
	m = typeRunes(m, "s3cret")

	assert.NotContains(t, m.View(), "s3cret")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	im := m.(inputModel)
	assert.True(t, im.done)
	assert.False(t, im.aborted)
	assert.Equal(t, "s3cret", im.input.Value())
	assert.Equal(t, "Пароль: \n", im.View())
}

func TestInputModel_PrefilledValueCanBeCleared(t *testing.T) {
	var m tea.Model = newInputModel("Логин", "bob", textinput.EchoNormal)
	assert.Contains(t, m.View(), "bob")

	for range len("bob") {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	im := m.(inputModel)
	assert.True(t, im.done)
	assert.Empty(t, im.input.Value())
	assert.Equal(t, "Логин: \n", im.View())
}

func TestInputModel_EditedValueShownWhenDone(t *testing.T) {
	var m tea.Model = newInputModel("Название", "Mail", textinput.EchoNormal)
	m = typeRunes(m, "box")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	im := m.(inputModel)
	assert.Equal(t, "Mailbox", im.input.Value())
	assert.Equal(t, "Название: Mailbox\n", im.View())
}

func TestInputModel_Abort(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		var m tea.Model = newInputModel("Пароль", "", textinput.EchoPassword)
		m, _ = m.Update(tea.KeyMsg{Type: key})

		im := m.(inputModel)
		assert.True(t, im.aborted)
	}
}
