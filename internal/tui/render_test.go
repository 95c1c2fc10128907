package tui

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/internal/service"
	"github.com/MKhiriev/go-pass-console/internal/store"
	"github.com/MKhiriev/go-pass-console/internal/validators"
	"github.com/MKhiriev/go-pass-console/models"
)

func Test_errorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: %q", ErrInvalidInput, "x"), "некорректный ввод"},
		{fmt.Errorf("wrap: %w", validators.ErrInvalidName), "название не может быть пустым"},
		{fmt.Errorf("wrap: %w", validators.ErrWeakPassword), "минимум 5 символов"},
		{fmt.Errorf("wrap: %w", service.ErrRecordNotFound), "Запись не найдена!"},
		{store.ErrMissingIdentity, "нет идентификатора"},
		{fmt.Errorf("%w: disk full", store.ErrStorage), "Ошибка хранилища: storage error: disk full"},
		{errors.New("weird"), "Неожиданная ошибка: weird"},
	}

	for _, tt := range tests {
		assert.Contains(t, errorMessage(tt.err), tt.want)
	}
}

func Test_maskSecret(t *testing.T) {
	assert.Equal(t, "-", maskSecret(""))
	assert.Equal(t, maskedSecret, maskSecret("a"))
	assert.Equal(t, maskedSecret, maskSecret("a very long password"))
}

func TestRenderDetails_EmptyFields(t *testing.T) {
	tu := newTestUI(t, "")

	out := tu.ui.renderDetails(models.Record{ID: 3, Name: "Forum"}, false)
	assert.Contains(t, out, "Детали записи #3")
	assert.Contains(t, out, "Логин:         -")
	assert.Contains(t, out, "Пароль:        -")
	assert.Contains(t, out, "b: назад")
}

func TestRenderDiff_OnlyPasswordMasked(t *testing.T) {
	tu := newTestUI(t, "")

	out := tu.ui.renderDiff([]models.FieldChange{
		{Field: models.FieldLogin, Old: "bob", New: "alice"},
		{Field: models.FieldPassword, Old: "abcde", New: "abcdef"},
		{Field: models.FieldDescription, Old: "", New: "work"},
	})
	assert.Contains(t, out, "Логин: bob → alice")
	assert.Contains(t, out, "Пароль: "+maskedSecret+" → "+maskedSecret)
	assert.Contains(t, out, "Описание: - → work")
	assert.NotContains(t, out, "abcde")
}

func TestConsoleReporter_MirrorsToLog(t *testing.T) {
	var screen, logs bytes.Buffer
	r := NewConsoleReporter(&screen, true, logger.NewLogger("test", &logs, zerolog.DebugLevel))

	r.Info("info message")
	r.Success("saved")
	r.Warn("careful")
	r.Error("failed")

	for _, msg := range []string{"info message", "saved", "careful", "failed"} {
		assert.Contains(t, screen.String(), msg)
		assert.Contains(t, logs.String(), msg)
	}
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), `"level":"error"`)
}
