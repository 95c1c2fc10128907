package tui

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/internal/service"
	"github.com/MKhiriev/go-pass-console/models"
)

const (
	actionEdit   = "e"
	actionDelete = "d"
	actionCopy   = "c"
	actionReveal = "p"
	actionBack   = "b"
)

var viewActions = []string{actionEdit, actionDelete, actionCopy, actionReveal, actionBack}

// Run shows the main menu until the user exits, the input ends or ctx is
// cancelled. Failed operations are reported and the loop continues.
func (t *TUI) Run(ctx context.Context) error {
	log := logger.FromContextOr(ctx, t.logger)
	log.Info().Str("func", "TUI.Run").Msg("session started")

	for {
		if ctx.Err() != nil {
			log.Info().Str("func", "TUI.Run").Msg("session cancelled")
			return nil
		}

		quit, err := t.step(ctx)
		if err != nil {
			if isSessionEnd(err) {
				fmt.Fprintln(t.out)
				log.Info().Str("func", "TUI.Run").Err(err).Msg("input closed, session finished")
				return nil
			}
			log.Err(err).Str("func", "TUI.Run").Msg("unexpected error in menu loop")
			t.reporter.Error(errorMessage(err))
			continue
		}
		if quit {
			log.Info().Str("func", "TUI.Run").Msg("session finished by user")
			return nil
		}
	}
}

// step runs one menu iteration. A panic inside a flow is turned into an
// error so the loop survives it.
func (t *TUI) step(ctx context.Context) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContextOr(ctx, t.logger).Error().
				Str("func", "TUI.step").
				Str("stack", string(debug.Stack())).
				Msgf("recovered from panic: %v", r)
			quit, err = false, fmt.Errorf("panic: %v", r)
		}
	}()

	fmt.Fprint(t.out, t.renderMenu())

	raw, err := t.prompter.Ask(ctx, "Выберите действие", "")
	if err != nil {
		return false, err
	}

	choice, ok := parseMenuChoice(raw)
	if !ok {
		t.reporter.Error("Ошибка: введите число от 1 до 5!")
		return false, nil
	}

	switch choice {
	case menuAdd:
		return false, t.addRecord(ctx)
	case menuView:
		return false, t.viewRecords(ctx)
	case menuEdit:
		id, ok, err := t.askID(ctx, "Введите ID записи для редактирования")
		if err != nil || !ok {
			return false, err
		}
		return false, t.editRecord(ctx, id)
	case menuDelete:
		id, ok, err := t.askID(ctx, "Введите ID записи для удаления")
		if err != nil || !ok {
			return false, err
		}
		_, err = t.deleteRecord(ctx, id)
		return false, err
	case menuExit:
		return t.prompter.Confirm(ctx, "Выйти из программы?", false)
	}

	return false, nil
}

// askID prompts for a record id. ok is false when the answer was blank or
// was reported as invalid.
func (t *TUI) askID(ctx context.Context, label string) (id int64, ok bool, err error) {
	raw, err := t.prompter.Ask(ctx, label, "")
	if err != nil {
		return 0, false, err
	}
	if strings.TrimSpace(raw) == "" {
		return 0, false, nil
	}

	id, ok = parseID(raw)
	if !ok {
		t.reportErr(fmt.Errorf("%w: %q", ErrInvalidInput, raw))
		return 0, false, nil
	}
	return id, true, nil
}

func (t *TUI) addRecord(ctx context.Context) error {
	fmt.Fprintln(t.out, t.styles.title.Render("Новая запись"))

	var candidate models.Record
	for {
		var err error
		candidate, err = t.promptRecord(ctx, candidate)
		if err != nil {
			return err
		}

		if err = t.records.Validate(ctx, candidate); err == nil {
			break
		}
		t.reportErr(err)

		retry, err := t.prompter.Confirm(ctx, "Исправить введённые данные?", true)
		if err != nil {
			return err
		}
		if !retry {
			t.reporter.Info("Добавление отменено")
			return nil
		}
	}

	save, err := t.prompter.Confirm(ctx, "Сохранить запись?", true)
	if err != nil {
		return err
	}
	if !save {
		t.reporter.Info("Запись не сохранена")
		return nil
	}

	id, err := t.records.Create(ctx, candidate)
	if err != nil {
		t.reportErr(err)
		return nil
	}

	t.reporter.Success(fmt.Sprintf("Запись #%d сохранена!", id))
	return nil
}

func (t *TUI) viewRecords(ctx context.Context) error {
	summaries, err := t.records.List(ctx)
	if err != nil {
		t.reportErr(err)
		return nil
	}
	if len(summaries) == 0 {
		t.reporter.Warn("Нет сохранённых записей.")
		return nil
	}

	fmt.Fprint(t.out, t.renderSummaries(summaries))

	id, ok, err := t.askID(ctx, "Введите ID записи для просмотра (Enter: назад)")
	if err != nil || !ok {
		return err
	}

	record, err := t.records.Get(ctx, id)
	if err != nil {
		t.reportErr(err)
		return nil
	}

	return t.viewRecord(ctx, record)
}

// viewRecord shows one record and handles its actions until the user goes
// back or the record is gone.
func (t *TUI) viewRecord(ctx context.Context, record models.Record) error {
	reveal := t.reveal

	for {
		fmt.Fprint(t.out, t.renderDetails(record, reveal))

		action, err := t.prompter.Choose(ctx, "Действие", viewActions, actionBack)
		if err != nil {
			return err
		}

		switch action {
		case actionEdit:
			if err = t.editRecord(ctx, record.ID); err != nil {
				return err
			}

			refreshed, err := t.records.Get(ctx, record.ID)
			if errors.Is(err, service.ErrRecordNotFound) {
				t.reporter.Warn("Запись больше не существует")
				return nil
			}
			if err != nil {
				t.reportErr(err)
				return nil
			}
			record = refreshed

		case actionDelete:
			deleted, err := t.deleteRecord(ctx, record.ID)
			if err != nil {
				return err
			}
			if deleted {
				return nil
			}

		case actionCopy:
			if err = t.clipboard.WriteAll(record.Password); err != nil {
				logger.FromContextOr(ctx, t.logger).Err(err).Str("func", "TUI.viewRecord").Msg("clipboard write failed")
				t.reporter.Error("Не удалось скопировать пароль: " + err.Error())
				continue
			}
			t.reporter.Success("Пароль скопирован в буфер обмена")

		case actionReveal:
			reveal = !reveal

		case actionBack:
			return nil
		}
	}
}

// editRecord prompts for new values with the current ones as defaults and
// saves only after the changes are shown and confirmed.
func (t *TUI) editRecord(ctx context.Context, id int64) error {
	original, err := t.records.Get(ctx, id)
	if err != nil {
		t.reportErr(err)
		return nil
	}

	fmt.Fprintln(t.out, t.styles.title.Render(fmt.Sprintf("Редактирование записи #%d", id)))

	candidate := original
	for {
		candidate, err = t.promptRecord(ctx, candidate)
		if err != nil {
			return err
		}

		changes := models.Diff(original, candidate)
		if len(changes) == 0 {
			t.reporter.Warn("Нет изменений для сохранения")
			return nil
		}

		if err = t.records.Validate(ctx, candidate); err != nil {
			t.reportErr(err)

			retry, err := t.prompter.Confirm(ctx, "Исправить введённые данные?", true)
			if err != nil {
				return err
			}
			if !retry {
				t.reporter.Info("Редактирование отменено")
				return nil
			}
			continue
		}

		fmt.Fprint(t.out, t.renderDiff(changes))
		break
	}

	save, err := t.prompter.Confirm(ctx, "Сохранить изменения?", true)
	if err != nil {
		return err
	}
	if !save {
		t.reporter.Info("Изменения не сохранены")
		return nil
	}

	if err = t.records.Update(ctx, candidate); err != nil {
		t.reportErr(err)
		return nil
	}

	t.reporter.Success("Запись успешно обновлена!")
	return nil
}

// deleteRecord asks for explicit confirmation and reports whether the
// record was removed.
func (t *TUI) deleteRecord(ctx context.Context, id int64) (bool, error) {
	record, err := t.records.Get(ctx, id)
	if err != nil {
		t.reportErr(err)
		return false, nil
	}

	sure, err := t.prompter.Confirm(ctx, fmt.Sprintf("Удалить запись #%d %q?", record.ID, record.Name), false)
	if err != nil {
		return false, err
	}
	if !sure {
		t.reporter.Info("Удаление отменено")
		return false, nil
	}

	if err = t.records.Delete(ctx, id); err != nil {
		t.reportErr(err)
		return false, nil
	}

	t.reporter.Success("Запись удалена!")
	return true, nil
}

// promptRecord asks for every data field using defaults as the suggested
// answers. The id of defaults is kept.
func (t *TUI) promptRecord(ctx context.Context, defaults models.Record) (models.Record, error) {
	var (
		r   = models.Record{ID: defaults.ID}
		err error
	)

	if r.Name, err = t.prompter.Ask(ctx, "Название ресурса", defaults.Name); err != nil {
		return models.Record{}, err
	}
	if r.Login, err = t.prompter.Ask(ctx, "Логин", defaults.Login); err != nil {
		return models.Record{}, err
	}
	if r.Password, err = t.prompter.AskSecret(ctx, "Пароль", defaults.Password); err != nil {
		return models.Record{}, err
	}
	if r.Etc, err = t.prompter.Ask(ctx, "Дополнительно", defaults.Etc); err != nil {
		return models.Record{}, err
	}
	if r.Description, err = t.prompter.Ask(ctx, "Описание", defaults.Description); err != nil {
		return models.Record{}, err
	}

	return r, nil
}

// reportErr shows err to the user. A missing record is a soft warning.
func (t *TUI) reportErr(err error) {
	if errors.Is(err, service.ErrRecordNotFound) {
		t.reporter.Warn(errorMessage(err))
		return
	}
	t.reporter.Error(errorMessage(err))
}
