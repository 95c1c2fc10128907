package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-console/models"
)

const (
	uiDivider    = "──────────────────────────────────────────────────────"
	maskedSecret = "••••••••"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}

	return b.String()
}

func (t *TUI) renderMenu() string {
	body := strings.Join([]string{
		"1. Добавить запись",
		"2. Просмотреть записи",
		"3. Редактировать",
		"4. Удалить",
		"5. Выход",
	}, "\n")

	return t.styles.box.Render(t.styles.title.Render("Менеджер паролей")+"\n\n"+body) + "\n"
}

func (t *TUI) renderSummaries(summaries []models.RecordSummary) string {
	var b strings.Builder
	b.WriteString(t.styles.title.Render("Список записей:"))
	b.WriteString("\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "%d. %s\n", s.ID, s.Name)
	}
	return b.String()
}

func (t *TUI) renderDetails(record models.Record, reveal bool) string {
	password := maskSecret(record.Password)
	if reveal {
		password = valueOrDash(record.Password)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Название:      %s\n", valueOrDash(record.Name))
	fmt.Fprintf(&b, "Логин:         %s\n", valueOrDash(record.Login))
	fmt.Fprintf(&b, "Пароль:        %s\n", password)
	fmt.Fprintf(&b, "Дополнительно: %s\n", valueOrDash(record.Etc))
	fmt.Fprintf(&b, "Описание:      %s", valueOrDash(record.Description))

	return renderPage(
		t.styles.title.Render(fmt.Sprintf("Детали записи #%d", record.ID)),
		b.String(),
		t.styles.help.Render("e: редакт. │ d: удалить │ c: копир. пароль │ p: показать/скрыть пароль │ b: назад"),
	)
}

func (t *TUI) renderDiff(changes []models.FieldChange) string {
	var b strings.Builder
	b.WriteString(t.styles.title.Render("Изменения:"))
	b.WriteString("\n")

	for _, c := range changes {
		oldVal, newVal := valueOrDash(c.Old), valueOrDash(c.New)
		if c.Field == models.FieldPassword {
			oldVal, newVal = maskSecret(c.Old), maskSecret(c.New)
		}
		fmt.Fprintf(&b, "%s: %s → %s\n", fieldLabel(c.Field), t.styles.oldVal.Render(oldVal), t.styles.newVal.Render(newVal))
	}
	return b.String()
}

func fieldLabel(field string) string {
	switch field {
	case models.FieldName:
		return "Название"
	case models.FieldLogin:
		return "Логин"
	case models.FieldPassword:
		return "Пароль"
	case models.FieldEtc:
		return "Дополнительно"
	case models.FieldDescription:
		return "Описание"
	default:
		return field
	}
}

func maskSecret(v string) string {
	if v == "" {
		return "-"
	}
	return maskedSecret
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
