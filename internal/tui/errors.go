// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-pass-console/internal/service"
	"github.com/MKhiriev/go-pass-console/internal/store"
	"github.com/MKhiriev/go-pass-console/internal/validators"
)

var (
	// ErrInvalidInput marks a menu choice or record id that could not be
	// parsed.
	ErrInvalidInput = errors.New("некорректный ввод")

	// ErrPromptAborted is returned by the secret prompt on ctrl+c.
	ErrPromptAborted = errors.New("ввод прерван")

	ErrNoRecordService = errors.New("record service is not configured")
)

// isSessionEnd reports whether err means the user or the process is done
// with the session rather than that an operation failed.
func isSessionEnd(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, ErrPromptAborted) ||
		errors.Is(err, context.Canceled)
}

// errorMessage maps an error to the text shown to the user.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "Ошибка: некорректный ввод!"
	case errors.Is(err, validators.ErrInvalidName):
		return "Ошибка: название не может быть пустым!"
	case errors.Is(err, validators.ErrWeakPassword):
		return "Ошибка: пароль должен содержать минимум 5 символов!"
	case errors.Is(err, service.ErrRecordNotFound):
		return "Запись не найдена!"
	case errors.Is(err, store.ErrMissingIdentity):
		return "Внутренняя ошибка: у записи нет идентификатора"
	case errors.Is(err, store.ErrStorage):
		return "Ошибка хранилища: " + err.Error()
	default:
		return "Неожиданная ошибка: " + err.Error()
	}
}
