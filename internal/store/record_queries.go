// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-console/models"
)

const entriesTable = "entries"

// builder produces SQLite-style "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// recordColumns lists the selected columns in the order recordRepository.Get
// scans them. Nullable text columns from legacy databases read back as "".
var recordColumns = []string{
	"id",
	"name",
	"COALESCE(login, '')",
	"COALESCE(password, '')",
	"COALESCE(etc, '')",
	"COALESCE(description, '')",
}

func buildInsertRecordQuery(record models.Record) (string, []any, error) {
	return builder.
		Insert(entriesTable).
		Columns("name", "login", "password", "etc", "description").
		Values(record.Name, record.Login, record.Password, record.Etc, record.Description).
		ToSql()
}

func buildSelectRecordQuery(id int64) (string, []any, error) {
	return builder.
		Select(recordColumns...).
		From(entriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectSummariesQuery() (string, []any, error) {
	return builder.
		Select("id", "name").
		From(entriesTable).
		OrderBy("id").
		ToSql()
}

func buildUpdateRecordQuery(record models.Record) (string, []any, error) {
	return builder.
		Update(entriesTable).
		Set("name", record.Name).
		Set("login", record.Login).
		Set("password", record.Password).
		Set("etc", record.Etc).
		Set("description", record.Description).
		Where(sq.Eq{"id": record.ID}).
		ToSql()
}

func buildDeleteRecordQuery(id int64) (string, []any, error) {
	return builder.
		Delete(entriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
