// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Names of the record data fields as they appear in diffs and validation.
const (
	FieldName        = "name"
	FieldLogin       = "login"
	FieldPassword    = "password"
	FieldEtc         = "etc"
	FieldDescription = "description"
)

// FieldChange describes one field whose value differs between the stored
// record and an edited candidate.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// Diff returns the data fields of candidate that differ from original, in
// fixed field order. Values are compared by exact string equality; the ID
// is not compared. An empty result means there is nothing to save.
func Diff(original, candidate Record) []FieldChange {
	pairs := [...]struct {
		field    string
		old, new string
	}{
		{FieldName, original.Name, candidate.Name},
		{FieldLogin, original.Login, candidate.Login},
		{FieldPassword, original.Password, candidate.Password},
		{FieldEtc, original.Etc, candidate.Etc},
		{FieldDescription, original.Description, candidate.Description},
	}

	var changes []FieldChange
	for _, p := range pairs {
		if p.old != p.new {
			changes = append(changes, FieldChange{Field: p.field, Old: p.old, New: p.new})
		}
	}

	return changes
}
