// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is a single named credential entry kept in the local vault.
//
// A zero ID means the record has never been persisted; the store assigns a
// positive, immutable ID on create.
type Record struct {
	// ID is the store-assigned identity. Zero before the first save.
	ID int64 `json:"id"`

	// Name is the display label of the record. Required.
	Name string `json:"name"`

	// Login is the account login for the resource. May be empty.
	Login string `json:"login"`

	// Password is the account password. Must satisfy the minimum length
	// policy whenever the record is created or edited.
	Password string `json:"password"`

	// Etc is a free-form auxiliary field (security answers, PIN, URL...).
	Etc string `json:"etc"`

	// Description is a free-form note. May be empty.
	Description string `json:"description"`
}

// HasIdentity reports whether r has been assigned an ID by the store.
func (r Record) HasIdentity() bool {
	return r.ID > 0
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "entries"
}

// RecordSummary is the list view of a record: identity and display label.
type RecordSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
