package service

import "errors"

var (
	// ErrRecordNotFound is returned when the requested record id does not
	// exist in the store.
	ErrRecordNotFound = errors.New("record not found")
)
