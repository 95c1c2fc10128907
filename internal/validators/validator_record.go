package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-console/models"
)

// MinPasswordLength is the minimum number of characters (runes) a stored
// password must have.
const MinPasswordLength = 5

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a record.
	FieldName = models.FieldName

	// FieldPassword targets the secret of a record.
	FieldPassword = models.FieldPassword
)

// RecordValidator implements the Validator interface for credential
// records. Name is checked before password, so a record failing both rules
// reports ErrInvalidName.
type RecordValidator struct {
	minPasswordLength int
}

// NewRecordValidator constructs a RecordValidator enforcing
// MinPasswordLength and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{minPasswordLength: MinPasswordLength}
}

// Validate accepts models.Record by value or pointer. Without fields both
// name and password are checked.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(record.Name) == "" {
				return ErrInvalidName
			}
		case FieldPassword:
			if n := utf8.RuneCountInString(record.Password); n < v.minPasswordLength {
				return fmt.Errorf("%w: got %d characters, need at least %d", ErrWeakPassword, n, v.minPasswordLength)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	return nil
}
