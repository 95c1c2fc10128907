package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName  = errors.New("record name must not be blank")
	ErrWeakPassword = errors.New("password is too short")
)
