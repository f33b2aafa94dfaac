package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName      = errors.New("name is required")
	ErrEmptyURL       = errors.New("url is required")
	ErrInvalidURL     = errors.New("url must be an absolute http(s) address")
	ErrInvalidOrdinal = errors.New("ordinal must be positive")
	ErrTooLong        = errors.New("value is too long")
)
