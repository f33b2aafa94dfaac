package models

import "errors"

// Schema errors. A failed lookup is a programming error rather than a
// recoverable runtime condition.
var (
	// ErrUnknownEntityType is returned when a type name was never registered.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrDuplicateEntityType is returned when a registry receives the same
	// type name twice.
	ErrDuplicateEntityType = errors.New("entity type already registered")

	// ErrInvalidEntityType is returned for a malformed type declaration.
	ErrInvalidEntityType = errors.New("invalid entity type")

	// ErrUnknownField is returned by Entity.Value / Entity.SetValue for a
	// field the type does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidFieldValue is returned when a value cannot be converted to
	// the field's declared type.
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrFieldTooLong is returned when a string exceeds the field size.
	ErrFieldTooLong = errors.New("field value too long")
)
