// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DataType defines the scalar type of a single entity field.
// The value determines how the field is stored locally and how it is
// tagged on the wire.
type DataType int

const (
	// String is a UTF-8 text value. On the wire it carries no type attribute.
	String DataType = iota + 1

	// Int32 is a 32-bit signed integer, tagged "Edm.Int32" on the wire.
	Int32

	// Boolean is a true/false flag, tagged "Edm.Boolean" on the wire.
	Boolean
)

// String returns the lowercase name of the data type.
func (d DataType) String() string {
	switch d {
	case String:
		return "string"
	case Int32:
		return "int32"
	case Boolean:
		return "boolean"
	default:
		return "unknown(" + strconv.Itoa(int(d)) + ")"
	}
}

// EntityField describes a single field of an [EntityType].
type EntityField struct {
	// Name is the field name used on the wire and as the lookup key for
	// Entity.Value / Entity.SetValue.
	Name string

	// Column is the local sqlite column the field is stored in.
	Column string

	// DataType is the declared scalar type.
	DataType DataType

	// Size is the maximum length for String fields, -1 when unbounded.
	Size int

	// IsKey marks the server-assigned identifier. At most one field per
	// type may be a key.
	IsKey bool

	// IsOnServer is false for local-only bookkeeping fields. Such fields
	// are never sent to or read from the wire.
	IsOnServer bool
}

// Coerce is [EntityField.Convert] followed by the Size check. Returns
// [ErrFieldTooLong] if a string exceeds Size.
func (f EntityField) Coerce(v any) (any, error) {
	out, err := f.Convert(v)
	if err != nil {
		return nil, err
	}
	if s, ok := out.(string); ok && f.Size > 0 && utf8.RuneCountInString(s) > f.Size {
		return nil, fmt.Errorf("%w: field %s exceeds %d characters", ErrFieldTooLong, f.Name, f.Size)
	}
	return out, nil
}

// Convert converts v into the Go representation of the field's declared type:
// string for String, int64 for Int32 and bool for Boolean. A nil value
// converts to the type's zero value. Size is not checked.
//
// Returns [ErrInvalidFieldValue] if v cannot be represented.
func (f EntityField) Convert(v any) (any, error) {
	switch f.DataType {
	case String:
		var s string
		switch val := v.(type) {
		case nil:
		case string:
			s = val
		case []byte:
			s = string(val)
		case int64:
			s = strconv.FormatInt(val, 10)
		case int:
			s = strconv.Itoa(val)
		case bool:
			s = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("%w: field %s: %T", ErrInvalidFieldValue, f.Name, v)
		}
		return s, nil

	case Int32:
		var n int64
		switch val := v.(type) {
		case nil:
		case int64:
			n = val
		case int:
			n = int64(val)
		case int32:
			n = int64(val)
		case bool:
			if val {
				n = 1
			}
		case string:
			parsed, err := strconv.ParseInt(strings.TrimSpace(val), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: field %s: %q", ErrInvalidFieldValue, f.Name, val)
			}
			n = parsed
		default:
			return nil, fmt.Errorf("%w: field %s: %T", ErrInvalidFieldValue, f.Name, v)
		}
		return n, nil

	case Boolean:
		var b bool
		switch val := v.(type) {
		case nil:
		case bool:
			b = val
		case int64:
			b = val != 0
		case int:
			b = val != 0
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(val))
			if err != nil {
				return nil, fmt.Errorf("%w: field %s: %q", ErrInvalidFieldValue, f.Name, val)
			}
			b = parsed
		default:
			return nil, fmt.Errorf("%w: field %s: %T", ErrInvalidFieldValue, f.Name, v)
		}
		return b, nil
	}

	return nil, fmt.Errorf("%w: field %s has type %s", ErrInvalidFieldValue, f.Name, f.DataType)
}

// Entity is a schema-typed record. Implementations switch over their
// declared field names; values passed to SetValue are coerced to the
// field's declared type.
type Entity interface {
	// TypeName returns the name the entity's type is registered under.
	TypeName() string

	// Value returns the current value of the named field.
	Value(field string) (any, error)

	// SetValue assigns the named field.
	SetValue(field string, value any) error
}

// EntityType is the statically declared schema of one record type.
type EntityType struct {
	// Name is the name the type is registered under.
	Name string

	// NativeName is the collection name on the remote service.
	NativeName string

	// Table is the local sqlite table.
	Table string

	// Fields lists the fields in declaration order.
	Fields []EntityField

	// New creates an empty entity of this type.
	New func() Entity
}

// Field returns the field with the given name.
func (et *EntityType) Field(name string) (EntityField, bool) {
	for _, f := range et.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return EntityField{}, false
}

// KeyField returns the key field, if the type declares one.
func (et *EntityType) KeyField() (EntityField, bool) {
	for _, f := range et.Fields {
		if f.IsKey {
			return f, true
		}
	}
	return EntityField{}, false
}

// ServerFields returns the fields that travel on the wire in an upload
// payload: server-visible and not the key.
func (et *EntityType) ServerFields() []EntityField {
	fields := make([]EntityField, 0, len(et.Fields))
	for _, f := range et.Fields {
		if f.IsOnServer && !f.IsKey {
			fields = append(fields, f)
		}
	}
	return fields
}

// Columns returns the sqlite column names in declaration order.
func (et *EntityType) Columns() []string {
	cols := make([]string, 0, len(et.Fields))
	for _, f := range et.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

func (et *EntityType) validate() error {
	if et.Name == "" || et.NativeName == "" || et.Table == "" {
		return fmt.Errorf("%w: type names must not be empty", ErrInvalidEntityType)
	}
	if et.New == nil {
		return fmt.Errorf("%w: %s has no factory", ErrInvalidEntityType, et.Name)
	}

	seen := make(map[string]struct{}, len(et.Fields))
	keys := 0
	for _, f := range et.Fields {
		if f.Name == "" || f.Column == "" {
			return fmt.Errorf("%w: %s has a field without name or column", ErrInvalidEntityType, et.Name)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: %s declares field %s twice", ErrInvalidEntityType, et.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.IsKey {
			keys++
		}
	}
	if keys > 1 {
		return fmt.Errorf("%w: %s declares %d key fields", ErrInvalidEntityType, et.Name, keys)
	}

	return nil
}
