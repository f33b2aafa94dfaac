package models

import "fmt"

const (
	TombstoneDataTypeName = "TombstoneData"

	TombstoneDataIDKey = "TombstoneDataId"
	TombstoneNameKey   = "Name"
	TombstoneValueKey  = "Value"
)

// Well-known tombstone names.
const (
	TombstoneLastSyncAt    = "LastSyncAt"
	TombstoneLastSyncError = "LastSyncError"
)

var tombstoneFields = []EntityField{
	{Name: TombstoneDataIDKey, Column: "tombstone_data_id", DataType: Int32, Size: -1, IsKey: true},
	{Name: TombstoneNameKey, Column: "name", DataType: String, Size: 64},
	{Name: TombstoneValueKey, Column: "value", DataType: String, Size: 256},
}

// TombstoneDataType returns the schema of [TombstoneData]. The type is
// local-only: none of its fields are server-visible.
func TombstoneDataType() *EntityType {
	fields := make([]EntityField, len(tombstoneFields))
	copy(fields, tombstoneFields)

	return &EntityType{
		Name:       TombstoneDataTypeName,
		NativeName: "TombstoneData",
		Table:      "tombstone_data",
		Fields:     fields,
		New:        func() Entity { return &TombstoneData{} },
	}
}

// TombstoneData is a named string value persisted next to the bookmarks.
// The client uses it for small settings such as the time of the last
// successful sync.
type TombstoneData struct {
	TombstoneDataID int64
	Name            string
	StoredValue     string
}

// TypeName implements [Entity].
func (t *TombstoneData) TypeName() string {
	return TombstoneDataTypeName
}

// Value implements [Entity].
func (t *TombstoneData) Value(field string) (any, error) {
	switch field {
	case TombstoneDataIDKey:
		return t.TombstoneDataID, nil
	case TombstoneNameKey:
		return t.Name, nil
	case TombstoneValueKey:
		return t.StoredValue, nil
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, TombstoneDataTypeName, field)
}

// SetValue implements [Entity].
func (t *TombstoneData) SetValue(field string, value any) error {
	f, ok := fieldByName(tombstoneFields, field)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, TombstoneDataTypeName, field)
	}
	v, err := f.Coerce(value)
	if err != nil {
		return err
	}

	switch field {
	case TombstoneDataIDKey:
		t.TombstoneDataID = v.(int64)
	case TombstoneNameKey:
		t.Name = v.(string)
	case TombstoneValueKey:
		t.StoredValue = v.(string)
	}
	return nil
}
