// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Field names of the Bookmark type as they appear on the wire.
const (
	BookmarkTypeName = "Bookmark"

	BookmarkIDKey      = "BookmarkId"
	NameKey            = "Name"
	URLKey             = "Url"
	OrdinalKey         = "Ordinal"
	IsLocalModifiedKey = "IsLocalModified"
	IsLocalDeletedKey  = "IsLocalDeleted"
)

var bookmarkFields = []EntityField{
	{Name: BookmarkIDKey, Column: "bookmark_id", DataType: Int32, Size: -1, IsKey: true, IsOnServer: true},
	{Name: NameKey, Column: "name", DataType: String, Size: 128, IsOnServer: true},
	{Name: URLKey, Column: "url", DataType: String, Size: 128, IsOnServer: true},
	{Name: OrdinalKey, Column: "ordinal", DataType: Int32, Size: -1, IsOnServer: true},
	{Name: IsLocalModifiedKey, Column: "is_local_modified", DataType: Boolean, Size: -1},
	{Name: IsLocalDeletedKey, Column: "is_local_deleted", DataType: Boolean, Size: -1},
}

// BookmarkType returns the schema of [Bookmark].
func BookmarkType() *EntityType {
	fields := make([]EntityField, len(bookmarkFields))
	copy(fields, bookmarkFields)

	return &EntityType{
		Name:       BookmarkTypeName,
		NativeName: "Bookmark",
		Table:      "bookmarks",
		Fields:     fields,
		New:        func() Entity { return &Bookmark{} },
	}
}

// Bookmark is a single saved link.
//
// BookmarkID is assigned by the server and is zero until the record has been
// created remotely. Ordinal is assigned by the client, is unique within the
// local store and is the key used to match a local record with its server
// counterpart. The IsLocal* flags are local bookkeeping and never travel on
// the wire.
type Bookmark struct {
	BookmarkID      int64  `json:"bookmark_id"`
	Ordinal         int64  `json:"ordinal"`
	Name            string `json:"name"`
	URL             string `json:"url"`
	IsLocalModified bool   `json:"is_local_modified"`
	IsLocalDeleted  bool   `json:"is_local_deleted"`
}

// TypeName implements [Entity].
func (b *Bookmark) TypeName() string {
	return BookmarkTypeName
}

// Value implements [Entity].
func (b *Bookmark) Value(field string) (any, error) {
	switch field {
	case BookmarkIDKey:
		return b.BookmarkID, nil
	case NameKey:
		return b.Name, nil
	case URLKey:
		return b.URL, nil
	case OrdinalKey:
		return b.Ordinal, nil
	case IsLocalModifiedKey:
		return b.IsLocalModified, nil
	case IsLocalDeletedKey:
		return b.IsLocalDeleted, nil
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, BookmarkTypeName, field)
}

// SetValue implements [Entity]. Lengths are not enforced here: values read
// from the service are stored as the service returned them, and local edits
// are checked by the bookmark validator.
func (b *Bookmark) SetValue(field string, value any) error {
	f, ok := fieldByName(bookmarkFields, field)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, BookmarkTypeName, field)
	}
	v, err := f.Convert(value)
	if err != nil {
		return err
	}

	switch field {
	case BookmarkIDKey:
		b.BookmarkID = v.(int64)
	case NameKey:
		b.Name = v.(string)
	case URLKey:
		b.URL = v.(string)
	case OrdinalKey:
		b.Ordinal = v.(int64)
	case IsLocalModifiedKey:
		b.IsLocalModified = v.(bool)
	case IsLocalDeletedKey:
		b.IsLocalDeleted = v.(bool)
	}
	return nil
}

func fieldByName(fields []EntityField, name string) (EntityField, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return EntityField{}, false
}
