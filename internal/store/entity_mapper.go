package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntity reads one row selected by buildSelectQuery into a new entity of
// type et. NULL columns become the field's zero value.
func scanEntity(row rowScanner, et *models.EntityType) (models.Entity, error) {
	holders := make([]any, len(et.Fields))
	for i, f := range et.Fields {
		switch f.DataType {
		case models.Int32:
			holders[i] = new(sql.NullInt64)
		case models.Boolean:
			holders[i] = new(sql.NullBool)
		default:
			holders[i] = new(sql.NullString)
		}
	}

	if err := row.Scan(holders...); err != nil {
		return nil, err
	}

	e := et.New()
	for i, f := range et.Fields {
		var v any
		switch h := holders[i].(type) {
		case *sql.NullInt64:
			if h.Valid {
				v = h.Int64
			}
		case *sql.NullBool:
			if h.Valid {
				v = h.Bool
			}
		case *sql.NullString:
			if h.Valid {
				v = h.String
			}
		}
		if err := e.SetValue(f.Name, v); err != nil {
			return nil, fmt.Errorf("column %s: %w", f.Column, err)
		}
	}

	return e, nil
}

func scanBookmark(row rowScanner, et *models.EntityType) (models.Bookmark, error) {
	e, err := scanEntity(row, et)
	if err != nil {
		return models.Bookmark{}, err
	}
	b, ok := e.(*models.Bookmark)
	if !ok {
		return models.Bookmark{}, fmt.Errorf("unexpected entity %T for %s", e, et.Name)
	}
	return *b, nil
}
