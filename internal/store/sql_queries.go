package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// builder renders sqlite "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSelectQuery selects every schema column of et, in schema order.
func buildSelectQuery(et *models.EntityType, where sq.Sqlizer, orderBy ...string) (string, []any, error) {
	q := builder.Select(et.Columns()...).From(et.Table)
	if where != nil {
		q = q.Where(where)
	}
	if len(orderBy) > 0 {
		q = q.OrderBy(orderBy...)
	}

	return toSQL(q)
}

// buildInsertQuery inserts e. The key column is written only when withKey
// is set; otherwise sqlite assigns it.
func buildInsertQuery(et *models.EntityType, e models.Entity, withKey bool) (string, []any, error) {
	columns := make([]string, 0, len(et.Fields))
	values := make([]any, 0, len(et.Fields))
	for _, f := range et.Fields {
		if f.IsKey && !withKey {
			continue
		}
		v, err := e.Value(f.Name)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		columns = append(columns, f.Column)
		values = append(values, v)
	}

	return toSQL(builder.Insert(et.Table).Columns(columns...).Values(values...))
}

// buildUpdateQuery overwrites every non-key column of the row matching e's key.
func buildUpdateQuery(et *models.EntityType, e models.Entity) (string, []any, error) {
	key, ok := et.KeyField()
	if !ok {
		return "", nil, fmt.Errorf("%w: %s has no key field", ErrBuildingSQLQuery, et.Name)
	}
	id, err := e.Value(key.Name)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	set := make(map[string]any, len(et.Fields))
	for _, f := range et.Fields {
		if f.IsKey {
			continue
		}
		v, err := e.Value(f.Name)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		set[f.Column] = v
	}

	return toSQL(builder.Update(et.Table).SetMap(set).Where(sq.Eq{key.Column: id}))
}

func buildDeleteAllQuery(et *models.EntityType) (string, []any, error) {
	return toSQL(builder.Delete(et.Table))
}

func buildNextOrdinalQuery(et *models.EntityType) (string, []any, error) {
	f, ok := et.Field(models.OrdinalKey)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s has no ordinal", ErrBuildingSQLQuery, et.Name)
	}

	return toSQL(builder.Select(fmt.Sprintf("COALESCE(MAX(%s), 0) + 1", f.Column)).From(et.Table))
}

// buildUpsertTombstoneQuery writes a setting, replacing the value of an
// existing name.
func buildUpsertTombstoneQuery(et *models.EntityType, name, value string) (string, []any, error) {
	nameField, _ := et.Field(models.TombstoneNameKey)
	valueField, _ := et.Field(models.TombstoneValueKey)

	q := builder.Insert(et.Table).
		Columns(nameField.Column, valueField.Column).
		Values(name, value).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = excluded.%s",
			nameField.Column, valueField.Column, valueField.Column))

	return toSQL(q)
}

func toSQL(q sq.Sqlizer) (string, []any, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
