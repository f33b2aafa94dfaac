package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

type localTombstoneRepository struct {
	*DB
	et     *models.EntityType
	logger *logger.Logger
}

func NewLocalTombstoneRepository(db *DB, registry *models.Registry, logger *logger.Logger) LocalTombstoneRepository {
	return &localTombstoneRepository{
		DB:     db,
		et:     registry.MustLookup(models.TombstoneDataTypeName),
		logger: logger,
	}
}

func (l *localTombstoneRepository) GetValue(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	nameField, _ := l.et.Field(models.TombstoneNameKey)
	query, args, err := buildSelectQuery(l.et, sq.Eq{nameField.Column: name})
	if err != nil {
		log.Err(err).Str("func", "localTombstoneRepository.GetValue").Msg("failed to create query")
		return "", err
	}

	e, err := scanEntity(l.DB.QueryRowContext(ctx, query, args...), l.et)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrTombstoneNotFound, name)
	}
	if err != nil {
		log.Err(err).
			Str("func", "localTombstoneRepository.GetValue").
			Str("name", name).
			Msg("failed to scan tombstone row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	v, err := e.Value(models.TombstoneValueKey)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (l *localTombstoneRepository) SetValue(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	// проверяем длины по схеме до записи
	td := &models.TombstoneData{}
	if err := td.SetValue(models.TombstoneNameKey, name); err != nil {
		return err
	}
	if err := td.SetValue(models.TombstoneValueKey, value); err != nil {
		return err
	}

	query, args, err := buildUpsertTombstoneQuery(l.et, td.Name, td.StoredValue)
	if err != nil {
		log.Err(err).Str("func", "localTombstoneRepository.SetValue").Msg("failed to create query")
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localTombstoneRepository.SetValue").
			Str("name", name).
			Msg("failed to upsert tombstone value")
		return l.execError(err)
	}

	return nil
}
