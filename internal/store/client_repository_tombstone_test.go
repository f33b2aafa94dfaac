package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

func newMockTombstoneRepository(t *testing.T) (LocalTombstoneRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewLocalTombstoneRepository(NewDB(conn, logger.Nop()), models.DefaultRegistry(), logger.Nop()), mock
}

func TestLocalTombstoneRepository_GetValue(t *testing.T) {
	repo, mock := newMockTombstoneRepository(t)
	rows := sqlmock.NewRows([]string{"tombstone_data_id", "name", "value"}).
		AddRow(int64(1), models.TombstoneLastSyncAt, "2026-10-19T10:00:00Z")
	mock.ExpectQuery(`SELECT tombstone_data_id, name, value FROM tombstone_data WHERE name = \?`).
		WithArgs(models.TombstoneLastSyncAt).
		WillReturnRows(rows)

	v, err := repo.GetValue(context.Background(), models.TombstoneLastSyncAt)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19T10:00:00Z", v)
}

func TestLocalTombstoneRepository_GetValue_NotFound(t *testing.T) {
	repo, mock := newMockTombstoneRepository(t)
	mock.ExpectQuery("FROM tombstone_data").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetValue(context.Background(), models.TombstoneLastSyncError)
	assert.ErrorIs(t, err, ErrTombstoneNotFound)
}

func TestLocalTombstoneRepository_SetValue(t *testing.T) {
	repo, mock := newMockTombstoneRepository(t)
	mock.ExpectExec(`INSERT INTO tombstone_data \(name,value\) VALUES \(\?,\?\) ON CONFLICT \(name\) DO UPDATE SET value = excluded.value`).
		WithArgs(models.TombstoneLastSyncError, "boom").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetValue(context.Background(), models.TombstoneLastSyncError, "boom"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalTombstoneRepository_SetValue_TooLong(t *testing.T) {
	repo, mock := newMockTombstoneRepository(t)

	err := repo.SetValue(context.Background(), models.TombstoneLastSyncError, strings.Repeat("x", 257))
	require.ErrorIs(t, err, models.ErrFieldTooLong)
	// до базы дело не доходит
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalTombstoneRepository_SetValue_ExecError(t *testing.T) {
	repo, mock := newMockTombstoneRepository(t)
	mock.ExpectExec("INSERT INTO tombstone_data").WillReturnError(errors.New("readonly database"))

	err := repo.SetValue(context.Background(), models.TombstoneLastSyncAt, "now")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
