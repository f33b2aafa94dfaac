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

type localBookmarkRepository struct {
	*DB
	et     *models.EntityType
	logger *logger.Logger
}

// NewLocalBookmarkRepository builds the repository over the "Bookmark" type
// of registry.
func NewLocalBookmarkRepository(db *DB, registry *models.Registry, logger *logger.Logger) LocalBookmarkRepository {
	return &localBookmarkRepository{
		DB:     db,
		et:     registry.MustLookup(models.BookmarkTypeName),
		logger: logger,
	}
}

func (l *localBookmarkRepository) column(field string) string {
	f, _ := l.et.Field(field)
	return f.Column
}

func (l *localBookmarkRepository) GetBookmarksForServerUpdate(ctx context.Context) ([]models.Bookmark, error) {
	return l.selectBookmarks(ctx, "localBookmarkRepository.GetBookmarksForServerUpdate",
		sq.Eq{l.column(models.IsLocalModifiedKey): true})
}

func (l *localBookmarkRepository) GetBookmarksForServerDelete(ctx context.Context) ([]models.Bookmark, error) {
	return l.selectBookmarks(ctx, "localBookmarkRepository.GetBookmarksForServerDelete",
		sq.Eq{l.column(models.IsLocalDeletedKey): true})
}

func (l *localBookmarkRepository) GetAll(ctx context.Context) ([]models.Bookmark, error) {
	return l.selectBookmarks(ctx, "localBookmarkRepository.GetAll",
		sq.Eq{l.column(models.IsLocalDeletedKey): false})
}

func (l *localBookmarkRepository) selectBookmarks(ctx context.Context, fn string, where sq.Sqlizer) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuery(l.et, where, l.column(models.OrdinalKey))
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for getting bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0, 16)
	for rows.Next() {
		b, scanErr := scanBookmark(rows, l.et)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		bookmarks = append(bookmarks, b)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	log.Debug().Str("func", fn).Int("count", len(bookmarks)).Msg("bookmarks loaded")
	return bookmarks, nil
}

func (l *localBookmarkRepository) Get(ctx context.Context, id int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuery(l.et, sq.Eq{l.column(models.BookmarkIDKey): id})
	if err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.Get").Msg("failed to create query")
		return models.Bookmark{}, err
	}

	b, err := scanBookmark(l.DB.QueryRowContext(ctx, query, args...), l.et)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bookmark{}, fmt.Errorf("%w: id=%d", ErrBookmarkNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "localBookmarkRepository.Get").
			Int64("bookmark_id", id).
			Msg("failed to scan bookmark row")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return b, nil
}

func (l *localBookmarkRepository) Save(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	if bookmark.BookmarkID == 0 {
		return l.insert(ctx, l.DB.DB, bookmark)
	}
	return bookmark, l.update(ctx, bookmark)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (l *localBookmarkRepository) insert(ctx context.Context, db execer, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuery(l.et, &bookmark, false)
	if err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.insert").Msg("failed to create query")
		return models.Bookmark{}, err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localBookmarkRepository.insert").
			Int64("ordinal", bookmark.Ordinal).
			Msg("failed to execute insert for bookmark")
		return models.Bookmark{}, l.execError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.insert").Msg("failed to get last insert id")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	bookmark.BookmarkID = id

	return bookmark, nil
}

func (l *localBookmarkRepository) update(ctx context.Context, bookmark models.Bookmark) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(l.et, &bookmark)
	if err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.update").Msg("failed to create query")
		return err
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localBookmarkRepository.update").
			Int64("bookmark_id", bookmark.BookmarkID).
			Msg("failed to execute update for bookmark")
		return l.execError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.update").Msg("failed to get rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "localBookmarkRepository.update").
			Int64("bookmark_id", bookmark.BookmarkID).
			Msg("no rows affected during update: record not found")
		return fmt.Errorf("%w: id=%d", ErrBookmarkNotFound, bookmark.BookmarkID)
	}

	return nil
}

func (l *localBookmarkRepository) DeleteAll(ctx context.Context) error {
	return l.deleteAll(ctx, l.DB.DB)
}

func (l *localBookmarkRepository) deleteAll(ctx context.Context, db execer) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllQuery(l.et)
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.DeleteAll").Msg("failed to delete bookmarks")
		return l.execError(err)
	}

	return nil
}

func (l *localBookmarkRepository) NextOrdinal(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNextOrdinalQuery(l.et)
	if err != nil {
		return 0, err
	}

	var next int64
	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.NextOrdinal").Msg("failed to query next ordinal")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return next, nil
}

func (l *localBookmarkRepository) ReplaceAll(ctx context.Context, bookmarks []models.Bookmark) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = l.deleteAll(ctx, tx); err != nil {
		return err
	}

	for i, b := range bookmarks {
		b.BookmarkID = 0
		if _, err = l.insert(ctx, tx, b); err != nil {
			log.Err(err).
				Str("func", "localBookmarkRepository.ReplaceAll").
				Int("index", i).
				Msg("failed to insert bookmark")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localBookmarkRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "localBookmarkRepository.ReplaceAll").Int("count", len(bookmarks)).Msg("bookmarks replaced")
	return nil
}
