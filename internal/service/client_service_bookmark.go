package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/validators"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

type clientBookmarkService struct {
	bookmarks store.LocalBookmarkRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewClientBookmarkService(bookmarks store.LocalBookmarkRepository, logger *logger.Logger) ClientBookmarkService {
	return &clientBookmarkService{
		bookmarks: bookmarks,
		validator: validators.NewBookmarkValidator(),
		logger:    logger,
	}
}

func (c *clientBookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	return c.bookmarks.GetAll(ctx)
}

func (c *clientBookmarkService) Add(ctx context.Context, name, url string) (models.Bookmark, error) {
	b := models.Bookmark{Name: name, URL: url, IsLocalModified: true}
	if err := c.validator.Validate(ctx, b, validators.FieldName, validators.FieldURL); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ordinal, err := c.bookmarks.NextOrdinal(ctx)
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("next ordinal: %w", err)
	}
	b.Ordinal = ordinal

	saved, err := c.bookmarks.Save(ctx, b)
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("save new bookmark: %w", err)
	}

	c.logger.Debug().
		Str("func", "clientBookmarkService.Add").
		Int64("bookmark_id", saved.BookmarkID).
		Int64("ordinal", saved.Ordinal).
		Msg("bookmark added locally")
	return saved, nil
}

func (c *clientBookmarkService) Edit(ctx context.Context, id int64, name, url string) (models.Bookmark, error) {
	b, err := c.get(ctx, id)
	if err != nil {
		return models.Bookmark{}, err
	}

	b.Name = name
	b.URL = url
	b.IsLocalModified = true
	if err = c.validator.Validate(ctx, b); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err = c.bookmarks.Save(ctx, b); err != nil {
		return models.Bookmark{}, fmt.Errorf("save bookmark %d: %w", id, err)
	}
	return b, nil
}

// Delete flags the record for deletion and drops its modified flag, so the
// next sync removes it remotely instead of pushing it first.
func (c *clientBookmarkService) Delete(ctx context.Context, id int64) error {
	b, err := c.get(ctx, id)
	if err != nil {
		return err
	}

	b.IsLocalDeleted = true
	b.IsLocalModified = false
	if _, err = c.bookmarks.Save(ctx, b); err != nil {
		return fmt.Errorf("flag bookmark %d deleted: %w", id, err)
	}
	return nil
}

// get hides records already flagged for deletion.
func (c *clientBookmarkService) get(ctx context.Context, id int64) (models.Bookmark, error) {
	b, err := c.bookmarks.Get(ctx, id)
	if errors.Is(err, store.ErrBookmarkNotFound) {
		return models.Bookmark{}, fmt.Errorf("%w: id=%d", ErrBookmarkNotFound, id)
	}
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("get bookmark %d: %w", id, err)
	}
	if b.IsLocalDeleted {
		return models.Bookmark{}, fmt.Errorf("%w: id=%d", ErrBookmarkNotFound, id)
	}
	return b, nil
}
