package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/internal/validators"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// BookmarkServiceWrapper defines middleware composition for BookmarkService.
// Implementations wrap an existing BookmarkService to add behavior such as
// validation.
type BookmarkServiceWrapper interface {
	Wrap(BookmarkService) BookmarkService
}

// BookmarkValidationService rejects records the local store of a client
// could not hold before they reach the wrapped service.
type BookmarkValidationService struct {
	inner     BookmarkService
	validator validators.Validator
}

func NewBookmarkValidationService() BookmarkServiceWrapper {
	return &BookmarkValidationService{
		validator: validators.NewBookmarkValidator(),
	}
}

func (v *BookmarkValidationService) List(ctx context.Context) ([]models.Bookmark, error) {
	return v.inner.List(ctx)
}

func (v *BookmarkValidationService) Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	if err := v.validator.Validate(ctx, bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, bookmark)
}

// Merge validates only the fields the patch carries.
func (v *BookmarkValidationService) Merge(ctx context.Context, id int64, patch models.Bookmark, fields []string) (models.Bookmark, error) {
	var scoped []string
	for _, f := range fields {
		switch f {
		case models.NameKey:
			scoped = append(scoped, validators.FieldName)
		case models.URLKey:
			scoped = append(scoped, validators.FieldURL)
		case models.OrdinalKey:
			scoped = append(scoped, validators.FieldOrdinal)
		}
	}
	if len(scoped) > 0 {
		if err := v.validator.Validate(ctx, patch, scoped...); err != nil {
			return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}
	return v.inner.Merge(ctx, id, patch, fields)
}

func (v *BookmarkValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *BookmarkValidationService) Wrap(inner BookmarkService) BookmarkService {
	v.inner = inner
	return v
}
