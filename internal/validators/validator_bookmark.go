package validators

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Field names accepted by BookmarkValidator.Validate to scope the check.
const (
	FieldName    = "name"
	FieldURL     = "url"
	FieldOrdinal = "ordinal"
)

// BookmarkValidator checks user-visible bookmark fields against the schema
// limits of [models.BookmarkType].
type BookmarkValidator struct {
	et *models.EntityType
}

func NewBookmarkValidator() Validator {
	return &BookmarkValidator{et: models.BookmarkType()}
}

// Validate accepts models.Bookmark or *models.Bookmark. Without fields every
// rule is checked and all violations are joined.
func (v *BookmarkValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Bookmark:
		return v.validateBookmark(ctx, value, fields...)
	case *models.Bookmark:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateBookmark(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookmarkValidator) validateBookmark(_ context.Context, b models.Bookmark, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldURL, FieldOrdinal}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldName:
			errs = append(errs, v.validateName(b.Name))
		case FieldURL:
			errs = append(errs, v.validateURL(b.URL))
		case FieldOrdinal:
			if b.Ordinal <= 0 {
				errs = append(errs, ErrInvalidOrdinal)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}

func (v *BookmarkValidator) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return v.checkSize(models.NameKey, name)
}

func (v *BookmarkValidator) validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return v.checkSize(models.URLKey, raw)
}

func (v *BookmarkValidator) checkSize(field, value string) error {
	f, ok := v.et.Field(field)
	if !ok || f.Size <= 0 {
		return nil
	}
	if utf8.RuneCountInString(value) > f.Size {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrTooLong, strings.ToLower(field), f.Size)
	}
	return nil
}
