package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// memoryBookmarkStorage keeps the emulator's records in a map guarded by a
// RWMutex. Ids are assigned sequentially and never reused.
type memoryBookmarkStorage struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]models.Bookmark
}

// NewMemoryBookmarkStorage returns an empty storage, optionally seeded.
// Seeded records keep their ids.
func NewMemoryBookmarkStorage(seed ...models.Bookmark) ServerBookmarkStorage {
	s := &memoryBookmarkStorage{
		nextID: 1,
		items:  make(map[int64]models.Bookmark, len(seed)),
	}
	for _, b := range seed {
		s.items[b.BookmarkID] = b
		if b.BookmarkID >= s.nextID {
			s.nextID = b.BookmarkID + 1
		}
	}
	return s
}

func (s *memoryBookmarkStorage) GetAll(_ context.Context) ([]models.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Bookmark, 0, len(s.items))
	for _, b := range s.items {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b models.Bookmark) int {
		return cmp.Compare(a.BookmarkID, b.BookmarkID)
	})

	return out, nil
}

func (s *memoryBookmarkStorage) Get(_ context.Context, id int64) (models.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.items[id]
	if !ok {
		return models.Bookmark{}, fmt.Errorf("%w: id=%d", ErrBookmarkNotFound, id)
	}
	return b, nil
}

func (s *memoryBookmarkStorage) Insert(_ context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmark.BookmarkID = s.nextID
	bookmark.IsLocalModified = false
	bookmark.IsLocalDeleted = false
	s.nextID++
	s.items[bookmark.BookmarkID] = bookmark

	return bookmark, nil
}

func (s *memoryBookmarkStorage) Update(_ context.Context, bookmark models.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[bookmark.BookmarkID]; !ok {
		return fmt.Errorf("%w: id=%d", ErrBookmarkNotFound, bookmark.BookmarkID)
	}
	bookmark.IsLocalModified = false
	bookmark.IsLocalDeleted = false
	s.items[bookmark.BookmarkID] = bookmark

	return nil
}

func (s *memoryBookmarkStorage) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%w: id=%d", ErrBookmarkNotFound, id)
	}
	delete(s.items, id)

	return nil
}
