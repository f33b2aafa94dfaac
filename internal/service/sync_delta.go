package service

import (
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// CalculateDelta builds the queue of remote writes that brings the server in
// line with local intent. Local and remote records are joined by Ordinal.
//
//   - every record of updates with a remote counterpart becomes an update of
//     that counterpart, with the local fields merged onto it;
//   - every record of updates without one becomes an insert;
//   - every record of deletes yields a delete per matching remote record, or
//     nothing if the server no longer has it.
//
// Inserts and updates come first in the order of updates, deletes follow in
// the order of deletes. The two local sets are not cross-checked: a record in
// both may produce an insert and no delete.
//
// fromServer is never modified.
func CalculateDelta(et *models.EntityType, fromServer, updates, deletes []models.Bookmark) ([]models.SyncWorkItem, error) {
	queue := make([]models.SyncWorkItem, 0, len(updates)+len(deletes))

	for _, local := range updates {
		remote, ok := findByOrdinal(fromServer, local.Ordinal)
		if !ok {
			queue = append(queue, models.SyncWorkItem{
				Operation: models.SyncOperationInsert,
				Bookmark:  local,
			})
			continue
		}

		merged, err := mergeOnto(et, remote, local)
		if err != nil {
			return nil, fmt.Errorf("merge bookmark with ordinal %d: %w", local.Ordinal, err)
		}
		queue = append(queue, models.SyncWorkItem{
			Operation: models.SyncOperationUpdate,
			Bookmark:  merged,
			ServerID:  remote.BookmarkID,
		})
	}

	for _, local := range deletes {
		for _, remote := range fromServer {
			if remote.Ordinal != local.Ordinal {
				continue
			}
			queue = append(queue, models.SyncWorkItem{
				Operation: models.SyncOperationDelete,
				Bookmark:  remote,
				ServerID:  remote.BookmarkID,
			})
		}
	}

	return queue, nil
}

func findByOrdinal(bookmarks []models.Bookmark, ordinal int64) (models.Bookmark, bool) {
	for _, b := range bookmarks {
		if b.Ordinal == ordinal {
			return b, true
		}
	}
	return models.Bookmark{}, false
}

// mergeOnto returns a copy of base with every non-key field of the schema
// taken from src.
func mergeOnto(et *models.EntityType, base, src models.Bookmark) (models.Bookmark, error) {
	merged := base
	for _, f := range et.Fields {
		if f.IsKey {
			continue
		}
		v, err := src.Value(f.Name)
		if err != nil {
			return models.Bookmark{}, err
		}
		if err = merged.SetValue(f.Name, v); err != nil {
			return models.Bookmark{}, err
		}
	}
	return merged, nil
}
