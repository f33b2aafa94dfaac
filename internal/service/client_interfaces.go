package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService synchronises the local bookmark store with the remote
// service. A session runs fetch, diff, drain, refetch and reseed strictly in
// that order and issues at most one network call at a time.
type ClientSyncService interface {
	// DoSync starts a session on its own goroutine and returns immediately.
	// Exactly one of onSuccess or onFailure is called when the session ends,
	// always on a goroutine other than the caller's. If another session is
	// running, onFailure receives ErrSyncInProgress.
	DoSync(ctx context.Context, onSuccess func(), onFailure func(error))

	// Sync runs a session on the calling goroutine and returns its error.
	Sync(ctx context.Context) error

	// Status reports the outcome recorded by the latest sessions.
	Status(ctx context.Context) (models.SyncStatus, error)
}

// ClientBookmarkService is the local mutation surface of the client. It only
// touches the local store and sets the dirty flags consumed by the next
// sync.
type ClientBookmarkService interface {
	// List returns bookmarks not flagged for deletion, ordered by ordinal.
	List(ctx context.Context) ([]models.Bookmark, error)

	// Add stores a new bookmark under the next free ordinal and flags it
	// modified.
	Add(ctx context.Context, name, url string) (models.Bookmark, error)

	// Edit overwrites name and url of the bookmark with local id and flags
	// it modified.
	Edit(ctx context.Context, id int64, name, url string) (models.Bookmark, error)

	// Delete flags the bookmark with local id for deletion on the server.
	Delete(ctx context.Context, id int64) error
}

// ClientSyncJob runs ClientSyncService.Sync periodically in the background.
type ClientSyncJob interface {
	// Start launches the job, replacing a previously started one.
	Start(ctx context.Context, interval time.Duration)
	// Stop halts the job and waits for the running tick to return.
	Stop()
}
