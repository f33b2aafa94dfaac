package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

const maxSyncErrorLength = 256

type syncState int

const (
	stateFetching syncState = iota
	stateDiffing
	stateDraining
	stateRefetching
	stateReseeding
	stateDone
	stateFailed
)

func (s syncState) String() string {
	switch s {
	case stateFetching:
		return "fetching"
	case stateDiffing:
		return "diffing"
	case stateDraining:
		return "draining"
	case stateRefetching:
		return "refetching"
	case stateReseeding:
		return "reseeding"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// syncSession is the state of one sync attempt. It lives for a single call
// and is never shared.
type syncSession struct {
	id     string
	state  syncState
	remote []models.Bookmark
	queue  []models.SyncWorkItem
	cursor int
	err    error
}

func (s *syncSession) fail(err error) {
	s.err = err
	s.state = stateFailed
}

type clientSyncService struct {
	bookmarks  store.LocalBookmarkRepository
	tombstones store.LocalTombstoneRepository
	adapter    adapter.ServerAdapter
	et         *models.EntityType

	ids      *utils.UUIDGenerator
	now      func() time.Time
	inFlight atomic.Bool

	logger *logger.Logger
}

// NewClientSyncService wires the orchestrator over the local repositories
// and the remote adapter. The bookmark schema is taken from registry.
func NewClientSyncService(
	bookmarks store.LocalBookmarkRepository,
	tombstones store.LocalTombstoneRepository,
	serverAdapter adapter.ServerAdapter,
	registry *models.Registry,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		bookmarks:  bookmarks,
		tombstones: tombstones,
		adapter:    serverAdapter,
		et:         registry.MustLookup(models.BookmarkTypeName),
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *clientSyncService) DoSync(ctx context.Context, onSuccess func(), onFailure func(error)) {
	if !s.inFlight.CompareAndSwap(false, true) {
		go onFailure(ErrSyncInProgress)
		return
	}

	go func() {
		err := s.runLocked(ctx)
		if err != nil {
			onFailure(err)
			return
		}
		onSuccess()
	}()
}

func (s *clientSyncService) Sync(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	return s.runLocked(ctx)
}

// runLocked drives one session to a terminal state. The caller must hold
// the in-flight flag; it is released on return.
func (s *clientSyncService) runLocked(ctx context.Context) error {
	defer s.inFlight.Store(false)

	session := &syncSession{id: s.ids.Generate(), state: stateFetching}
	log := s.logger.WithField("sync_session", session.id)
	ctx = log.WithContext(utils.WithTraceID(ctx, session.id))

	log.Info().Str("func", "clientSyncService.run").Msg("sync started")
	for session.state != stateDone && session.state != stateFailed {
		s.step(ctx, session)
	}

	s.recordOutcome(ctx, session)
	if session.err != nil {
		log.Err(session.err).Str("func", "clientSyncService.run").Msg("sync failed")
		return session.err
	}

	log.Info().
		Str("func", "clientSyncService.run").
		Int("operations", len(session.queue)).
		Int("bookmarks", len(session.remote)).
		Msg("sync finished")
	return nil
}

// step runs the entry action of the current state and moves the session on.
func (s *clientSyncService) step(ctx context.Context, session *syncSession) {
	log := logger.FromContext(ctx)
	log.Debug().Str("func", "clientSyncService.step").Stringer("state", session.state).Int("cursor", session.cursor).Msg("sync step")

	switch session.state {
	case stateFetching:
		remote, err := s.fetchRemote(ctx)
		if err != nil {
			session.fail(fmt.Errorf("fetch remote bookmarks: %w", err))
			return
		}
		session.remote = remote
		session.state = stateDiffing

	case stateDiffing:
		queue, err := s.diff(ctx, session.remote)
		if err != nil {
			session.fail(err)
			return
		}
		session.queue = queue
		session.cursor = 0
		session.state = stateDraining

	case stateDraining:
		if session.cursor == len(session.queue) {
			session.state = stateRefetching
			return
		}
		item := session.queue[session.cursor]
		if err := s.dispatch(ctx, item); err != nil {
			session.fail(fmt.Errorf("push work item %d (%s): %w", session.cursor+1, item.Operation, err))
			return
		}
		log.Debug().
			Str("func", "clientSyncService.step").
			Stringer("operation", item.Operation).
			Int64("ordinal", item.Bookmark.Ordinal).
			Int64("server_id", item.ServerID).
			Msg("work item applied")
		session.cursor++

	case stateRefetching:
		remote, err := s.fetchRemote(ctx)
		if err != nil {
			session.fail(fmt.Errorf("refetch remote bookmarks: %w", err))
			return
		}
		session.remote = remote
		session.state = stateReseeding

	case stateReseeding:
		if err := s.reseed(ctx, session.remote); err != nil {
			session.fail(fmt.Errorf("reseed local bookmarks: %w", err))
			return
		}
		session.state = stateDone

	default:
		session.fail(fmt.Errorf("unexpected sync state %s", session.state))
	}
}

func (s *clientSyncService) fetchRemote(ctx context.Context) ([]models.Bookmark, error) {
	entities, err := s.adapter.GetAll(ctx, s.et.Name)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	bookmarks := make([]models.Bookmark, 0, len(entities))
	for _, e := range entities {
		b, ok := e.(*models.Bookmark)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnexpectedEntity, e)
		}
		bookmarks = append(bookmarks, *b)
	}
	return bookmarks, nil
}

func (s *clientSyncService) diff(ctx context.Context, remote []models.Bookmark) ([]models.SyncWorkItem, error) {
	updates, err := s.bookmarks.GetBookmarksForServerUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks for server update: %w", err)
	}
	deletes, err := s.bookmarks.GetBookmarksForServerDelete(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks for server delete: %w", err)
	}

	queue, err := CalculateDelta(s.et, remote, updates, deletes)
	if err != nil {
		return nil, fmt.Errorf("calculate delta: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "clientSyncService.diff").
		Int("updates", len(updates)).
		Int("deletes", len(deletes)).
		Int("queue", len(queue)).
		Msg("delta calculated")
	return queue, nil
}

func (s *clientSyncService) dispatch(ctx context.Context, item models.SyncWorkItem) error {
	b := item.Bookmark

	switch item.Operation {
	case models.SyncOperationInsert:
		return mapAdapterError(s.adapter.PushInsert(ctx, &b))
	case models.SyncOperationUpdate:
		return mapAdapterError(s.adapter.PushUpdate(ctx, &b, item.ServerID))
	case models.SyncOperationDelete:
		return mapAdapterError(s.adapter.PushDelete(ctx, &b, item.ServerID))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOperation, item.Operation)
	}
}

// reseed replaces the local store with the fetched records. Only Ordinal,
// Name and URL survive; local ids are regenerated and the flags reset.
func (s *clientSyncService) reseed(ctx context.Context, remote []models.Bookmark) error {
	fresh := make([]models.Bookmark, 0, len(remote))
	for _, r := range remote {
		fresh = append(fresh, models.Bookmark{
			Ordinal: r.Ordinal,
			Name:    r.Name,
			URL:     r.URL,
		})
	}
	return s.bookmarks.ReplaceAll(ctx, fresh)
}

// recordOutcome stores the session result in the local settings. Failures
// here are logged only: they must not change the outcome of the sync.
func (s *clientSyncService) recordOutcome(ctx context.Context, session *syncSession) {
	log := logger.FromContext(ctx)

	if session.err != nil {
		if err := s.tombstones.SetValue(ctx, models.TombstoneLastSyncError, truncate(session.err.Error(), maxSyncErrorLength)); err != nil {
			log.Err(err).Str("func", "clientSyncService.recordOutcome").Msg("failed to record sync error")
		}
		return
	}

	if err := s.tombstones.SetValue(ctx, models.TombstoneLastSyncAt, s.now().UTC().Format(time.RFC3339)); err != nil {
		log.Err(err).Str("func", "clientSyncService.recordOutcome").Msg("failed to record sync time")
	}
	if err := s.tombstones.SetValue(ctx, models.TombstoneLastSyncError, ""); err != nil {
		log.Err(err).Str("func", "clientSyncService.recordOutcome").Msg("failed to clear sync error")
	}
}

func (s *clientSyncService) Status(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus

	at, err := s.tombstones.GetValue(ctx, models.TombstoneLastSyncAt)
	switch {
	case errors.Is(err, store.ErrTombstoneNotFound):
	case err != nil:
		return status, fmt.Errorf("read last sync time: %w", err)
	default:
		if status.LastSyncAt, err = time.Parse(time.RFC3339, at); err != nil {
			return status, fmt.Errorf("parse last sync time %q: %w", at, err)
		}
	}

	status.LastSyncError, err = s.tombstones.GetValue(ctx, models.TombstoneLastSyncError)
	if err != nil && !errors.Is(err, store.ErrTombstoneNotFound) {
		return status, fmt.Errorf("read last sync error: %w", err)
	}

	return status, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
