package client

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/handler"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

const (
	testHashKey  = "secret"
	testAPIToken = "token-42"
)

type emulator struct {
	server  *httptest.Server
	storage store.ServerBookmarkStorage
}

func startEmulator(t *testing.T, seed ...models.Bookmark) *emulator {
	t.Helper()

	storage := store.NewMemoryBookmarkStorage(seed...)
	services := service.NewServices(&store.Storages{BookmarkStorage: storage}, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	handlers, err := handler.NewHandlers(services, models.DefaultRegistry(), config.ServerConfig{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
		HashKey:        testHashKey,
		APIToken:       testAPIToken,
	}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)

	return &emulator{server: srv, storage: storage}
}

func newTestRuntime(t *testing.T, serviceURL string, opts ...func(*config.ClientConfig)) (*Runtime, *App, *bytes.Buffer) {
	t.Helper()

	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{
			ServiceURL:     serviceURL,
			RequestTimeout: 5 * time.Second,
			HashKey:        testHashKey,
			APIToken:       testAPIToken,
		},
		DSN:          "file:" + filepath.Join(t.TempDir(), "bookmarks.db") + "?_foreign_keys=on",
		SyncInterval: time.Hour,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	rt, err := NewRuntime(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })

	out := &bytes.Buffer{}
	return rt, NewApp(rt.Services, cfg.SyncInterval, out, logger.Nop()), out
}

func serverNames(t *testing.T, e *emulator) map[int64]string {
	t.Helper()
	all, err := e.storage.GetAll(context.Background())
	require.NoError(t, err)

	names := make(map[int64]string, len(all))
	for _, b := range all {
		names[b.Ordinal] = b.Name
	}
	return names
}

func TestEndToEnd_SyncRoundTrip(t *testing.T) {
	e := startEmulator(t,
		models.Bookmark{BookmarkID: 1, Ordinal: 1, Name: "Go", URL: "https://go.dev"},
		models.Bookmark{BookmarkID: 2, Ordinal: 2, Name: "Chi", URL: "https://go-chi.io"},
	)
	rt, app, out := newTestRuntime(t, e.server.URL+"/")
	ctx := context.Background()

	// первая синхронизация просто забирает серверные записи
	require.NoError(t, app.Run(ctx, []string{"sync"}))
	local, err := rt.Services.BookmarkService.List(ctx)
	require.NoError(t, err)
	require.Len(t, local, 2)
	assert.Equal(t, "Go", local[0].Name)
	assert.False(t, local[0].IsLocalModified)

	// local add, edit and delete, then push them
	require.NoError(t, app.Run(ctx, []string{"add", "Resty", "https://resty.dev"}))
	require.NoError(t, app.Run(ctx, []string{"edit", "1", "Go!", "https://go.dev/doc"}))
	require.NoError(t, app.Run(ctx, []string{"rm", "2"}))
	require.NoError(t, app.Run(ctx, []string{"sync"}))

	assert.Equal(t, map[int64]string{1: "Go!", 3: "Resty"}, serverNames(t, e))

	// после reseed локальное состояние совпадает с серверным и чистое
	local, err = rt.Services.BookmarkService.List(ctx)
	require.NoError(t, err)
	require.Len(t, local, 2)
	for _, b := range local {
		assert.False(t, b.IsLocalModified, b.Name)
		assert.NotZero(t, b.BookmarkID, b.Name)
	}

	out.Reset()
	require.NoError(t, app.Run(ctx, []string{"status"}))
	assert.NotContains(t, out.String(), "never")
	assert.NotContains(t, out.String(), "Last error")
}

func TestEndToEnd_FailedSyncIsRecorded(t *testing.T) {
	e := startEmulator(t)
	_, app, out := newTestRuntime(t, e.server.URL+"/")

	// сервер недоступен, fetch падает
	e.server.Close()

	err := app.Run(context.Background(), []string{"sync"})
	require.Error(t, err)

	out.Reset()
	require.NoError(t, app.Run(context.Background(), []string{"status"}))
	assert.Contains(t, out.String(), "never")
	assert.Contains(t, out.String(), "Last error")
}

func TestEndToEnd_WrongToken(t *testing.T) {
	e := startEmulator(t)
	_, app, _ := newTestRuntime(t, e.server.URL+"/", func(cfg *config.ClientConfig) {
		cfg.Adapter.APIToken = "wrong"
	})

	err := app.Run(context.Background(), []string{"sync"})
	require.ErrorIs(t, err, service.ErrRemoteUnauthorized)
}

func TestEndToEnd_WrongHashKey(t *testing.T) {
	e := startEmulator(t)
	_, app, _ := newTestRuntime(t, e.server.URL+"/", func(cfg *config.ClientConfig) {
		cfg.Adapter.HashKey = "other-secret"
	})
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"add", "Go", "https://go.dev"}))

	err := app.Run(ctx, []string{"sync"})
	require.ErrorIs(t, err, service.ErrIntegrityCheckFailed)
	assert.Empty(t, serverNames(t, e))
}

func TestEndToEnd_DuplicateRemoteOrdinals(t *testing.T) {
	e := startEmulator(t,
		models.Bookmark{BookmarkID: 1, Ordinal: 1, Name: "Go", URL: "https://go.dev"},
		models.Bookmark{BookmarkID: 2, Ordinal: 1, Name: "Chi", URL: "https://go-chi.io"},
	)
	rt, app, _ := newTestRuntime(t, e.server.URL+"/")
	ctx := context.Background()

	// reseed должен принять обе записи с одинаковым ordinal, и повторно тоже
	for range 2 {
		require.NoError(t, app.Run(ctx, []string{"sync"}))

		local, err := rt.Services.BookmarkService.List(ctx)
		require.NoError(t, err)
		require.Len(t, local, 2)
		assert.ElementsMatch(t, []string{"Go", "Chi"}, []string{local[0].Name, local[1].Name})
	}
}

func TestEndToEnd_LongRemoteValues(t *testing.T) {
	name := strings.Repeat("n", 129)
	e := startEmulator(t,
		models.Bookmark{BookmarkID: 1, Ordinal: 1, Name: name, URL: "https://go.dev/" + strings.Repeat("p", 200)},
	)
	rt, app, _ := newTestRuntime(t, e.server.URL+"/")
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"sync"}))

	local, err := rt.Services.BookmarkService.List(ctx)
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, name, local[0].Name)

	// локальная правка по-прежнему проверяется валидатором
	err = app.Run(ctx, []string{"add", strings.Repeat("x", 129), "https://example.com"})
	require.Error(t, err)
}
