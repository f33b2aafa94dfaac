package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-bookmark-sync/internal/codec"
	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Header names understood by the service.
const (
	HeaderAPIToken    = "x-amx-token"
	HeaderHash        = "HashSHA256"
	HeaderTraceID     = "X-Trace-ID"
	HeaderContentType = "Content-Type"
	methodMerge       = "MERGE"
)

type httpServerAdapter struct {
	client   *utils.HTTPClient
	registry *models.Registry
	hasher   *utils.Hasher

	mu      sync.RWMutex
	headers map[string]string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. The service URL is normalised (a missing scheme becomes
// http, a trailing slash is dropped). cfg.APIToken and cfg.ExtraHeaders are
// installed as default headers; a non-empty cfg.HashKey enables the
// HashSHA256 integrity header on push requests.
//
// Returns an error if cfg.ServiceURL is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, registry *models.Registry, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter service url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	a := &httpServerAdapter{
		client:   client,
		registry: registry,
		headers:  make(map[string]string, len(cfg.ExtraHeaders)+1),
		logger:   logger,
	}
	for name, value := range cfg.ExtraHeaders {
		a.SetHeader(name, value)
	}
	if cfg.APIToken != "" {
		a.SetHeader(HeaderAPIToken, cfg.APIToken)
	}
	if cfg.HashKey != "" {
		a.hasher = utils.NewHasher(cfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetHeader(name, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if value == "" {
		delete(h.headers, name)
		return
	}
	h.headers[name] = value
}

// GetAll implements [ServerAdapter]: GET <base>/<NativeName>.
func (h *httpServerAdapter) GetAll(ctx context.Context, typeName string) ([]models.Entity, error) {
	et, err := h.registry.Lookup(typeName)
	if err != nil {
		return nil, err
	}

	resp, err := h.request(ctx).Get(collectionPath(et))
	if err != nil {
		return nil, fmt.Errorf("get %s request: %w", et.NativeName, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	items, err := codec.DecodeFeed(resp.Body(), et)
	if err != nil {
		return nil, fmt.Errorf("decode %s feed: %w", et.NativeName, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpServerAdapter.GetAll").
		Str("type", et.Name).
		Int("count", len(items)).
		Msg("collection fetched")

	return items, nil
}

// PushInsert implements [ServerAdapter]: POST <base>/<NativeName>.
func (h *httpServerAdapter) PushInsert(ctx context.Context, e models.Entity) error {
	et, err := h.registry.TypeOf(e)
	if err != nil {
		return err
	}

	req, err := h.entryRequest(ctx, e, et)
	if err != nil {
		return err
	}

	resp, err := req.Post(collectionPath(et))
	if err != nil {
		return fmt.Errorf("insert %s request: %w", et.NativeName, err)
	}

	return mapHTTPError(resp)
}

// PushUpdate implements [ServerAdapter]: MERGE <base>/<NativeName>(<id>).
func (h *httpServerAdapter) PushUpdate(ctx context.Context, e models.Entity, serverID int64) error {
	if serverID == 0 {
		return h.PushInsert(ctx, e)
	}

	et, err := h.registry.TypeOf(e)
	if err != nil {
		return err
	}

	req, err := h.entryRequest(ctx, e, et)
	if err != nil {
		return err
	}

	resp, err := req.Execute(methodMerge, resourcePath(et, serverID))
	if err != nil {
		return fmt.Errorf("merge %s(%d) request: %w", et.NativeName, serverID, err)
	}

	return mapHTTPError(resp)
}

// PushDelete implements [ServerAdapter]: DELETE <base>/<NativeName>(<id>).
func (h *httpServerAdapter) PushDelete(ctx context.Context, e models.Entity, serverID int64) error {
	et, err := h.registry.TypeOf(e)
	if err != nil {
		return err
	}

	resp, err := h.request(ctx).Delete(resourcePath(et, serverID))
	if err != nil {
		return fmt.Errorf("delete %s(%d) request: %w", et.NativeName, serverID, err)
	}

	return mapHTTPError(resp)
}

// entryRequest prepares a request carrying e as a single Atom entry.
func (h *httpServerAdapter) entryRequest(ctx context.Context, e models.Entity, et *models.EntityType) (*resty.Request, error) {
	payload, err := codec.EncodeEntry(e, et)
	if err != nil {
		return nil, err
	}

	req := h.request(ctx).
		SetHeader(HeaderContentType, codec.ContentTypeAtomXML).
		SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(HeaderHash, h.hasher.HashHex(payload))
	}

	return req, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	for name, value := range h.headers {
		req.SetHeader(name, value)
	}
	h.mu.RUnlock()

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(HeaderTraceID, traceID)
	}

	return req
}

func collectionPath(et *models.EntityType) string {
	return "/" + et.NativeName
}

func resourcePath(et *models.EntityType, id int64) string {
	return collectionPath(et) + "(" + strconv.FormatInt(id, 10) + ")"
}
