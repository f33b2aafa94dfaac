package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a buffer-backed logger in context,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		body          string
		wantLevel     string
		wantFragments []string
	}{
		{
			name:          "feed served",
			method:        http.MethodGet,
			path:          "/Bookmark",
			status:        http.StatusOK,
			body:          "<feed/>",
			wantLevel:     `"level":"info"`,
			wantFragments: []string{`"method":"GET"`, `"uri":"/Bookmark"`, `"status":200`, `"size":7`, `"duration":`},
		},
		{
			name:          "merge",
			method:        methodMerge,
			path:          "/Bookmark(5)",
			status:        http.StatusNoContent,
			wantLevel:     `"level":"info"`,
			wantFragments: []string{`"method":"MERGE"`, `"uri":"/Bookmark(5)"`, `"status":204`, `"size":0`},
		},
		{
			name:          "missing record",
			method:        http.MethodDelete,
			path:          "/Bookmark(9)",
			status:        http.StatusNotFound,
			body:          "data not found",
			wantLevel:     `"level":"warn"`,
			wantFragments: []string{`"status":404`},
		},
		{
			name:          "server failure",
			method:        http.MethodPost,
			path:          "/Bookmark",
			status:        http.StatusInternalServerError,
			wantLevel:     `"level":"error"`,
			wantFragments: []string{`"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rr.Code)
			logLine := buf.String()
			assert.Contains(t, logLine, tt.wantLevel)
			for _, f := range tt.wantFragments {
				assert.Contains(t, logLine, f)
			}
		})
	}
}

func TestWithLogging_NoLoggerInContext(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	// без логгера в контексте используется выключенный логгер
	assert.NotPanics(t, func() {
		h.withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/version", nil))
	})
	assert.Equal(t, "ok", rr.Body.String())
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/Bookmark", &buf))
	})
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, levelForStatus(http.StatusCreated))
	assert.Equal(t, zerolog.WarnLevel, levelForStatus(http.StatusUnauthorized))
	assert.Equal(t, zerolog.ErrorLevel, levelForStatus(http.StatusBadGateway))
}
