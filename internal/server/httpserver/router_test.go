package httpserver

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/dmitrijs2005/apibench/internal/bench"
	"github.com/dmitrijs2005/apibench/internal/common"
	"github.com/dmitrijs2005/apibench/internal/dataset"
	"github.com/dmitrijs2005/apibench/internal/logging"
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type stubRunner struct {
	result bench.Result
	calls  int
}

func (s *stubRunner) Run(context.Context) bench.Result {
	s.calls++
	return s.result
}

type observation struct {
	route  string
	method string
	code   int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveHTTP(route, method string, code int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{route: route, method: method, code: code})
}

// sharedCache is built once for the package; building the dataset is the
// expensive part of these tests.
var sharedCache = dataset.NewCache(nil)

func newTestRouter(t *testing.T, compression bool) (http.Handler, *stubRunner, *recordingObserver) {
	t.Helper()
	runner := &stubRunner{result: bench.Result{ExecutionTimeMs: 7, PrimesFound: 78498, ProcessID: 42, WorkingSetMB: 12.5}}
	obs := &recordingObserver{}
	h := NewRouter(RouterConfig{
		Users:       sharedCache,
		Runner:      runner,
		Logger:      nopLogger{},
		Compression: compression,
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
		Observer: obs,
	})
	return h, runner, obs
}

func do(h http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetUsers_PlainJSON(t *testing.T) {
	h, _, obs := newTestRouter(t, false)

	rec := do(h, http.MethodGet, "/users", map[string]string{"Accept-Encoding": "gzip, br"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))

	var users []dataset.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, dataset.UserCount)
	for i, u := range users {
		if u.ID != i+1 {
			t.Fatalf("users[%d].ID = %d", i, u.ID)
		}
	}

	require.Len(t, obs.seen, 1)
	assert.Equal(t, observation{route: "/users", method: "GET", code: 200}, obs.seen[0])
}

func TestGetUsers_IdenticalBytesAcrossCalls(t *testing.T) {
	h, _, _ := newTestRouter(t, false)

	first := do(h, http.MethodGet, "/users", nil).Body.Bytes()
	second := do(h, http.MethodGet, "/users", nil).Body.Bytes()

	assert.True(t, bytes.Equal(first, second))
}

func TestGetUsers_Compressed(t *testing.T) {
	h, _, _ := newTestRouter(t, true)
	raw, err := sharedCache.JSON()
	require.NoError(t, err)

	t.Run("gzip", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/users", map[string]string{"Accept-Encoding": "gzip"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(raw, plain))
	})

	t.Run("br", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/users", map[string]string{"Accept-Encoding": "gzip, br"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "br", rec.Header().Get("Content-Encoding"))

		plain, err := io.ReadAll(brotli.NewReader(rec.Body))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(raw, plain))
	})

	t.Run("no accept-encoding", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/users", nil)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.True(t, bytes.Equal(raw, rec.Body.Bytes()))
	})
}

func TestRunBenchmark(t *testing.T) {
	h, runner, _ := newTestRouter(t, false)

	for i := 0; i < 2; i++ {
		rec := do(h, http.MethodGet, "/benchmark", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"executionTimeMs":7,"primesFound":78498,"processId":42,"workingSetMB":12.5}`, rec.Body.String())
	}
	assert.Equal(t, 2, runner.calls, "benchmark must run on every call")
}

func TestRouter_MiscRoutes(t *testing.T) {
	h, _, obs := newTestRouter(t, false)

	rec := do(h, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = do(h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())

	rec = do(h, http.MethodPost, "/benchmark", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(h, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.Len(t, obs.seen, 4)
	assert.Equal(t, observation{route: unmatchedRoute, method: "GET", code: 404}, obs.seen[3])
	assert.Equal(t, 405, obs.seen[2].code)
}

func TestRouter_RequestID(t *testing.T) {
	h, _, _ := newTestRouter(t, false)

	rec := do(h, http.MethodGet, "/ping", nil)
	assert.Len(t, rec.Header().Get(common.RequestIDHeaderName), 36)

	rec = do(h, http.MethodGet, "/ping", map[string]string{common.RequestIDHeaderName: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(common.RequestIDHeaderName))
}
