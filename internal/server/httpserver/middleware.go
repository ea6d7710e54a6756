package httpserver

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/apibench/internal/common"
	"github.com/dmitrijs2005/apibench/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Observer receives one call per finished HTTP request.
type Observer interface {
	ObserveHTTP(route, method string, code int, took time.Duration)
}

const unmatchedRoute = "unmatched"

type statusRecorder struct {
	http.ResponseWriter
	code  int
	bytes int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// requestID reuses an incoming X-Request-ID or assigns a fresh UUID, and
// echoes it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(common.RequestIDHeaderName, id)
		}
		w.Header().Set(common.RequestIDHeaderName, id)
		next.ServeHTTP(w, r)
	})
}

// accessLog logs and observes every request. It wraps the whole router so
// 404 and 405 answers are counted too, under the "unmatched" route label.
func accessLog(router *mux.Router, l logging.Logger, o Observer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(rec, r)

		took := time.Since(start)
		route := routeTemplate(router, r)

		l.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.code,
			"bytes", rec.bytes,
			"duration", took,
			"request_id", r.Header.Get(common.RequestIDHeaderName),
		)
		if o != nil {
			o.ObserveHTTP(route, r.Method, rec.code, took)
		}
	})
}

func routeTemplate(router *mux.Router, r *http.Request) string {
	var match mux.RouteMatch
	if !router.Match(r, &match) || match.Route == nil {
		return unmatchedRoute
	}
	tpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
