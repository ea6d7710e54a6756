package httpserver

import (
	"net/http"

	"github.com/dmitrijs2005/apibench/internal/dataset"
	"github.com/dmitrijs2005/apibench/internal/logging"
	"github.com/gorilla/mux"
)

// RouterConfig collects what NewRouter needs. Metrics and Observer are
// optional.
type RouterConfig struct {
	Users       *dataset.Cache
	Runner      Benchmarker
	Logger      logging.Logger
	Compression bool
	Metrics     http.Handler
	Observer    Observer
}

// NewRouter builds the HTTP surface:
//
//	GET /users      cached dataset
//	GET /benchmark  fresh sieve run
//	GET /ping       liveness
//	GET /metrics    Prometheus, when configured
func NewRouter(c RouterConfig) http.Handler {
	logger := c.Logger.With("module", "http")

	h := &handlers{
		users:       c.Users,
		runner:      c.Runner,
		logger:      logger,
		compression: c.Compression,
	}

	r := mux.NewRouter()
	r.HandleFunc("/users", h.getUsers).Methods(http.MethodGet)
	r.HandleFunc("/benchmark", h.runBenchmark).Methods(http.MethodGet)
	r.HandleFunc("/ping", h.ping).Methods(http.MethodGet)
	if c.Metrics != nil {
		r.Handle("/metrics", c.Metrics).Methods(http.MethodGet)
	}

	return requestID(accessLog(r, logger, c.Observer, r))
}
