package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/apibench/internal/bench"
	"github.com/dmitrijs2005/apibench/internal/dataset"
	"github.com/dmitrijs2005/apibench/internal/logging"
	"github.com/goccy/go-json"
)

// Benchmarker runs the CPU workload behind /benchmark.
type Benchmarker interface {
	Run(ctx context.Context) bench.Result
}

type handlers struct {
	users       *dataset.Cache
	runner      Benchmarker
	logger      logging.Logger
	compression bool
}

// getUsers writes the cached dataset, compressed when the client allows it
// and compression is enabled.
func (h *handlers) getUsers(w http.ResponseWriter, r *http.Request) {
	enc := dataset.Identity
	if h.compression {
		w.Header().Add("Vary", "Accept-Encoding")
		enc = negotiateEncoding(r.Header.Get("Accept-Encoding"), dataset.Compressed)
	}

	body, err := h.users.Encoded(enc)
	if err != nil {
		h.logger.Error(r.Context(), "dataset unavailable", "encoding", enc, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if enc != dataset.Identity {
		w.Header().Set("Content-Encoding", string(enc))
	}
	writeJSONBytes(w, body)
}

func (h *handlers) runBenchmark(w http.ResponseWriter, r *http.Request) {
	result := h.runner.Run(r.Context())

	body, err := json.Marshal(result)
	if err != nil {
		h.logger.Error(r.Context(), "marshal benchmark result", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeJSONBytes(w, body)
}

func (h *handlers) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func writeJSONBytes(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
