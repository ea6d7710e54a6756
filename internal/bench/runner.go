package bench

import (
	"context"
	"os"
	"time"

	"github.com/dmitrijs2005/apibench/internal/logging"
)

// Result is the /benchmark response body.
type Result struct {
	ExecutionTimeMs int64   `json:"executionTimeMs"`
	PrimesFound     int     `json:"primesFound"`
	ProcessID       uint32  `json:"processId"`
	WorkingSetMB    float64 `json:"workingSetMB"`
}

// SieveObserver receives the wall time of every sieve run.
type SieveObserver func(took time.Duration)

// Runner executes the sieve workload. It keeps no state between calls and
// is safe for concurrent use; every Run allocates its own sieve.
type Runner struct {
	limit   int
	probe   MemoryProbe
	logger  logging.Logger
	observe SieveObserver
}

type Option func(*Runner)

// WithLimit overrides DefaultLimit.
func WithLimit(limit int) Option {
	return func(r *Runner) { r.limit = limit }
}

// WithMemoryProbe replaces the host memory probe.
func WithMemoryProbe(p MemoryProbe) Option {
	return func(r *Runner) { r.probe = p }
}

// WithObserver registers a callback fed with each sieve duration.
func WithObserver(o SieveObserver) Option {
	return func(r *Runner) { r.observe = o }
}

func NewRunner(l logging.Logger, opts ...Option) *Runner {
	r := &Runner{
		limit:  DefaultLimit,
		probe:  ProcessMemory{},
		logger: l.With("module", "bench"),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run sieves primes below the configured limit and reports the elapsed time
// of the sieve alone, the process id and the resident memory. A failed
// memory reading is reported as 0.
func (r *Runner) Run(ctx context.Context) Result {
	start := time.Now()
	primes := CountPrimes(r.limit)
	took := time.Since(start)

	if r.observe != nil {
		r.observe(took)
	}

	var workingSet float64
	rss, err := r.probe.ResidentBytes(ctx)
	if err != nil {
		r.logger.Debug(ctx, "memory probe failed", "error", err)
	} else {
		workingSet = bytesToMB(rss)
	}

	return Result{
		ExecutionTimeMs: took.Milliseconds(),
		PrimesFound:     primes,
		ProcessID:       uint32(os.Getpid()),
		WorkingSetMB:    workingSet,
	}
}
