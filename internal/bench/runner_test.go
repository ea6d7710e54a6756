package bench

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/apibench/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fixedProbe struct {
	bytes uint64
	err   error
}

func (p fixedProbe) ResidentBytes(context.Context) (uint64, error) {
	return p.bytes, p.err
}

func TestRunner_Run_ReportsPrimesAndMemory(t *testing.T) {
	r := NewRunner(nopLogger{}, WithMemoryProbe(fixedProbe{bytes: 48 * 1024 * 1024}))

	res := r.Run(context.Background())

	assert.Equal(t, 78498, res.PrimesFound)
	assert.GreaterOrEqual(t, res.ExecutionTimeMs, int64(0))
	assert.Equal(t, uint32(os.Getpid()), res.ProcessID)
	assert.InDelta(t, 48.0, res.WorkingSetMB, 1e-9)
}

func TestRunner_Run_MemoryFailureDegradesToZero(t *testing.T) {
	r := NewRunner(nopLogger{}, WithLimit(100), WithMemoryProbe(fixedProbe{err: errors.New("no procfs")}))

	res := r.Run(context.Background())

	assert.Equal(t, 25, res.PrimesFound)
	assert.Equal(t, 0.0, res.WorkingSetMB)
	assert.Positive(t, res.ProcessID)
}

func TestRunner_Run_ObserverAndConcurrency(t *testing.T) {
	var mu sync.Mutex
	var calls int
	r := NewRunner(nopLogger{}, WithLimit(10_000), WithObserver(func(took time.Duration) {
		mu.Lock()
		calls++
		mu.Unlock()
		assert.GreaterOrEqual(t, took, time.Duration(0))
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 1229, r.Run(context.Background()).PrimesFound)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 8, calls)
}

func TestProcessMemory_ResidentBytes(t *testing.T) {
	rss, err := ProcessMemory{}.ResidentBytes(context.Background())
	if err != nil {
		t.Skipf("process memory not available on this host: %v", err)
	}
	require.Positive(t, rss)
}
