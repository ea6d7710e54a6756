package bench

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/apibench/internal/common"
	"github.com/shirou/gopsutil/v4/process"
)

// MemoryProbe reports the resident memory of the current process in bytes.
type MemoryProbe interface {
	ResidentBytes(ctx context.Context) (uint64, error)
}

// ProcessMemory reads the resident set size of this process from the host.
type ProcessMemory struct{}

func (ProcessMemory) ResidentBytes(ctx context.Context) (uint64, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrMemoryUnavailable, err)
	}
	info, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrMemoryUnavailable, err)
	}
	return info.RSS, nil
}

// bytesToMB converts bytes to binary megabytes.
func bytesToMB(b uint64) float64 {
	return float64(b) / (1024.0 * 1024.0)
}
