package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/apibench/internal/bench"
	"github.com/dmitrijs2005/apibench/internal/dataset"
	"github.com/dmitrijs2005/apibench/internal/logging"
	"github.com/dmitrijs2005/apibench/internal/netx"
	"github.com/goccy/go-json"
)

// primesBelowLimit is the count of primes below bench.DefaultLimit.
const primesBelowLimit = 78498

var (
	ErrDatasetMismatch = errors.New("dataset differs between requests or transports")
	ErrBadBenchmark    = errors.New("benchmark result out of range")
)

// Report summarizes one probe run.
type Report struct {
	UsersSHA256 string         `json:"usersSha256"`
	UsersBytes  int            `json:"usersBytes"`
	UserCount   int            `json:"userCount"`
	HTTPRuns    []bench.Result `json:"httpRuns"`
	GRPCRuns    []bench.Result `json:"grpcRuns,omitempty"`
}

// Probe checks a running server. GRPC may be nil to probe HTTP only.
type Probe struct {
	BaseURL string
	HTTP    *http.Client
	GRPC    *GRPCClient
	Logger  logging.Logger
}

// Run fetches /users twice (and GetUsers once when gRPC is configured),
// requires identical bytes with ids 1..UserCount in order, then runs the
// benchmark runs times per transport.
func (p *Probe) Run(ctx context.Context, runs int) (*Report, error) {
	base := strings.TrimRight(p.BaseURL, "/")

	first, err := p.fetch(ctx, base+"/users")
	if err != nil {
		return nil, err
	}
	second, err := p.fetch(ctx, base+"/users")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(first, second) {
		return nil, fmt.Errorf("http: %w", ErrDatasetMismatch)
	}

	if p.GRPC != nil {
		viaGRPC, err := p.GRPC.GetUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("grpc GetUsers: %w", err)
		}
		if !bytes.Equal(first, viaGRPC) {
			return nil, fmt.Errorf("grpc: %w", ErrDatasetMismatch)
		}
	}

	count, err := checkUsers(first)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(first)
	report := &Report{
		UsersSHA256: hex.EncodeToString(sum[:]),
		UsersBytes:  len(first),
		UserCount:   count,
	}
	p.Logger.Info(ctx, "dataset verified", "sha256", report.UsersSHA256, "bytes", report.UsersBytes)

	for i := 0; i < runs; i++ {
		body, err := p.fetch(ctx, base+"/benchmark")
		if err != nil {
			return nil, err
		}
		var res bench.Result
		if err := json.Unmarshal(body, &res); err != nil {
			return nil, fmt.Errorf("decode benchmark: %w", err)
		}
		if err := checkResult(res); err != nil {
			return nil, err
		}
		report.HTTPRuns = append(report.HTTPRuns, res)

		if p.GRPC == nil {
			continue
		}
		res, err = p.GRPC.RunBenchmark(ctx)
		if err != nil {
			return nil, fmt.Errorf("grpc RunBenchmark: %w", err)
		}
		if err := checkResult(res); err != nil {
			return nil, err
		}
		report.GRPCRuns = append(report.GRPCRuns, res)
	}

	return report, nil
}

func (p *Probe) fetch(ctx context.Context, url string) ([]byte, error) {
	body, _, err := netx.Get(ctx, p.HTTP, url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	return body, nil
}

func checkUsers(body []byte) (int, error) {
	var users []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &users); err != nil {
		return 0, fmt.Errorf("decode users: %w", err)
	}
	if len(users) != dataset.UserCount {
		return 0, fmt.Errorf("%w: got %d users", ErrDatasetMismatch, len(users))
	}
	for i, u := range users {
		if u.ID != i+1 {
			return 0, fmt.Errorf("%w: users[%d].id = %d", ErrDatasetMismatch, i, u.ID)
		}
	}
	return len(users), nil
}

func checkResult(r bench.Result) error {
	if r.PrimesFound != primesBelowLimit {
		return fmt.Errorf("%w: primesFound = %d", ErrBadBenchmark, r.PrimesFound)
	}
	if r.ExecutionTimeMs < 0 || r.WorkingSetMB < 0 || r.ProcessID == 0 {
		return fmt.Errorf("%w: %+v", ErrBadBenchmark, r)
	}
	return nil
}
