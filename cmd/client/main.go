package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/apibench/internal/client"
	"github.com/dmitrijs2005/apibench/internal/filex"
	"github.com/dmitrijs2005/apibench/internal/logging"
	"github.com/goccy/go-json"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

// run probes the server described by args and writes the JSON report to
// stdout. Logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(stderr)

	baseURL := fs.String("u", "http://127.0.0.1:5003", "HTTP base URL")
	grpcAddr := fs.String("g", "127.0.0.1:50051", "gRPC address, empty to skip")
	runs := fs.Int("n", 3, "benchmark runs per transport")
	timeout := fs.Duration("t", time.Minute, "overall timeout")
	outDir := fs.String("o", "", "directory to save the report in")
	level := fs.String("l", "info", "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	lvl, err := logging.ParseLevel(*level)
	if err != nil {
		return err
	}
	logger, err := logging.New(stderr, lvl, logging.FormatAuto)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	probe := &client.Probe{
		BaseURL: *baseURL,
		HTTP:    &http.Client{},
		Logger:  logger,
	}

	if *grpcAddr != "" {
		gc, err := client.NewGRPCClient(*grpcAddr)
		if err != nil {
			return fmt.Errorf("grpc client: %w", err)
		}
		defer gc.Close()
		probe.GRPC = gc
	}

	report, err := probe.Run(ctx, *runs)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}

	if *outDir != "" {
		path, err := filex.WriteReport(*outDir, time.Now(), report)
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		logger.Info(ctx, "report saved", "path", path)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
