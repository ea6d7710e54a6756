package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/apibench/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. "127.0.0.1:5003")
//	-g string   gRPC bind address, empty to disable
//	-t int      shutdown timeout, seconds
//	-w bool     warm the dataset cache at startup
//	-z bool     serve compressed /users bodies
//	-m bool     expose /metrics
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (auto, json, text)
//
// os.Args is filtered through flagx.FilterArgs first so that flags owned by
// other components (-c) do not make parsing fail.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-t", "-w", "-z", "-m", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "HTTP address and port to run server")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "gRPC address and port, empty to disable")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.BoolVar(&config.Warmup, "w", config.Warmup, "build the dataset at startup")
	fs.BoolVar(&config.Compression, "z", config.Compression, "serve gzip/br encoded /users")
	fs.BoolVar(&config.Metrics, "m", config.Metrics, "expose Prometheus metrics on /metrics")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format: auto, json or text")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides when given, so sub-second file values survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
