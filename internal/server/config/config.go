// Package config handles configuration for the apibench server,
// including defaults, a JSON or YAML file overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - HTTPAddr: bind address for the HTTP endpoints (/users, /benchmark, ...).
//   - GRPCAddr: bind address for the gRPC mirror; empty disables it.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - ReadHeaderTimeout: limit for reading HTTP request headers.
//   - Warmup: build and serialize the dataset at startup instead of on first request.
//   - Compression: serve precompressed gzip/br bodies for /users when the client accepts them.
//   - Metrics: expose Prometheus metrics on /metrics.
//   - LogLevel / LogFormat: see logging.ParseLevel and logging.New.
type Config struct {
	HTTPAddr          string
	GRPCAddr          string
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
	Warmup            bool
	Compression       bool
	Metrics           bool
	LogLevel          string
	LogFormat         string
}

// LoadDefaults populates Config with the values used when nothing else is set.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = "127.0.0.1:5003"
	c.GRPCAddr = "127.0.0.1:50051"
	c.ShutdownTimeout = 5 * time.Second
	c.ReadHeaderTimeout = 5 * time.Second
	c.Warmup = false
	c.Compression = true
	c.Metrics = true
	c.LogLevel = "info"
	c.LogFormat = "auto"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
