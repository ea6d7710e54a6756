package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/apibench/internal/flagx"
	"github.com/dmitrijs2005/apibench/internal/timex"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration, shared by the JSON
// and YAML readers. Unset keys leave the corresponding Config field alone.
type FileConfig struct {
	HTTPAddr          *string         `json:"http_addr" yaml:"http_addr"`
	GRPCAddr          *string         `json:"grpc_addr" yaml:"grpc_addr"`
	ShutdownTimeout   *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	ReadHeaderTimeout *timex.Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
	Warmup            *bool           `json:"warmup" yaml:"warmup"`
	Compression       *bool           `json:"compression" yaml:"compression"`
	Metrics           *bool           `json:"metrics" yaml:"metrics"`
	LogLevel          *string         `json:"log_level" yaml:"log_level"`
	LogFormat         *string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays values from the file named by -c/-config (or
// $APIBENCH_CONFIG) onto config. Files ending in .yaml or .yml are read as
// YAML, anything else as JSON. A missing or malformed file panics: the
// operator asked for it explicitly.
func parseFile(config *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}

	fc.apply(config)
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	fc := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return fc, nil
}

func (fc *FileConfig) apply(config *Config) {
	if fc.HTTPAddr != nil {
		config.HTTPAddr = *fc.HTTPAddr
	}
	if fc.GRPCAddr != nil {
		config.GRPCAddr = *fc.GRPCAddr
	}
	if fc.ShutdownTimeout != nil {
		config.ShutdownTimeout = fc.ShutdownTimeout.Duration
	}
	if fc.ReadHeaderTimeout != nil {
		config.ReadHeaderTimeout = fc.ReadHeaderTimeout.Duration
	}
	if fc.Warmup != nil {
		config.Warmup = *fc.Warmup
	}
	if fc.Compression != nil {
		config.Compression = *fc.Compression
	}
	if fc.Metrics != nil {
		config.Metrics = *fc.Metrics
	}
	if fc.LogLevel != nil {
		config.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		config.LogFormat = *fc.LogFormat
	}
}
