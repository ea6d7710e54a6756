package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/apibench/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDefaults(t *testing.T, c *Config) {
	t.Helper()
	assert.Equal(t, "127.0.0.1:5003", c.HTTPAddr)
	assert.Equal(t, "127.0.0.1:50051", c.GRPCAddr)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, c.ReadHeaderTimeout)
	assert.False(t, c.Warmup)
	assert.True(t, c.Compression)
	assert.True(t, c.Metrics)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "auto", c.LogFormat)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assertDefaults(t, &c)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv(flagx.ConfigEnvVar, "")
	os.Args = []string{"apibench"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assertDefaults(t, c)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv(flagx.ConfigEnvVar, "")

	path := writeTempFile(t, "cfg.json", `{"http_addr":"0.0.0.0:8080","warmup":true,"log_level":"debug"}`)
	os.Args = []string{"apibench", "-c", path, "-a", "127.0.0.1:9000"}

	c := LoadConfig()

	assert.Equal(t, "127.0.0.1:9000", c.HTTPAddr)
	assert.True(t, c.Warmup)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "127.0.0.1:50051", c.GRPCAddr)
}

func TestLoadConfig_FileDurationsKeepPrecision(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv(flagx.ConfigEnvVar, "")

	path := writeTempFile(t, "cfg.json", `{"shutdown_timeout":"1500ms","read_header_timeout":"500ms"}`)

	tests := []struct {
		name     string
		args     []string
		shutdown time.Duration
	}{
		{name: "no -t", args: []string{"apibench", "-c", path}, shutdown: 1500 * time.Millisecond},
		{name: "-t overrides", args: []string{"apibench", "-c", path, "-t", "2"}, shutdown: 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			c := LoadConfig()

			assert.Equal(t, tt.shutdown, c.ShutdownTimeout)
			assert.Equal(t, 500*time.Millisecond, c.ReadHeaderTimeout)
		})
	}
}
