package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.ServerAddr)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	os.Args = []string{"cmd"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080", cfg.ServerAddr)
}

func TestParseFlags(t *testing.T) {

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Test1 address flag", args: []string{"cmd", "-a", "http://example.com:9090"},
			expected: "http://example.com:9090"},
		{name: "Test2 no flags keeps value", args: []string{"cmd"},
			expected: "http://localhost:1111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{ServerAddr: "http://localhost:1111"}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config.ServerAddr)
		})
	}
}
