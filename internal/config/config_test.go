package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, uint(6), cfg.Height)
	assert.Equal(t, 100*time.Millisecond, cfg.Delay())
	assert.Equal(t, LogMinimal, cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.MetricsAddr)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
delay: 250
height: "3"
loglevel: ALL
metrics_addr: "127.0.0.1:9464"
events: /tmp/hanoi.jsonl
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Delay())
	assert.Equal(t, uint(3), cfg.Height)
	assert.Equal(t, LogAll, cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9464", cfg.MetricsAddr)
	assert.Equal(t, "/tmp/hanoi.jsonl", cfg.EventsFile)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "height: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint(2), cfg.Height)
	assert.Equal(t, DefaultDelay, cfg.Delay())
	assert.Equal(t, LogMinimal, cfg.LogLevel)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Unknown Key", "pegs: 4\n"},
		{"Bad Level", "loglevel: verbose\n"},
		{"Not A Number", "height: tall\n"},
		{"Too Tall", "height: 65\n"},
		{"Negative Delay", "delay: -1\n"},
		{"Broken YAML", "height: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Height = 64
	require.NoError(t, cfg.Validate())

	cfg.Height = 65
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidValue)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"none":    LogNone,
		"None":    LogNone,
		"MINIMAL": LogMinimal,
		"minimal": LogMinimal,
		"All":     LogAll,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLogLevel_FlagValue(t *testing.T) {
	var l LogLevel
	require.NoError(t, l.Set("aLL"))
	assert.Equal(t, LogAll, l)
	assert.Equal(t, "all", l.String())
	assert.Equal(t, "level", l.Type())

	assert.Error(t, l.Set("chatty"))
	assert.Equal(t, LogAll, l, "failed Set must not change the value")
}
