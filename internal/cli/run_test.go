package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	var sleeps []time.Duration

	opts := RunOptions{
		Config: config.Default(),
		Out:    out,
		sleep:  func(d time.Duration) { sleeps = append(sleeps, d) },
	}

	require.NoError(t, Execute(opts))

	require.Len(t, sleeps, 63)
	for _, d := range sleeps {
		assert.Equal(t, 100*time.Millisecond, d)
	}
	assert.True(t, strings.HasSuffix(out.String(), "Completed in 63 moves\n"), "got tail %q", tail(out.String()))
}

func TestExecute_LogLevels(t *testing.T) {
	tests := []struct {
		level config.LogLevel
		want  string
	}{
		{config.LogNone, ""},
		{config.LogMinimal, "Completed in 7 moves\n"},
		{config.LogAll, "Completed in 7 moves\nTower height: 3 pegs\nDelay: ~0ms\n"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg := config.Default()
			cfg.Height = 3
			cfg.DelayMS = 0
			cfg.LogLevel = tt.level

			require.NoError(t, Execute(RunOptions{Config: cfg, Out: out}))

			// The last frame ends with a blank line; the summary follows it.
			parts := strings.Split(out.String(), "\n\n")
			assert.Equal(t, tt.want, parts[len(parts)-1])
		})
	}
}

func TestExecute_ZeroHeight(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := config.Default()
	cfg.Height = 0

	require.NoError(t, Execute(RunOptions{Config: cfg, Out: out, sleep: func(time.Duration) {
		t.Fatal("no frame expected")
	}}))

	assert.Equal(t, "\nCompleted in 0 moves\n", out.String())
}

func TestExecute_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Height = 65

	err := Execute(RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestExecute_WithMetricsServer(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := config.Default()
	cfg.Height = 2
	cfg.DelayMS = 0
	cfg.MetricsAddr = "127.0.0.1:0"

	require.NoError(t, Execute(RunOptions{Config: cfg, Out: out}))
	assert.Contains(t, out.String(), "Completed in 3 moves")
}

func TestExecute_MetricsServerBadAddr(t *testing.T) {
	cfg := config.Default()
	cfg.Height = 1
	cfg.MetricsAddr = "not-an-address"

	err := Execute(RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics server")
}

func TestExecute_WritesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	cfg := config.Default()
	cfg.Height = 3
	cfg.DelayMS = 0
	cfg.EventsFile = path

	require.NoError(t, Execute(RunOptions{Config: cfg, Out: &bytes.Buffer{}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 8, "start plus seven moves")
	assert.Contains(t, lines[1], `"move":{"disk":1,"from":"A","to":"C"}`)
}

func TestExecute_EventsFileUnwritable(t *testing.T) {
	cfg := config.Default()
	cfg.Height = 1
	cfg.EventsFile = filepath.Join(t.TempDir(), "missing", "events.jsonl")

	err := Execute(RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "events file")
}

func TestPrintSummary(t *testing.T) {
	out := &bytes.Buffer{}
	PrintSummary(out, config.LogAll, runner.Summary{Moves: 63, Height: 6, Delay: 100 * time.Millisecond})

	assert.Equal(t, "Completed in 63 moves\nTower height: 6 pegs\nDelay: ~100ms\n", out.String())
}

func tail(s string) string {
	if len(s) > 80 {
		return s[len(s)-80:]
	}
	return s
}
