package hanoi

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimate_ClearsBeforeEachFrame(t *testing.T) {
	out := &bytes.Buffer{}

	summary, err := Animate(out, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, runner.Summary{Moves: 3, Height: 2, Delay: 0}, summary)
	// One erase-display sequence per move, none before the initial frame.
	assert.Equal(t, 3, strings.Count(out.String(), "\x1b[2J"))
	assert.False(t, strings.HasPrefix(out.String(), "\x1b["))
}

func TestAnimate_InvalidHeight(t *testing.T) {
	_, err := Animate(&bytes.Buffer{}, -1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidHeight)
}

func TestAnimate_OptionsOverrideDefaults(t *testing.T) {
	var sleeps []time.Duration
	out := &bytes.Buffer{}

	_, err := Animate(&bytes.Buffer{}, 1, 3*time.Millisecond,
		runner.WithOutput(out),
		runner.WithSleeper(func(d time.Duration) { sleeps = append(sleeps, d) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{3 * time.Millisecond}, sleeps)
	assert.NotContains(t, out.String(), "\x1b[")
	assert.Equal(t, 2, strings.Count(out.String(), "■■"))
}

type countingScreen struct{ clears int }

func (s *countingScreen) Clear() { s.clears++ }

func TestAnimate_SuppliedScreenReplacesDefault(t *testing.T) {
	out := &bytes.Buffer{}
	screen := &countingScreen{}

	summary, err := Animate(out, 3, 0, runner.WithScreen(screen))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), summary.Moves)
	assert.Equal(t, 7, screen.clears)
	assert.NotContains(t, out.String(), "\x1b[", "default screen must not write to w")
}
