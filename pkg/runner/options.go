package runner

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithOutput sets the writer frames are printed to.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.Output = w
	}
}

// WithScreen configures the screen that is cleared before every frame.
func WithScreen(s Screen) Option {
	return func(r *Runner) {
		r.Screen = s
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = hooks
	}
}

// WithSleeper replaces time.Sleep for the pause between frames.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(r *Runner) {
		r.sleep = sleep
	}
}
