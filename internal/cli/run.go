package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/hanoi"
	httpAdapter "github.com/aretw0/hanoi/internal/adapters/http"
	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/internal/metrics"
	"github.com/aretw0/hanoi/internal/terminal"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
)

// RunOptions contains all the configuration for the animation command.
type RunOptions struct {
	config.Config

	// Out receives frames and the summary. Defaults to os.Stdout.
	Out io.Writer

	sleep func(time.Duration)
	exit  func(int)
}

// Execute plays the animation described by opts and prints the summary.
func Execute(opts RunOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.exit == nil {
		opts.exit = os.Exit
	}

	logger := logging.ForDebug(opts.Debug)
	logger.Debug("Configuration",
		"height", opts.Height,
		"delay", opts.Delay(),
		"loglevel", opts.LogLevel.String(),
		"metrics_addr", opts.MetricsAddr,
		"events", opts.EventsFile,
	)

	screen := terminal.New(opts.Out)
	screen.Init()
	defer screen.Restore()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()
	exitOnSignal(sigCtx, screen, logger, opts.exit)

	collector := metrics.New()
	hooks := []domain.LifecycleHooks{collector.Hooks(), createDebugHooks(logger, screen)}

	if opts.MetricsAddr != "" {
		snap := httpAdapter.NewSnapshot("")
		srv, err := httpAdapter.Start(opts.MetricsAddr, httpAdapter.NewHandler(snap, collector.Registry(), logger), logger)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
		hooks = append(hooks, snap.Hooks())
	}

	var events *runner.JSONHandler
	if opts.EventsFile != "" {
		f, err := os.OpenFile(opts.EventsFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open events file: %w", err)
		}
		defer f.Close()
		events = runner.NewJSONHandler(f)
		hooks = append(hooks, events.Hooks())
	}

	runnerOpts := []runner.Option{
		runner.WithScreen(screen),
		runner.WithLogger(logger),
		runner.WithHooks(domain.ChainHooks(hooks...)),
	}
	if opts.sleep != nil {
		runnerOpts = append(runnerOpts, runner.WithSleeper(opts.sleep))
	}

	summary, err := hanoi.Animate(opts.Out, int(opts.Height), opts.Delay(), runnerOpts...)
	if err != nil {
		return fmt.Errorf("animation failed: %w", err)
	}
	if events != nil {
		if err := events.Err(); err != nil {
			return fmt.Errorf("failed to write events: %w", err)
		}
	}

	PrintSummary(opts.Out, opts.LogLevel, summary)
	return nil
}
