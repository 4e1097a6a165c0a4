package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/terminal"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// exitOnSignal restores the cursor and ends the process when sc is cancelled by a
// signal. The animation itself cannot be interrupted, so the process has to go.
func exitOnSignal(sc *SignalContext, screen *terminal.Screen, logger *slog.Logger, exit func(int)) {
	go func() {
		<-sc.Done()
		sig := sc.Signal()
		if sig == nil {
			return
		}
		screen.Restore()
		logger.Info("Animation interrupted", "signal", sig.String())
		exit(130)
	}()
}

// PrintSummary writes the completion facts selected by level.
func PrintSummary(w io.Writer, level config.LogLevel, s runner.Summary) {
	switch level {
	case config.LogMinimal:
		fmt.Fprintf(w, "Completed in %d moves\n", s.Moves)
	case config.LogAll:
		fmt.Fprintf(w, "Completed in %d moves\n", s.Moves)
		fmt.Fprintf(w, "Tower height: %d pegs\n", s.Height)
		fmt.Fprintf(w, "Delay: ~%dms\n", s.Delay.Milliseconds())
	}
}

func createDebugHooks(logger *slog.Logger, screen *terminal.Screen) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStart: func(e *domain.StartEvent) {
			logger.Debug("Initial frame", "height", e.Height, "expected_moves", e.ExpectedMoves)
			if fits, known := screen.FrameFits(e.Frame); known && !fits {
				logger.Warn("Frame is wider than the terminal, lines will wrap", "width", terminal.FrameWidth(e.Frame))
			}
		},
		OnFrame: func(e *domain.FrameEvent) {
			logger.Debug("Frame written", "seq", e.Sequence, "took", e.Duration)
		},
	}
}
