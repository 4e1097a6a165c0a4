package runner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/render"
	"github.com/aretw0/hanoi/pkg/solver"
)

// Screen clears the display and moves the cursor to the top-left corner.
type Screen interface {
	Clear()
}

// Summary holds the facts available once a solve has completed.
type Summary struct {
	Moves  uint64
	Height int
	Delay  time.Duration
}

// Runner animates a solve frame by frame.
type Runner struct {
	// Output receives the frames. Defaults to os.Stdout.
	Output io.Writer

	// Screen is cleared before every frame after the first.
	// If nil, frames are simply appended to Output.
	Screen Screen

	// Logger is used for debug logging of each move.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Hooks are fired after each move and each written frame.
	Hooks domain.LifecycleHooks

	sleep func(time.Duration)
}

// NewRunner creates a Runner writing to Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Output: os.Stdout,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.sleep == nil {
		r.sleep = time.Sleep
	}
	return r
}

// Run prints the initial frame, solves the tower and redraws it after every move.
// It returns once the whole stack sits on the Right peg.
func (r *Runner) Run(t *domain.Tower) (Summary, error) {
	summary := Summary{Height: t.Height(), Delay: t.Delay()}

	w := bufio.NewWriter(r.Output)

	// The initial frame is printed in place, without clearing.
	initial := render.Frame(t)
	if err := writeFrame(w, initial); err != nil {
		return summary, fmt.Errorf("initial frame: %w", err)
	}
	r.Logger.Debug("animation started", "height", t.Height(), "delay", t.Delay())
	if r.Hooks.OnStart != nil {
		r.Hooks.OnStart(&domain.StartEvent{
			EventBase:     domain.EventBase{Timestamp: time.Now(), Type: domain.EventStart},
			Height:        t.Height(),
			Delay:         t.Delay(),
			ExpectedMoves: solver.MoveCount(t.Height()),
			Frame:         initial,
		})
	}

	var seq uint64
	moves, err := solver.Solve(t, func(m domain.Move) error {
		seq++
		return r.present(w, t, m, seq)
	})
	summary.Moves = moves
	if err != nil {
		return summary, err
	}

	r.Logger.Debug("animation finished", "moves", moves)
	return summary, nil
}

// present redraws the tower after m has been applied and waits for the delay.
func (r *Runner) present(w *bufio.Writer, t *domain.Tower, m domain.Move, seq uint64) error {
	r.Logger.Debug("disk moved", "seq", seq, "disk", m.Disk, "from", m.From.String(), "to", m.To.String())
	if r.Hooks.OnMove != nil {
		r.Hooks.OnMove(&domain.MoveEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventMove, Sequence: seq},
			Move:      m,
		})
	}

	start := time.Now()
	frame := render.Frame(t)

	// Anything buffered must reach the terminal before the clear sequence does.
	if err := w.Flush(); err != nil {
		return err
	}
	if r.Screen != nil {
		r.Screen.Clear()
	}
	if err := writeFrame(w, frame); err != nil {
		return err
	}

	if r.Hooks.OnFrame != nil {
		r.Hooks.OnFrame(&domain.FrameEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFrame, Sequence: seq},
			Frame:     frame,
			Duration:  time.Since(start),
		})
	}

	if d := t.Delay(); d > 0 {
		r.sleep(d)
	}
	return nil
}

// writeFrame prints the frame followed by a blank line and flushes it.
func writeFrame(w *bufio.Writer, frame string) error {
	if _, err := w.WriteString(frame); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}
