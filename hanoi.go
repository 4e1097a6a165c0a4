package hanoi

import (
	"fmt"
	"io"
	"time"

	"github.com/aretw0/hanoi/internal/terminal"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
)

// Animate builds a tower of the given height and plays its solution on w.
//
// Options are applied after WithOutput(w), so WithOutput may redirect the frames.
// Unless an option supplies a Screen, the display is cleared through w before each
// frame. Cursor visibility is left to the caller (see the cli package).
func Animate(w io.Writer, height int, delay time.Duration, opts ...runner.Option) (runner.Summary, error) {
	tower, err := domain.NewTower(height, delay)
	if err != nil {
		return runner.Summary{}, fmt.Errorf("failed to build tower: %w", err)
	}

	r := runner.NewRunner(append([]runner.Option{runner.WithOutput(w)}, opts...)...)
	if r.Screen == nil {
		r.Screen = terminal.New(w)
	}
	return r.Run(tower)
}
