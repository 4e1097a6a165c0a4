// Package terminal wraps the terminal control sequences used by the animation.
package terminal

import (
	"errors"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// disableBlink is DECSET 12 reset (att610): stop the cursor from blinking.
const disableBlink = "\x1b[?12l"

// ErrNotTerminal is returned by Size when the output is not a terminal.
var ErrNotTerminal = errors.New("output is not a terminal")

type fder interface {
	Fd() uintptr
}

// Screen issues cursor and screen control sequences on a single output.
type Screen struct {
	out *termenv.Output
	fd  int
	tty bool
}

// New creates a Screen writing to w. Cursor changes are only applied when w is an
// *os.File attached to a terminal.
func New(w io.Writer) *Screen {
	s := &Screen{
		out: termenv.NewOutput(w),
		fd:  -1,
	}
	if f, ok := w.(fder); ok {
		s.fd = int(f.Fd())
		s.tty = term.IsTerminal(s.fd)
	}
	return s
}

// IsTerminal reports whether the output is attached to a terminal.
func (s *Screen) IsTerminal() bool {
	return s.tty
}

// Init hides the cursor and disables blinking. Call once before the first frame.
func (s *Screen) Init() {
	if !s.tty {
		return
	}
	s.out.HideCursor()
	_, _ = s.out.WriteString(disableBlink)
}

// Restore shows the cursor again.
func (s *Screen) Restore() {
	if !s.tty {
		return
	}
	s.out.ShowCursor()
}

// Clear erases the display and moves the cursor to the top-left corner.
func (s *Screen) Clear() {
	s.out.ClearScreen()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (cols, rows int, err error) {
	if !s.tty {
		return 0, 0, ErrNotTerminal
	}
	return term.GetSize(s.fd)
}

// FrameWidth returns the display width of the widest line of frame.
func FrameWidth(frame string) int {
	widest := 0
	for _, line := range strings.Split(frame, "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// FrameFits reports whether frame can be drawn without wrapping. The second
// result is false when the terminal size is unknown.
func (s *Screen) FrameFits(frame string) (fits bool, known bool) {
	cols, _, err := s.Size()
	if err != nil || cols <= 0 {
		return true, false
	}
	return FrameWidth(frame) <= cols, true
}
