package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/solver"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// On a terminal the style follows the background, otherwise the plain notty style
// keeps escape sequences out of pipes and files.
func NewRenderer(tty bool, width int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle("notty"),
		glamour.WithColorProfile(termenv.Ascii),
	}
	if tty {
		opts = []glamour.TermRendererOption{
			glamour.WithAutoStyle(), // Automatically detect light/dark background
		}
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// MovesMarkdown lists the moves for a tower of height as a markdown table.
// At most limit rows are listed when limit is positive.
func MovesMarkdown(height int, limit int) string {
	total := solver.MoveCount(height)

	var b strings.Builder
	fmt.Fprintf(&b, "# Tower of height %d\n\n", height)
	fmt.Fprintf(&b, "%d moves from peg A to peg C using peg B.\n\n", total)
	if total == 0 {
		return b.String()
	}

	b.WriteString("| # | Disk | From | To |\n")
	b.WriteString("|---:|---:|:---:|:---:|\n")

	listed := 0
	solver.Walk(height, func(m domain.Move) bool {
		if limit > 0 && listed == limit {
			return false
		}
		listed++
		fmt.Fprintf(&b, "| %d | %d | %s | %s |\n", listed, m.Disk, m.From.Label(), m.To.Label())
		return true
	})

	if uint64(listed) < total {
		fmt.Fprintf(&b, "\n_%d more moves not shown._\n", total-uint64(listed))
	}
	return b.String()
}
