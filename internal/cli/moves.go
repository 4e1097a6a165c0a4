package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/presentation/graph"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/internal/terminal"
)

// Listing formats accepted by ListMoves.
const (
	FormatTable   = "table"
	FormatMermaid = "mermaid"
)

// MovesOptions configures the move listing.
type MovesOptions struct {
	Height uint
	Limit  int
	Raw    bool
	Out    io.Writer

	// Format is FormatTable (default) or FormatMermaid.
	Format string
	// Highlight is the disk emphasized in the mermaid diagram.
	Highlight int
}

// ListMoves prints the solution of a tower as a table instead of animating it.
// On a terminal the markdown is rendered; Raw or a redirected output keeps it as is.
func ListMoves(opts MovesOptions) error {
	cfg := config.Default()
	cfg.Height = opts.Height
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	switch opts.Format {
	case "", FormatTable:
	case FormatMermaid:
		var overlay *graph.Overlay
		if opts.Highlight > 0 {
			overlay = &graph.Overlay{Disk: opts.Highlight}
		}
		_, err := io.WriteString(opts.Out, graph.GenerateMermaid(int(opts.Height), opts.Limit, overlay))
		return err
	default:
		return fmt.Errorf("%w: unknown format %q", config.ErrInvalidValue, opts.Format)
	}

	md := tui.MovesMarkdown(int(opts.Height), opts.Limit)

	screen := terminal.New(opts.Out)
	if opts.Raw || !screen.IsTerminal() {
		_, err := io.WriteString(opts.Out, md)
		return err
	}

	width, _, err := screen.Size()
	if err != nil {
		width = 0
	}
	render, err := tui.NewRenderer(true, width)
	if err != nil {
		return err
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render moves: %w", err)
	}
	_, err = io.WriteString(opts.Out, out)
	return err
}
