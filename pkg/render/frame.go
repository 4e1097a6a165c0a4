/*
Package render turns a tower into a fixed-width text drawing.

Every function here is a pure state-to-text transform: nothing touches the terminal.
Clearing the screen and pacing the animation belong to the runner package.

A frame has one line per layer, from the top layer (height-1) down to the base (0).
Each line holds one cell per peg, and every cell is BoxWidth(height) characters wide
so the three pegs line up:

	   ■■      ...
	  ■■■■     ...
	 ■■■■■■    ...
*/
package render

import (
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Block is the character used to draw disks.
const Block = "■"

// BoxWidth returns the width of one peg cell for a tower of the given height.
func BoxWidth(height int) int {
	return height*2 + 6
}

// Cell draws a disk centered in a cell of the given width. A disk of size 0 (no
// disk) yields a blank cell. An odd remainder of padding is dropped.
func Cell(disk, width int) string {
	var b strings.Builder
	writeCell(&b, disk, width)
	return b.String()
}

func writeCell(b *strings.Builder, disk, width int) {
	if disk <= 0 {
		b.WriteString(strings.Repeat(" ", width))
		return
	}
	size := disk * 2
	pad := (width - size) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(strings.Repeat(Block, size))
	b.WriteString(strings.Repeat(" ", pad))
}

// Layer renders one horizontal slice across all three pegs, terminated by a newline.
// The layer is counted from each peg's base.
func Layer(t *domain.Tower, layer int) string {
	var b strings.Builder
	writeLayer(&b, t, layer, BoxWidth(t.Height()))
	return b.String()
}

func writeLayer(b *strings.Builder, t *domain.Tower, layer, width int) {
	for _, p := range domain.Pegs {
		disk, _ := t.DiskAt(p, layer)
		writeCell(b, disk, width)
	}
	b.WriteByte('\n')
}

// Frame renders the whole tower, top layer first. A tower of height 0 has no layers
// and renders as an empty string.
func Frame(t *domain.Tower) string {
	height := t.Height()
	width := BoxWidth(height)

	var b strings.Builder
	b.Grow(height * (3*width*len(Block) + 1))
	for layer := height - 1; layer >= 0; layer-- {
		writeLayer(&b, t, layer, width)
	}
	return b.String()
}
