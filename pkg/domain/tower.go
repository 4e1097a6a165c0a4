package domain

import (
	"fmt"
	"time"
)

// MaxHeight is the tallest tower accepted. 2^64-1 moves still fit in a uint64.
const MaxHeight = 64

// Tower holds the disks of the puzzle.
// Each peg is a stack where the last element is the topmost disk.
type Tower struct {
	height int
	delay  time.Duration
	pegs   [3][]int
}

// NewTower builds a tower with every disk on the Left peg, largest at the bottom.
// The bottom disk has size height and the top disk size 1. A zero height yields
// three empty pegs.
func NewTower(height int, delay time.Duration) (*Tower, error) {
	if height < 0 || height > MaxHeight {
		return nil, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidHeight, height, MaxHeight)
	}
	if delay < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDelay, delay)
	}

	start := make([]int, 0, height)
	for i := 0; i < height; i++ {
		start = append(start, height-i)
	}

	t := &Tower{
		height: height,
		delay:  delay,
	}
	t.pegs[Left] = start
	t.pegs[Middle] = make([]int, 0, height)
	t.pegs[Right] = make([]int, 0, height)
	return t, nil
}

// Height returns the number of disks in the tower.
func (t *Tower) Height() int {
	return t.height
}

// Delay returns the pause between two frames.
func (t *Tower) Delay() time.Duration {
	return t.delay
}

// Count returns the number of disks on p.
func (t *Tower) Count(p Peg) int {
	if !p.Valid() {
		return 0
	}
	return len(t.pegs[p])
}

// Disks returns a copy of the disks on p, bottom first.
func (t *Tower) Disks(p Peg) []int {
	if !p.Valid() {
		return nil
	}
	out := make([]int, len(t.pegs[p]))
	copy(out, t.pegs[p])
	return out
}

// Top returns the topmost disk on p.
func (t *Tower) Top(p Peg) (int, bool) {
	if !p.Valid() || len(t.pegs[p]) == 0 {
		return 0, false
	}
	stack := t.pegs[p]
	return stack[len(stack)-1], true
}

// DiskAt returns the disk at the given layer of p, counted from the peg's base.
func (t *Tower) DiskAt(p Peg, layer int) (int, bool) {
	if !p.Valid() || layer < 0 || layer >= len(t.pegs[p]) {
		return 0, false
	}
	return t.pegs[p][layer], true
}

// CanMove reports whether the top disk of from may be placed on to.
func (t *Tower) CanMove(from, to Peg) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %s -> %s", ErrUnknownPeg, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: source and destination are both %s", ErrIllegalMove, from)
	}
	disk, ok := t.Top(from)
	if !ok {
		return fmt.Errorf("%w: %s", ErrEmptyPeg, from)
	}
	if top, ok := t.Top(to); ok && top < disk {
		return fmt.Errorf("%w: disk %d onto disk %d", ErrIllegalMove, disk, top)
	}
	return nil
}

// MoveDisk takes the topmost disk of from and places it on to.
//
// Moving from an empty peg means the caller's algorithm is broken, so it panics
// with an error wrapping ErrEmptyPeg instead of returning.
// Disk ordering on the destination is not checked here; see CanMove.
func (t *Tower) MoveDisk(from, to Peg) Move {
	if !from.Valid() || !to.Valid() {
		panic(fmt.Errorf("%w: %s -> %s", ErrUnknownPeg, from, to))
	}
	if from == to {
		panic(fmt.Errorf("%w: source and destination are both %s", ErrIllegalMove, from))
	}
	stack := t.pegs[from]
	if len(stack) == 0 {
		panic(fmt.Errorf("%w: cannot move from %s", ErrEmptyPeg, from))
	}

	disk := stack[len(stack)-1]
	t.pegs[from] = stack[:len(stack)-1]
	t.pegs[to] = append(t.pegs[to], disk)

	return Move{Disk: disk, From: from, To: to}
}

// Validate checks that every disk 1..height exists exactly once and that no disk
// rests on a smaller one.
func (t *Tower) Validate() error {
	seen := make([]bool, t.height+1)
	total := 0
	for _, p := range Pegs {
		stack := t.pegs[p]
		for i, disk := range stack {
			if disk < 1 || disk > t.height {
				return fmt.Errorf("%w: disk %d out of range on %s", ErrBrokenInvariant, disk, p)
			}
			if seen[disk] {
				return fmt.Errorf("%w: disk %d appears twice", ErrBrokenInvariant, disk)
			}
			seen[disk] = true
			if i > 0 && stack[i-1] <= disk {
				return fmt.Errorf("%w: disk %d rests on disk %d on %s", ErrBrokenInvariant, disk, stack[i-1], p)
			}
		}
		total += len(stack)
	}
	if total != t.height {
		return fmt.Errorf("%w: %d disks, want %d", ErrBrokenInvariant, total, t.height)
	}
	return nil
}
