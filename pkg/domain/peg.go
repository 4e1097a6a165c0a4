package domain

import (
	"fmt"
	"strings"
)

// Peg identifies one of the three fixed positions of the puzzle.
type Peg int

const (
	Left   Peg = iota // Start peg
	Middle            // Auxiliary peg
	Right             // Target peg
)

// Pegs lists every peg in display order.
var Pegs = [...]Peg{Left, Middle, Right}

// Valid reports whether p is one of the three known pegs.
func (p Peg) Valid() bool {
	return p >= Left && p <= Right
}

func (p Peg) String() string {
	switch p {
	case Left:
		return "left"
	case Middle:
		return "middle"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("peg(%d)", int(p))
	}
}

// Label returns the single-letter name used in move listings (A, B, C).
func (p Peg) Label() string {
	if !p.Valid() {
		return "?"
	}
	return string(rune('A' + int(p)))
}

// MarshalText encodes the peg by its label.
func (p Peg) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPeg, int(p))
	}
	return []byte(p.Label()), nil
}

// UnmarshalText accepts a label, case-insensitively.
func (p *Peg) UnmarshalText(text []byte) error {
	for _, candidate := range Pegs {
		if strings.EqualFold(string(text), candidate.Label()) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPeg, text)
}
