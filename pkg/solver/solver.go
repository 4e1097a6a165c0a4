// Package solver generates the move sequence that transfers a tower from the Left
// peg to the Right peg using the Middle peg as auxiliary.
package solver

import (
	"fmt"
	"math"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Observer is called after each move has been applied to the tower.
// Returning an error stops the solve.
type Observer func(domain.Move) error

// MoveCount returns 2^height - 1, the number of moves needed for a tower of height.
func MoveCount(height int) uint64 {
	if height <= 0 {
		return 0
	}
	if height >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(height) - 1
}

// Solve moves every disk of t from Left to Right and returns the number of moves
// performed. observe may be nil.
func Solve(t *domain.Tower, observe Observer) (uint64, error) {
	s := &solve{tower: t, observe: observe}
	if err := s.stack(t.Height(), domain.Left, domain.Right, domain.Middle); err != nil {
		return s.moves, err
	}
	return s.moves, nil
}

type solve struct {
	tower   *domain.Tower
	observe Observer
	moves   uint64
}

// stack moves the top n disks from start to target.
func (s *solve) stack(n int, start, target, aux domain.Peg) error {
	if n == 0 {
		return nil
	}
	if err := s.stack(n-1, start, aux, target); err != nil {
		return err
	}

	m := s.tower.MoveDisk(start, target)
	s.moves++
	if s.observe != nil {
		if err := s.observe(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", s.moves, m, err)
		}
	}

	return s.stack(n-1, aux, target, start)
}
