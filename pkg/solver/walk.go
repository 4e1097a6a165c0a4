package solver

import "github.com/aretw0/hanoi/pkg/domain"

// frame is one pending sub-problem. A frame with emit set stands for the single
// move of disk n after its upper sub-stack has been handled.
type frame struct {
	n                  int
	start, target, aux domain.Peg
	emit               bool
}

// Walk enumerates the moves for a tower of height without touching a Tower.
// It uses an explicit stack and yields the same order as Solve. Walk stops early
// when fn returns false.
func Walk(height int, fn func(domain.Move) bool) {
	if height <= 0 {
		return
	}

	stack := make([]frame, 0, 2*height+1)
	stack = append(stack, frame{n: height, start: domain.Left, target: domain.Right, aux: domain.Middle})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.emit {
			if !fn(domain.Move{Disk: f.n, From: f.start, To: f.target}) {
				return
			}
			continue
		}
		if f.n == 0 {
			continue
		}

		// Pushed in reverse: lower sub-stack, then the move, then the upper sub-stack.
		stack = append(stack,
			frame{n: f.n - 1, start: f.aux, target: f.target, aux: f.start},
			frame{n: f.n, start: f.start, target: f.target, emit: true},
			frame{n: f.n - 1, start: f.start, target: f.aux, aux: f.target},
		)
	}
}

// Sequence collects the moves produced by Walk.
func Sequence(height int) []domain.Move {
	var moves []domain.Move
	Walk(height, func(m domain.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}
