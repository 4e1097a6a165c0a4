/*
Package hanoi animates the three-peg disk-transfer puzzle in a terminal.

A tower of disks starts on the left peg, largest at the bottom. The solver moves the
whole stack to the right peg one disk at a time, never placing a disk on a smaller
one, in exactly 2^height - 1 moves. After every move the frame is redrawn and the
animation pauses for the configured delay.

# Layout

  - pkg/domain: pegs, the Tower state model and lifecycle events.
  - pkg/solver: the recursive solver and an iterative move enumerator.
  - pkg/render: pure tower-to-text rendering.
  - pkg/runner: the clear/print/pause drive loop.
  - cmd/hanoi: the command line entry point.

# Usage

	package main

	import (
		"fmt"
		"log"
		"os"
		"time"

		"github.com/aretw0/hanoi"
	)

	func main() {
		summary, err := hanoi.Animate(os.Stdout, 6, 100*time.Millisecond)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Completed in %d moves\n", summary.Moves)
	}
*/
package hanoi
