package hanoi_test

import (
	"fmt"
	"io"
	"log"

	"github.com/aretw0/hanoi"
)

// ExampleAnimate plays a three-disk tower without pauses and reports the summary.
func ExampleAnimate() {
	summary, err := hanoi.Animate(io.Discard, 3, 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Completed in %d moves\n", summary.Moves)
	fmt.Printf("Tower height: %d pegs\n", summary.Height)
	// Output:
	// Completed in 7 moves
	// Tower height: 3 pegs
}
