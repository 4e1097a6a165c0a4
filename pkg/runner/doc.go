/*
Package runner drives the terminal animation of a solve.

It acts as the bridge between the pure pieces (domain, solver, render) and the outside
world. The runner prints the starting frame, hands the tower to the solver and, after
every move, clears the screen, writes the new frame, flushes the output and pauses for
the tower's delay.

# Key Components

  - Runner: owns the output writer, the screen and the pacing.
  - Screen: clears the display and homes the cursor before each frame.
  - Summary: the facts left over once the solve completes.

# Usage

	tower, err := domain.NewTower(6, 100*time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(
		runner.WithOutput(os.Stdout),
		runner.WithScreen(terminal.New(os.Stdout)),
	)

	summary, err := r.Run(tower)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Completed in %d moves\n", summary.Moves)
*/
package runner
