/*
Package domain contains the state model of the disk-transfer puzzle.

It defines the three fixed pegs, the Tower that holds the disks stacked on them and
the Move value describing a single relocation. The package is kept pure and free of
I/O so that solvers, renderers and tests can share it.

# Key Entities

  - Peg: one of the three fixed positions (Left, Middle, Right).
  - Tower: the aggregate holding every disk, its height and the frame delay.
  - Move: a single disk taken from the top of one peg and placed on another.
*/
package domain
