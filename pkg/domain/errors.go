package domain

import "errors"

// ErrEmptyPeg is returned (or panicked with) when a disk is taken from an empty peg.
var ErrEmptyPeg = errors.New("peg is empty")

// ErrIllegalMove is returned when a disk would be placed on a smaller one.
var ErrIllegalMove = errors.New("illegal move")

// ErrUnknownPeg is returned for a peg outside Left, Middle and Right.
var ErrUnknownPeg = errors.New("unknown peg")

// ErrInvalidHeight is returned when a tower height is negative or above MaxHeight.
var ErrInvalidHeight = errors.New("invalid tower height")

// ErrInvalidDelay is returned for a negative frame delay.
var ErrInvalidDelay = errors.New("invalid delay")

// ErrBrokenInvariant is returned by Tower.Validate when the disks are out of order,
// duplicated or missing.
var ErrBrokenInvariant = errors.New("tower invariant violated")
