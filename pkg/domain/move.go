package domain

import "fmt"

// Move describes a single disk relocation.
type Move struct {
	Disk int `json:"disk"`
	From Peg `json:"from"`
	To   Peg `json:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("disk %d: %s -> %s", m.Disk, m.From.Label(), m.To.Label())
}
