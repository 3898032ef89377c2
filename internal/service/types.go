package service

import "time"

// Undo describes an open undo window.
type Undo struct {
	Seq       uint64
	TaskID    int
	Name      string    // display name of the deleted task
	OfferedAt time.Time // when the window opened
}
