package matrix

import "github.com/colonyops/eisenhower/internal/core/task"

// Surface is the transient UI state layered over the board. Exactly one
// variant is active at a time: Closed, Creating, Editing or Viewing.
type Surface interface {
	isSurface()
}

// Closed means no form or detail view is open.
type Closed struct{}

// Creating holds the draft of a task being created.
type Creating struct {
	Draft task.Draft
}

// Editing holds a snapshot of the task being edited. The board entry is not
// touched until the snapshot is saved.
type Editing struct {
	Snapshot task.Task
}

// Viewing shows a read-only detail view of a single task.
type Viewing struct {
	TaskID string
}

func (Closed) isSurface()   {}
func (Creating) isSurface() {}
func (Editing) isSurface()  {}
func (Viewing) isSurface()  {}
