// Package board is the in-memory task store behind the Eisenhower board.
//
// A Board keeps two ordered collections: active tasks and archived
// (completed) tasks. A task id lives in at most one of them, and the
// Completed flag always matches the collection holding the task. Every
// operation is total: lookups that miss are reported as a false return
// rather than an error.
package board

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/eisenhower/internal/core/task"
)

// Option configures a Board.
type Option func(*Board)

// WithIDFunc overrides the id generator used by Add.
func WithIDFunc(fn func() string) Option {
	return func(b *Board) {
		b.newID = fn
	}
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Board) {
		b.log = l
	}
}

// Counts summarizes the board contents.
type Counts struct {
	ByQuadrant map[task.Quadrant]int
	Active     int
	Archived   int
}

// Board holds the session's tasks. It is not safe for concurrent use; the
// TUI drives it from a single goroutine.
type Board struct {
	active   []task.Task
	archived []task.Task
	newID    func() string
	log      zerolog.Logger
}

// New creates an empty board.
func New(opts ...Option) *Board {
	b := &Board{
		newID: uuid.NewString,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add creates a task from the draft and appends it to the active collection.
func (b *Board) Add(d task.Draft) task.Task {
	t := task.Task{
		ID:          b.newID(),
		Title:       d.Title,
		Description: d.Description,
		Quadrant:    d.Quadrant,
		Completed:   false,
	}
	b.active = append(b.active, t)

	b.log.Debug().
		Str("op", "add").
		Str("task_id", t.ID).
		Str("quadrant", string(t.Quadrant)).
		Msg("task added")

	return t
}

// Update replaces the active task with the same id, keeping its position.
// Archived tasks are never updated. Returns false when no active task matches.
func (b *Board) Update(t task.Task) bool {
	i := indexOf(b.active, t.ID)
	if i < 0 {
		b.log.Debug().Str("op", "update").Str("task_id", t.ID).Msg("update ignored, no active task")
		return false
	}

	t.Completed = false
	b.active[i] = t

	b.log.Debug().
		Str("op", "update").
		Str("task_id", t.ID).
		Str("quadrant", string(t.Quadrant)).
		Msg("task updated")

	return true
}

// Delete removes the task from whichever collection holds it. Deleting an
// unknown id is a no-op and returns false.
func (b *Board) Delete(id string) bool {
	if i := indexOf(b.active, id); i >= 0 {
		b.active = removeAt(b.active, i)
		b.log.Debug().Str("op", "delete").Str("task_id", id).Str("from", "active").Msg("task deleted")
		return true
	}

	if i := indexOf(b.archived, id); i >= 0 {
		b.archived = removeAt(b.archived, i)
		b.log.Debug().Str("op", "delete").Str("task_id", id).Str("from", "archived").Msg("task deleted")
		return true
	}

	return false
}

// ToggleCompletion moves a task between the active and archived collections,
// flipping its Completed flag in lockstep. The direction is chosen by the
// Completed flag of t. The moved copy is appended to the end of its new
// collection and returned. When t is not in the collection its flag points
// at, nothing changes and ok is false.
func (b *Board) ToggleCompletion(t task.Task) (moved task.Task, ok bool) {
	src, dst := &b.active, &b.archived
	if t.Completed {
		src, dst = &b.archived, &b.active
	}

	i := indexOf(*src, t.ID)
	if i < 0 {
		b.log.Debug().Str("op", "toggle").Str("task_id", t.ID).Msg("toggle ignored, task not in source collection")
		return task.Task{}, false
	}

	moved = (*src)[i]
	moved.Completed = !t.Completed
	*src = removeAt(*src, i)
	*dst = append(*dst, moved)

	b.log.Debug().
		Str("op", "toggle").
		Str("task_id", moved.ID).
		Bool("completed", moved.Completed).
		Msg("task completion toggled")

	return moved, true
}

// Active returns a copy of the active collection in order.
func (b *Board) Active() []task.Task {
	return clone(b.active)
}

// Archived returns a copy of the archived collection in order.
func (b *Board) Archived() []task.Task {
	return clone(b.archived)
}

// InQuadrant returns the active tasks assigned to q, in collection order.
func (b *Board) InQuadrant(q task.Quadrant) []task.Task {
	var out []task.Task
	for _, t := range b.active {
		if t.Quadrant == q {
			out = append(out, t)
		}
	}
	return out
}

// Get looks up a task by id in either collection.
func (b *Board) Get(id string) (task.Task, bool) {
	if i := indexOf(b.active, id); i >= 0 {
		return b.active[i], true
	}
	if i := indexOf(b.archived, id); i >= 0 {
		return b.archived[i], true
	}
	return task.Task{}, false
}

// Len returns the total number of tasks on the board.
func (b *Board) Len() int {
	return len(b.active) + len(b.archived)
}

// Counts returns per-quadrant active counts and collection sizes.
func (b *Board) Counts() Counts {
	c := Counts{
		ByQuadrant: make(map[task.Quadrant]int, 4),
		Active:     len(b.active),
		Archived:   len(b.archived),
	}
	for _, info := range task.Quadrants() {
		c.ByQuadrant[info.Quadrant] = 0
	}
	for _, t := range b.active {
		c.ByQuadrant[t.Quadrant]++
	}
	return c
}

// Check verifies the board invariants and returns the first violation found.
func (b *Board) Check() error {
	seen := make(map[string]string, b.Len())

	for _, t := range b.active {
		if where, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %q appears in both %s and active", t.ID, where)
		}
		seen[t.ID] = "active"
		if t.Completed {
			return fmt.Errorf("active task %q is marked completed", t.ID)
		}
		if !t.Quadrant.IsValid() {
			return fmt.Errorf("active task %q has invalid quadrant %q", t.ID, t.Quadrant)
		}
	}

	for _, t := range b.archived {
		if where, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %q appears in both %s and archived", t.ID, where)
		}
		seen[t.ID] = "archived"
		if !t.Completed {
			return fmt.Errorf("archived task %q is not marked completed", t.ID)
		}
	}

	return nil
}

func indexOf(tasks []task.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// removeAt returns a new slice without index i; the input is left untouched
// so copies handed out earlier never observe the removal.
func removeAt(tasks []task.Task, i int) []task.Task {
	out := make([]task.Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}

func clone(tasks []task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	return out
}
