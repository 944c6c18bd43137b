// Package matrix couples the task board with the creation and editing
// surfaces that stage changes before they reach the board.
package matrix

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/eisenhower/internal/core/board"
	"github.com/colonyops/eisenhower/internal/core/task"
)

// Matrix is the board plus its single transient surface.
type Matrix struct {
	board   *board.Board
	surface Surface
	log     zerolog.Logger
}

// New wraps b with a closed surface.
func New(b *board.Board, log zerolog.Logger) *Matrix {
	return &Matrix{
		board:   b,
		surface: Closed{},
		log:     log,
	}
}

// Board returns the underlying task store.
func (m *Matrix) Board() *board.Board { return m.board }

// Surface returns the current surface variant.
func (m *Matrix) Surface() Surface { return m.surface }

// IsClosed reports whether no surface is open.
func (m *Matrix) IsClosed() bool {
	_, ok := m.surface.(Closed)
	return ok
}

// Draft returns the creation draft when the creation surface is open.
func (m *Matrix) Draft() (task.Draft, bool) {
	c, ok := m.surface.(Creating)
	return c.Draft, ok
}

// Snapshot returns the editing snapshot when the editing surface is open.
func (m *Matrix) Snapshot() (task.Task, bool) {
	e, ok := m.surface.(Editing)
	return e.Snapshot, ok
}

// Viewed returns the task shown by the detail surface. ok is false when the
// detail surface is not open or its task has since been removed.
func (m *Matrix) Viewed() (task.Task, bool) {
	v, open := m.surface.(Viewing)
	if !open {
		return task.Task{}, false
	}
	return m.board.Get(v.TaskID)
}

// OpenCreate opens the creation surface with an empty draft for q.
// It does nothing unless the surface is closed.
func (m *Matrix) OpenCreate(q task.Quadrant) bool {
	if !m.IsClosed() || !q.IsValid() {
		return false
	}
	m.surface = Creating{Draft: task.NewDraft(q)}
	m.log.Debug().Str("surface", "creating").Str("quadrant", string(q)).Msg("surface opened")
	return true
}

// OpenEdit opens the editing surface with a copy of t.
// It does nothing unless the surface is closed.
func (m *Matrix) OpenEdit(t task.Task) bool {
	if !m.IsClosed() {
		return false
	}
	m.surface = Editing{Snapshot: t}
	m.log.Debug().Str("surface", "editing").Str("task_id", t.ID).Msg("surface opened")
	return true
}

// OpenView opens the detail surface for the task with the given id.
func (m *Matrix) OpenView(id string) bool {
	if !m.IsClosed() {
		return false
	}
	if _, ok := m.board.Get(id); !ok {
		return false
	}
	m.surface = Viewing{TaskID: id}
	return true
}

// CloseView closes the detail surface. Other surfaces are left alone.
func (m *Matrix) CloseView() {
	if _, ok := m.surface.(Viewing); ok {
		m.surface = Closed{}
	}
}

// SetTitle sets the title of the open draft or snapshot.
func (m *Matrix) SetTitle(title string) {
	switch s := m.surface.(type) {
	case Creating:
		s.Draft.Title = title
		m.surface = s
	case Editing:
		s.Snapshot.Title = title
		m.surface = s
	}
}

// SetDescription sets the description of the open draft or snapshot.
func (m *Matrix) SetDescription(desc string) {
	switch s := m.surface.(type) {
	case Creating:
		s.Draft.Description = desc
		m.surface = s
	case Editing:
		s.Snapshot.Description = desc
		m.surface = s
	}
}

// Confirm commits the open surface. Creating adds the draft to the board,
// Editing saves the snapshot. Both close the surface, so the next creation
// starts from an empty draft. Other surfaces are left alone. The returned
// task is the one written to the board; ok is false when nothing was written.
func (m *Matrix) Confirm() (task.Task, bool) {
	switch s := m.surface.(type) {
	case Creating:
		created := m.board.Add(s.Draft)
		m.surface = Closed{}
		return created, true
	case Editing:
		m.surface = Closed{}
		if !m.board.Update(s.Snapshot) {
			return task.Task{}, false
		}
		return s.Snapshot, true
	}
	return task.Task{}, false
}

// Cancel closes any open surface without touching the board.
func (m *Matrix) Cancel() {
	if m.IsClosed() {
		return
	}
	m.log.Debug().Msg("surface cancelled")
	m.surface = Closed{}
}

// ToggleCompletion moves t between the active and archived collections.
func (m *Matrix) ToggleCompletion(t task.Task) (task.Task, bool) {
	return m.board.ToggleCompletion(t)
}

// Delete removes the task with id from the board. An open detail view of
// that task is closed.
func (m *Matrix) Delete(id string) bool {
	if v, ok := m.surface.(Viewing); ok && v.TaskID == id {
		m.surface = Closed{}
	}
	return m.board.Delete(id)
}
