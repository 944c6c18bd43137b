// Package tui implements the interactive Eisenhower board.
package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/eisenhower/internal/core/config"
	"github.com/colonyops/eisenhower/internal/core/logging"
	"github.com/colonyops/eisenhower/internal/core/matrix"
	"github.com/colonyops/eisenhower/internal/core/task"
	"github.com/colonyops/eisenhower/internal/tui/components"
	"github.com/colonyops/eisenhower/internal/tui/components/form"
)

// UIState tracks overlays that live outside the matrix surface.
type UIState int

const (
	stateNormal UIState = iota
	stateShowingHelp
	stateConfirming
)

// Panel indexes. Quadrant panels follow task.Quadrants order.
const (
	panelArchive = 4
	panelCount   = 5
)

// Form field labels, also used to read values back out of the dialog.
const (
	fieldTitle       = "Title"
	fieldDescription = "Description"
)

const keyCtrlC = "ctrl+c"

// Model is the main Bubble Tea model for the board.
type Model struct {
	cfg       *config.Config
	matrix    *matrix.Matrix
	keys      KeyMap
	quadrants []task.QuadrantInfo
	log       zerolog.Logger

	state   UIState
	focus   int
	cursors [panelCount]int

	width  int
	height int
	status string

	formDialog    *form.Dialog
	detailDialog  *components.DetailDialog
	helpDialog    *components.HelpDialog
	confirmModal  *components.ConfirmModal
	pendingDelete string

	quitting bool
}

// New creates a board model over mx.
func New(cfg *config.Config, mx *matrix.Matrix) Model {
	quadrants := cfg.QuadrantInfos()
	return Model{
		cfg:       cfg,
		matrix:    mx,
		keys:      DefaultKeyMap().WithQuadrantLabels(quadrants),
		quadrants: quadrants,
		log:       logging.Component("tui"),
		width:     100,
		height:    40,
	}
}

// Matrix exposes the underlying board and surface state.
func (m Model) Matrix() *matrix.Matrix { return m.matrix }

// Focus returns the focused panel index, 0-3 for quadrants and 4 for the archive.
func (m Model) Focus() int { return m.focus }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Non-key messages (cursor blink and friends) belong to the open form.
	if m.formDialog != nil {
		var cmd tea.Cmd
		m.formDialog, cmd = m.formDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes key presses to the active overlay before the board.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch m.matrix.Surface().(type) {
	case matrix.Creating, matrix.Editing:
		return m.handleFormKey(msg, keyStr)
	case matrix.Viewing:
		return m.handleDetailKey(keyStr)
	}

	switch m.state {
	case stateShowingHelp:
		return m.handleHelpKey(keyStr)
	case stateConfirming:
		return m.handleConfirmKey(msg, keyStr)
	}

	return m.handleNormalKey(msg)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.log.Debug().Msg("quit")
	return m, tea.Quit
}

// quadrantFor returns the quadrant drawn in panel p.
func (m Model) quadrantFor(p int) (task.Quadrant, bool) {
	if p < 0 || p >= len(m.quadrants) {
		return "", false
	}
	return m.quadrants[p].Quadrant, true
}

// panelTasks returns the tasks listed in panel p.
func (m Model) panelTasks(p int) []task.Task {
	if p == panelArchive {
		return m.matrix.Board().Archived()
	}
	q, ok := m.quadrantFor(p)
	if !ok {
		return nil
	}
	return m.matrix.Board().InQuadrant(q)
}

// panelRows is the number of selectable rows in panel p. Quadrant panels
// end with the add row.
func (m Model) panelRows(p int) int {
	n := len(m.panelTasks(p))
	if p != panelArchive {
		n++
	}
	return n
}

// selected returns the task under the cursor in the focused panel. ok is
// false on the add row or an empty archive.
func (m Model) selected() (task.Task, bool) {
	tasks := m.panelTasks(m.focus)
	c := m.cursors[m.focus]
	if c < 0 || c >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[c], true
}

// onAddRow reports whether the cursor sits on a quadrant's add row.
func (m Model) onAddRow() bool {
	if m.focus == panelArchive {
		return false
	}
	return m.cursors[m.focus] == len(m.panelTasks(m.focus))
}

// clampCursors keeps every cursor inside its panel after the board changes.
func (m *Model) clampCursors() {
	for p := range m.cursors {
		rows := m.panelRows(p)
		m.cursors[p] = max(min(m.cursors[p], rows-1), 0)
	}
}
