package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/eisenhower/internal/core/task"
	"github.com/colonyops/eisenhower/internal/tui/components"
	"github.com/colonyops/eisenhower/internal/tui/components/form"
)

const detailHelp = "j/k scroll  e edit  esc close"

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.state = stateShowingHelp
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", m.keys.HelpSections())
		return m, nil

	case key.Matches(msg, m.keys.NextPanel):
		m.focus = (m.focus + 1) % panelCount
	case key.Matches(msg, m.keys.PrevPanel):
		m.focus = (m.focus + panelCount - 1) % panelCount
	case key.Matches(msg, m.keys.Quadrant1):
		m.focus = 0
	case key.Matches(msg, m.keys.Quadrant2):
		m.focus = 1
	case key.Matches(msg, m.keys.Quadrant3):
		m.focus = 2
	case key.Matches(msg, m.keys.Quadrant4):
		m.focus = 3
	case key.Matches(msg, m.keys.Archive):
		m.focus = panelArchive
	case key.Matches(msg, m.keys.Left):
		if m.focus == 1 || m.focus == 3 {
			m.focus--
		}
	case key.Matches(msg, m.keys.Right):
		if m.focus == 0 || m.focus == 2 {
			m.focus++
		}
	case key.Matches(msg, m.keys.Up):
		m.moveUp()
	case key.Matches(msg, m.keys.Down):
		m.moveDown()

	case key.Matches(msg, m.keys.Add):
		return m.openCreate()
	case key.Matches(msg, m.keys.Open):
		if m.onAddRow() {
			return m.openCreate()
		}
		return m.openDetail()
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleSelected()
	case key.Matches(msg, m.keys.Edit):
		return m.openEdit()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	}

	return m, nil
}

// moveDown advances the cursor, spilling into the panel below at the end
// of a panel: top row quadrants into bottom row, bottom row into the archive.
func (m *Model) moveDown() {
	if m.cursors[m.focus] < m.panelRows(m.focus)-1 {
		m.cursors[m.focus]++
		return
	}
	switch {
	case m.focus < 2:
		m.focus += 2
	case m.focus < panelArchive:
		m.focus = panelArchive
	}
}

func (m *Model) moveUp() {
	if m.cursors[m.focus] > 0 {
		m.cursors[m.focus]--
		return
	}
	switch {
	case m.focus == panelArchive:
		m.focus = 2
	case m.focus >= 2:
		m.focus -= 2
	}
}

func (m Model) openCreate() (tea.Model, tea.Cmd) {
	q, ok := m.quadrantFor(m.focus)
	if !ok {
		m.log.Info().Msg("add refused outside a quadrant")
		m.status = "select a quadrant to add a task"
		return m, nil
	}
	if !m.matrix.OpenCreate(q) {
		return m, nil
	}

	m.formDialog = form.NewDialog("Add New Task", "Add Task",
		form.NewTextField(fieldTitle, "What needs to be done?", ""),
		form.NewTextAreaField(fieldDescription, "Details (markdown)", ""),
	)
	return m, nil
}

func (m Model) openEdit() (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	return m.editTask(t)
}

func (m Model) editTask(t task.Task) (tea.Model, tea.Cmd) {
	if t.Completed {
		m.log.Info().Str("task_id", t.ID).Msg("edit refused for archived task")
		m.status = "archived tasks are read-only; restore to edit"
		return m, nil
	}
	if !m.matrix.OpenEdit(t) {
		return m, nil
	}

	m.formDialog = form.NewDialog("Edit Task", "Save Changes",
		form.NewTextField(fieldTitle, "What needs to be done?", t.Title),
		form.NewTextAreaField(fieldDescription, "Details (markdown)", t.Description),
	)
	return m, nil
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok || !m.matrix.OpenView(t.ID) {
		return m, nil
	}
	m.detailDialog = m.newDetailDialog(t)
	return m, nil
}

func (m Model) newDetailDialog(t task.Task) *components.DetailDialog {
	state := "Active"
	if t.Completed {
		state = "Completed"
	}
	meta := fmt.Sprintf("%s · %s", m.cfg.QuadrantLabel(t.Quadrant), state)
	return components.NewDetailDialog(t.Title, meta, t.Description, "No description", detailHelp, m.width, m.height)
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	moved, ok := m.matrix.ToggleCompletion(t)
	if !ok {
		return m, nil
	}

	if moved.Completed {
		m.status = fmt.Sprintf("Completed %q", moved.Title)
	} else {
		m.status = fmt.Sprintf("Restored %q", moved.Title)
	}
	m.checkBoard("toggle")
	m.clampCursors()
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}

	if m.cfg.TUI.ConfirmDelete {
		modal := components.NewConfirmModal("Delete Task", fmt.Sprintf("Delete %q?", t.Title))
		m.confirmModal = &modal
		m.pendingDelete = t.ID
		m.state = stateConfirming
		return m, nil
	}

	return m.deleteTask(t.ID), nil
}

func (m Model) deleteTask(id string) Model {
	t, _ := m.matrix.Board().Get(id)
	if m.matrix.Delete(id) {
		m.status = fmt.Sprintf("Deleted %q", t.Title)
	}
	m.checkBoard("delete")
	m.clampCursors()
	return m
}

// handleFormKey drives the create/edit dialog and mirrors its fields into
// the matrix surface after every key.
func (m Model) handleFormKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyCtrlC {
		return m.quit()
	}
	if m.formDialog == nil {
		m.matrix.Cancel()
		return m, nil
	}

	var cmd tea.Cmd
	m.formDialog, cmd = m.formDialog.Update(msg)

	m.matrix.SetTitle(m.formDialog.Value(fieldTitle))
	m.matrix.SetDescription(m.formDialog.Value(fieldDescription))

	switch {
	case m.formDialog.Submitted():
		_, creating := m.matrix.Draft()
		if saved, ok := m.matrix.Confirm(); ok {
			if creating {
				m.status = fmt.Sprintf("Added %q", saved.Title)
				m.cursors[m.focus] = len(m.panelTasks(m.focus)) - 1
			} else {
				m.status = fmt.Sprintf("Saved %q", saved.Title)
			}
		}
		m.formDialog = nil
		m.checkBoard("confirm")
		m.clampCursors()
		return m, nil
	case m.formDialog.Cancelled():
		m.matrix.Cancel()
		m.formDialog = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) handleDetailKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyCtrlC:
		return m.quit()
	case "esc", "q", "enter":
		m.matrix.CloseView()
		m.detailDialog = nil
	case "j", "down":
		if m.detailDialog != nil {
			m.detailDialog.ScrollDown()
		}
	case "k", "up":
		if m.detailDialog != nil {
			m.detailDialog.ScrollUp()
		}
	case "e":
		t, ok := m.matrix.Viewed()
		m.matrix.CloseView()
		m.detailDialog = nil
		if ok {
			return m.editTask(t)
		}
	}
	return m, nil
}

// checkBoard verifies board invariants after a mutation when debug logging
// is on.
func (m Model) checkBoard(op string) {
	if m.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	if err := m.matrix.Board().Check(); err != nil {
		m.log.Error().Err(err).Str("op", op).Msg("board invariant violated")
	}
}

func (m Model) handleHelpKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyCtrlC:
		return m.quit()
	case "esc", "?", "q":
		m.state = stateNormal
		m.helpDialog = nil
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyCtrlC {
		return m.quit()
	}
	if m.confirmModal == nil {
		m.state = stateNormal
		return m, nil
	}

	modal, _ := m.confirmModal.Update(msg)
	m.confirmModal = &modal

	switch {
	case modal.Confirmed():
		m = m.deleteTask(m.pendingDelete)
	case modal.Cancelled():
	default:
		return m, nil
	}

	m.state = stateNormal
	m.confirmModal = nil
	m.pendingDelete = ""
	return m, nil
}
