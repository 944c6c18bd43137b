package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(-3))
	assert.Empty(t, Pad(0))
	assert.Equal(t, "    ", Pad(4))
}

func TestHelpDialog_View(t *testing.T) {
	h := NewHelpDialog("Keyboard Shortcuts", []HelpDialogSection{
		{Title: "Navigation", Entries: []HelpEntry{{Key: "tab", Desc: "next panel"}}},
		{Title: "Tasks", Entries: []HelpEntry{{Key: "a", Desc: "add task"}}},
	})

	view := ansi.Strip(h.View())
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Navigation")
	assert.Contains(t, view, "tab")
	assert.Contains(t, view, "next panel")
	assert.Contains(t, view, "add task")
	assert.Contains(t, view, "esc/? close")
}

func TestConfirmModal(t *testing.T) {
	tests := []struct {
		key       tea.KeyPressMsg
		confirmed bool
		cancelled bool
	}{
		{tea.KeyPressMsg{Code: 'y', Text: "y"}, true, false},
		{tea.KeyPressMsg{Code: tea.KeyEnter}, true, false},
		{tea.KeyPressMsg{Code: 'n', Text: "n"}, false, true},
		{tea.KeyPressMsg{Code: tea.KeyEscape}, false, true},
		{tea.KeyPressMsg{Code: 'q', Text: "q"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m := NewConfirmModal("Delete Task", "Delete \"Buy milk\"?")
			m, _ = m.Update(tt.key)
			assert.Equal(t, tt.confirmed, m.Confirmed())
			assert.Equal(t, tt.cancelled, m.Cancelled())
		})
	}

	view := ansi.Strip(NewConfirmModal("Delete Task", "Delete \"Buy milk\"?").View())
	assert.Contains(t, view, "Delete Task")
	assert.Contains(t, view, "Buy milk")
}

func TestDetailDialog(t *testing.T) {
	t.Run("renders markdown body", func(t *testing.T) {
		d := NewDetailDialog("Write report", "Do First", "Quarterly **numbers**", "No description", "esc close", 100, 40)
		view := ansi.Strip(d.View())
		assert.Contains(t, view, "Write report")
		assert.Contains(t, view, "Do First")
		assert.Contains(t, view, "numbers")
		assert.NotContains(t, view, "**")
	})

	t.Run("empty body shows placeholder", func(t *testing.T) {
		d := NewDetailDialog("Buy milk", "", "  ", "No description", "esc close", 100, 40)
		assert.Contains(t, ansi.Strip(d.View()), "No description")
	})

	t.Run("scrolling long body does not panic", func(t *testing.T) {
		body := ""
		for range 50 {
			body += "line\n\n"
		}
		d := NewDetailDialog("Long", "", body, "", "esc close", 80, 20)
		d.ScrollDown()
		d.ScrollDown()
		d.ScrollUp()
		assert.Contains(t, ansi.Strip(d.View()), "%")
	})
}

func TestOverlay_ContainsModal(t *testing.T) {
	bg := "....................\n....................\n...................."
	out := ansi.Strip(Overlay(bg, "XX", 20, 3))
	assert.Contains(t, out, "XX")
}
