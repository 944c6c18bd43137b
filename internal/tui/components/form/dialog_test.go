package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func typeText(d *Dialog, s string) {
	for _, r := range s {
		d.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestDialog(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		f1 := NewTextField("Title", "", "")
		f2 := NewTextAreaField("Description", "", "")
		d := NewDialog("Add", "Add Task", f1, f2)

		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
		assert.Equal(t, 0, d.Focused())
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
	})

	t.Run("empty dialog", func(t *testing.T) {
		d := NewDialog("Empty", "OK")
		d.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		assert.False(t, d.Submitted())
		assert.Empty(t, d.Value("Title"))

		d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		assert.True(t, d.Submitted())
	})

	t.Run("tab cycles and shift+tab retreats", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", "OK", f1, f2)

		d.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		assert.False(t, f1.Focused())
		assert.True(t, f2.Focused())

		d.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())

		// Wraps backwards onto the confirm button.
		d.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
		assert.False(t, f1.Focused())
		assert.Equal(t, 3, d.Focused())
		assert.False(t, d.Submitted())
	})

	t.Run("tab never submits and wraps to the first field", func(t *testing.T) {
		f1 := NewTextField("Title", "", "")
		f2 := NewTextAreaField("Description", "", "")
		d := NewDialog("Test", "OK", f1, f2)

		// Title -> Description -> Cancel -> OK -> Title
		for range 4 {
			d.Update(tea.KeyPressMsg{Code: tea.KeyTab})
			assert.False(t, d.Submitted())
			assert.False(t, d.Cancelled())
		}
		assert.Equal(t, 0, d.Focused())
		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
	})

	t.Run("enter on buttons", func(t *testing.T) {
		tests := []struct {
			name      string
			tabs      int
			submitted bool
			cancelled bool
		}{
			{name: "cancel", tabs: 2, cancelled: true},
			{name: "confirm", tabs: 3, submitted: true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := NewDialog("Test", "OK", NewTextField("Title", "", ""), NewTextAreaField("Description", "", ""))
				for range tt.tabs {
					d.Update(tea.KeyPressMsg{Code: tea.KeyTab})
				}
				d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

				assert.Equal(t, tt.submitted, d.Submitted())
				assert.Equal(t, tt.cancelled, d.Cancelled())
			})
		}
	})

	t.Run("typing on a button is ignored", func(t *testing.T) {
		d := NewDialog("Test", "OK", NewTextField("Title", "", "keep"))
		d.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		typeText(d, "xyz")

		assert.Equal(t, "keep", d.Value("Title"))
		assert.False(t, d.Submitted())
	})

	t.Run("enter on text field advances", func(t *testing.T) {
		f1 := NewTextField("Title", "", "")
		f2 := NewTextAreaField("Description", "", "")
		d := NewDialog("Test", "OK", f1, f2)

		d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		assert.True(t, f2.Focused())
		assert.False(t, d.Submitted())
	})

	t.Run("enter in textarea inserts newline", func(t *testing.T) {
		f2 := NewTextAreaField("Description", "", "")
		d := NewDialog("Test", "OK", NewTextField("Title", "", ""), f2)
		d.Update(tea.KeyPressMsg{Code: tea.KeyTab})

		typeText(d, "one")
		d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		typeText(d, "two")

		assert.False(t, d.Submitted())
		assert.Equal(t, "one\ntwo", d.Value("Description"))
	})

	t.Run("ctrl+s submits from any field", func(t *testing.T) {
		d := NewDialog("Test", "OK", NewTextField("Title", "", ""), NewTextAreaField("Description", "", ""))
		d.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
		assert.True(t, d.Submitted())
	})

	t.Run("esc cancels", func(t *testing.T) {
		d := NewDialog("Test", "OK", NewTextField("Title", "", ""))
		d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
		assert.True(t, d.Cancelled())
		assert.False(t, d.Submitted())
	})

	t.Run("typing reaches focused field only", func(t *testing.T) {
		d := NewDialog("Test", "OK", NewTextField("Title", "", ""), NewTextAreaField("Description", "", ""))
		typeText(d, "Write report")

		assert.Equal(t, "Write report", d.Value("Title"))
		assert.Empty(t, d.Value("Description"))
		assert.Empty(t, d.Value("Missing"))
	})

	t.Run("view shows fields and buttons", func(t *testing.T) {
		d := NewDialog("Edit Task", "Save Changes", NewTextField("Title", "", "Buy milk"))
		view := ansi.Strip(d.View())

		assert.Contains(t, view, "Title")
		assert.Contains(t, view, "Buy milk")
		assert.Contains(t, view, "Cancel")
		assert.Contains(t, view, "Save Changes")
	})
}
