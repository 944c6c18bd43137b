package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eisenhower/internal/core/styles"
)

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields. Focus moves through the fields
// and then the Cancel and confirm buttons, wrapping at either end.
type Dialog struct {
	fields       []Field
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
	ConfirmLabel string
}

// NewDialog creates a form dialog with the given fields.
// The first field is focused automatically.
func NewDialog(title, confirmLabel string, fields ...Field) *Dialog {
	d := &Dialog{
		fields:       fields,
		Title:        title,
		ConfirmLabel: confirmLabel,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.moveFocus(1)
	case "shift+tab":
		return d.moveFocus(-1)
	case "ctrl+s":
		d.submitted = true
		return d, nil
	case "enter":
		switch {
		case d.focusedField == d.cancelIndex():
			d.cancelled = true
			return d, nil
		case d.focusedField == d.confirmIndex():
			d.submitted = true
			return d, nil
		case d.isTextAreaFocused():
			// Let textarea handle enter for newline insertion
			return d.updateFocusedField(msg)
		}
		return d.moveFocus(1)
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically followed by the action buttons.
func (d *Dialog) View() string {
	var parts []string
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		d.buttonStyle(d.cancelIndex()).Render("Cancel"),
		"  ",
		d.buttonStyle(d.confirmIndex()).Render(d.ConfirmLabel),
	)
	parts = append(parts, "", buttons)

	help := styles.ModalHelpStyle.Render("tab: next  shift+tab: prev  enter: press button  ctrl+s: " + d.ConfirmLabel + "  esc: cancel")
	parts = append(parts, help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Value returns the current value of the field with the given label.
func (d *Dialog) Value(label string) string {
	for _, f := range d.fields {
		if f.Label() == label {
			return f.Value()
		}
	}
	return ""
}

// Focused returns the index of the focused field. Values at or past the
// field count mean a button has focus.
func (d *Dialog) Focused() int { return d.focusedField }

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

func (d *Dialog) cancelIndex() int  { return len(d.fields) }
func (d *Dialog) confirmIndex() int { return len(d.fields) + 1 }

// onButton reports whether focus sits on one of the buttons.
func (d *Dialog) onButton() bool { return d.focusedField >= len(d.fields) }

func (d *Dialog) buttonStyle(idx int) lipgloss.Style {
	if d.focusedField == idx {
		return styles.ModalButtonSelectedStyle
	}
	return styles.ModalButtonStyle
}

// moveFocus steps focus by delta over fields and buttons, wrapping around.
func (d *Dialog) moveFocus(delta int) (*Dialog, tea.Cmd) {
	stops := len(d.fields) + 2
	if !d.onButton() {
		d.fields[d.focusedField].Blur()
	}

	d.focusedField = (d.focusedField + delta + stops) % stops
	if d.onButton() {
		return d, nil
	}
	return d, d.fields[d.focusedField].Focus()
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if d.onButton() {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isTextAreaFocused() bool {
	if d.onButton() {
		return false
	}
	_, ok := d.fields[d.focusedField].(*TextAreaField)
	return ok
}
