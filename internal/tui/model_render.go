package tui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/eisenhower/internal/core/styles"
	"github.com/colonyops/eisenhower/internal/core/task"
	"github.com/colonyops/eisenhower/internal/tui/components"
)

const (
	headerHeight     = 1
	footerHeight     = 2
	panelChrome      = 3 // border + title
	panelHPad        = 4 // border + padding
	archiveMaxRows   = 4
	minPanelInner    = 12
	minPanelBodyRows = 1
)

// View renders the board and at most one overlay.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderGrid(),
		m.renderArchive(),
		m.renderFooter(),
	)

	switch {
	case m.formDialog != nil:
		modal := styles.FormModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.ModalTitleStyle.Render(m.formDialog.Title),
			"",
			m.formDialog.View(),
		))
		content = components.Overlay(content, modal, m.width, m.height)
	case m.detailDialog != nil:
		content = m.detailDialog.Overlay(content, m.width, m.height)
	case m.state == stateShowingHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(content, m.width, m.height)
	case m.state == stateConfirming && m.confirmModal != nil:
		content = m.confirmModal.Overlay(content, m.width, m.height)
	}

	return content
}

func (m Model) renderHeader() string {
	counts := m.matrix.Board().Counts()

	parts := make([]string, 0, len(m.quadrants)+1)
	for i, info := range m.quadrants {
		accent := styles.AccentColor(info.Accent)
		parts = append(parts, lipgloss.NewStyle().Foreground(accent).
			Render(fmt.Sprintf("Q%d %d", i+1, counts.ByQuadrant[info.Quadrant])))
	}
	parts = append(parts, styles.TextMutedStyle.Render(fmt.Sprintf("archived %d", counts.Archived)))

	title := styles.HeaderStyle.Render("Eisenhower Matrix")
	return title + "  " + strings.Join(parts, styles.TextMutedStyle.Render(" · "))
}

func (m Model) renderFooter() string {
	status := ""
	if m.status != "" {
		status = styles.StatusStyle.Render(m.status)
	}

	hints := make([]string, 0, 8)
	for _, b := range m.keys.FooterBindings() {
		hints = append(hints, formatHint(b))
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, strings.Join(hints, "  "))
}

func formatHint(b key.Binding) string {
	h := b.Help()
	return styles.TextPrimaryStyle.Render(h.Key) + " " + styles.TextMutedStyle.Render(h.Desc)
}

// layout returns the inner panel width and the body heights of the grid
// panels and the archive panel for the current window size.
func (m Model) layout() (innerWidth, gridBody, archiveBody int) {
	innerWidth = max(m.width/2-panelHPad, minPanelInner)

	archiveBody = min(max(len(m.matrix.Board().Archived()), 1), archiveMaxRows)
	available := m.height - headerHeight - footerHeight - (archiveBody + panelChrome)
	gridBody = max(available/2-panelChrome, minPanelBodyRows)
	return innerWidth, gridBody, archiveBody
}

func (m Model) renderGrid() string {
	innerWidth, bodyRows, _ := m.layout()

	panels := make([]string, len(m.quadrants))
	for i, info := range m.quadrants {
		title := fmt.Sprintf("%d %s", i+1, info.Label)
		rows := m.quadrantRows(i, info, innerWidth)
		panels[i] = renderPanel(title, styles.AccentColor(info.Accent), m.focus == i, rows, m.cursors[i], innerWidth, bodyRows)
	}

	var gridRows []string
	for i := 0; i < len(panels); i += 2 {
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, panels[i:min(i+2, len(panels))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, gridRows...)
}

func (m Model) renderArchive() string {
	innerWidth, _, bodyRows := m.layout()
	// The archive spans both grid columns.
	innerWidth = innerWidth*2 + panelHPad

	archived := m.matrix.Board().Archived()
	title := fmt.Sprintf("5 %s Archive (%d)", styles.IconArchive, len(archived))
	focused := m.focus == panelArchive

	var rows []string
	cursor := -1
	if len(archived) == 0 {
		rows = []string{styles.TextMutedStyle.Render("No archived tasks")}
	} else {
		cursor = m.cursors[panelArchive]
		for i, t := range archived {
			rows = append(rows, m.renderTaskRow(t, focused && i == cursor, innerWidth))
		}
	}

	return renderPanel(title, styles.ColorSecondary, focused, rows, cursor, innerWidth, bodyRows)
}

// quadrantRows renders the task rows of quadrant panel p followed by its add row.
func (m Model) quadrantRows(p int, info task.QuadrantInfo, width int) []string {
	focused := m.focus == p
	cursor := m.cursors[p]
	tasks := m.matrix.Board().InQuadrant(info.Quadrant)

	rows := make([]string, 0, len(tasks)+1)
	for i, t := range tasks {
		rows = append(rows, m.renderTaskRow(t, focused && i == cursor, width))
	}

	addSelected := focused && cursor == len(tasks)
	addLabel := styles.IconPlus + " Add Task"
	if addSelected {
		rows = append(rows, styles.TextPrimaryStyle.Render(styles.IconCursor)+" "+styles.SelectedRowStyle.Render(addLabel))
	} else {
		rows = append(rows, "  "+styles.AddRowStyle.Render(addLabel))
	}
	return rows
}

// renderTaskRow draws one task: cursor, checkbox, title, first line of the
// description, and the edit/delete affordances on the selected row.
func (m Model) renderTaskRow(t task.Task, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = styles.TextPrimaryStyle.Render(styles.IconCursor) + " "
	}

	check := "[" + styles.IconUnchecked + "]"
	if t.Completed {
		check = styles.TextSuccessStyle.Render("[" + styles.IconCheck + "]")
	}

	titleStyle := styles.TextForegroundStyle
	switch {
	case t.Completed:
		titleStyle = styles.CompletedTaskStyle
	case selected:
		titleStyle = styles.SelectedRowStyle
	}
	title := t.Title
	if title == "" {
		title = "(untitled)"
	}

	left := cursor + check + " " + titleStyle.Render(title)
	if desc := firstLine(t.Description); desc != "" && m.cfg.DescriptionsVisible() {
		left += "  " + styles.TextMutedStyle.Render(desc)
	}

	hints := ""
	if selected {
		editStyle := styles.TextPrimaryStyle
		if t.Completed {
			editStyle = styles.TextMutedStyle
		}
		hints = " " + editStyle.Render("e "+styles.IconEdit) + " " + styles.TextErrorStyle.Render("d "+styles.IconTrash)
	}

	leftWidth := max(width-lipgloss.Width(hints), 1)
	left = ansi.Truncate(left, leftWidth, "…")
	return left + components.Pad(leftWidth-lipgloss.Width(left)) + hints
}

// renderPanel draws a bordered panel with a title and a window of rows that
// keeps cursor in view. Every quadrant and the archive go through here.
func renderPanel(title string, accent color.Color, focused bool, rows []string, cursor, width, bodyRows int) string {
	start := 0
	if cursor >= bodyRows {
		start = cursor - bodyRows + 1
	}
	end := min(start+bodyRows, len(rows))

	lines := make([]string, 0, bodyRows+1)
	lines = append(lines, fitLine(styles.PanelTitleStyle(accent).Render(title), width))
	for _, row := range rows[start:end] {
		lines = append(lines, fitLine(row, width))
	}
	for len(lines) < bodyRows+1 {
		lines = append(lines, components.Pad(width))
	}

	return styles.PanelStyle(accent, focused).Render(strings.Join(lines, "\n"))
}

// fitLine truncates or pads s to exactly width cells.
func fitLine(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	return s + components.Pad(width-lipgloss.Width(s))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
