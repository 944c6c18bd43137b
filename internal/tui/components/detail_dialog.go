package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/eisenhower/internal/core/styles"
)

const (
	detailModalMaxHeight = 24
	detailModalMargin    = 4
	detailModalChrome    = 8 // title + meta + divider + help + padding
	detailModalMinWidth  = 40
	detailModalMaxWidth  = 80
)

// DetailDialog shows a read-only view of one item with a markdown body in a
// scrollable viewport.
type DetailDialog struct {
	title    string
	meta     string
	helpText string
	width    int
	viewport viewport.Model
}

// NewDetailDialog creates a detail dialog sized to fit a width x height screen.
// body is rendered as markdown; empty bodies show placeholder.
func NewDetailDialog(title, meta, body, placeholder, helpText string, width, height int) *DetailDialog {
	modalWidth := detailWidth(width)
	contentHeight := max(min(height-detailModalMargin, detailModalMaxHeight)-detailModalChrome, 3)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-4),
		viewport.WithHeight(contentHeight),
	)

	if strings.TrimSpace(body) == "" {
		vp.SetContent(styles.TextMutedStyle.Render(placeholder))
	} else {
		vp.SetContent(RenderMarkdown(body, modalWidth-4))
	}

	return &DetailDialog{
		title:    title,
		meta:     meta,
		helpText: helpText,
		width:    modalWidth,
		viewport: vp,
	}
}

func detailWidth(screen int) int {
	w := min(max(int(float64(screen)*0.6), detailModalMinWidth), detailModalMaxWidth)
	if screen > 0 {
		w = min(w, screen-detailModalMargin)
	}
	return max(w, 20)
}

// ScrollUp scrolls the viewport up.
func (d *DetailDialog) ScrollUp() {
	d.viewport.ScrollUp(1)
}

// ScrollDown scrolls the viewport down.
func (d *DetailDialog) ScrollDown() {
	d.viewport.ScrollDown(1)
}

// View renders the dialog box.
func (d *DetailDialog) View() string {
	scrollInfo := ""
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.TextMutedStyle.Render(strings.Repeat("─", max(d.width-6, 1)))
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(d.title+scrollInfo),
		d.meta,
		divider,
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.helpText),
	)

	return styles.ModalStyle.Width(d.width).Render(content)
}

// Overlay renders the dialog centered over the provided background.
func (d *DetailDialog) Overlay(background string, width, height int) string {
	return Overlay(background, d.View(), width, height)
}

// RenderMarkdown renders md with the active theme's glamour style, falling
// back to the raw text when rendering fails.
func RenderMarkdown(md string, width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(max(width, 10)),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
