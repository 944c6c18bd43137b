package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/eisenhower/internal/core/task"
	"github.com/colonyops/eisenhower/internal/tui/components"
)

// KeyMap holds the board's key bindings.
type KeyMap struct {
	NextPanel key.Binding
	PrevPanel key.Binding
	Quadrant1 key.Binding
	Quadrant2 key.Binding
	Quadrant3 key.Binding
	Quadrant4 key.Binding
	Archive   key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding

	Add    key.Binding
	Open   key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Delete key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevPanel: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous panel")),
		Quadrant1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "urgent & important")),
		Quadrant2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "important & not urgent")),
		Quadrant3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "urgent & not important")),
		Quadrant4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "not urgent & not important")),
		Archive:   key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "archive")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "panel left")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "panel right")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),

		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open / add")),
		Toggle: key.NewBinding(key.WithKeys("space", "x"), key.WithHelp("space/x", "toggle complete")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// WithQuadrantLabels points the help text of the 1-4 bindings at the
// configured quadrant labels.
func (k KeyMap) WithQuadrantLabels(infos []task.QuadrantInfo) KeyMap {
	bindings := []*key.Binding{&k.Quadrant1, &k.Quadrant2, &k.Quadrant3, &k.Quadrant4}
	for i, info := range infos {
		if i >= len(bindings) {
			break
		}
		b := bindings[i]
		b.SetHelp(b.Help().Key, strings.ToLower(info.Label))
	}
	return k
}

// FooterBindings are the hints shown under the board.
func (k KeyMap) FooterBindings() []key.Binding {
	return []key.Binding{k.NextPanel, k.Add, k.Open, k.Toggle, k.Edit, k.Delete, k.Help, k.Quit}
}

// HelpSections groups the bindings for the help dialog.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	section := func(title string, bindings ...key.Binding) components.HelpDialogSection {
		s := components.HelpDialogSection{Title: title}
		for _, b := range bindings {
			h := b.Help()
			s.Entries = append(s.Entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
		}
		return s
	}

	return []components.HelpDialogSection{
		section("Navigation",
			k.NextPanel, k.PrevPanel, k.Left, k.Right, k.Up, k.Down,
			k.Quadrant1, k.Quadrant2, k.Quadrant3, k.Quadrant4, k.Archive),
		section("Tasks", k.Add, k.Open, k.Toggle, k.Edit, k.Delete),
		{
			Title: "Forms",
			Entries: []components.HelpEntry{
				{Key: "tab", Desc: "next field or button"},
				{Key: "shift+tab", Desc: "previous field or button"},
				{Key: "enter", Desc: "press focused button"},
				{Key: "ctrl+s", Desc: "confirm"},
				{Key: "esc", Desc: "cancel"},
			},
		},
		section("General", k.Help, k.Quit),
	}
}
