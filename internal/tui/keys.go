package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the main screen
type keyMap struct {
	Views        []key.Binding
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	Priority     key.Binding
	TaskStatus   key.Binding
	StatusFilter key.Binding
	Add          key.Binding
	AddStep      key.Binding
	ToggleStep   key.Binding
	Notes        key.Binding
	Delete       key.Binding
	Remind       key.Binding
	Due          key.Binding
	Repeat       key.Binding
	AssignMe     key.Binding
	Weather      key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	views := make([]key.Binding, 0, 5)
	for _, k := range []string{"1", "2", "3", "4", "5"} {
		views = append(views, key.NewBinding(key.WithKeys(k)))
	}
	return keyMap{
		Views:        views,
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "nav")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
		Toggle:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		Priority:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
		TaskStatus:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "status")),
		StatusFilter: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "filter")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		AddStep:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step")),
		ToggleStep:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "tick step")),
		Notes:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "notes")),
		Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Remind:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remind 1h")),
		Due:          key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "due tomorrow")),
		Repeat:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "daily")),
		AssignMe:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "assign me")),
		Weather:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "weather")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpLine lists the bindings shown in the help bar
func (k keyMap) helpLine() []key.Binding {
	return []key.Binding{
		k.Up, k.Toggle, k.Add, k.AddStep, k.ToggleStep, k.Notes, k.Priority, k.TaskStatus,
		k.StatusFilter, k.Remind, k.Due, k.Repeat, k.AssignMe, k.Delete, k.Quit,
	}
}
