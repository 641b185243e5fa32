package cli

import "github.com/charmbracelet/bubbles/key"

type dashboardKeys struct {
	Add     key.Binding
	Prev    key.Binding
	Next    key.Binding
	Reset   key.Binding
	Test    key.Binding
	Help    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Add:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add chants")),
		Prev:    key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "previous")),
		Next:    key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset today")),
		Test:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "test notification")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
	}
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Prev, k.Next, k.Help, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Reset, k.Test},
		{k.Prev, k.Next},
		{k.Help, k.Quit},
	}
}
