package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	skip       key.Binding
	reset      key.Binding
	selectTask key.Binding
	deselect   key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	selectTask: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "select task"),
	),
	deselect: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear task"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.togglePlay,
		k.skip,
		k.reset,
		k.selectTask,
		k.deselect,
		k.quit,
	}
}
