package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit      key.Binding
	NextField   key.Binding
	Blur        key.Binding
	Focus       key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	CopyDetail  key.Binding
	CopyStore   key.Binding
	Reset       key.Binding
	Bestsellers key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		NextField:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "field")),
		Blur:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "results")),
		Focus:       key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "search")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		CopyDetail:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		CopyStore:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "copy store link")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
		Bestsellers: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bestsellers")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// inputKeys is the help shown while typing a query
type inputKeys struct{ keyMap }

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Blur}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// resultKeys is the help shown while browsing results
type resultKeys struct{ keyMap }

func (k resultKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Up, k.Down, k.CopyDetail, k.CopyStore, k.Reset, k.Quit}
}

func (k resultKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Left, k.Right, k.Bestsellers, k.NextField}}
}
