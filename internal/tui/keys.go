package tui

import "github.com/charmbracelet/bubbles/key"

// Letters go to the focused input, so every command sits on a control key.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	save      key.Binding
	reload    key.Binding
	addRow    key.Binding
	deleteRow key.Binding
	nextName  key.Binding
	prevName  key.Binding
	upload    key.Binding
	copy      key.Binding
	info      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "shift+tab")),
	down:      key.NewBinding(key.WithKeys("down", "tab")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	reload:    key.NewBinding(key.WithKeys("ctrl+r")),
	addRow:    key.NewBinding(key.WithKeys("ctrl+a")),
	deleteRow: key.NewBinding(key.WithKeys("ctrl+d")),
	nextName:  key.NewBinding(key.WithKeys("ctrl+f", "ctrl+right")),
	prevName:  key.NewBinding(key.WithKeys("ctrl+b", "ctrl+left")),
	upload:    key.NewBinding(key.WithKeys("ctrl+u")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	info:      key.NewBinding(key.WithKeys("f1")),
}
