package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	lock      key.Binding
	sync      key.Binding
	copy      key.Binding
	emergency key.Binding
	account   key.Binding
	register  key.Binding
	logout    key.Binding
	version   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	lock:      key.NewBinding(key.WithKeys("l")),
	sync:      key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("c")),
	emergency: key.NewBinding(key.WithKeys("e")),
	account:   key.NewBinding(key.WithKeys("a")),
	register:  key.NewBinding(key.WithKeys("ctrl+r")),
	logout:    key.NewBinding(key.WithKeys("x")),
	version:   key.NewBinding(key.WithKeys("v")),
}
