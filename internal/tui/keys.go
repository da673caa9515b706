package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	add       key.Binding
	complete  key.Binding
	translate key.Binding
	delete    key.Binding
	language  key.Binding
	copy      key.Binding
	reload    key.Binding
	about     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	add:       key.NewBinding(key.WithKeys("a")),
	complete:  key.NewBinding(key.WithKeys("c")),
	translate: key.NewBinding(key.WithKeys("t")),
	delete:    key.NewBinding(key.WithKeys("d")),
	language:  key.NewBinding(key.WithKeys("L")),
	copy:      key.NewBinding(key.WithKeys("y")),
	reload:    key.NewBinding(key.WithKeys("r")),
	about:     key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
