package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	sync      key.Binding
	download  key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	sync:      key.NewBinding(key.WithKeys("s")),
	download:  key.NewBinding(key.WithKeys("d")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
