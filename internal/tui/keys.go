package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
	Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear transcript")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
}
