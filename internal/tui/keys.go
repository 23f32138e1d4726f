package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Queue    key.Binding
	Back     key.Binding
	Rate     key.Binding
	Flag     key.Binding
	Approve  key.Binding
	Message  key.Binding
	Comment  key.Binding
	Submit   key.Binding
	CopyLink key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "previous")),
		Next:     key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "next")),
		Queue:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "open queue")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Rate:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "rate")),
		Flag:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle flag")),
		Approve:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
		Message:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit message")),
		Comment:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "edit comment")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		CopyLink: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy video link")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
