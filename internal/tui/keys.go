package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	incr      key.Binding
	decr      key.Binding
	reset     key.Binding
	refresh   key.Binding
	copy      key.Binding
	buildInfo key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	incr:      key.NewBinding(key.WithKeys("+", "i"), key.WithHelp("+/i", "incr")),
	decr:      key.NewBinding(key.WithKeys("-", "d"), key.WithHelp("-/d", "decr")),
	reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	refresh:   key.NewBinding(key.WithKeys("f", " "), key.WithHelp("f/space", "refresh")),
	copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// helpLine renders the short help for bindings as "key desc" pairs.
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
