// Package keymap defines keybindings for the trip browser.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the trip browser.
type KeyMap struct {
	// Quit exits the browser.
	Quit key.Binding

	// Help toggles the full help.
	Help key.Binding

	// NextPage shows the next window of rows.
	NextPage key.Binding

	// FirstPage rewinds to the first window.
	FirstPage key.Binding

	// Up moves the row cursor up.
	Up key.Binding

	// Down moves the row cursor down.
	Down key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", " ", "right", "l"),
			key.WithHelp("n/space", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Quit, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextPage, k.FirstPage},
		{k.Help, k.Quit},
	}
}
