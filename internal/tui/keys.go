package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	Home    key.Binding
	End     key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	PrevTag key.Binding
	NextTag key.Binding

	// Circulation
	Primary key.Binding // Borrow / Return / Place Hold / Cancel Hold
	Read    key.Binding
	Listen  key.Binding
	AddTag  key.Binding
	DelTag  key.Binding
	Player  key.Binding // Restore a minimized player

	// Discover
	Search        key.Binding
	ToggleFilters key.Binding // 1-9 toggle the matching quick filter

	// General
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "L"),
			key.WithHelp("tab", "next page"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "H"),
			key.WithHelp("S-tab", "prev page"),
		),
		PrevTag: key.NewBinding(
			key.WithKeys("[", "h", "left"),
			key.WithHelp("[", "prev tag"),
		),
		NextTag: key.NewBinding(
			key.WithKeys("]", "l", "right"),
			key.WithHelp("]", "next tag"),
		),

		Primary: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "borrow/return/hold"),
		),
		Read: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "read"),
		),
		Listen: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "listen"),
		),
		AddTag: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tag"),
		),
		DelTag: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "untag"),
		),
		Player: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "show player"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleFilters: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "quick filter"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
