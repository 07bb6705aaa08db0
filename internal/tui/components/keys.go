package components

import "github.com/charmbracelet/bubbles/key"

// ReaderKeyMap defines key bindings for the reader modal
type ReaderKeyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	Close    key.Binding
}

// DefaultReaderKeyMap returns the default reader key bindings
func DefaultReaderKeyMap() ReaderKeyMap {
	return ReaderKeyMap{
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", " ", "pgdown"),
			key.WithHelp("l/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "pgup"),
			key.WithHelp("h/←", "previous page"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close"),
		),
	}
}

// PlayerKeyMap defines key bindings for the audio player modal
type PlayerKeyMap struct {
	PlayPause key.Binding
	Back      key.Binding
	Forward   key.Binding
	Minimize  key.Binding
	Close     key.Binding
}

// DefaultPlayerKeyMap returns the default audio player key bindings
func DefaultPlayerKeyMap() PlayerKeyMap {
	return PlayerKeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "skip back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "skip forward"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "stop"),
		),
	}
}

// TagInputKeyMap defines key bindings for the tag input modal
type TagInputKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Enter    key.Binding
	Escape   key.Binding
}

// DefaultTagInputKeyMap returns the default tag input key bindings
func DefaultTagInputKeyMap() TagInputKeyMap {
	return TagInputKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add tag"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Package-level key map instances
var (
	ReaderKeys   = DefaultReaderKeyMap()
	PlayerKeys   = DefaultPlayerKeyMap()
	TagInputKeys = DefaultTagInputKeyMap()
)
