package tui

import "github.com/mmcdole/bookshelf/internal/domain"

// Message types for the TUI

// StateChangedMsg carries a mutation result from the circulation service
type StateChangedMsg struct {
	Result domain.CommandResult
}

// PlayerTickMsg advances the simulated audio playback by one second
type PlayerTickMsg struct {
	ID int // Matches Model.playerTickID; stale ticks are dropped
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	ID int
}

// ConfigSavedMsg reports the outcome of persisting settings
type ConfigSavedMsg struct {
	Err error
}
