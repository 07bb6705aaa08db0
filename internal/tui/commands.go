package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookshelf/internal/adapter"
	"github.com/mmcdole/bookshelf/internal/domain"
)

const statusTimeout = 3 * time.Second

// Command factories

// WaitForChangeCmd blocks until the circulation service reports a mutation
func WaitForChangeCmd(ch <-chan domain.CommandResult) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-ch
		if !ok {
			return nil
		}
		return StateChangedMsg{Result: result}
	}
}

// PlayerTickCmd schedules the next playback tick
func PlayerTickCmd(id int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return PlayerTickMsg{ID: id}
	})
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

// SaveConfigCmd persists settings off the UI goroutine
func SaveConfigCmd(save func(*adapter.Config) error, cfg adapter.Config) tea.Cmd {
	return func() tea.Msg {
		if save == nil {
			return ConfigSavedMsg{}
		}
		return ConfigSavedMsg{Err: save(&cfg)}
	}
}
