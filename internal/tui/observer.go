package tui

import "github.com/mmcdole/bookshelf/internal/domain"

// ChannelObserver adapts domain.ChangeObserver to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan<- domain.CommandResult
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan<- domain.CommandResult) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnChange sends the result to the channel (non-blocking if full).
func (o *ChannelObserver) OnChange(result domain.CommandResult) {
	select {
	case o.ch <- result:
	default: // Non-blocking if channel full
	}
}
