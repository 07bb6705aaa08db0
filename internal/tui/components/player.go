package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// PlayerEvent reports what a key press did to the player
type PlayerEvent int

const (
	PlayerNoop PlayerEvent = iota
	PlayerStarted
	PlayerPaused
	PlayerClosed
)

// Player is the simulated audiobook player modal
type Player struct {
	visible   bool
	minimized bool
	playing   bool
	book      domain.Book
	position  time.Duration
	duration  time.Duration
	skip      time.Duration
	bar       progress.Model
}

// NewPlayer creates a hidden player
func NewPlayer() Player {
	return Player{
		skip: 15 * time.Second,
		bar:  progress.New(progress.WithGradient(string(styles.ShelfBrown), string(styles.LibraryGold))),
	}
}

// Show loads book, paused at the start
func (p *Player) Show(book domain.Book, skipSeconds int) {
	p.visible = true
	p.minimized = false
	p.playing = false
	p.book = book
	p.position = 0
	p.duration = book.AudioDuration()
	if skipSeconds > 0 {
		p.skip = time.Duration(skipSeconds) * time.Second
	}
}

// Hide stops playback and closes the player
func (p *Player) Hide() {
	p.visible = false
	p.playing = false
}

// IsVisible returns whether the player is open
func (p Player) IsVisible() bool {
	return p.visible
}

// IsMinimized returns whether the player is collapsed to the status line
func (p Player) IsMinimized() bool {
	return p.minimized
}

// IsPlaying returns whether playback is running
func (p Player) IsPlaying() bool {
	return p.playing
}

// Book returns the loaded book
func (p Player) Book() domain.Book {
	return p.book
}

// Position returns the current playback position
func (p Player) Position() time.Duration {
	return p.position
}

// Duration returns the total length
func (p Player) Duration() time.Duration {
	return p.duration
}

// TogglePlay starts or pauses playback. Playback never starts at the end.
func (p *Player) TogglePlay() {
	if p.playing {
		p.playing = false
		return
	}
	if p.duration > 0 && p.position >= p.duration {
		return
	}
	p.playing = true
}

// ToggleMinimize collapses or expands the player
func (p *Player) ToggleMinimize() {
	p.minimized = !p.minimized
}

// Skip moves the position by the configured skip, clamped to [0, duration]
func (p *Player) Skip(forward bool) {
	if forward {
		p.seek(p.position + p.skip)
	} else {
		p.seek(p.position - p.skip)
	}
}

// Tick advances one second of playback and stops at the end
func (p *Player) Tick() {
	if !p.playing {
		return
	}
	p.seek(p.position + time.Second)
	if p.position >= p.duration {
		p.playing = false
	}
}

// Percent returns playback progress in [0, 1]
func (p Player) Percent() float64 {
	if p.duration <= 0 {
		return 0
	}
	return float64(p.position) / float64(p.duration)
}

func (p *Player) seek(pos time.Duration) {
	p.position = max(0, min(pos, p.duration))
}

// Update handles key events
func (p Player) Update(msg tea.Msg) (Player, PlayerEvent) {
	if !p.visible || p.minimized {
		return p, PlayerNoop
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, PlayerNoop
	}

	switch {
	case key.Matches(keyMsg, PlayerKeys.Close):
		p.Hide()
		return p, PlayerClosed
	case key.Matches(keyMsg, PlayerKeys.PlayPause):
		p.TogglePlay()
		if p.playing {
			return p, PlayerStarted
		}
		return p, PlayerPaused
	case key.Matches(keyMsg, PlayerKeys.Back):
		p.Skip(false)
	case key.Matches(keyMsg, PlayerKeys.Forward):
		p.Skip(true)
	case key.Matches(keyMsg, PlayerKeys.Minimize):
		p.ToggleMinimize()
	}
	return p, PlayerNoop
}

// MiniView renders the one-line minimized player
func (p Player) MiniView() string {
	if !p.visible {
		return ""
	}
	icon := "▶"
	if p.playing {
		icon = "⏸"
	}
	return fmt.Sprintf("%s %s  %s / %s", icon, p.book.Title,
		formatClock(p.position), formatClock(p.duration))
}

// View renders the expanded player modal
func (p Player) View(width int) string {
	if !p.visible || p.minimized {
		return ""
	}

	bar := p.bar
	bar.Width = min(max(width-20, 20), 50)

	state := "Paused"
	if p.playing {
		state = "Playing"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(p.book.Title),
		styles.SubtitleStyle.Render("Narrated by "+p.book.Author),
		"",
		bar.ViewAs(p.Percent()),
		styles.DimStyle.Render(fmt.Sprintf("%s / %s  %s",
			formatClock(p.position), formatClock(p.duration), state)),
		"",
		renderHelp(PlayerKeys.PlayPause, PlayerKeys.Back, PlayerKeys.Forward,
			PlayerKeys.Minimize, PlayerKeys.Close),
	)

	return styles.ModalStyle.Render(content)
}

// formatClock formats a duration as H:MM:SS or MM:SS
func formatClock(d time.Duration) string {
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
