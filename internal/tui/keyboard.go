package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookshelf/internal/circulation"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	switch m.State {
	case StateConfirmReset:
		switch {
		case key.Matches(msg, Keys.Confirm):
			m.State = StateBrowsing
			return m, m.reportResult(m.Svc.Reset(), "Library data")
		case key.Matches(msg, Keys.Deny):
			m.State = StateBrowsing
		}
		return m, nil

	case StateSearching:
		return m.handleSearchKey(msg)
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.NextTab):
		m.switchPage(1)
		return m, nil

	case key.Matches(msg, Keys.PrevTab):
		m.switchPage(-1)
		return m, nil

	case key.Matches(msg, Keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, Keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, Keys.Home):
		m.cursors[m.Page] = 0
		return m, nil

	case key.Matches(msg, Keys.End):
		m.cursors[m.Page] = max(m.rowCount()-1, 0)
		return m, nil

	case key.Matches(msg, Keys.Player):
		if m.Player.IsVisible() && m.Player.IsMinimized() {
			m.Player.ToggleMinimize()
		}
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.Page == PageDiscover && (m.SearchInput.Value() != "" || len(m.enabledFilters()) > 0) {
			m.SearchInput.SetValue("")
			m.activeFilters = make(map[int]bool)
			m.clampCursor()
		}
		return m, nil
	}

	switch m.Page {
	case PageSettings:
		return m.handleSettingsKey(msg)
	case PageDiscover:
		if handled, cmd := m.handleDiscoverKey(msg); handled {
			return m, cmd
		}
	case PageTags:
		switch {
		case key.Matches(msg, Keys.PrevTag):
			m.cycleTag(-1)
			return m, nil
		case key.Matches(msg, Keys.NextTag):
			m.cycleTag(1)
			return m, nil
		}
	}

	return m.handleBookKey(msg)
}

// routeToModal sends input to an open modal. Returns handled=true if consumed.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.TagInput.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.TagInput, cmd, submitted = m.TagInput.Update(msg)
		if submitted {
			bookID, tag := m.TagInput.BookID(), m.TagInput.Value()
			m.TagInput.Hide()
			book, err := m.Catalog.Lookup(bookID)
			if err != nil {
				m.Logger.Warn("tag target vanished", "error", err)
				return true, m, m.setStatus(err.Error(), true)
			}
			return true, m, m.reportResult(m.Svc.AddTag(book.ID, tag), book.Title)
		}
		return true, m, cmd
	}

	if m.Reader.IsVisible() {
		m.Reader, _ = m.Reader.Update(msg)
		return true, m, nil
	}

	if m.Player.IsVisible() && !m.Player.IsMinimized() {
		var event components.PlayerEvent
		m.Player, event = m.Player.Update(msg)
		if event == components.PlayerStarted {
			return true, m, m.startPlayerTicks()
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.SearchInput.SetValue("")
		m.SearchInput.Blur()
		m.State = StateBrowsing
		m.clampCursor()
		return m, nil
	case tea.KeyEnter:
		m.SearchInput.Blur()
		m.State = StateBrowsing
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		if msg.Type == tea.KeyUp {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	m.cursors[PageDiscover] = 0
	return m, cmd
}

func (m *Model) handleDiscoverKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Search):
		m.State = StateSearching
		return true, m.SearchInput.Focus()

	case key.Matches(msg, Keys.ToggleFilters):
		idx := int(msg.Runes[0] - '1')
		if idx < 0 || idx >= len(m.Filters) {
			return true, nil
		}
		m.activeFilters[idx] = !m.activeFilters[idx]
		if !m.activeFilters[idx] {
			delete(m.activeFilters, idx)
		}
		m.cursors[PageDiscover] = 0
		return true, nil
	}
	return false, nil
}

// handleBookKey applies circulation keys to the selected book
func (m Model) handleBookKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	book, ok := m.selectedBook()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Primary):
		action := circulation.PrimaryAction(m.Svc.StatusOf(book))
		return m, m.runAction(action, book)

	case key.Matches(msg, Keys.Read):
		return m, m.runAction(domain.ActionRead, book)

	case key.Matches(msg, Keys.Listen):
		return m, m.runAction(domain.ActionListen, book)

	case key.Matches(msg, Keys.AddTag):
		pool := append(m.Svc.AllTags(), circulation.PresetTags...)
		m.TagInput.Show(book.ID, book.Title, pool)
		return m, nil

	case key.Matches(msg, Keys.DelTag):
		tag, ok := m.tagToRemove(book)
		if !ok {
			return m, m.setStatus(book.Title+" has no tags", false)
		}
		return m, m.reportResult(m.Svc.RemoveTag(book.ID, tag), book.Title)
	}

	return m, nil
}

// tagToRemove picks the viewed tag on the Tags page, otherwise the book's
// most recently added tag.
func (m Model) tagToRemove(book domain.Book) (string, bool) {
	if m.Page == PageTags {
		return m.currentTag()
	}
	tags := m.Svc.TagsForBook(book.ID)
	if len(tags) == 0 {
		return "", false
	}
	return tags[len(tags)-1], true
}

func (m *Model) cycleTag(delta int) {
	tags := m.Svc.AllTags()
	if len(tags) == 0 {
		return
	}
	m.tagIndex = (m.tagIndex + delta + len(tags)) % len(tags)
	m.cursors[PageTags] = 0
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, Keys.Primary) {
		return m, nil
	}

	if m.isResetRow() {
		m.State = StateConfirmReset
		return m, nil
	}

	item := settingsItems[m.cursors[PageSettings]]
	item.Toggle(&m.Config)
	m.Logger.Info("setting changed", "setting", item.Label, "value", item.Value(m.Config))
	return m, SaveConfigCmd(m.SaveConfig, m.Config)
}
