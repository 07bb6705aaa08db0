package tui

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookshelf/internal/adapter"
	"github.com/mmcdole/bookshelf/internal/catalog"
	"github.com/mmcdole/bookshelf/internal/circulation"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/components"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateConfirmReset
)

// Page is a top-level tab
type Page int

const (
	PageDiscover Page = iota
	PageLoans
	PageHolds
	PageTags
	PageSettings
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageDiscover:
		return "Discover"
	case PageLoans:
		return "My Loans"
	case PageHolds:
		return "Holds"
	case PageTags:
		return "Tags"
	case PageSettings:
		return "Settings"
	default:
		return ""
	}
}

// bookRow is one selectable line in a book list
type bookRow struct {
	Section string // Shelf or group heading; rendered when it changes
	Book    domain.Book
	Matches []int // Highlighted title positions from search
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Page  Page
	Ready bool

	// Services
	Svc        *circulation.Service
	Catalog    *catalog.Catalog
	Filters    []catalog.Filter
	Config     adapter.Config
	SaveConfig func(*adapter.Config) error
	Logger     *slog.Logger

	changes <-chan domain.CommandResult

	// UI Components
	SearchInput textinput.Model
	Reader      components.Reader
	Player      components.Player
	TagInput    components.TagInput

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg     string
	StatusIsErr   bool
	statusID      int
	cursors       [pageCount]int
	activeFilters map[int]bool
	tagIndex      int
	holdEstimates map[string]holdEstimate
	playerTickID  int
	now           func() time.Time
}

// NewModel creates a new application model. changes may be nil when no
// observer feeds the UI.
func NewModel(
	svc *circulation.Service,
	cat *catalog.Catalog,
	filters []catalog.Filter,
	cfg *adapter.Config,
	changes <-chan domain.CommandResult,
) Model {
	if cfg == nil {
		cfg = adapter.DefaultConfig()
	}

	search := textinput.New()
	search.Placeholder = "Search titles, authors, genres..."
	search.Prompt = "/ "
	search.CharLimit = 60
	search.PromptStyle = styles.AccentStyle
	search.PlaceholderStyle = styles.DimStyle

	return Model{
		State:         StateBrowsing,
		Page:          PageDiscover,
		Svc:           svc,
		Catalog:       cat,
		Filters:       filters,
		Config:        *cfg,
		SaveConfig:    adapter.SaveConfig,
		Logger:        slog.Default(),
		changes:       changes,
		SearchInput:   search,
		Reader:        components.NewReader(),
		Player:        components.NewPlayer(),
		TagInput:      components.NewTagInput(),
		activeFilters: make(map[int]bool),
		holdEstimates: syncHoldEstimates(nil, svc.HoldIDs()),
		now:           time.Now,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return WaitForChangeCmd(m.changes)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case StateChangedMsg:
		m.onStateChanged(msg.Result)
		if m.changes == nil {
			return m, nil
		}
		return m, WaitForChangeCmd(m.changes)

	case PlayerTickMsg:
		if msg.ID != m.playerTickID || !m.Player.IsPlaying() {
			return m, nil
		}
		m.Player.Tick()
		if !m.Player.IsPlaying() {
			return m, m.setStatus("Finished "+m.Player.Book().Title, false)
		}
		return m, PlayerTickCmd(m.playerTickID)

	case ClearStatusMsg:
		if msg.ID == m.statusID {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil

	case ConfigSavedMsg:
		if msg.Err != nil {
			m.Logger.Error("failed to save settings", "error", msg.Err)
			return m, m.setStatus("Settings not saved: "+msg.Err.Error(), true)
		}
		return m, nil
	}

	// Forward everything else (cursor blink) to the focused input
	var cmd tea.Cmd
	switch {
	case m.TagInput.IsVisible():
		m.TagInput, cmd, _ = m.TagInput.Update(msg)
	case m.State == StateSearching:
		m.SearchInput, cmd = m.SearchInput.Update(msg)
	}
	return m, cmd
}

// onStateChanged refreshes session-only presentation state after any
// mutation, including ones not initiated from the keyboard.
func (m *Model) onStateChanged(result domain.CommandResult) {
	m.holdEstimates = syncHoldEstimates(m.holdEstimates, m.Svc.HoldIDs())

	closesMedia := result.Action == domain.ActionReturn || result.Action == domain.ActionReset
	if closesMedia {
		if m.Reader.IsVisible() && (result.BookID == "" || m.Reader.Book().ID == result.BookID) {
			m.Reader.Hide()
		}
		if m.Player.IsVisible() && (result.BookID == "" || m.Player.Book().ID == result.BookID) {
			m.Player.Hide()
		}
	}

	if tags := m.Svc.AllTags(); m.tagIndex >= len(tags) {
		m.tagIndex = max(len(tags)-1, 0)
	}
	m.clampCursor()
}

// === Commands against the circulation service ===

// runAction dispatches action for book and reports the outcome
func (m *Model) runAction(action domain.Action, book domain.Book) tea.Cmd {
	var result domain.CommandResult
	switch action {
	case domain.ActionBorrow:
		result = m.Svc.Borrow(book.ID)
	case domain.ActionReturn:
		result = m.Svc.Return(book.ID)
	case domain.ActionPlaceHold:
		result = m.Svc.PlaceHold(book.ID)
	case domain.ActionCancelHold:
		result = m.Svc.CancelHold(book.ID)
	case domain.ActionRead:
		return m.openReader(book)
	case domain.ActionListen:
		return m.openPlayer(book)
	default:
		return nil
	}
	return m.reportResult(result, book.Title)
}

func (m *Model) reportResult(result domain.CommandResult, title string) tea.Cmd {
	// Observers may be unbuffered or absent; apply presentation changes now
	m.onStateChanged(result)

	if result.Err != nil {
		return m.setStatus(fmt.Sprintf("%s: saved for this session only (%v)", title, result.Err), true)
	}
	if !result.Changed {
		return m.setStatus(fmt.Sprintf("%s: nothing to do", title), false)
	}

	switch result.Action {
	case domain.ActionBorrow:
		return m.setStatus(fmt.Sprintf("Borrowed %s, due %s", title, dueDate(m.now()).Format("Jan 2")), false)
	case domain.ActionReturn:
		return m.setStatus("Returned "+title, false)
	case domain.ActionPlaceHold:
		est := m.holdEstimates[result.BookID]
		return m.setStatus(fmt.Sprintf("Hold placed on %s, #%d in line", title, est.Position), false)
	case domain.ActionCancelHold:
		return m.setStatus("Hold cancelled on "+title, false)
	case domain.ActionAddTag:
		return m.setStatus(fmt.Sprintf("Tagged %s with %q", title, result.Tag), false)
	case domain.ActionRemoveTag:
		return m.setStatus(fmt.Sprintf("Removed %q from %s", result.Tag, title), false)
	case domain.ActionReset:
		return m.setStatus("All loans, holds and tags cleared", false)
	}
	return nil
}

func (m *Model) openReader(book domain.Book) tea.Cmd {
	if !slices.Contains(m.Svc.Actions(book), domain.ActionRead) {
		return m.setStatus("Borrow the ebook to read it", false)
	}
	m.Reader.Show(book, m.Config.Reader.FontSize)
	return nil
}

func (m *Model) openPlayer(book domain.Book) tea.Cmd {
	if !slices.Contains(m.Svc.Actions(book), domain.ActionListen) {
		return m.setStatus("Borrow the audiobook to listen", false)
	}
	m.Player.Show(book, m.Config.Player.SkipSeconds)
	return nil
}

// startPlayerTicks begins a fresh tick chain; older chains stop on ID mismatch
func (m *Model) startPlayerTicks() tea.Cmd {
	m.playerTickID++
	return PlayerTickCmd(m.playerTickID)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusID++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusID)
}

// === Row selection ===

// rows returns the selectable book rows for the current page
func (m Model) rows() []bookRow {
	switch m.Page {
	case PageDiscover:
		return m.discoverRows()
	case PageLoans:
		return plainRows(m.Svc.Loans())
	case PageHolds:
		return plainRows(m.Svc.Holds())
	case PageTags:
		tag, ok := m.currentTag()
		if !ok {
			return nil
		}
		return plainRows(m.Svc.BooksWithTag(tag))
	}
	return nil
}

// discoverRows groups the catalog by shelf when browsing, or lists
// matching books when a search or quick filter is active.
func (m Model) discoverRows() []bookRow {
	query := m.SearchInput.Value()
	filters := m.enabledFilters()

	if query == "" && len(filters) == 0 {
		var rows []bookRow
		for _, shelf := range m.Catalog.Shelves() {
			for _, b := range shelf.Books {
				rows = append(rows, bookRow{Section: shelf.Title, Book: b})
			}
		}
		return rows
	}

	results := catalog.Search(query, m.Catalog.Books())
	books := make([]domain.Book, len(results))
	matches := make(map[string][]int, len(results))
	for i, r := range results {
		books[i] = r.Book
		matches[r.Book.ID] = r.MatchedIndexes
	}

	filtered, err := catalog.Apply(books, filters...)
	if err != nil {
		m.Logger.Warn("quick filter failed", "error", err)
		filtered = books
	}

	rows := make([]bookRow, len(filtered))
	for i, b := range filtered {
		rows[i] = bookRow{Section: "Results", Book: b, Matches: matches[b.ID]}
	}
	return rows
}

func plainRows(books []domain.Book) []bookRow {
	rows := make([]bookRow, len(books))
	for i, b := range books {
		rows[i] = bookRow{Book: b}
	}
	return rows
}

func (m Model) enabledFilters() []catalog.Filter {
	var out []catalog.Filter
	for i, f := range m.Filters {
		if m.activeFilters[i] {
			out = append(out, f)
		}
	}
	return out
}

func (m Model) currentTag() (string, bool) {
	tags := m.Svc.AllTags()
	if len(tags) == 0 {
		return "", false
	}
	return tags[min(m.tagIndex, len(tags)-1)], true
}

func (m Model) cursor() int {
	return m.cursors[m.Page]
}

// selectedBook returns the book under the cursor
func (m Model) selectedBook() (domain.Book, bool) {
	rows := m.rows()
	c := m.cursor()
	if c < 0 || c >= len(rows) {
		return domain.Book{}, false
	}
	return rows[c].Book, true
}

func (m *Model) moveCursor(delta int) {
	m.cursors[m.Page] += delta
	m.clampCursor()
}

// rowCount returns the number of selectable rows on the current page
func (m Model) rowCount() int {
	if m.Page == PageSettings {
		return len(settingsItems) + 1 // + Clear all data
	}
	return len(m.rows())
}

func (m *Model) clampCursor() {
	n := m.rowCount()
	c := m.cursors[m.Page]
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	m.cursors[m.Page] = c
}

func (m *Model) switchPage(delta int) {
	m.Page = Page((int(m.Page) + delta + int(pageCount)) % int(pageCount))
	m.clampCursor()
}
