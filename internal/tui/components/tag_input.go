package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/catalog"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

const maxSuggestions = 5

// TagInput is a text input modal with fuzzy tag suggestions
type TagInput struct {
	visible     bool
	bookID      string
	title       string
	input       textinput.Model
	pool        []string
	suggestions []string
	selected    int // -1 = use typed text
}

// NewTagInput creates a new tag input modal
func NewTagInput() TagInput {
	ti := textinput.New()
	ti.Placeholder = "Tag name..."
	ti.CharLimit = 40
	ti.Width = 30
	ti.Prompt = "# "
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return TagInput{input: ti, selected: -1}
}

// Show opens the modal for bookID, suggesting from pool
func (m *TagInput) Show(bookID, bookTitle string, pool []string) {
	m.visible = true
	m.bookID = bookID
	m.title = bookTitle
	m.pool = pool
	m.input.SetValue("")
	m.input.Focus()
	m.refresh()
}

// Hide dismisses the modal
func (m *TagInput) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m TagInput) IsVisible() bool {
	return m.visible
}

// BookID returns the book being tagged
func (m TagInput) BookID() string {
	return m.bookID
}

// Suggestions returns the current ranked suggestions
func (m TagInput) Suggestions() []string {
	return m.suggestions
}

// Value returns the highlighted suggestion, or the typed text if none
func (m TagInput) Value() string {
	if m.selected >= 0 && m.selected < len(m.suggestions) {
		return m.suggestions[m.selected]
	}
	return strings.TrimSpace(m.input.Value())
}

func (m *TagInput) refresh() {
	m.suggestions = catalog.SuggestTags(m.input.Value(), m.pool)
	if len(m.suggestions) > maxSuggestions {
		m.suggestions = m.suggestions[:maxSuggestions]
	}
	m.selected = -1
}

// Update handles input events, returns (modal, cmd, submitted)
func (m TagInput) Update(msg tea.Msg) (TagInput, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, TagInputKeys.Enter):
			return m, nil, true
		case key.Matches(keyMsg, TagInputKeys.Escape):
			m.Hide()
			return m, nil, false
		case key.Matches(keyMsg, TagInputKeys.Down):
			if m.selected < len(m.suggestions)-1 {
				m.selected++
			}
			return m, nil, false
		case key.Matches(keyMsg, TagInputKeys.Up):
			if m.selected >= 0 {
				m.selected--
			}
			return m, nil, false
		case key.Matches(keyMsg, TagInputKeys.Complete):
			if len(m.suggestions) > 0 {
				pick := m.suggestions[max(m.selected, 0)]
				m.input.SetValue(pick)
				m.input.CursorEnd()
				m.refresh()
			}
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd, false
}

// View renders the tag input modal
func (m TagInput) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 36

	rows := []string{
		styles.ModalTitleStyle.Width(modalWidth).Render("Tag: " + m.title),
		m.input.View(),
	}

	if len(m.suggestions) > 0 {
		rows = append(rows, "")
		for i, s := range m.suggestions {
			style := styles.NormalItemStyle
			if i == m.selected {
				style = styles.SelectedItemStyle
			}
			rows = append(rows, style.Width(modalWidth).Render(s))
		}
	}

	rows = append(rows, "", renderHelp(TagInputKeys.Complete, TagInputKeys.Enter, TagInputKeys.Escape))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
