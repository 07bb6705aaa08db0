package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m TagInput, s string) TagInput {
	for _, r := range s {
		m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func Test_TagInput_SuggestsFromPool(t *testing.T) {
	m := NewTagInput()
	m.Show("1", "The Midnight Library", []string{"favorites", "to read", "finished"})

	assert.Equal(t, []string{"favorites", "finished", "to read"}, m.Suggestions())

	m = typeText(m, "tor")
	assert.Equal(t, []string{"to read"}, m.Suggestions())
	assert.Equal(t, "tor", m.Value())
}

func Test_TagInput_SelectAndComplete(t *testing.T) {
	m := NewTagInput()
	m.Show("1", "Book", []string{"favorites", "finished"})
	m = typeText(m, "fi")

	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotEmpty(t, m.Suggestions())
	assert.Equal(t, "finished", m.Value())

	m, _, submitted := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, submitted)
	assert.Equal(t, "1", m.BookID())
}

func Test_TagInput_EscapeHides(t *testing.T) {
	m := NewTagInput()
	m.Show("1", "Book", nil)

	m, _, submitted := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, submitted)
	assert.False(t, m.IsVisible())
	assert.Empty(t, m.View())
}
