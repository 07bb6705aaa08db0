package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// DefaultPageCount is used when a book carries no page count.
const DefaultPageCount = 100

const readerChapterText = "The morning light filtered through the tall windows of the old " +
	"library, casting long shadows across rows of shelves. Somewhere between " +
	"the stacks a page turned, and the quiet settled again like dust."

// Reader is the simulated e-book reader modal
type Reader struct {
	visible  bool
	book     domain.Book
	page     int
	pages    int
	fontSize string
}

// NewReader creates a hidden reader
func NewReader() Reader {
	return Reader{page: 1, pages: DefaultPageCount}
}

// Show opens book at page 1
func (r *Reader) Show(book domain.Book, fontSize string) {
	r.visible = true
	r.book = book
	r.page = 1
	r.pages = book.Pages
	if r.pages <= 0 {
		r.pages = DefaultPageCount
	}
	r.fontSize = fontSize
}

// Hide closes the reader
func (r *Reader) Hide() {
	r.visible = false
}

// IsVisible returns whether the reader is open
func (r Reader) IsVisible() bool {
	return r.visible
}

// Book returns the open book
func (r Reader) Book() domain.Book {
	return r.book
}

// Page returns the current page (1-based)
func (r Reader) Page() int {
	return r.page
}

// Pages returns the total page count
func (r Reader) Pages() int {
	return r.pages
}

// NextPage advances one page, stopping at the last
func (r *Reader) NextPage() {
	if r.page < r.pages {
		r.page++
	}
}

// PrevPage goes back one page, stopping at the first
func (r *Reader) PrevPage() {
	if r.page > 1 {
		r.page--
	}
}

// Progress returns the fraction of the book read
func (r Reader) Progress() float64 {
	if r.pages == 0 {
		return 0
	}
	return float64(r.page) / float64(r.pages)
}

// Update handles key events, returns (reader, closed)
func (r Reader) Update(msg tea.Msg) (Reader, bool) {
	if !r.visible {
		return r, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, false
	}

	switch {
	case key.Matches(keyMsg, ReaderKeys.Close):
		r.Hide()
		return r, true
	case key.Matches(keyMsg, ReaderKeys.NextPage):
		r.NextPage()
	case key.Matches(keyMsg, ReaderKeys.PrevPage):
		r.PrevPage()
	}
	return r, false
}

// View renders the reader modal
func (r Reader) View(width int) string {
	if !r.visible {
		return ""
	}

	modalWidth := min(max(width-10, 30), 72)

	textStyle := lipgloss.NewStyle().Width(modalWidth).Foreground(styles.White)
	switch r.fontSize {
	case "large":
		textStyle = textStyle.Bold(true)
	case "small":
		textStyle = textStyle.Foreground(styles.LightGray)
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(r.book.Title),
		styles.SubtitleStyle.Render("by "+r.book.Author),
	)

	body := textStyle.Render(fmt.Sprintf("Chapter %d\n\n%s", chapterFor(r.page), readerChapterText))
	if r.fontSize == "large" {
		// Double spacing for the large setting
		body = strings.ReplaceAll(body, "\n", "\n\n")
	}

	footer := styles.DimStyle.Render(fmt.Sprintf("Page %d of %d  (%d%%)",
		r.page, r.pages, int(r.Progress()*100)))

	help := renderHelp(ReaderKeys.PrevPage, ReaderKeys.NextPage, ReaderKeys.Close)

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header, "", body, "", footer, help,
	))
}

func chapterFor(page int) int {
	return (page-1)/10 + 1
}

func renderHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
