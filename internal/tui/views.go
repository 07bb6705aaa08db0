package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	// Full-screen modals
	switch {
	case m.State == StateConfirmReset:
		return m.place(m.renderResetConfirmation())
	case m.TagInput.IsVisible():
		return m.place(m.TagInput.View())
	case m.Reader.IsVisible():
		return m.place(m.Reader.View(m.Width))
	case m.Player.IsVisible() && !m.Player.IsMinimized():
		return m.place(m.Player.View(m.Width))
	}

	header := m.renderTabs()
	footer := m.renderStatusBar()
	bodyHeight := max(m.Height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	var body string
	if m.Page == PageSettings {
		body = m.renderSettings()
	} else {
		body = m.renderBrowser(bodyHeight)
	}

	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) place(content string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

// renderTabs renders the page tab bar
func (m Model) renderTabs() string {
	tabs := make([]string, 0, pageCount+1)
	tabs = append(tabs, styles.AccentStyle.Bold(true).Render("Bookshelf "))
	for p := PageDiscover; p < pageCount; p++ {
		label := p.String()
		switch p {
		case PageLoans:
			label = fmt.Sprintf("%s (%d)", label, len(m.Svc.LoanIDs()))
		case PageHolds:
			label = fmt.Sprintf("%s (%d)", label, len(m.Svc.HoldIDs()))
		}
		if p == m.Page {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderBrowser renders the list plus detail panel for book pages
func (m Model) renderBrowser(height int) string {
	var top []string
	switch m.Page {
	case PageDiscover:
		top = append(top, m.renderDiscoverControls())
	case PageTags:
		top = append(top, m.renderTagBar())
	}

	rows := m.rows()
	layout := m.calculateLayout(m.Width)
	listHeight := max(height-len(top), 1)

	list := m.renderRows(rows, layout.listWidth, listHeight)
	if len(rows) == 0 {
		list = styles.DimStyle.Width(layout.listWidth).Render(m.emptyMessage())
	}

	content := list
	if layout.detailWidth > 0 {
		if book, ok := m.selectedBook(); ok {
			detail := lipgloss.NewStyle().Width(layout.detailWidth).PaddingLeft(2).Render(m.renderDetail(book))
			content = lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, append(top, content)...)
}

func (m Model) emptyMessage() string {
	switch m.Page {
	case PageDiscover:
		return "No books match your search."
	case PageLoans:
		return "You have no books on loan. Borrow one from Discover."
	case PageHolds:
		return "You have no holds."
	case PageTags:
		if _, ok := m.currentTag(); !ok {
			return "No tags yet. Press t on any book to tag it."
		}
		return "No books carry this tag."
	}
	return ""
}

func (m Model) renderDiscoverControls() string {
	parts := []string{}
	if m.State == StateSearching || m.SearchInput.Value() != "" {
		parts = append(parts, m.SearchInput.View())
	}

	badges := make([]string, 0, len(m.Filters))
	for i, f := range m.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Name)
		if m.activeFilters[i] {
			badges = append(badges, styles.FilterOnStyle.Render(label))
		} else {
			badges = append(badges, styles.FilterOffStyle.Render(label))
		}
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, badges...))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderTagBar() string {
	tags := m.Svc.AllTags()
	if len(tags) == 0 {
		return ""
	}
	current, _ := m.currentTag()
	badges := make([]string, len(tags))
	for i, t := range tags {
		label := fmt.Sprintf("%s (%d)", t, len(m.Svc.BooksForTag(t)))
		if t == current {
			badges[i] = styles.ActiveTabStyle.Render(label)
		} else {
			badges[i] = styles.InactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

// renderRows renders the visible window of rows with section headings
func (m Model) renderRows(rows []bookRow, width, height int) string {
	cursor := m.cursor()

	// Each row may carry a heading line; keep the cursor in view
	start := 0
	if cursor >= height/2 {
		start = cursor - height/2 + 1
	}

	var lines []string
	section := ""
	if start > 0 {
		section = rows[start-1].Section
	}
	for i := start; i < len(rows) && len(lines) < height; i++ {
		row := rows[i]
		if row.Section != "" && row.Section != section {
			section = row.Section
			lines = append(lines, styles.SectionStyle.Render(section))
		}
		lines = append(lines, m.renderBookRow(row, i == cursor, width))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// renderBookRow renders one book line
func (m Model) renderBookRow(row bookRow, selected bool, width int) string {
	book := row.Book
	status := m.Svc.StatusOf(book)

	title := highlight(book.Title, row.Matches)
	line := fmt.Sprintf("%s %s %s", statusBadge(status), title, styles.DimStyle.Render("· "+book.Author))

	switch m.Page {
	case PageLoans:
		line += styles.DimStyle.Render("  due " + dueDate(m.now()).Format("Jan 2"))
	case PageHolds:
		if est, ok := m.holdEstimates[book.ID]; ok {
			line += styles.DimStyle.Render(fmt.Sprintf("  #%d in line · about %s", est.Position, est.Wait))
		}
	}

	style := styles.NormalItemStyle
	if selected {
		style = styles.SelectedItemStyle
	}
	return style.Width(width).Render(styles.Truncate(line, width-2))
}

// renderDetail renders the detail panel for book
func (m Model) renderDetail(book domain.Book) string {
	status := m.Svc.StatusOf(book)

	lines := []string{
		styles.TitleStyle.Render(book.Title),
		styles.SubtitleStyle.Render("by " + book.Author),
		"",
		fmt.Sprintf("%s · %s · %.1f★", book.Genre, book.FormatLabel(), book.Rating),
		styles.DimStyle.Render("Published " + book.PublishDate),
		"",
		book.Description,
		"",
		statusBadge(status) + " " + status.String(),
	}

	if tags := m.Svc.TagsForBook(book.ID); len(tags) > 0 {
		badges := make([]string, len(tags))
		for i, t := range tags {
			badges[i] = styles.TagBadge.Render(t)
		}
		lines = append(lines, strings.Join(badges, " "))
	}

	lines = append(lines, "", renderActionHints(m.Svc.Actions(book)))
	return strings.Join(lines, "\n")
}

func renderActionHints(actions []domain.Action) string {
	var hints []string
	for _, a := range actions {
		var k string
		switch a {
		case domain.ActionRead:
			k = "r"
		case domain.ActionListen:
			k = "p"
		default:
			k = "enter"
		}
		hints = append(hints, styles.HelpKeyStyle.Render(k)+" "+styles.HelpDescStyle.Render(strings.ToLower(a.String())))
	}
	hints = append(hints,
		styles.HelpKeyStyle.Render("t")+" "+styles.HelpDescStyle.Render("tag"),
		styles.HelpKeyStyle.Render("x")+" "+styles.HelpDescStyle.Render("untag"))
	return strings.Join(hints, "  ")
}

// statusBadge renders the circulation status glyph
func statusBadge(status domain.Status) string {
	switch status {
	case domain.StatusLoaned:
		return styles.LoanedBadge.Render("●")
	case domain.StatusOnHold:
		return styles.OnHoldBadge.Render("◐")
	case domain.StatusAvailableToBorrow:
		return styles.AvailableBadge.Render("○")
	case domain.StatusUnavailableCanHold:
		return styles.UnavailableBadge.Render("✕")
	default:
		return " "
	}
}

// highlight renders title with matched byte positions emphasized
func highlight(title string, matches []int) string {
	if len(matches) == 0 {
		return title
	}
	var b strings.Builder
	for i, r := range title {
		if slices.Contains(matches, i) {
			b.WriteString(styles.MatchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// renderSettings renders the Settings page
func (m Model) renderSettings() string {
	cursor := m.cursors[PageSettings]
	width := min(m.Width, 60)

	lines := []string{styles.SectionStyle.Render("Preferences")}
	for i, item := range settingsItems {
		line := fmt.Sprintf("%-28s %s", item.Label, item.Value(m.Config))
		style := styles.NormalItemStyle
		if i == cursor {
			style = styles.SelectedItemStyle
		}
		lines = append(lines, style.Width(width).Render(line))
	}

	lines = append(lines, styles.SectionStyle.Render("Library"))
	lines = append(lines, styles.NormalItemStyle.Render(fmt.Sprintf("%-28s %s", "Profile", m.Config.Data.Profile)))

	if m.isResetRow() {
		lines = append(lines, styles.SelectedItemStyle.Width(width).Render("Clear all data"))
	} else {
		lines = append(lines, styles.NormalItemStyle.Render(styles.ErrorStyle.Render("Clear all data")))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderResetConfirmation() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Clear all data?"),
		fmt.Sprintf("This removes %d loans, %d holds and all tags.",
			len(m.Svc.LoanIDs()), len(m.Svc.HoldIDs())),
		"",
		styles.HelpKeyStyle.Render("y")+" "+styles.HelpDescStyle.Render("confirm")+"  "+
			styles.HelpKeyStyle.Render("n")+" "+styles.HelpDescStyle.Render("cancel"),
	)
	return styles.ModalStyle.Render(content)
}

// renderStatusBar renders the footer: status message, mini player, help
func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.SuccessStyle.Render(m.StatusMsg)
	case m.Player.IsVisible() && m.Player.IsMinimized():
		left = styles.AccentStyle.Render(m.Player.MiniView()) + "  " +
			styles.HelpKeyStyle.Render("m") + " " + styles.HelpDescStyle.Render("expand")
	default:
		left = m.renderHelpLine()
	}
	return styles.StatusBarStyle.Width(m.Width).MaxWidth(m.Width).Render(left)
}

func (m Model) renderHelpLine() string {
	bindings := []struct{ k, d string }{
		{Keys.NextTab.Help().Key, "pages"},
		{"j/k", "move"},
	}
	switch m.Page {
	case PageDiscover:
		bindings = append(bindings,
			struct{ k, d string }{Keys.Search.Help().Key, Keys.Search.Help().Desc},
			struct{ k, d string }{Keys.ToggleFilters.Help().Key, "filters"})
	case PageTags:
		bindings = append(bindings, struct{ k, d string }{"[ ]", "switch tag"})
	case PageSettings:
		bindings = append(bindings, struct{ k, d string }{"enter", "toggle"})
	}
	bindings = append(bindings, struct{ k, d string }{Keys.Quit.Help().Key, Keys.Quit.Help().Desc})

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = styles.HelpKeyStyle.Render(b.k) + " " + styles.HelpDescStyle.Render(b.d)
	}
	return strings.Join(parts, "  ")
}
