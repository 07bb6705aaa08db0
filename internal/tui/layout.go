package tui

// Layout proportions for the book browser
const (
	ListColumnPercent = 55 // Book list; the rest is the detail panel
	MinColumnWidth    = 30
)

// browserLayout holds calculated column widths for the View
type browserLayout struct {
	listWidth   int
	detailWidth int // 0 if not shown
}

// calculateLayout splits availableWidth between list and detail panel,
// dropping the detail panel when either side would be too narrow.
func (m Model) calculateLayout(availableWidth int) browserLayout {
	listWidth := availableWidth * ListColumnPercent / 100
	detailWidth := availableWidth - listWidth

	if listWidth < MinColumnWidth || detailWidth < MinColumnWidth {
		return browserLayout{listWidth: max(availableWidth, 1)}
	}
	return browserLayout{listWidth: listWidth, detailWidth: detailWidth}
}
