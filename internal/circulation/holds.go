package circulation

import "github.com/mmcdole/bookshelf/internal/domain"

// HoldQueue tracks the books the user has an active hold on.
// Queue position is not modelled; there is no server-side queue.
type HoldQueue struct {
	idSet
}

// NewHoldQueue creates a hold set holding ids. Empty and duplicate IDs are dropped.
func NewHoldQueue(ids []string) *HoldQueue {
	return &HoldQueue{idSet: newIDSet(ids)}
}

// PlaceHold adds book if the resolver reports it UnavailableCanHold.
func (h *HoldQueue) PlaceHold(book domain.Book, loans *LoanLedger) bool {
	if Resolve(book, loans, h) != domain.StatusUnavailableCanHold {
		return false
	}
	return h.add(book.ID)
}

// CancelHold removes bookID. Cancelling an absent hold is a no-op.
func (h *HoldQueue) CancelHold(bookID string) bool {
	return h.remove(bookID)
}
