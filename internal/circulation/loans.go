package circulation

import "github.com/mmcdole/bookshelf/internal/domain"

// LoanLedger tracks which books the user currently has borrowed.
type LoanLedger struct {
	idSet
}

// NewLoanLedger creates a ledger holding ids. Empty and duplicate IDs are dropped.
func NewLoanLedger(ids []string) *LoanLedger {
	return &LoanLedger{idSet: newIDSet(ids)}
}

// Borrow adds book to the ledger if the resolver allows it.
// Returns false (no-op) when the book is not AvailableToBorrow.
func (l *LoanLedger) Borrow(book domain.Book, holds *HoldQueue) bool {
	if Resolve(book, l, holds) != domain.StatusAvailableToBorrow {
		return false
	}
	return l.add(book.ID)
}

// Return removes bookID. Returning a book that is not on loan is a no-op.
func (l *LoanLedger) Return(bookID string) bool {
	return l.remove(bookID)
}
