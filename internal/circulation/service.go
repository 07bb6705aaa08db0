package circulation

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/bookshelf/internal/domain"
)

// Slot keys for persisted state
const (
	KeyLoans = "bookshelf-loans"
	KeyHolds = "bookshelf-holds"
	KeyTags  = "bookshelf-tags"
)

// Service owns the loan ledger, hold set and tag index for one session.
// Every mutation writes the affected set through to the store and then
// notifies observers with the command result.
type Service struct {
	store   domain.Store
	catalog domain.CatalogReader
	logger  *slog.Logger

	mu    sync.RWMutex
	loans *LoanLedger
	holds *HoldQueue
	tags  *TagIndex

	observers []domain.ChangeObserver
}

// NewService loads persisted state from store. Missing or malformed slots
// start empty.
func NewService(
	store domain.Store,
	catalog domain.CatalogReader,
	logger *slog.Logger,
	observers ...domain.ChangeObserver,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:     store,
		catalog:   catalog,
		logger:    logger,
		observers: observers,
	}
	s.load()
	return s
}

func (s *Service) load() {
	var loanIDs, holdIDs []string
	var records []TagRecord

	if !s.store.Read(KeyLoans, &loanIDs) {
		loanIDs = nil
	}
	if !s.store.Read(KeyHolds, &holdIDs) {
		holdIDs = nil
	}
	if !s.store.Read(KeyTags, &records) {
		records = nil
	}

	s.loans = NewLoanLedger(loanIDs)
	s.holds = NewHoldQueue(holdIDs)
	s.tags = NewTagIndex(records)

	s.logger.Debug("loaded circulation state",
		"loans", s.loans.Len(), "holds", s.holds.Len(), "tagged", s.tags.Len())
}

// Subscribe registers an observer for subsequent mutations.
func (s *Service) Subscribe(obs domain.ChangeObserver) {
	s.mu.Lock()
	s.observers = append(s.observers, obs)
	s.mu.Unlock()
}

// === Commands ===

// Borrow loans bookID if it is available and neither loaned nor held.
func (s *Service) Borrow(bookID string) domain.CommandResult {
	return s.bookCommand(domain.ActionBorrow, bookID, func(book domain.Book) (bool, error) {
		if !s.loans.Borrow(book, s.holds) {
			return false, nil
		}
		return true, s.persist(KeyLoans, s.loans.IDs())
	})
}

// Return ends the loan on bookID. Unknown or unloaned IDs are a no-op.
func (s *Service) Return(bookID string) domain.CommandResult {
	return s.run(domain.CommandResult{Action: domain.ActionReturn, BookID: bookID}, func() (bool, error) {
		if !s.loans.Return(bookID) {
			return false, nil
		}
		return true, s.persist(KeyLoans, s.loans.IDs())
	})
}

// PlaceHold reserves bookID if it is unavailable and neither loaned nor held.
func (s *Service) PlaceHold(bookID string) domain.CommandResult {
	return s.bookCommand(domain.ActionPlaceHold, bookID, func(book domain.Book) (bool, error) {
		if !s.holds.PlaceHold(book, s.loans) {
			return false, nil
		}
		return true, s.persist(KeyHolds, s.holds.IDs())
	})
}

// CancelHold drops the hold on bookID. Absent holds are a no-op.
func (s *Service) CancelHold(bookID string) domain.CommandResult {
	return s.run(domain.CommandResult{Action: domain.ActionCancelHold, BookID: bookID}, func() (bool, error) {
		if !s.holds.CancelHold(bookID) {
			return false, nil
		}
		return true, s.persist(KeyHolds, s.holds.IDs())
	})
}

// AddTag attaches rawTag (normalized) to bookID.
func (s *Service) AddTag(bookID, rawTag string) domain.CommandResult {
	base := domain.CommandResult{Action: domain.ActionAddTag, BookID: bookID, Tag: NormalizeTag(rawTag)}
	return s.run(base, func() (bool, error) {
		if !s.tags.AddTag(bookID, rawTag) {
			return false, nil
		}
		return true, s.persist(KeyTags, s.tags.Records())
	})
}

// RemoveTag detaches tag from bookID.
func (s *Service) RemoveTag(bookID, tag string) domain.CommandResult {
	base := domain.CommandResult{Action: domain.ActionRemoveTag, BookID: bookID, Tag: NormalizeTag(tag)}
	return s.run(base, func() (bool, error) {
		if !s.tags.RemoveTag(bookID, tag) {
			return false, nil
		}
		return true, s.persist(KeyTags, s.tags.Records())
	})
}

// Reset empties all three sets and their slots.
func (s *Service) Reset() domain.CommandResult {
	s.mu.Lock()
	s.loans = NewLoanLedger(nil)
	s.holds = NewHoldQueue(nil)
	s.tags = NewTagIndex(nil)

	var firstErr error
	for _, key := range []string{KeyLoans, KeyHolds, KeyTags} {
		if err := s.store.Delete(key); err != nil {
			s.logger.Error("failed to clear slot", "key", key, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("clear %s: %w", key, err)
			}
		}
	}
	observers := s.observers
	s.mu.Unlock()

	s.logger.Info("cleared circulation state")
	result := domain.CommandResult{Action: domain.ActionReset, Changed: true, Err: firstErr}
	notify(observers, result)
	return result
}

// === Queries ===

// Status resolves bookID against the current state.
func (s *Service) Status(bookID string) domain.Status {
	book, ok := s.catalog.Book(bookID)
	if !ok {
		return domain.StatusUnknown
	}
	return s.StatusOf(book)
}

// StatusOf resolves book against the current state.
func (s *Service) StatusOf(book domain.Book) domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Resolve(book, s.loans, s.holds)
}

// Actions returns the actions the UI may offer for book right now.
func (s *Service) Actions(book domain.Book) []domain.Action {
	return AllowedActions(book, s.StatusOf(book))
}

// LoanIDs returns loaned book IDs in borrow order.
func (s *Service) LoanIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loans.IDs()
}

// HoldIDs returns held book IDs in hold order.
func (s *Service) HoldIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.holds.IDs()
}

// Loans returns loaned catalog books in catalog order.
func (s *Service) Loans() []domain.Book {
	return s.filterCatalog(s.LoanIDs())
}

// Holds returns held catalog books in catalog order.
func (s *Service) Holds() []domain.Book {
	return s.filterCatalog(s.HoldIDs())
}

// TagsForBook returns bookID's tags.
func (s *Service) TagsForBook(bookID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tags.TagsForBook(bookID)
}

// BooksForTag returns IDs of books carrying tag, in first-tagged order.
func (s *Service) BooksForTag(tag string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tags.BooksForTag(tag)
}

// BooksWithTag returns catalog books carrying tag, in catalog order.
func (s *Service) BooksWithTag(tag string) []domain.Book {
	return s.filterCatalog(s.BooksForTag(tag))
}

// AllTags returns the sorted union of all tags.
func (s *Service) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tags.AllTags()
}

// --- Private helpers ---

// bookCommand runs a mutation that needs the catalog record for bookID.
// Commands keyed only by ID go straight to run so stale IDs can still be removed.
func (s *Service) bookCommand(
	action domain.Action,
	bookID string,
	mutate func(book domain.Book) (bool, error),
) domain.CommandResult {
	base := domain.CommandResult{Action: action, BookID: bookID}
	book, ok := s.catalog.Book(bookID)
	if !ok {
		s.logger.Debug("ignoring command for unknown book", "action", action.String(), "bookID", bookID)
		return base
	}
	return s.run(base, func() (bool, error) { return mutate(book) })
}

func (s *Service) run(result domain.CommandResult, mutate func() (bool, error)) domain.CommandResult {
	s.mu.Lock()
	result.Changed, result.Err = mutate()
	result.Status = domain.StatusUnknown
	if book, ok := s.catalog.Book(result.BookID); ok {
		result.Status = Resolve(book, s.loans, s.holds)
	}
	observers := s.observers
	s.mu.Unlock()

	attrs := []any{"action", result.Action.String(), "bookID", result.BookID, "status", result.Status.String()}
	if result.Tag != "" {
		attrs = append(attrs, "tag", result.Tag)
	}

	if !result.Changed {
		s.logger.Debug("command was a no-op", attrs...)
		return result
	}

	s.logger.Debug("command applied", attrs...)
	notify(observers, result)
	return result
}

// persist writes value through to the store. Failures are logged and
// returned but never roll back in-memory state.
func (s *Service) persist(key string, value any) error {
	if err := s.store.Write(key, value); err != nil {
		s.logger.Error("failed to persist state", "key", key, "error", err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func (s *Service) filterCatalog(ids []string) []domain.Book {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	books := []domain.Book{}
	for _, b := range s.catalog.Books() {
		if wanted[b.ID] {
			books = append(books, b)
		}
	}
	return books
}

func notify(observers []domain.ChangeObserver, result domain.CommandResult) {
	for _, obs := range observers {
		if obs != nil {
			obs.OnChange(result)
		}
	}
}
