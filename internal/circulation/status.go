package circulation

import "github.com/mmcdole/bookshelf/internal/domain"

// Membership is satisfied by LoanLedger and HoldQueue.
type Membership interface {
	Contains(id string) bool
}

// Resolve computes the circulation status of book.
// Loan takes precedence over hold so a book present in both sets
// still resolves deterministically. Nil memberships count as empty.
func Resolve(book domain.Book, loans, holds Membership) domain.Status {
	switch {
	case contains(loans, book.ID):
		return domain.StatusLoaned
	case contains(holds, book.ID):
		return domain.StatusOnHold
	case book.Available:
		return domain.StatusAvailableToBorrow
	default:
		return domain.StatusUnavailableCanHold
	}
}

func contains(m Membership, id string) bool {
	switch v := m.(type) {
	case nil:
		return false
	case *LoanLedger:
		return v != nil && v.Contains(id)
	case *HoldQueue:
		return v != nil && v.Contains(id)
	default:
		return m.Contains(id)
	}
}

// PrimaryAction returns the single circulation action exposed for status.
func PrimaryAction(status domain.Status) domain.Action {
	switch status {
	case domain.StatusLoaned:
		return domain.ActionReturn
	case domain.StatusOnHold:
		return domain.ActionCancelHold
	case domain.StatusAvailableToBorrow:
		return domain.ActionBorrow
	case domain.StatusUnavailableCanHold:
		return domain.ActionPlaceHold
	default:
		return domain.ActionNone
	}
}

// AllowedActions lists every action for book in the given status.
// Loaned books additionally open in the reader and/or player depending on format.
func AllowedActions(book domain.Book, status domain.Status) []domain.Action {
	var actions []domain.Action
	if status == domain.StatusLoaned {
		if book.CanRead() {
			actions = append(actions, domain.ActionRead)
		}
		if book.CanListen() {
			actions = append(actions, domain.ActionListen)
		}
	}
	if primary := PrimaryAction(status); primary != domain.ActionNone {
		actions = append(actions, primary)
	}
	return actions
}
