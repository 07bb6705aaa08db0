package tui

import (
	"math/rand/v2"
	"time"
)

// loanPeriod is the mock lending period shown on the Loans page
const loanPeriod = 14 * 24 * time.Hour

var holdWaits = []string{"2 weeks", "1 month", "6 weeks", "2 months"}

// holdEstimate is placeholder queue data for a held book. It is not
// persisted and is regenerated each session.
type holdEstimate struct {
	Position int
	Wait     string
}

func newHoldEstimate() holdEstimate {
	return holdEstimate{
		Position: rand.IntN(50) + 1,
		Wait:     holdWaits[rand.IntN(len(holdWaits))],
	}
}

// syncHoldEstimates keeps one estimate per held ID, generating new ones on
// first sight and dropping those no longer held.
func syncHoldEstimates(estimates map[string]holdEstimate, heldIDs []string) map[string]holdEstimate {
	next := make(map[string]holdEstimate, len(heldIDs))
	for _, id := range heldIDs {
		if e, ok := estimates[id]; ok {
			next[id] = e
			continue
		}
		next[id] = newHoldEstimate()
	}
	return next
}

// dueDate returns the mock due date for a loan viewed at now
func dueDate(now time.Time) time.Time {
	return now.Add(loanPeriod)
}
