package circulation

import (
	"testing"

	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, observers ...domain.ChangeObserver) (*Service, domain.Store) {
	t.Helper()
	st := newMemoryStore()
	t.Cleanup(func() { st.Close() })
	return NewService(st, newTestCatalog(), nil, observers...), st
}

func Test_Service_BorrowAndReturn(t *testing.T) {
	svc, st := newTestService(t)

	result := svc.Borrow("5")
	assert.True(t, result.Changed)
	assert.NoError(t, result.Err)
	assert.Equal(t, domain.StatusLoaned, result.Status)
	assert.Equal(t, []string{"5"}, svc.LoanIDs())
	assert.Equal(t, domain.StatusLoaned, svc.Status("5"))

	var persisted []string
	require.True(t, st.Read(KeyLoans, &persisted))
	assert.Equal(t, []string{"5"}, persisted)

	result = svc.Return("5")
	assert.True(t, result.Changed)
	assert.Empty(t, svc.LoanIDs())
	assert.Equal(t, domain.StatusAvailableToBorrow, svc.Status("5"))

	require.True(t, st.Read(KeyLoans, &persisted))
	assert.Empty(t, persisted)
}

func Test_Service_HoldBlocksBorrow(t *testing.T) {
	svc, _ := newTestService(t)

	result := svc.PlaceHold("3")
	assert.True(t, result.Changed)
	assert.Equal(t, []string{"3"}, svc.HoldIDs())

	result = svc.Borrow("3")
	assert.False(t, result.Changed)
	assert.Equal(t, domain.StatusOnHold, result.Status)
	assert.Empty(t, svc.LoanIDs())

	result = svc.CancelHold("3")
	assert.True(t, result.Changed)
	assert.Empty(t, svc.HoldIDs())
	assert.Equal(t, domain.StatusUnavailableCanHold, svc.Status("3"))
}

func Test_Service_PreconditionViolationsAreNoOps(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		run  func() domain.CommandResult
	}{
		{name: "hold_on_available_book", run: func() domain.CommandResult { return svc.PlaceHold("1") }},
		{name: "borrow_unavailable_book", run: func() domain.CommandResult { return svc.Borrow("3") }},
		{name: "borrow_unknown_book", run: func() domain.CommandResult { return svc.Borrow("404") }},
		{name: "return_not_loaned", run: func() domain.CommandResult { return svc.Return("2") }},
		{name: "cancel_absent_hold", run: func() domain.CommandResult { return svc.CancelHold("3") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.run()
			assert.False(t, result.Changed)
			assert.NoError(t, result.Err)
		})
	}

	assert.Empty(t, svc.LoanIDs())
	assert.Empty(t, svc.HoldIDs())
}

func Test_Service_BorrowTwice(t *testing.T) {
	svc, _ := newTestService(t)

	assert.True(t, svc.Borrow("1").Changed)
	assert.False(t, svc.Borrow("1").Changed)
	assert.Equal(t, []string{"1"}, svc.LoanIDs())
}

func Test_Service_LoansAndHoldsNeverOverlap(t *testing.T) {
	svc, _ := newTestService(t)

	ids := []string{"1", "2", "3", "5", "404"}
	for round := 0; round < 3; round++ {
		for _, id := range ids {
			svc.Borrow(id)
			svc.PlaceHold(id)
			if round == 1 {
				svc.Return(id)
				svc.PlaceHold(id)
				svc.Borrow(id)
			}
			if round == 2 {
				svc.CancelHold(id)
				svc.Borrow(id)
			}

			for _, loaned := range svc.LoanIDs() {
				assert.NotContains(t, svc.HoldIDs(), loaned)
			}
		}
	}
}

func Test_Service_Tags(t *testing.T) {
	svc, st := newTestService(t)

	result := svc.AddTag("1", "Favorites")
	assert.True(t, result.Changed)
	assert.Equal(t, "favorites", result.Tag)

	svc.AddTag("2", "favorites")
	svc.AddTag("2", " To Read ")

	assert.Equal(t, []string{"1", "2"}, svc.BooksForTag("favorites"))
	assert.Equal(t, []string{"favorites", "to read"}, svc.AllTags())
	assert.Equal(t, []string{"favorites", "to read"}, svc.TagsForBook("2"))

	books := svc.BooksWithTag("favorites")
	require.Len(t, books, 2)
	assert.Equal(t, "The Midnight Library", books[0].Title)

	var persisted []TagRecord
	require.True(t, st.Read(KeyTags, &persisted))
	assert.Equal(t, []TagRecord{
		{BookID: "1", Tags: []string{"favorites"}},
		{BookID: "2", Tags: []string{"favorites", "to read"}},
	}, persisted)

	assert.True(t, svc.RemoveTag("1", "favorites").Changed)
	assert.Empty(t, svc.TagsForBook("1"))
	assert.False(t, svc.AddTag("1", "  ").Changed)
}

func Test_Service_ReloadsPersistedState(t *testing.T) {
	st := newMemoryStore()
	defer st.Close()

	first := NewService(st, newTestCatalog(), nil)
	first.Borrow("1")
	first.PlaceHold("3")
	first.AddTag("5", "recommended")

	second := NewService(st, newTestCatalog(), nil)
	assert.Equal(t, []string{"1"}, second.LoanIDs())
	assert.Equal(t, []string{"3"}, second.HoldIDs())
	assert.Equal(t, []string{"recommended"}, second.TagsForBook("5"))
}

func Test_Service_MalformedStateFallsBackToEmpty(t *testing.T) {
	st := newMemoryStore()
	defer st.Close()

	require.NoError(t, st.Write(KeyLoans, map[string]string{"not": "a list"}))
	require.NoError(t, st.Write(KeyHolds, 42))
	require.NoError(t, st.Write(KeyTags, []string{"wrong", "shape"}))

	svc := NewService(st, newTestCatalog(), nil)
	assert.Empty(t, svc.LoanIDs())
	assert.Empty(t, svc.HoldIDs())
	assert.Empty(t, svc.AllTags())

	assert.True(t, svc.Borrow("1").Changed)
}

func Test_Service_WriteFailureKeepsSessionState(t *testing.T) {
	svc := NewService(failingStore{Store: newMemoryStore()}, newTestCatalog(), nil)

	result := svc.Borrow("2")
	assert.True(t, result.Changed)
	assert.ErrorIs(t, result.Err, errDiskFull)
	assert.Equal(t, []string{"2"}, svc.LoanIDs())
	assert.Equal(t, domain.StatusLoaned, svc.Status("2"))

	result = svc.AddTag("2", "dnf")
	assert.ErrorIs(t, result.Err, errDiskFull)
	assert.Equal(t, []string{"dnf"}, svc.TagsForBook("2"))
}

func Test_Service_StaleIDsCanBeRemoved(t *testing.T) {
	st := newMemoryStore()
	defer st.Close()
	require.NoError(t, st.Write(KeyLoans, []string{"gone"}))

	svc := NewService(st, newTestCatalog(), nil)
	result := svc.Return("gone")

	assert.True(t, result.Changed)
	assert.Equal(t, domain.StatusUnknown, result.Status)
	assert.Empty(t, svc.LoanIDs())
	assert.Empty(t, svc.Loans())
}

func Test_Service_LoansAndHoldsInCatalogOrder(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Borrow("5")
	svc.Borrow("1")

	loans := svc.Loans()
	require.Len(t, loans, 2)
	assert.Equal(t, "1", loans[0].ID)
	assert.Equal(t, "5", loans[1].ID)
	assert.Equal(t, []string{"5", "1"}, svc.LoanIDs())
}

func Test_Service_NotifiesObserversOnChangeOnly(t *testing.T) {
	obs := &recordingObserver{}
	svc, _ := newTestService(t, obs)

	svc.Borrow("1")
	svc.Borrow("1")
	svc.AddTag("1", "dnf")

	late := &recordingObserver{}
	svc.Subscribe(late)
	svc.Return("1")

	require.Len(t, obs.results, 3)
	assert.Equal(t, domain.ActionBorrow, obs.results[0].Action)
	assert.Equal(t, domain.ActionAddTag, obs.results[1].Action)
	assert.Equal(t, "dnf", obs.results[1].Tag)
	assert.Equal(t, domain.ActionReturn, obs.results[2].Action)
	assert.Equal(t, domain.StatusAvailableToBorrow, obs.results[2].Status)

	require.Len(t, late.results, 1)
}

func Test_Service_Reset(t *testing.T) {
	obs := &recordingObserver{}
	svc, st := newTestService(t, obs)

	svc.Borrow("1")
	svc.PlaceHold("3")
	svc.AddTag("2", "dnf")

	result := svc.Reset()
	assert.True(t, result.Changed)
	assert.NoError(t, result.Err)

	assert.Empty(t, svc.LoanIDs())
	assert.Empty(t, svc.HoldIDs())
	assert.Empty(t, svc.AllTags())

	var ids []string
	assert.False(t, st.Read(KeyLoans, &ids))
	assert.Equal(t, domain.ActionReset, obs.results[len(obs.results)-1].Action)
}

func Test_Service_Actions(t *testing.T) {
	svc, _ := newTestService(t)
	cat := newTestCatalog()

	book, _ := cat.Book("5")
	assert.Equal(t, []domain.Action{domain.ActionBorrow}, svc.Actions(book))

	svc.Borrow("5")
	assert.Equal(t, []domain.Action{domain.ActionListen, domain.ActionReturn}, svc.Actions(book))
}

func Test_Service_ObserverFunc(t *testing.T) {
	var tags []string
	svc, _ := newTestService(t, domain.ObserverFunc(func(r domain.CommandResult) {
		tags = append(tags, r.Tag)
	}))

	svc.AddTag("1", "Finished")
	svc.AddTag("1", "finished")
	svc.RemoveTag("1", "FINISHED")

	assert.Equal(t, []string{"finished", "finished"}, tags)
}
