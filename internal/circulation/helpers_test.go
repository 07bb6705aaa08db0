package circulation

import (
	"errors"

	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/store"
)

var errDiskFull = errors.New("quota exceeded")

type testCatalog struct {
	books []domain.Book
}

func (c testCatalog) Book(id string) (domain.Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Book{}, false
}

func (c testCatalog) Books() []domain.Book {
	return c.books
}

func newTestCatalog() testCatalog {
	return testCatalog{books: []domain.Book{
		{ID: "1", Title: "The Midnight Library", Type: domain.BookTypeBoth, Available: true},
		{ID: "2", Title: "Atomic Habits", Type: domain.BookTypeBoth, Available: true},
		{ID: "3", Title: "The Seven Husbands of Evelyn Hugo", Type: domain.BookTypeEbook, Available: false},
		{ID: "5", Title: "Project Hail Mary", Type: domain.BookTypeAudiobook, Available: true},
	}}
}

func newMemoryStore() *store.SlotStore {
	s, err := store.NewSlotStore("", "")
	if err != nil {
		panic(err)
	}
	return s
}

// failingStore accepts reads from an inner store but rejects every write.
type failingStore struct {
	domain.Store
}

func (f failingStore) Write(string, any) error { return errDiskFull }
func (f failingStore) Delete(string) error     { return errDiskFull }

type recordingObserver struct {
	results []domain.CommandResult
}

func (r *recordingObserver) OnChange(result domain.CommandResult) {
	r.results = append(r.results, result)
}
