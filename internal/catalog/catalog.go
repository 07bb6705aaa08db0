package catalog

import (
	"fmt"

	"github.com/mmcdole/bookshelf/internal/domain"
)

// ShelfDef selects a contiguous run of catalog books for a Discover shelf.
type ShelfDef struct {
	ID    string
	Title string
	Start int
	End   int // exclusive
}

// Catalog is the static, read-only book list. Implements domain.CatalogReader.
type Catalog struct {
	books   []domain.Book
	byID    map[string]int
	shelves []ShelfDef
}

// New creates a catalog over books. Later duplicates of an ID are ignored.
func New(books []domain.Book, shelves ...ShelfDef) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(books)), shelves: shelves}
	for _, b := range books {
		if _, dup := c.byID[b.ID]; dup || b.ID == "" {
			continue
		}
		c.byID[b.ID] = len(c.books)
		c.books = append(c.books, b)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultBooks(), defaultShelves...)
}

// Book looks up a book by ID.
func (c *Catalog) Book(id string) (domain.Book, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Book{}, false
	}
	return c.books[i], true
}

// Lookup is Book with an error for unknown IDs.
func (c *Catalog) Lookup(id string) (domain.Book, error) {
	b, ok := c.Book(id)
	if !ok {
		return domain.Book{}, fmt.Errorf("%w: %q", domain.ErrBookNotFound, id)
	}
	return b, nil
}

// Books returns every book in catalog order.
func (c *Catalog) Books() []domain.Book {
	out := make([]domain.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Shelves materializes the shelf definitions, clamping ranges to the catalog.
func (c *Catalog) Shelves() []domain.Shelf {
	shelves := make([]domain.Shelf, 0, len(c.shelves))
	for _, def := range c.shelves {
		start, end := clamp(def.Start, len(c.books)), clamp(def.End, len(c.books))
		if start > end {
			start = end
		}
		books := make([]domain.Book, end-start)
		copy(books, c.books[start:end])
		shelves = append(shelves, domain.Shelf{ID: def.ID, Title: def.Title, Books: books})
	}
	return shelves
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
