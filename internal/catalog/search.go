package catalog

import (
	"strings"

	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/sahilm/fuzzy"
)

// SearchResult is a matched book with highlight positions in its title.
type SearchResult struct {
	Book           domain.Book
	MatchedIndexes []int // Byte positions in Book.Title
	Score          int   // Higher is better
}

// bookIndex implements sahilm/fuzzy.Source over "title author genre".
type bookIndex struct {
	books []domain.Book
	keys  []string
}

func newBookIndex(books []domain.Book) *bookIndex {
	keys := make([]string, len(books))
	for i, b := range books {
		keys[i] = strings.ToLower(b.Title + " " + b.Author + " " + b.Genre)
	}
	return &bookIndex{books: books, keys: keys}
}

// String returns the searchable key at index i (implements fuzzy.Source)
func (idx *bookIndex) String(i int) string { return idx.keys[i] }

// Len returns the number of books (implements fuzzy.Source)
func (idx *bookIndex) Len() int { return len(idx.books) }

// Search fuzzy-matches query against title, author and genre.
// An empty query returns every book in catalog order.
func Search(query string, books []domain.Book) []SearchResult {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		results := make([]SearchResult, len(books))
		for i, b := range books {
			results[i] = SearchResult{Book: b}
		}
		return results
	}

	idx := newBookIndex(books)
	matches := fuzzy.FindFrom(query, idx)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		book := idx.books[m.Index]
		var inTitle []int
		for _, pos := range m.MatchedIndexes {
			if pos < len(book.Title) {
				inTitle = append(inTitle, pos)
			}
		}
		results[i] = SearchResult{Book: book, MatchedIndexes: inTitle, Score: m.Score}
	}
	return results
}
