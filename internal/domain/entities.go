package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookType identifies which formats a title is published in
type BookType string

const (
	BookTypeEbook     BookType = "ebook"
	BookTypeAudiobook BookType = "audiobook"
	BookTypeBoth      BookType = "both"
)

// Book is a catalog record. The core never mutates it.
type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	CoverURL    string   `json:"coverUrl"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	PublishDate string   `json:"publishDate"`        // YYYY-MM-DD
	Duration    string   `json:"duration,omitempty"` // Audiobook runtime, e.g. "5h 35m"
	Pages       int      `json:"pages,omitempty"`
	Type        BookType `json:"type"`
	Available   bool     `json:"available"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`
}

// CanRead returns true if the book has an ebook edition
func (b Book) CanRead() bool {
	return b.Type != BookTypeAudiobook
}

// CanListen returns true if the book has an audiobook edition
func (b Book) CanListen() bool {
	return b.Type != BookTypeEbook
}

// PublishYear returns the year component of PublishDate (0 if unparseable)
func (b Book) PublishYear() int {
	year, _, _ := strings.Cut(b.PublishDate, "-")
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return y
}

// AudioDuration parses Duration ("16h 10m") into a time.Duration.
// Returns 0 when the book has no audio runtime.
func (b Book) AudioDuration() time.Duration {
	if b.Duration == "" {
		return 0
	}
	d, err := time.ParseDuration(strings.ReplaceAll(b.Duration, " ", ""))
	if err != nil {
		return 0
	}
	return d
}

// FormatLabel returns a short format description for list rows
func (b Book) FormatLabel() string {
	switch b.Type {
	case BookTypeAudiobook:
		if b.Duration != "" {
			return "audio " + b.Duration
		}
		return "audio"
	case BookTypeEbook:
		if b.Pages > 0 {
			return fmt.Sprintf("%dp", b.Pages)
		}
		return "ebook"
	default:
		return "ebook + audio"
	}
}

// Shelf is a named, ordered selection of catalog books
type Shelf struct {
	ID    string
	Title string
	Books []Book
}
