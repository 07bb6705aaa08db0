package circulation

import (
	"slices"
	"sort"
	"strings"
)

// TagRecord is the persisted form of one book's tags.
type TagRecord struct {
	BookID string   `json:"bookId"`
	Tags   []string `json:"tags"`
}

// PresetTags are offered for one-key tagging.
var PresetTags = []string{"favorites", "to read", "finished", "dnf", "recommended"}

// NormalizeTag trims and lower-cases a raw tag.
func NormalizeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// TagIndex maps book IDs to tag sets. Records are kept in the order each
// book was first tagged; a record never has an empty tag set.
type TagIndex struct {
	records []TagRecord
}

// NewTagIndex rebuilds an index from persisted records, normalizing tags and
// dropping empty, duplicate, or tagless entries.
func NewTagIndex(records []TagRecord) *TagIndex {
	idx := &TagIndex{}
	for _, r := range records {
		for _, t := range r.Tags {
			idx.AddTag(r.BookID, t)
		}
	}
	return idx
}

// AddTag attaches the normalized tag to bookID. Returns false if the tag
// normalizes to empty or is already present.
func (idx *TagIndex) AddTag(bookID, rawTag string) bool {
	tag := NormalizeTag(rawTag)
	if tag == "" || bookID == "" {
		return false
	}

	i := idx.find(bookID)
	if i < 0 {
		idx.records = append(idx.records, TagRecord{BookID: bookID, Tags: []string{tag}})
		return true
	}
	if slices.Contains(idx.records[i].Tags, tag) {
		return false
	}
	idx.records[i].Tags = append(idx.records[i].Tags, tag)
	return true
}

// RemoveTag detaches tag from bookID, deleting the record once it is empty.
func (idx *TagIndex) RemoveTag(bookID, tag string) bool {
	tag = NormalizeTag(tag)
	i := idx.find(bookID)
	if i < 0 {
		return false
	}

	tags := idx.records[i].Tags
	j := slices.Index(tags, tag)
	if j < 0 {
		return false
	}

	tags = append(tags[:j:j], tags[j+1:]...)
	if len(tags) == 0 {
		idx.records = append(idx.records[:i:i], idx.records[i+1:]...)
		return true
	}
	idx.records[i].Tags = tags
	return true
}

// TagsForBook returns the book's tags in the order they were added.
func (idx *TagIndex) TagsForBook(bookID string) []string {
	i := idx.find(bookID)
	if i < 0 {
		return []string{}
	}
	out := make([]string, len(idx.records[i].Tags))
	copy(out, idx.records[i].Tags)
	return out
}

// BooksForTag returns every book ID carrying tag, in first-tagged order.
func (idx *TagIndex) BooksForTag(tag string) []string {
	tag = NormalizeTag(tag)
	ids := []string{}
	for _, r := range idx.records {
		if slices.Contains(r.Tags, tag) {
			ids = append(ids, r.BookID)
		}
	}
	return ids
}

// AllTags returns the sorted union of all tags.
func (idx *TagIndex) AllTags() []string {
	seen := make(map[string]bool)
	all := []string{}
	for _, r := range idx.records {
		for _, t := range r.Tags {
			if !seen[t] {
				seen[t] = true
				all = append(all, t)
			}
		}
	}
	sort.Strings(all)
	return all
}

// Records returns a deep copy suitable for persistence.
func (idx *TagIndex) Records() []TagRecord {
	out := make([]TagRecord, len(idx.records))
	for i, r := range idx.records {
		tags := make([]string, len(r.Tags))
		copy(tags, r.Tags)
		out[i] = TagRecord{BookID: r.BookID, Tags: tags}
	}
	return out
}

// Len returns the number of tagged books.
func (idx *TagIndex) Len() int {
	return len(idx.records)
}

func (idx *TagIndex) find(bookID string) int {
	for i, r := range idx.records {
		if r.BookID == bookID {
			return i
		}
	}
	return -1
}
