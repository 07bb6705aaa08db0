package circulation

import "slices"

// idSet is an insertion-ordered set of book IDs.
type idSet struct {
	ids []string
}

func newIDSet(ids []string) idSet {
	var s idSet
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// Contains reports whether id is in the set.
func (s *idSet) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s *idSet) add(id string) bool {
	if id == "" || s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *idSet) remove(id string) bool {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(slices.Clone(s.ids), i, i+1)
	return true
}

// IDs returns a copy of the members in insertion order.
func (s *idSet) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of members.
func (s *idSet) Len() int {
	return len(s.ids)
}
