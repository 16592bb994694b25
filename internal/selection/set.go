// Package selection tracks selected seats and answers spatial queries over
// the normalized canvas: lasso, point hit tests and keyboard navigation.
package selection

// Set is an insertion-ordered set of seat ids.
type Set struct {
	ids   []string
	index map[string]struct{}
}

func NewSet(ids ...string) *Set {
	s := &Set{}
	s.Add(ids...)
	return s
}

// IDs returns a copy of the selected ids in selection order.
func (s *Set) IDs() []string {
	return append([]string{}, s.ids...)
}

func (s *Set) Len() int { return len(s.ids) }

func (s *Set) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Add appends ids that are not yet selected.
func (s *Set) Add(ids ...string) {
	if s.index == nil {
		s.index = make(map[string]struct{}, len(ids))
	}
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

// Remove drops ids from the selection and returns those that were selected.
func (s *Set) Remove(ids ...string) []string {
	var removed []string
	for _, id := range ids {
		if _, ok := s.index[id]; !ok {
			continue
		}
		delete(s.index, id)
		removed = append(removed, id)
	}
	if len(removed) == 0 {
		return nil
	}
	kept := s.ids[:0]
	for _, id := range s.ids {
		if _, ok := s.index[id]; ok {
			kept = append(kept, id)
		}
	}
	s.ids = kept
	return removed
}

// Toggle flips membership of id and reports whether it is now selected.
func (s *Set) Toggle(id string) bool {
	if s.Contains(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

// Replace makes ids the whole selection.
func (s *Set) Replace(ids ...string) {
	s.Clear()
	s.Add(ids...)
}

func (s *Set) Clear() {
	s.ids = nil
	s.index = nil
}

// Retain drops every id for which keep returns false and returns the
// dropped ids.
func (s *Set) Retain(keep func(id string) bool) []string {
	var drop []string
	for _, id := range s.ids {
		if !keep(id) {
			drop = append(drop, id)
		}
	}
	return s.Remove(drop...)
}
