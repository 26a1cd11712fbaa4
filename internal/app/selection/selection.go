// Package selection holds the client-local set of selected todo ids that
// batch operations act on.
package selection

import (
	"slices"
	"sync"
)

// Set is a concurrency-safe set of todo ids. The zero value is an empty set
// ready to use.
type Set struct {
	mu  sync.Mutex
	ids map[int64]struct{}
}

// New returns a set holding ids.
func New(ids ...int64) *Set {
	s := &Set{}
	for _, id := range ids {
		s.addLocked(id)
	}
	return s
}

// Toggle adds id if absent, removes it if present, and reports whether id is
// selected afterwards. Two toggles of the same id restore the set.
func (s *Set) Toggle(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.addLocked(id)
	return true
}

// Has reports whether id is selected.
func (s *Set) Has(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ids[id]
	return ok
}

// Remove unselects ids. Unknown ids are ignored.
func (s *Set) Remove(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.ids, id)
	}
}

// Retain drops every selected id not in keep and returns the dropped ids in
// ascending order.
func (s *Set) Retain(keep []int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ids) == 0 {
		return nil
	}

	allowed := make(map[int64]struct{}, len(keep))
	for _, id := range keep {
		allowed[id] = struct{}{}
	}

	var dropped []int64
	for id := range s.ids {
		if _, ok := allowed[id]; !ok {
			delete(s.ids, id)
			dropped = append(dropped, id)
		}
	}
	slices.Sort(dropped)
	return dropped
}

// Clear empties the set.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s *Set) IDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of selected ids.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids)
}

func (s *Set) addLocked(id int64) {
	if s.ids == nil {
		s.ids = make(map[int64]struct{})
	}
	s.ids[id] = struct{}{}
}
