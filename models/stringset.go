package models

import "encoding/json"

// StringSet is an insertion-ordered set of strings. It marshals to a plain
// JSON list (in insertion order) so snapshots are deterministic, and is
// rebuilt as a set on load. Used for the per-player answered-question
// tracking, which the snapshot stores as a list.
type StringSet struct {
	items []string
	index map[string]struct{}
}

// NewStringSet creates a set containing the given items (duplicates dropped)
func NewStringSet(items ...string) *StringSet {
	s := &StringSet{}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item, returning false if it was already present
func (s *StringSet) Add(item string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *StringSet) Contains(item string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

func (s *StringSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the set contents in insertion order
func (s *StringSet) Items() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *StringSet) MarshalJSON() ([]byte, error) {
	if s == nil || s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	s.items = nil
	s.index = make(map[string]struct{})
	for _, item := range items {
		s.Add(item)
	}
	return nil
}
