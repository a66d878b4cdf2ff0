package database

import (
	"slices"
	"strings"
)

// StringSet is an ordered, deduplicated set of strings used for
// accumulating values like planet materials and parent-star letters.
// The zero value is an empty set ready for use.
type StringSet struct {
	items []string
}

// NewStringSet builds a set from the given values.
func NewStringSet(values ...string) StringSet {
	var s StringSet
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value, keeping the set sorted. Duplicates are ignored.
func (s *StringSet) Add(value string) {
	if value == "" {
		return
	}
	idx, found := slices.BinarySearch(s.items, value)
	if found {
		return
	}
	s.items = slices.Insert(s.items, idx, value)
}

// Has reports whether the value is in the set.
func (s *StringSet) Has(value string) bool {
	_, found := slices.BinarySearch(s.items, value)
	return found
}

// Len returns the number of values in the set.
func (s *StringSet) Len() int {
	return len(s.items)
}

// Slice returns the values in sorted order. The returned slice must
// not be modified.
func (s *StringSet) Slice() []string {
	return s.items
}

// encode joins the set into its storage representation.
func (s *StringSet) encode() string {
	return strings.Join(s.items, ",")
}

// decodeStringSet rebuilds a set from its storage representation.
func decodeStringSet(encoded string) StringSet {
	if encoded == "" {
		return StringSet{}
	}
	return NewStringSet(strings.Split(encoded, ",")...)
}
