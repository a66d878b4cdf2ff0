package database

import (
	"slices"
	"testing"
)

func TestStringSet(t *testing.T) {
	t.Run("deduplicates and sorts", func(t *testing.T) {
		s := NewStringSet("iron", "nickel", "iron", "carbon")
		want := []string{"carbon", "iron", "nickel"}
		if !slices.Equal(s.Slice(), want) {
			t.Errorf("got %v, want %v", s.Slice(), want)
		}
		if s.Len() != 3 {
			t.Errorf("Len = %d, want 3", s.Len())
		}
	})

	t.Run("ignores empty values", func(t *testing.T) {
		s := NewStringSet("", "A", "")
		if s.Len() != 1 || !s.Has("A") {
			t.Errorf("got %v", s.Slice())
		}
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var s StringSet
		if s.Len() != 0 || s.Has("A") {
			t.Error("zero value not empty")
		}
		s.Add("B")
		if !s.Has("B") {
			t.Error("Add on zero value lost the item")
		}
	})

	t.Run("storage round trip", func(t *testing.T) {
		s := NewStringSet("B", "A", "C")
		got := decodeStringSet(s.encode())
		if !slices.Equal(got.Slice(), s.Slice()) {
			t.Errorf("round trip changed contents: %v vs %v", got.Slice(), s.Slice())
		}
	})

	t.Run("empty encoding decodes to empty set", func(t *testing.T) {
		if got := decodeStringSet(""); got.Len() != 0 {
			t.Errorf("got %v", got.Slice())
		}
	})
}
