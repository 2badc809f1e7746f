package openmap

import (
	"iter"

	"github.com/amp-labs/handle-common/mapkey"
)

// A Set is a collection of unique keys backed by an open-addressed table.
// Uniqueness, hashing and the reserved slot-marker keys come from the
// mapkey.Info the set was created with.
//
// Thread-safety: implementations are not thread-safe. Concurrent access
// must be synchronized by the caller.
type Set[K any] interface {
	// Add adds a single element to the set. Adding an element that is
	// already present is a no-op.
	Add(element K)

	// AddAll adds multiple elements to the set.
	AddAll(elements ...K)

	// Remove removes an element from the set. If the element is not in
	// the set, this is a no-op.
	Remove(element K)

	// Contains checks if an element exists in the set.
	Contains(element K) bool

	// Size returns the number of elements in the set.
	Size() int

	// Clear removes all elements from the set.
	Clear()

	// Entries returns all elements in the set as a slice. The order is
	// not guaranteed.
	Entries() []K

	// Seq returns an iterator for ranging over all elements. The
	// iteration order is non-deterministic.
	Seq() iter.Seq[K]
}

// NewSet creates a new Set whose keys are described by info.
func NewSet[K any](info mapkey.Info[K]) Set[K] {
	return NewSetWithSize(info, 0)
}

// NewSetWithSize creates a new Set with capacity for approximately size
// elements before the first rehash.
func NewSetWithSize[K any](info mapkey.Info[K], size int) Set[K] {
	return &openSet[K]{
		entries: NewMapWithSize[K, struct{}](info, size),
	}
}

// openSet implements Set over a Map with empty values.
type openSet[K any] struct {
	entries Map[K, struct{}]
}

func (s *openSet[K]) Add(element K) {
	s.entries.Add(element, struct{}{})
}

func (s *openSet[K]) AddAll(elements ...K) {
	for _, element := range elements {
		s.Add(element)
	}
}

func (s *openSet[K]) Remove(element K) {
	s.entries.Remove(element)
}

func (s *openSet[K]) Contains(element K) bool {
	return s.entries.Contains(element)
}

func (s *openSet[K]) Size() int {
	return s.entries.Size()
}

func (s *openSet[K]) Clear() {
	s.entries.Clear()
}

func (s *openSet[K]) Entries() []K {
	items := make([]K, 0, s.entries.Size())
	for element := range s.Seq() {
		items = append(items, element)
	}

	return items
}

func (s *openSet[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for element := range s.entries.Seq() {
			if !yield(element) {
				return
			}
		}
	}
}
