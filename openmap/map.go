// Package openmap provides an open-addressed hash map and set. Key types
// are described by a mapkey.Info registration, which supplies the reserved
// empty and tombstone keys the slot array is marked with, plus hashing and
// equality; the table never inspects keys directly.
//
// Unlike chained or string-hashed tables there is no collision error:
// probing resolves hash collisions, so no operation can fail. The one
// unchecked precondition is that live keys never equal the registration's
// empty or tombstone key; storing such a key makes table behavior undefined.
package openmap

import (
	"iter"

	"github.com/amp-labs/handle-common/mapkey"
	"github.com/amp-labs/handle-common/zero"
)

// minCapacity is the smallest slot array allocated. Capacities are always
// powers of two so probing can mask instead of mod.
const minCapacity = 8

// Map is a generic open-addressed hash map for storing key-value pairs.
// Keys are compared and hashed through the mapkey.Info the map was created
// with.
//
// Thread-safety: implementations are not thread-safe. Concurrent access
// must be synchronized by the caller.
type Map[K, V any] interface {
	// Get retrieves the value for the given key.
	// If the key exists, returns the value with found=true; otherwise
	// returns a zero value with found=false.
	Get(key K) (value V, found bool)

	// GetOrElse retrieves the value for the given key, or returns
	// defaultValue if the key doesn't exist.
	GetOrElse(key K, defaultValue V) V

	// Add inserts or updates a key-value pair in the map.
	// If the key already exists, its value is replaced.
	Add(key K, value V)

	// Remove deletes the key-value pair from the map.
	// If the key doesn't exist, this is a no-op.
	Remove(key K)

	// Contains checks if the given key exists in the map.
	Contains(key K) bool

	// Size returns the number of key-value pairs currently stored.
	Size() int

	// Clear removes all key-value pairs from the map, leaving it empty.
	Clear()

	// Seq returns an iterator for ranging over all key-value pairs.
	// The iteration order is non-deterministic. Compatible with Go 1.23+
	// range-over-func syntax: for key, value := range m.Seq() { ... }
	Seq() iter.Seq2[K, V]

	// Keys returns a set containing all keys from the map. The returned
	// set is a new instance; modifying it does not affect the map.
	Keys() Set[K]

	// ForEach applies the given function to each key-value pair. The
	// iteration order is non-deterministic.
	ForEach(f func(key K, value V))
}

// NewMap creates a new open-addressed Map whose keys are described by info.
//
// The returned map is not thread-safe. Concurrent access must be
// synchronized by the caller.
func NewMap[K, V any](info mapkey.Info[K]) Map[K, V] {
	return NewMapWithSize[K, V](info, 0)
}

// NewMapWithSize creates a new open-addressed Map with capacity for
// approximately size entries before the first rehash. Use it when the
// expected map size is known in advance; the map still grows dynamically
// past the hint.
func NewMapWithSize[K, V any](info mapkey.Info[K], size int) Map[K, V] {
	m := &openMap[K, V]{
		info:  info,
		empty: info.EmptyKey(),
		tomb:  info.TombstoneKey(),
	}
	m.reset(capacityFor(size))

	return m
}

// openMap is the concrete Map implementation: a flat slot array probed with
// triangular numbers. Deleted entries leave a tombstone key in place so
// later probes keep walking past them; tombstones are dropped on rehash.
type openMap[K, V any] struct {
	info  mapkey.Info[K]
	empty K // cached info.EmptyKey()
	tomb  K // cached info.TombstoneKey()

	slots []slot[K, V]
	live  int // slots holding an entry
	dead  int // slots holding a tombstone
}

type slot[K, V any] struct {
	key   K
	value V
}

// capacityFor returns the smallest power-of-two capacity that fits size
// entries under the load-factor ceiling.
func capacityFor(size int) int {
	capacity := minCapacity
	for size*4 > capacity*3 {
		capacity *= 2
	}

	return capacity
}

// reset discards the slot array and allocates a fresh one of the given
// capacity, every slot marked empty.
func (m *openMap[K, V]) reset(capacity int) {
	m.slots = make([]slot[K, V], capacity)
	for i := range m.slots {
		m.slots[i].key = m.empty
	}

	m.live = 0
	m.dead = 0
}

// find probes for key. It returns the slot holding the key with found=true,
// or, with found=false, the slot an insert of that key should use: the
// first tombstone passed, otherwise the empty slot that ended the probe.
//
// Probing adds 1, 2, 3, ... to the position each step (triangular numbers),
// which visits every slot of a power-of-two table exactly once.
func (m *openMap[K, V]) find(key K) (pos int, found bool) {
	mask := len(m.slots) - 1
	pos = int(m.info.Hash(key)) & mask
	reuse := -1

	for step := 1; ; step++ {
		stored := m.slots[pos].key

		switch {
		case m.info.Equal(stored, key):
			return pos, true
		case m.info.Equal(stored, m.empty):
			if reuse >= 0 {
				return reuse, false
			}

			return pos, false
		case reuse < 0 && m.info.Equal(stored, m.tomb):
			reuse = pos
		}

		pos = (pos + step) & mask
	}
}

// grow rehashes when the table is about to exceed 3/4 occupancy, doubling
// the capacity when live entries alone justify it and otherwise keeping the
// capacity and only purging tombstones. Returns true if a rehash happened.
func (m *openMap[K, V]) grow() bool {
	if (m.live+m.dead+1)*4 <= len(m.slots)*3 {
		return false
	}

	capacity := len(m.slots)
	if (m.live+1)*2 > capacity {
		capacity *= 2
	}

	old := m.slots
	m.reset(capacity)

	for i := range old {
		key := old[i].key
		if m.info.Equal(key, m.empty) || m.info.Equal(key, m.tomb) {
			continue
		}

		pos, _ := m.find(key)
		m.slots[pos] = old[i]
		m.live++
	}

	return true
}

func (m *openMap[K, V]) Get(key K) (value V, found bool) {
	pos, found := m.find(key)
	if !found {
		return zero.Value[V](), false
	}

	return m.slots[pos].value, true
}

func (m *openMap[K, V]) GetOrElse(key K, defaultValue V) V {
	value, found := m.Get(key)
	if !found {
		return defaultValue
	}

	return value
}

func (m *openMap[K, V]) Add(key K, value V) {
	pos, found := m.find(key)
	if found {
		m.slots[pos].value = value

		return
	}

	if m.grow() {
		pos, _ = m.find(key)
	}

	if m.info.Equal(m.slots[pos].key, m.tomb) {
		m.dead--
	}

	m.slots[pos] = slot[K, V]{key: key, value: value}
	m.live++
}

func (m *openMap[K, V]) Remove(key K) {
	pos, found := m.find(key)
	if !found {
		return
	}

	m.slots[pos] = slot[K, V]{key: m.tomb, value: zero.Value[V]()}
	m.live--
	m.dead++
}

func (m *openMap[K, V]) Contains(key K) bool {
	_, found := m.find(key)

	return found
}

func (m *openMap[K, V]) Size() int {
	return m.live
}

func (m *openMap[K, V]) Clear() {
	m.reset(minCapacity)
}

func (m *openMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			key := m.slots[i].key
			if m.info.Equal(key, m.empty) || m.info.Equal(key, m.tomb) {
				continue
			}

			if !yield(key, m.slots[i].value) {
				return
			}
		}
	}
}

func (m *openMap[K, V]) Keys() Set[K] {
	keys := NewSetWithSize(m.info, m.live)
	for key := range m.Seq() {
		keys.Add(key)
	}

	return keys
}

func (m *openMap[K, V]) ForEach(f func(key K, value V)) {
	for key, value := range m.Seq() {
		f(key, value)
	}
}
