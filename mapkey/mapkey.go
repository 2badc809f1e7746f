// Package mapkey defines the key contract an open-addressed hash table
// requires of its key type, and adapters that register index handles as
// keys.
//
// Open addressing stores keys directly in the slot array, so the key
// representation must reserve two values of its own: one marking a slot that
// was never used, and one marking a slot whose entry was deleted (the
// tombstone). Info packages those two reserved keys together with hashing
// and equality. A table implementation talks only to Info, never to the key
// type directly.
package mapkey

import (
	"encoding/binary"
	"math"

	"github.com/amp-labs/handle-common/compare"
	"github.com/amp-labs/handle-common/handle"
	"github.com/zeebo/xxh3"
)

// Reserved indexes for the two slot-marker keys. They sit at the extremes of
// the int32 range, away from handle.Invalid and from the indexes real
// containers produce. A live key wrapping one of these values makes table
// behavior undefined; that is an accepted constraint of the reserved-value
// scheme, not something the adapter checks.
const (
	emptyIndex     int32 = math.MaxInt32
	tombstoneIndex int32 = math.MinInt32
)

// Info supplies the four operations an open-addressed hash table needs from
// its key type K.
//
// EmptyKey and TombstoneKey return the two reserved slot-marker keys. They
// are distinct from each other, and both must stay distinct from every live
// key the table ever stores.
type Info[K any] interface {
	// EmptyKey returns the key marking a never-used slot.
	EmptyKey() K

	// TombstoneKey returns the key marking a deleted slot.
	TombstoneKey() K

	// Hash returns the hash of key. Equal keys hash identically.
	Hash(key K) uint64

	// Equal reports whether a and b are the same key.
	Equal(a, b K) bool
}

// Key constrains the types this package can adapt: a key wraps a 32-bit
// index and compares equal exactly when the indexes are equal.
type Key[K any] interface {
	compare.Comparable[K]

	Index() int32
}

// For registers a key type, adapting it to Info. fromIndex must be the
// type's explicit constructor; it is used to build the two reserved keys.
// Registration is the only per-type code a key type needs:
//
//	info := mapkey.For(handle.New[inst])
func For[K Key[K]](fromIndex func(index int32) K) Info[K] {
	return info[K]{fromIndex: fromIndex}
}

// ForHandle returns the Info registration for handle.ID[M].
func ForHandle[M any]() Info[handle.ID[M]] {
	return For(handle.New[M])
}

// ForOrdered returns the Info registration for handle.Ordered[M].
func ForOrdered[M any]() Info[handle.Ordered[M]] {
	return For(handle.NewOrdered[M])
}

type info[K Key[K]] struct {
	fromIndex func(index int32) K
}

func (i info[K]) EmptyKey() K {
	return i.fromIndex(emptyIndex)
}

func (i info[K]) TombstoneKey() K {
	return i.fromIndex(tombstoneIndex)
}

// Hash derives the hash purely from the wrapped index, so two equal keys
// always hash identically and the distribution matches hashing the plain
// integer.
func (i info[K]) Hash(key K) uint64 {
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], uint32(key.Index()))

	return xxh3.Hash(buf[:])
}

func (i info[K]) Equal(a, b K) bool {
	return a.Equals(b)
}
