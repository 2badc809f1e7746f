// Package handle provides small, copyable handle types for referring to
// elements stored in externally-owned, vector-like containers, without using
// pointers or references.
//
// # Overview
//
// A handle wraps a single 32-bit index. One value, [Invalid] (-1), is
// reserved to mean "no element"; [ID.IsValid] checks for it. Handles are
// opaque identifiers, not numbers: no arithmetic is exposed, and the only
// way back to the integer is [ID.Index].
//
// Two variants exist. [ID] supports equality only. [Ordered] additionally
// implements [github.com/amp-labs/handle-common/compare.Orderable], for
// handle types where index order carries meaning (insertion order, emission
// order). Each container's handle type opts into ordering by choosing
// Ordered instead of ID.
//
// # Distinct handle types per container
//
// Both variants take a marker type parameter. Handles into different
// containers use different markers, so mixing them up is a compile error
// even though every handle shares the same representation:
//
//	type inst struct{}
//	type block struct{}
//
//	type InstID = handle.Ordered[inst]
//	type BlockID = handle.ID[block]
//
//	a := handle.NewOrdered[inst](3)
//	b := handle.New[block](3)
//	// a.Equals(b) does not compile: InstID and BlockID are distinct types.
//
// Defining a new handle type is exactly that pair of lines; equality,
// ordering and rendering come from the shared implementation.
//
// # Construction and the zero value
//
// Handles are built with [New] or [NewOrdered] from an explicit index. The
// index is stored with a +1 bias so that the zero value of either type is
// the invalid handle: there is no way to obtain a valid handle without
// supplying a value.
//
// # Hash-table keys
//
// Any handle type can serve as an open-addressed hash-table key through the
// [github.com/amp-labs/handle-common/mapkey] registrations ForHandle and
// ForOrdered.
//
// # Thread safety
//
// Handles are immutable plain values. They can be read, copied, compared and
// hashed concurrently without synchronization.
package handle
