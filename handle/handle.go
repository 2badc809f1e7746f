package handle

import (
	"io"
	"strconv"

	"github.com/amp-labs/handle-common/compare"
)

// Invalid is the one reserved index value meaning "no element". Every other
// int32, including other negative values, is a potentially valid index.
const Invalid int32 = -1

// invalidText is the rendering of handles that refer to no element.
const invalidText = "<invalid>"

// ID is a lightweight handle to an element of an externally-owned,
// vector-like container. It is designed to be passed and stored by value:
// it wraps a single 32-bit index, is immutable after construction, and owns
// nothing.
//
// The marker type M makes handles into different containers distinct at
// compile time even though they share one representation. See the package
// documentation for the marker pattern.
//
// ID supports equality only. Use Ordered for handle types where relational
// comparison is meaningful.
type ID[M any] struct {
	// Stored with a +1 bias so that the zero value is the invalid handle.
	index int32
}

var _ compare.Comparable[ID[struct{}]] = ID[struct{}]{}

// New constructs a handle wrapping index. The index must always be supplied
// explicitly; pass Invalid for a handle that refers to no element.
func New[M any](index int32) ID[M] {
	return ID[M]{index: index + 1}
}

// Index returns the wrapped index value.
func (h ID[M]) Index() int32 {
	return h.index - 1
}

// IsValid reports whether the handle refers to an element, i.e. whether its
// index differs from Invalid.
func (h ID[M]) IsValid() bool {
	return h.index != 0
}

// Equals reports whether both handles wrap the same index. Handles with
// different markers cannot be compared; that is a compile error, not a
// runtime check.
func (h ID[M]) Equals(other ID[M]) bool {
	return h.index == other.index
}

// Render writes the handle's textual form to w: the decimal index when the
// handle is valid, the literal "<invalid>" otherwise. The text is for
// diagnostics and debug output, not a wire format.
func (h ID[M]) Render(w io.Writer) error {
	return render(w, h.index)
}

// String returns the same text Render writes.
func (h ID[M]) String() string {
	return format(h.index)
}

// Ordered is an ID whose index order is semantically meaningful, such as
// insertion order over emitted items. It has the same storage, construction
// and validity semantics as ID, and additionally implements
// compare.Orderable, opting its instantiations into compare.Less and the
// other relational operators.
//
// Ordering compares indexes numerically with no special casing of Invalid;
// callers that care must check IsValid before comparing.
type Ordered[M any] struct {
	// Stored with a +1 bias so that the zero value is the invalid handle.
	index int32
}

var _ compare.Orderable[Ordered[struct{}]] = Ordered[struct{}]{}

// NewOrdered constructs an ordered handle wrapping index. The index must
// always be supplied explicitly; pass Invalid for a handle that refers to no
// element.
func NewOrdered[M any](index int32) Ordered[M] {
	return Ordered[M]{index: index + 1}
}

// Index returns the wrapped index value.
func (h Ordered[M]) Index() int32 {
	return h.index - 1
}

// IsValid reports whether the handle refers to an element, i.e. whether its
// index differs from Invalid.
func (h Ordered[M]) IsValid() bool {
	return h.index != 0
}

// Equals reports whether both handles wrap the same index.
func (h Ordered[M]) Equals(other Ordered[M]) bool {
	return h.index == other.index
}

// LessThan reports whether this handle's index is numerically less than the
// other's. Unbiased indexes are compared so the order matches the raw index
// across the whole int32 range.
func (h Ordered[M]) LessThan(other Ordered[M]) bool {
	return h.Index() < other.Index()
}

// Render writes the handle's textual form to w: the decimal index when the
// handle is valid, the literal "<invalid>" otherwise.
func (h Ordered[M]) Render(w io.Writer) error {
	return render(w, h.index)
}

// String returns the same text Render writes.
func (h Ordered[M]) String() string {
	return format(h.index)
}

func format(biased int32) string {
	if biased == 0 {
		return invalidText
	}

	return strconv.FormatInt(int64(biased-1), 10)
}

func render(w io.Writer, biased int32) error {
	_, err := io.WriteString(w, format(biased))

	return err
}
