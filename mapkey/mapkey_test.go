package mapkey

import (
	"math"
	"testing"

	"github.com/amp-labs/handle-common/handle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vertex is a marker type standing in for some container of vertices.
type vertex struct{}

// versionKey is a hand-rolled key type used to exercise For directly,
// without going through the handle package.
type versionKey struct {
	version int32
}

func newVersionKey(index int32) versionKey {
	return versionKey{version: index}
}

func (k versionKey) Equals(other versionKey) bool {
	return k.version == other.version
}

func (k versionKey) Index() int32 {
	return k.version
}

var _ Key[versionKey] = versionKey{}

func TestForHandle_SentinelKeys(t *testing.T) {
	t.Parallel()

	info := ForHandle[vertex]()

	empty := info.EmptyKey()
	tombstone := info.TombstoneKey()

	t.Run("empty and tombstone are distinct", func(t *testing.T) {
		t.Parallel()

		assert.False(t, info.Equal(empty, tombstone))
	})

	t.Run("sentinels sit at the int32 extremes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int32(math.MaxInt32), empty.Index())
		assert.Equal(t, int32(math.MinInt32), tombstone.Index())
	})

	t.Run("sentinels differ from ordinary handles", func(t *testing.T) {
		t.Parallel()

		for _, index := range []int32{0, 1, 42, handle.Invalid} {
			h := handle.New[vertex](index)

			assert.False(t, info.Equal(empty, h))
			assert.False(t, info.Equal(tombstone, h))
		}
	})
}

func TestForOrdered_SentinelKeys(t *testing.T) {
	t.Parallel()

	info := ForOrdered[vertex]()

	assert.False(t, info.Equal(info.EmptyKey(), info.TombstoneKey()))
	assert.Equal(t, int32(math.MaxInt32), info.EmptyKey().Index())
	assert.Equal(t, int32(math.MinInt32), info.TombstoneKey().Index())
}

func TestInfo_Hash(t *testing.T) {
	t.Parallel()

	info := ForHandle[vertex]()

	t.Run("equal handles hash identically", func(t *testing.T) {
		t.Parallel()

		for _, index := range []int32{0, 1, -1, 42, math.MaxInt32, math.MinInt32} {
			a := handle.New[vertex](index)
			b := handle.New[vertex](index)

			require.True(t, info.Equal(a, b))
			assert.Equal(t, info.Hash(a), info.Hash(b))
		}
	})

	t.Run("distinct indexes spread out", func(t *testing.T) {
		t.Parallel()

		seen := make(map[uint64]int32)
		for index := int32(-100); index < 100; index++ {
			h := info.Hash(handle.New[vertex](index))

			prev, dup := seen[h]
			assert.False(t, dup, "indexes %d and %d collided", prev, index)

			seen[h] = index
		}
	})

	t.Run("hash depends only on the index", func(t *testing.T) {
		t.Parallel()

		// Hashing is a pure function of Index(), so the hand-rolled key
		// type hashes the same as a handle with the same index.
		custom := For(newVersionKey)

		assert.Equal(t,
			info.Hash(handle.New[vertex](42)),
			custom.Hash(newVersionKey(42)),
		)
	})
}

func TestInfo_Equal(t *testing.T) {
	t.Parallel()

	info := ForHandle[vertex]()

	assert.True(t, info.Equal(handle.New[vertex](5), handle.New[vertex](5)))
	assert.False(t, info.Equal(handle.New[vertex](5), handle.New[vertex](6)))
	assert.True(t, info.Equal(handle.New[vertex](handle.Invalid), handle.New[vertex](handle.Invalid)))
}

func TestFor_CustomKey(t *testing.T) {
	t.Parallel()

	info := For(newVersionKey)

	assert.Equal(t, int32(math.MaxInt32), info.EmptyKey().Index())
	assert.Equal(t, int32(math.MinInt32), info.TombstoneKey().Index())
	assert.False(t, info.Equal(info.EmptyKey(), info.TombstoneKey()))
	assert.True(t, info.Equal(newVersionKey(7), newVersionKey(7)))
}
