package cord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readOnlySource implements ByteSource but not MutableByteSource.
type readOnlySource []byte

func (s readOnlySource) ByteSlice() []byte { return s }

func TestCord_AtN(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	c := New(Bytes(data))

	slice, ok := c.AtN(0, 4)
	require.True(t, ok)
	assert.Equal(t, []byte{0, 1, 2, 3}, slice)

	slice, ok = c.AtN(6, 4)
	require.True(t, ok, "range reaching exactly the final byte is in bounds")
	assert.Equal(t, []byte{6, 7, 8, 9}, slice)

	_, ok = c.AtN(7, 4)
	assert.False(t, ok, "range past the end is out of bounds")

	_, ok = c.AtN(10, 1)
	assert.False(t, ok)

	slice, ok = c.AtN(10, 0)
	require.True(t, ok, "empty range at the end is in bounds")
	assert.Empty(t, slice)

	_, ok = c.AtN(-1, 2)
	assert.False(t, ok, "negative position is out of bounds")

	_, ok = c.AtN(0, -1)
	assert.False(t, ok, "negative length is out of bounds")
}

func TestCord_AtN_ZeroCopy(t *testing.T) {
	data := []byte{0, 1, 2, 3}
	c := New(Bytes(data))

	slice, ok := c.AtN(1, 2)
	require.True(t, ok)

	// The view aliases the original storage
	data[1] = 0xFF
	assert.Equal(t, byte(0xFF), slice[0])
}

func TestCord_At(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	c := New(Bytes(data))

	arr2, ok := c.At2(0)
	require.True(t, ok)
	assert.Equal(t, [2]byte{0, 1}, *arr2)

	arr4, ok := c.At4(2)
	require.True(t, ok)
	assert.Equal(t, [4]byte{2, 3, 4, 5}, *arr4)

	arr8, ok := c.At8(8)
	require.True(t, ok)
	assert.Equal(t, [8]byte{8, 9, 10, 11, 12, 13, 14, 15}, *arr8)

	arr16, ok := c.At16(0)
	require.True(t, ok)
	assert.Equal(t, byte(15), arr16[15])

	_, ok = c.At16(1)
	assert.False(t, ok)

	_, ok = c.At4(13)
	assert.False(t, ok)
}

func TestCord_AtMut(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	c := New(Bytes(data))

	arr, ok := c.At4Mut(0)
	require.True(t, ok)

	arr[0] = 0xAA
	assert.Equal(t, byte(0xAA), data[0], "mutation must reach the underlying storage")

	slice, ok := c.AtNMut(4, 4)
	require.True(t, ok)
	slice[3] = 0xBB
	assert.Equal(t, byte(0xBB), data[7])
}

func TestCord_AtMut_ReadOnlySource(t *testing.T) {
	c := New(readOnlySource{0, 1, 2, 3})

	_, ok := c.AtNMut(0, 2)
	assert.False(t, ok, "read-only sources expose no mutable access")

	_, ok = c.At2Mut(0)
	assert.False(t, ok)

	// Immutable path still works
	slice, ok := c.AtN(0, 2)
	require.True(t, ok)
	assert.Equal(t, []byte{0, 1}, slice)
}

// The mutable and immutable paths must agree exactly on the boundary
// condition position+length <= len.
func TestCord_BoundsSymmetry(t *testing.T) {
	data := make([]byte, 8)
	c := New(Bytes(data))

	for position := 0; position <= len(data)+2; position++ {
		for length := 0; length <= len(data)+2; length++ {
			_, immutableOK := c.AtN(position, length)
			_, mutableOK := c.AtNMut(position, length)

			expected := position+length <= len(data)
			assert.Equal(t, expected, immutableOK, "AtN(%d, %d)", position, length)
			assert.Equal(t, expected, mutableOK, "AtNMut(%d, %d)", position, length)
		}
	}
}

func TestCord_MutableAccessToFinalByte(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := New(Bytes(data))

	// A mutable window reaching exactly the final valid byte is in bounds.
	slice, ok := c.AtNMut(3, 1)
	require.True(t, ok)
	slice[0] = 0xEE
	assert.Equal(t, byte(0xEE), data[3])

	arr, ok := c.At4Mut(0)
	require.True(t, ok)
	require.NotNil(t, arr)
}

func TestCord_LenIsEmpty(t *testing.T) {
	assert.Equal(t, 4, New(Bytes([]byte{1, 2, 3, 4})).Len())
	assert.False(t, New(Bytes([]byte{1})).IsEmpty())
	assert.True(t, New(Bytes(nil)).IsEmpty())
	assert.Equal(t, 0, New(Bytes(nil)).Len())
}

func TestCord_ReaderConstructors(t *testing.T) {
	c := New(Bytes(make([]byte, 16)))

	r := c.Reader()
	assert.Equal(t, 1, r.Alignment())

	r = c.ReaderWithAlignment(8)
	assert.Equal(t, 8, r.Alignment())

	assert.Panics(t, func() { c.ReaderWithAlignment(3) })
}
