package cord

import (
	"github.com/arloliu/bytecord/errs"
	"github.com/arloliu/bytecord/internal/hash"
)

// checksumTrailerSize is the size of the xxHash64 checksum trailer appended
// by Builder.FinishWithChecksum and validated by Cord.VerifyChecksum.
const checksumTrailerSize = 8

// Cord provides bounds-checked, zero-copy windowed access to a byte-holding
// storage object.
//
// A Cord holds a single ByteSource and no other state: no alignment, no
// cursor. All operations are pure reads over the storage; mutation happens
// only through the views returned by the mutable accessors, never through
// the Cord itself.
//
// Out-of-bounds access is reported through a false second return value, not
// an error. Position plus length must be representable without overflow;
// avoiding that overflow is the caller's responsibility.
type Cord struct {
	src ByteSource
}

// New creates a Cord wrapping the provided storage.
//
// The Cord borrows src for its entire lifetime and never reallocates it.
// Wrap a plain byte slice with the Bytes adapter:
//
//	c := cord.New(cord.Bytes(data))
func New(src ByteSource) *Cord {
	return &Cord{src: src}
}

// AtN returns the byte slice [position, position+length) of the underlying
// storage, or false if the range is out of bounds.
//
// The returned slice is a zero-copy view into the storage and remains valid
// as long as the storage does.
func (c *Cord) AtN(position, length int) ([]byte, bool) {
	data := c.src.ByteSlice()
	if position < 0 || length < 0 || position+length > len(data) {
		return nil, false
	}

	return data[position : position+length], true
}

// At2 returns a pointer to the 2 bytes at position, or false if out of bounds.
func (c *Cord) At2(position int) (*[2]byte, bool) {
	data, ok := c.AtN(position, 2)
	if !ok {
		return nil, false
	}

	return asArray2(data), true
}

// At4 returns a pointer to the 4 bytes at position, or false if out of bounds.
func (c *Cord) At4(position int) (*[4]byte, bool) {
	data, ok := c.AtN(position, 4)
	if !ok {
		return nil, false
	}

	return asArray4(data), true
}

// At8 returns a pointer to the 8 bytes at position, or false if out of bounds.
func (c *Cord) At8(position int) (*[8]byte, bool) {
	data, ok := c.AtN(position, 8)
	if !ok {
		return nil, false
	}

	return asArray8(data), true
}

// At16 returns a pointer to the 16 bytes at position, or false if out of bounds.
func (c *Cord) At16(position int) (*[16]byte, bool) {
	data, ok := c.AtN(position, 16)
	if !ok {
		return nil, false
	}

	return asArray16(data), true
}

// AtNMut returns the mutable byte slice [position, position+length) of the
// underlying storage, or false if the range is out of bounds or the storage
// does not implement MutableByteSource.
//
// The bounds condition is identical to AtN: a mutable window may reach
// exactly the final byte of the storage.
func (c *Cord) AtNMut(position, length int) ([]byte, bool) {
	msrc, ok := c.src.(MutableByteSource)
	if !ok {
		return nil, false
	}

	data := msrc.MutableByteSlice()
	if position < 0 || length < 0 || position+length > len(data) {
		return nil, false
	}

	return data[position : position+length], true
}

// At2Mut returns a mutable pointer to the 2 bytes at position, or false if
// out of bounds or the storage is not mutable.
func (c *Cord) At2Mut(position int) (*[2]byte, bool) {
	data, ok := c.AtNMut(position, 2)
	if !ok {
		return nil, false
	}

	return asArray2(data), true
}

// At4Mut returns a mutable pointer to the 4 bytes at position, or false if
// out of bounds or the storage is not mutable.
func (c *Cord) At4Mut(position int) (*[4]byte, bool) {
	data, ok := c.AtNMut(position, 4)
	if !ok {
		return nil, false
	}

	return asArray4(data), true
}

// At8Mut returns a mutable pointer to the 8 bytes at position, or false if
// out of bounds or the storage is not mutable.
func (c *Cord) At8Mut(position int) (*[8]byte, bool) {
	data, ok := c.AtNMut(position, 8)
	if !ok {
		return nil, false
	}

	return asArray8(data), true
}

// At16Mut returns a mutable pointer to the 16 bytes at position, or false if
// out of bounds or the storage is not mutable.
func (c *Cord) At16Mut(position int) (*[16]byte, bool) {
	data, ok := c.AtNMut(position, 16)
	if !ok {
		return nil, false
	}

	return asArray16(data), true
}

// Len returns the length of the underlying storage in bytes.
func (c *Cord) Len() int {
	return len(c.src.ByteSlice())
}

// IsEmpty reports whether the underlying storage is empty.
func (c *Cord) IsEmpty() bool {
	return c.Len() == 0
}

// Reader returns a new sequential reader over this Cord with no alignment
// (alignment 1).
func (c *Cord) Reader() *Reader {
	return NewReader(c)
}

// ReaderWithAlignment returns a new sequential reader over this Cord with the
// specified alignment.
//
// Panics if alignment is not a power of two or 1.
func (c *Cord) ReaderWithAlignment(alignment int) *Reader {
	return NewReaderWithAlignment(c, alignment)
}

// VerifyChecksum validates the xxHash64 trailer appended by
// Builder.FinishWithChecksum and returns the payload without the trailer.
//
// Returns errs.ErrPayloadTooShort if the storage cannot contain a trailer,
// or errs.ErrChecksumMismatch if the digest does not match the payload.
func (c *Cord) VerifyChecksum() ([]byte, error) {
	data := c.src.ByteSlice()
	if len(data) < checksumTrailerSize {
		return nil, errs.ErrPayloadTooShort
	}

	payload := data[:len(data)-checksumTrailerSize]
	want := littleEndian.Uint64(data[len(data)-checksumTrailerSize:])
	if hash.Sum64(payload) != want {
		return nil, errs.ErrChecksumMismatch
	}

	return payload, nil
}
