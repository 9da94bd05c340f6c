package cord

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/bytecord/errs"
	"github.com/arloliu/bytecord/internal/hash"
	"github.com/arloliu/bytecord/internal/pool"
)

// MaxVarStringLength is the maximum string length encodable by
// AppendVarString. The uint8 length prefix limits strings to 255 bytes.
const MaxVarStringLength = 255

// Builder accumulates bytes into a growable sequence, padding with zero bytes
// to the next alignment boundary after every append.
//
// After every append call completes, the accumulated length is a multiple of
// the builder's alignment. The write side has no out-of-bounds failure mode:
// the sequence grows to accommodate every append.
//
// A Builder draws its buffer from an internal pool; IntoBytes (or
// FinishWithChecksum) consumes the builder exactly once, returning the
// accumulated bytes and releasing the buffer. Appending after that panics.
//
// A Builder is exclusively owned by a single caller; it provides no internal
// synchronization.
type Builder struct {
	buf       *pool.ByteBuffer
	alignment int
}

// NewBuilder creates a builder with the specified alignment and no
// pre-reserved capacity.
//
// Panics if alignment is not a power of two or 1.
func NewBuilder(alignment int) *Builder {
	return NewBuilderWithCapacity(0, alignment)
}

// NewBuilderWithCapacity creates a builder with the specified alignment,
// pre-reserving storage for capacity bytes.
//
// Panics if alignment is not a power of two or 1: a misconfigured alignment
// would corrupt every subsequent padding computation, so it is rejected at
// construction rather than silently substituted.
func NewBuilderWithCapacity(capacity, alignment int) *Builder {
	if !isValidAlignment(alignment) {
		panic(invalidAlignmentMsg)
	}

	buf := pool.GetBuilderBuffer()
	if capacity > 0 {
		buf.Grow(capacity)
	}

	return &Builder{
		buf:       buf,
		alignment: alignment,
	}
}

func (b *Builder) guard() {
	if b.buf == nil {
		panic("builder already finished - cannot append after IntoBytes()")
	}
}

// pad appends zero bytes until the accumulated length is a multiple of the
// builder's alignment.
func (b *Builder) pad() {
	length := b.buf.Len()
	padding := alignUp(length, b.alignment) - length
	if padding == 0 {
		return
	}

	b.buf.ExtendOrGrow(padding)
	// Pooled buffers may hold stale bytes past their length; the padding
	// region must be zeroed explicitly.
	clear(b.buf.Slice(length, length+padding))
}

// AppendFromSlice appends all bytes of slice, then pads with zero bytes to
// the next alignment boundary. This is the primitive every other append
// operation builds on.
func (b *Builder) AppendFromSlice(slice []byte) {
	b.guard()

	b.buf.Grow(len(slice) + b.alignment)
	b.buf.MustWrite(slice)
	b.pad()
}

// Append2 appends the 2 bytes of the array, then pads to alignment.
func (b *Builder) Append2(bytes *[2]byte) {
	b.AppendFromSlice(bytes[:])
}

// Append4 appends the 4 bytes of the array, then pads to alignment.
func (b *Builder) Append4(bytes *[4]byte) {
	b.AppendFromSlice(bytes[:])
}

// Append8 appends the 8 bytes of the array, then pads to alignment.
func (b *Builder) Append8(bytes *[8]byte) {
	b.AppendFromSlice(bytes[:])
}

// Append16 appends the 16 bytes of the array, then pads to alignment.
func (b *Builder) Append16(bytes *[16]byte) {
	b.AppendFromSlice(bytes[:])
}

// AppendUint8 appends value as a single byte, then pads to alignment.
func (b *Builder) AppendUint8(value uint8) {
	b.guard()

	b.buf.Grow(1 + b.alignment)
	b.buf.B = append(b.buf.B, value)
	b.pad()
}

// AppendInt8 appends value as a single byte, then pads to alignment.
func (b *Builder) AppendInt8(value int8) {
	b.AppendUint8(uint8(value))
}

// AppendUint16LE appends value as 2 little-endian bytes, then pads to alignment.
func (b *Builder) AppendUint16LE(value uint16) {
	b.guard()

	b.buf.Grow(2 + b.alignment)
	b.buf.B = littleEndian.AppendUint16(b.buf.B, value)
	b.pad()
}

// AppendUint16BE appends value as 2 big-endian bytes, then pads to alignment.
func (b *Builder) AppendUint16BE(value uint16) {
	b.guard()

	b.buf.Grow(2 + b.alignment)
	b.buf.B = bigEndian.AppendUint16(b.buf.B, value)
	b.pad()
}

// AppendInt16LE appends value as 2 little-endian bytes, then pads to alignment.
func (b *Builder) AppendInt16LE(value int16) {
	b.AppendUint16LE(uint16(value))
}

// AppendInt16BE appends value as 2 big-endian bytes, then pads to alignment.
func (b *Builder) AppendInt16BE(value int16) {
	b.AppendUint16BE(uint16(value))
}

// AppendUint32LE appends value as 4 little-endian bytes, then pads to alignment.
func (b *Builder) AppendUint32LE(value uint32) {
	b.guard()

	b.buf.Grow(4 + b.alignment)
	b.buf.B = littleEndian.AppendUint32(b.buf.B, value)
	b.pad()
}

// AppendUint32BE appends value as 4 big-endian bytes, then pads to alignment.
func (b *Builder) AppendUint32BE(value uint32) {
	b.guard()

	b.buf.Grow(4 + b.alignment)
	b.buf.B = bigEndian.AppendUint32(b.buf.B, value)
	b.pad()
}

// AppendInt32LE appends value as 4 little-endian bytes, then pads to alignment.
func (b *Builder) AppendInt32LE(value int32) {
	b.AppendUint32LE(uint32(value))
}

// AppendInt32BE appends value as 4 big-endian bytes, then pads to alignment.
func (b *Builder) AppendInt32BE(value int32) {
	b.AppendUint32BE(uint32(value))
}

// AppendUint64LE appends value as 8 little-endian bytes, then pads to alignment.
func (b *Builder) AppendUint64LE(value uint64) {
	b.guard()

	b.buf.Grow(8 + b.alignment)
	b.buf.B = littleEndian.AppendUint64(b.buf.B, value)
	b.pad()
}

// AppendUint64BE appends value as 8 big-endian bytes, then pads to alignment.
func (b *Builder) AppendUint64BE(value uint64) {
	b.guard()

	b.buf.Grow(8 + b.alignment)
	b.buf.B = bigEndian.AppendUint64(b.buf.B, value)
	b.pad()
}

// AppendInt64LE appends value as 8 little-endian bytes, then pads to alignment.
func (b *Builder) AppendInt64LE(value int64) {
	b.AppendUint64LE(uint64(value))
}

// AppendInt64BE appends value as 8 big-endian bytes, then pads to alignment.
func (b *Builder) AppendInt64BE(value int64) {
	b.AppendUint64BE(uint64(value))
}

// AppendUint128LE appends value as 16 little-endian bytes (least significant
// half first), then pads to alignment.
func (b *Builder) AppendUint128LE(value Uint128) {
	b.guard()

	b.buf.Grow(16 + b.alignment)
	b.buf.B = littleEndian.AppendUint64(b.buf.B, value.Lo)
	b.buf.B = littleEndian.AppendUint64(b.buf.B, value.Hi)
	b.pad()
}

// AppendUint128BE appends value as 16 big-endian bytes (most significant half
// first), then pads to alignment.
func (b *Builder) AppendUint128BE(value Uint128) {
	b.guard()

	b.buf.Grow(16 + b.alignment)
	b.buf.B = bigEndian.AppendUint64(b.buf.B, value.Hi)
	b.buf.B = bigEndian.AppendUint64(b.buf.B, value.Lo)
	b.pad()
}

// AppendInt128LE appends value as 16 little-endian bytes, then pads to alignment.
func (b *Builder) AppendInt128LE(value Int128) {
	b.AppendUint128LE(Uint128{Hi: uint64(value.Hi), Lo: value.Lo})
}

// AppendInt128BE appends value as 16 big-endian bytes, then pads to alignment.
func (b *Builder) AppendInt128BE(value Int128) {
	b.AppendUint128BE(Uint128{Hi: uint64(value.Hi), Lo: value.Lo})
}

// AppendFloat32LE appends value as 4 little-endian IEEE 754 bytes, then pads
// to alignment.
func (b *Builder) AppendFloat32LE(value float32) {
	b.AppendUint32LE(math.Float32bits(value))
}

// AppendFloat32BE appends value as 4 big-endian IEEE 754 bytes, then pads to
// alignment.
func (b *Builder) AppendFloat32BE(value float32) {
	b.AppendUint32BE(math.Float32bits(value))
}

// AppendFloat64LE appends value as 8 little-endian IEEE 754 bytes, then pads
// to alignment.
func (b *Builder) AppendFloat64LE(value float64) {
	b.AppendUint64LE(math.Float64bits(value))
}

// AppendFloat64BE appends value as 8 big-endian IEEE 754 bytes, then pads to
// alignment.
func (b *Builder) AppendFloat64BE(value float64) {
	b.AppendUint64BE(math.Float64bits(value))
}

// AppendUvarint appends value as an unsigned varint, then pads to alignment.
// Readable with Reader.NextUvarint.
func (b *Builder) AppendUvarint(value uint64) {
	b.guard()

	b.buf.Grow(binary.MaxVarintLen64 + b.alignment)
	b.buf.B = binary.AppendUvarint(b.buf.B, value)
	b.pad()
}

// AppendVarint appends value as a zigzag-encoded signed varint, then pads to
// alignment. Readable with Reader.NextVarint.
func (b *Builder) AppendVarint(value int64) {
	b.guard()

	b.buf.Grow(binary.MaxVarintLen64 + b.alignment)
	b.buf.B = binary.AppendVarint(b.buf.B, value)
	b.pad()
}

// AppendVarString appends text with a uint8 length prefix, then pads to
// alignment. Readable with Reader.NextVarString.
//
// Returns errs.ErrStringTooLong if text exceeds MaxVarStringLength (255 bytes).
func (b *Builder) AppendVarString(text string) error {
	if len(text) > MaxVarStringLength {
		return errs.ErrStringTooLong
	}

	b.guard()

	b.buf.Grow(1 + len(text) + b.alignment)
	b.buf.B = append(b.buf.B, uint8(len(text)))
	b.buf.B = append(b.buf.B, text...)
	b.pad()

	return nil
}

// Len returns the accumulated length in bytes, including alignment padding.
func (b *Builder) Len() int {
	b.guard()
	return b.buf.Len()
}

// Cap returns the current capacity of the internal buffer.
func (b *Builder) Cap() int {
	b.guard()
	return b.buf.Cap()
}

// Alignment returns the builder's alignment.
func (b *Builder) Alignment() int {
	return b.alignment
}

// IntoBytes consumes the builder and returns the accumulated bytes as an
// immutable, caller-owned slice.
//
// This is a one-way, one-time conversion: the internal buffer is returned to
// the pool and any further use of the builder panics.
func (b *Builder) IntoBytes() []byte {
	b.guard()

	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())

	pool.PutBuilderBuffer(b.buf)
	b.buf = nil

	return out
}

// FinishWithChecksum appends an 8-byte little-endian xxHash64 digest of the
// accumulated bytes, then consumes the builder as IntoBytes does.
//
// The trailer is always the final 8 bytes of the returned slice and is not
// itself padded; the digest covers everything appended before it, padding
// included. Validate with Cord.VerifyChecksum.
func (b *Builder) FinishWithChecksum() []byte {
	b.guard()

	digest := hash.Sum64(b.buf.Bytes())
	b.buf.Grow(checksumTrailerSize)
	b.buf.B = littleEndian.AppendUint64(b.buf.B, digest)

	return b.IntoBytes()
}
