package cord

import (
	"encoding/binary"
	"math"
)

// Reader walks a Cord sequentially, returning zero-copy views and advancing
// a cursor that always lands on a multiple of the reader's alignment.
//
// After reading length bytes starting at the current position, the next read
// begins at the smallest multiple of the alignment that is >= position+length.
// Alignment is a padding-skip convention for the next position, not a
// constraint on where the current read starts.
//
// The cursor is monotonically non-decreasing and may conceptually point past
// the end of the Cord; only an attempted read validates against the true
// length. Failed reads never move the cursor, so callers can retry with a
// different length or query Remaining after a failure.
//
// A Reader borrows its Cord for its entire lifetime and retains no other
// state; to rewind, construct a new Reader.
type Reader struct {
	cord      *Cord
	alignment int
	position  int
}

// NewReader creates a reader over c with no alignment (alignment 1): no
// padding is skipped between reads.
func NewReader(c *Cord) *Reader {
	return NewReaderWithAlignment(c, 1)
}

// NewReaderWithAlignment creates a reader over c with the specified alignment.
//
// Panics if alignment is not a power of two or 1: a misconfigured alignment
// would corrupt every subsequent cursor computation, so it is rejected at
// construction rather than silently substituted.
func NewReaderWithAlignment(c *Cord, alignment int) *Reader {
	if !isValidAlignment(alignment) {
		panic(invalidAlignmentMsg)
	}

	return &Reader{
		cord:      c,
		alignment: alignment,
	}
}

// NextN returns length bytes at the current position and advances the cursor
// to the next aligned offset, or false if out of bounds.
//
// The returned slice is a zero-copy view with the lifetime of the underlying
// storage, not of the reader.
func (r *Reader) NextN(length int) ([]byte, bool) {
	data, ok := r.cord.AtN(r.position, length)
	if !ok {
		return nil, false
	}

	r.position = alignUp(r.position+length, r.alignment)

	return data, true
}

// Next2 returns a pointer to the 2 bytes at the current position and advances
// the cursor to the next aligned offset, or false if out of bounds.
func (r *Reader) Next2() (*[2]byte, bool) {
	data, ok := r.NextN(2)
	if !ok {
		return nil, false
	}

	return asArray2(data), true
}

// Next4 returns a pointer to the 4 bytes at the current position and advances
// the cursor to the next aligned offset, or false if out of bounds.
func (r *Reader) Next4() (*[4]byte, bool) {
	data, ok := r.NextN(4)
	if !ok {
		return nil, false
	}

	return asArray4(data), true
}

// Next8 returns a pointer to the 8 bytes at the current position and advances
// the cursor to the next aligned offset, or false if out of bounds.
func (r *Reader) Next8() (*[8]byte, bool) {
	data, ok := r.NextN(8)
	if !ok {
		return nil, false
	}

	return asArray8(data), true
}

// Next16 returns a pointer to the 16 bytes at the current position and
// advances the cursor to the next aligned offset, or false if out of bounds.
func (r *Reader) Next16() (*[16]byte, bool) {
	data, ok := r.NextN(16)
	if !ok {
		return nil, false
	}

	return asArray16(data), true
}

// Skip advances the cursor past length bytes (plus alignment padding) and
// discards the data. Returns true if enough bytes remained; on false the
// cursor is unchanged.
func (r *Reader) Skip(length int) bool {
	_, ok := r.NextN(length)
	return ok
}

// Remaining returns the count of unread bytes, saturating at zero when the
// cursor points past the end of the Cord.
func (r *Reader) Remaining() int {
	remaining := r.cord.Len() - r.position
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Position returns the current cursor position in bytes.
func (r *Reader) Position() int {
	return r.position
}

// Alignment returns the reader's alignment.
func (r *Reader) Alignment() int {
	return r.alignment
}

// NextUint8 reads one byte as a uint8.
func (r *Reader) NextUint8() (uint8, bool) {
	data, ok := r.NextN(1)
	if !ok {
		return 0, false
	}

	return data[0], true
}

// NextInt8 reads one byte as an int8.
func (r *Reader) NextInt8() (int8, bool) {
	v, ok := r.NextUint8()
	return int8(v), ok
}

// NextUint16LE reads 2 bytes as a little-endian uint16.
func (r *Reader) NextUint16LE() (uint16, bool) {
	arr, ok := r.Next2()
	if !ok {
		return 0, false
	}

	return littleEndian.Uint16(arr[:]), true
}

// NextUint16BE reads 2 bytes as a big-endian uint16.
func (r *Reader) NextUint16BE() (uint16, bool) {
	arr, ok := r.Next2()
	if !ok {
		return 0, false
	}

	return bigEndian.Uint16(arr[:]), true
}

// NextInt16LE reads 2 bytes as a little-endian int16.
func (r *Reader) NextInt16LE() (int16, bool) {
	v, ok := r.NextUint16LE()
	return int16(v), ok
}

// NextInt16BE reads 2 bytes as a big-endian int16.
func (r *Reader) NextInt16BE() (int16, bool) {
	v, ok := r.NextUint16BE()
	return int16(v), ok
}

// NextUint32LE reads 4 bytes as a little-endian uint32.
func (r *Reader) NextUint32LE() (uint32, bool) {
	arr, ok := r.Next4()
	if !ok {
		return 0, false
	}

	return littleEndian.Uint32(arr[:]), true
}

// NextUint32BE reads 4 bytes as a big-endian uint32.
func (r *Reader) NextUint32BE() (uint32, bool) {
	arr, ok := r.Next4()
	if !ok {
		return 0, false
	}

	return bigEndian.Uint32(arr[:]), true
}

// NextInt32LE reads 4 bytes as a little-endian int32.
func (r *Reader) NextInt32LE() (int32, bool) {
	v, ok := r.NextUint32LE()
	return int32(v), ok
}

// NextInt32BE reads 4 bytes as a big-endian int32.
func (r *Reader) NextInt32BE() (int32, bool) {
	v, ok := r.NextUint32BE()
	return int32(v), ok
}

// NextUint64LE reads 8 bytes as a little-endian uint64.
func (r *Reader) NextUint64LE() (uint64, bool) {
	arr, ok := r.Next8()
	if !ok {
		return 0, false
	}

	return littleEndian.Uint64(arr[:]), true
}

// NextUint64BE reads 8 bytes as a big-endian uint64.
func (r *Reader) NextUint64BE() (uint64, bool) {
	arr, ok := r.Next8()
	if !ok {
		return 0, false
	}

	return bigEndian.Uint64(arr[:]), true
}

// NextInt64LE reads 8 bytes as a little-endian int64.
func (r *Reader) NextInt64LE() (int64, bool) {
	v, ok := r.NextUint64LE()
	return int64(v), ok
}

// NextInt64BE reads 8 bytes as a big-endian int64.
func (r *Reader) NextInt64BE() (int64, bool) {
	v, ok := r.NextUint64BE()
	return int64(v), ok
}

// NextUint128LE reads 16 bytes as a little-endian Uint128
// (least significant half first).
func (r *Reader) NextUint128LE() (Uint128, bool) {
	arr, ok := r.Next16()
	if !ok {
		return Uint128{}, false
	}

	return Uint128{
		Hi: littleEndian.Uint64(arr[8:16]),
		Lo: littleEndian.Uint64(arr[0:8]),
	}, true
}

// NextUint128BE reads 16 bytes as a big-endian Uint128
// (most significant half first).
func (r *Reader) NextUint128BE() (Uint128, bool) {
	arr, ok := r.Next16()
	if !ok {
		return Uint128{}, false
	}

	return Uint128{
		Hi: bigEndian.Uint64(arr[0:8]),
		Lo: bigEndian.Uint64(arr[8:16]),
	}, true
}

// NextInt128LE reads 16 bytes as a little-endian Int128.
func (r *Reader) NextInt128LE() (Int128, bool) {
	v, ok := r.NextUint128LE()
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, ok
}

// NextInt128BE reads 16 bytes as a big-endian Int128.
func (r *Reader) NextInt128BE() (Int128, bool) {
	v, ok := r.NextUint128BE()
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, ok
}

// NextFloat32LE reads 4 bytes as a little-endian IEEE 754 float32.
func (r *Reader) NextFloat32LE() (float32, bool) {
	v, ok := r.NextUint32LE()
	return math.Float32frombits(v), ok
}

// NextFloat32BE reads 4 bytes as a big-endian IEEE 754 float32.
func (r *Reader) NextFloat32BE() (float32, bool) {
	v, ok := r.NextUint32BE()
	return math.Float32frombits(v), ok
}

// NextFloat64LE reads 8 bytes as a little-endian IEEE 754 float64.
func (r *Reader) NextFloat64LE() (float64, bool) {
	v, ok := r.NextUint64LE()
	return math.Float64frombits(v), ok
}

// NextFloat64BE reads 8 bytes as a big-endian IEEE 754 float64.
func (r *Reader) NextFloat64BE() (float64, bool) {
	v, ok := r.NextUint64BE()
	return math.Float64frombits(v), ok
}

// NextUvarint reads an unsigned varint at the current position.
//
// The whole varint counts as a single read: the cursor advances once, to the
// aligned position past its final byte. A truncated or malformed varint is
// absence and leaves the cursor unchanged.
func (r *Reader) NextUvarint() (uint64, bool) {
	tail, ok := r.cord.AtN(r.position, r.Remaining())
	if !ok {
		return 0, false
	}

	v, n := binary.Uvarint(tail)
	if n <= 0 {
		return 0, false
	}

	r.position = alignUp(r.position+n, r.alignment)

	return v, true
}

// NextVarint reads a zigzag-encoded signed varint at the current position.
// Cursor semantics are identical to NextUvarint.
func (r *Reader) NextVarint() (int64, bool) {
	tail, ok := r.cord.AtN(r.position, r.Remaining())
	if !ok {
		return 0, false
	}

	v, n := binary.Varint(tail)
	if n <= 0 {
		return 0, false
	}

	r.position = alignUp(r.position+n, r.alignment)

	return v, true
}

// NextVarString reads a string with a uint8 length prefix at the current
// position, as written by Builder.AppendVarString.
//
// The prefix and string data count as a single read: the cursor advances once,
// past the final string byte, to the next aligned position. If the prefix or
// the full string is out of bounds, the cursor is unchanged.
func (r *Reader) NextVarString() (string, bool) {
	prefix, ok := r.cord.AtN(r.position, 1)
	if !ok {
		return "", false
	}

	total := 1 + int(prefix[0])
	data, ok := r.cord.AtN(r.position, total)
	if !ok {
		return "", false
	}

	r.position = alignUp(r.position+total, r.alignment)

	return string(data[1:]), true
}
