// Package bytecord provides zero-copy access to byte data with guaranteed
// alignment and bounds checking. It is designed for parsing binary formats,
// network protocols, and memory-mapped I/O.
//
// # Core Features
//
//   - Alignment-aware sequential reading and building (align=1|2|4|8|16|...)
//   - Bounds-checked positional access, immutable and mutable
//   - Zero-copy views into existing data
//   - Typed accessors for 8- through 128-bit integers, floats, varints, and
//     length-prefixed strings, in both byte orders
//   - Optional xxHash64 checksum trailers for payload integrity
//   - Optional payload compression (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Building a payload:
//
//	builder := bytecord.NewBuilder(1)
//	builder.AppendUint32LE(1111)
//	builder.AppendUint8(1)
//	builder.AppendInt64LE(-3919)
//	payload := builder.IntoBytes()
//
// Reading it back:
//
//	reader := bytecord.NewReader(payload)
//	a, _ := reader.NextUint32LE()
//	b, _ := reader.NextUint8()
//	c, _ := reader.NextInt64LE()
//
// Reading with 4-byte alignment:
//
//	reader := bytecord.NewReaderWithAlignment(payload, 4)
//	header, ok := reader.NextN(16)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the cord and
// compress packages, simplifying the most common use cases. For advanced
// usage (custom storage sources, mutable access, shared codec instances),
// use those packages directly.
package bytecord

import (
	"github.com/arloliu/bytecord/compress"
	"github.com/arloliu/bytecord/cord"
)

// New creates a Cord over data, providing bounds-checked positional access.
func New(data []byte) *cord.Cord {
	return cord.New(cord.Bytes(data))
}

// NewReader creates a sequential reader over data with no alignment.
func NewReader(data []byte) *cord.Reader {
	return New(data).Reader()
}

// NewReaderWithAlignment creates a sequential reader over data with the
// specified alignment.
//
// Panics if alignment is not a power of two or 1.
func NewReaderWithAlignment(data []byte, alignment int) *cord.Reader {
	return New(data).ReaderWithAlignment(alignment)
}

// NewBuilder creates a builder with the specified alignment.
//
// Panics if alignment is not a power of two or 1.
func NewBuilder(alignment int) *cord.Builder {
	return cord.NewBuilder(alignment)
}

// NewBuilderWithCapacity creates a builder with the specified alignment,
// pre-reserving storage for capacity bytes.
//
// Panics if alignment is not a power of two or 1.
func NewBuilderWithCapacity(capacity, alignment int) *cord.Builder {
	return cord.NewBuilderWithCapacity(capacity, alignment)
}

// Compress compresses a finalized payload with the specified compression type.
func Compress(data []byte, compressionType compress.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// Decompress restores a payload previously compressed with Compress.
func Decompress(data []byte, compressionType compress.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// FromCompressed decompresses data with the specified compression type and
// wraps the result in a Cord ready for reading.
func FromCompressed(data []byte, compressionType compress.CompressionType) (*cord.Cord, error) {
	payload, err := Decompress(data, compressionType)
	if err != nil {
		return nil, err
	}

	return New(payload), nil
}
