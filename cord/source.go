package cord

// ByteSource exposes read-only byte-slice access to an underlying storage
// object. The storage may be owned or borrowed; a Cord never copies or
// reallocates it.
//
// Implementations must return the same backing storage on every call for the
// lifetime of the Cord, otherwise previously returned views are invalidated.
type ByteSource interface {
	// ByteSlice returns the full contents of the storage.
	ByteSlice() []byte
}

// MutableByteSource extends ByteSource with mutable byte-slice access,
// enabling the Cord's mutable accessors.
type MutableByteSource interface {
	ByteSource

	// MutableByteSlice returns the full contents of the storage as a
	// writable slice backed by the same storage as ByteSlice.
	MutableByteSlice() []byte
}

// Bytes adapts a plain byte slice to the ByteSource and MutableByteSource
// interfaces. It covers both the owned case (a slice allocated by the caller
// or produced by Builder.IntoBytes) and the borrowed case (a window into
// storage owned elsewhere), since a Go slice is itself a borrowed view.
type Bytes []byte

var (
	_ ByteSource        = Bytes(nil)
	_ MutableByteSource = Bytes(nil)
)

// ByteSlice returns the slice itself.
func (b Bytes) ByteSlice() []byte { return b }

// MutableByteSlice returns the slice itself.
func (b Bytes) MutableByteSlice() []byte { return b }
