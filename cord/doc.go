// Package cord provides alignment-aware, bounds-checked, zero-copy access to
// in-memory byte data.
//
// The package is built from three cooperating components:
//
//   - Cord: a windowed accessor over a byte-holding storage object. It
//     performs bounds-checked positional access, both immutable and mutable,
//     and never copies or reallocates the underlying storage.
//   - Reader: a sequential cursor over a Cord. Each read returns a zero-copy
//     view into the underlying storage and advances the cursor to the next
//     position that satisfies the reader's alignment.
//   - Builder: a growable accumulator that pads its contents with zero bytes
//     to an alignment boundary after every append, and finalizes into an
//     immutable byte slice.
//
// The encode path is caller → Builder append calls → IntoBytes. The decode
// path is byte slice → Cord → Reader typed accessors. The package defines no
// wire format of its own; it is a building block for callers that do.
//
// # Failure Model
//
// Construction with an invalid alignment (not a power of two) panics: a
// misconfigured alignment would corrupt all subsequent offset arithmetic, so
// it is treated as a programming error rather than a recoverable condition.
// All access failures (not enough bytes remaining, position out of bounds)
// are reported through a false second return value, never through panics or
// errors, and never move a reader's cursor. An access either yields the fully
// requested length or nothing.
package cord
