package cord

import "github.com/arloliu/bytecord/endian"

// Shared endian engines for the typed reader accessors and builder appenders.
var (
	littleEndian = endian.GetLittleEndianEngine()
	bigEndian    = endian.GetBigEndianEngine()
)

// isValidAlignment reports whether alignment is a power of two.
// An alignment of 1 means "no alignment" and is always valid.
func isValidAlignment(alignment int) bool {
	return alignment > 0 && alignment&(alignment-1) == 0
}

// alignUp rounds n up to the next multiple of alignment.
// alignment must be a power of two.
func alignUp(n, alignment int) int {
	return (n + alignment - 1) &^ (alignment - 1)
}

const invalidAlignmentMsg = "bytecord: alignment must be a power of two or 1"
