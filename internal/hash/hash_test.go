package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestSum64(t *testing.T) {
	data := []byte("bytecord payload")

	// Must match the canonical xxHash64 implementation byte for byte,
	// since trailers written by older builds have to keep verifying.
	require.Equal(t, xxhash.Sum64(data), Sum64(data))

	// Deterministic across calls
	require.Equal(t, Sum64(data), Sum64(data))

	// Sensitive to single-byte changes
	mutated := append([]byte(nil), data...)
	mutated[0] ^= 0x01
	require.NotEqual(t, Sum64(data), Sum64(mutated))

	// Empty input has a well-defined digest
	require.Equal(t, xxhash.Sum64(nil), Sum64(nil))
}
