// Package hash provides the xxHash64 digest used for payload checksum trailers.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
