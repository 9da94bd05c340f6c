package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// This codec favors compression ratio over speed, making it the right choice
// for archival storage and bandwidth-limited transport of large payloads.
//
// Two implementations exist behind build tags: a cgo binding (valyala/gozstd)
// when cgo is available, and a pure-Go fallback (klauspost/compress/zstd)
// otherwise. Both produce standard Zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
