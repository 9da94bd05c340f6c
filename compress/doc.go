// Package compress provides compression codecs for finalized bytecord
// payloads.
//
// A payload produced by a Builder is often stored or transmitted; the codecs
// here shrink it before that happens and restore it before it is wrapped in a
// Cord for reading. Four codecs are available:
//
//   - None: pass-through, for payloads that are already compressed or small
//   - Zstd: best compression ratio, for archival and bandwidth-bound transport
//   - S2: fastest, for hot paths where CPU matters more than size
//   - LZ4: balanced speed and ratio
//
// Use GetCodec to obtain a shared codec instance for a CompressionType, or
// CreateCodec when a fresh instance is preferred. All codecs are safe for
// concurrent use.
package compress
