// Package errs defines the sentinel errors shared across bytecord packages.
//
// Callers should compare returned errors against these sentinels using
// errors.Is, since errors may be wrapped with additional context.
package errs

import "errors"

var (
	// ErrStringTooLong is returned when a string exceeds the maximum length
	// encodable with a uint8 length prefix (255 bytes).
	ErrStringTooLong = errors.New("string exceeds maximum encodable length")

	// ErrPayloadTooShort is returned when a payload is too short to contain
	// a checksum trailer.
	ErrPayloadTooShort = errors.New("payload too short for checksum trailer")

	// ErrChecksumMismatch is returned when a payload's checksum trailer does
	// not match the digest of its contents.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrUnsupportedCompression is returned when a compression type has no
	// registered codec.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
