package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/bytecord/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePayload builds a compressible payload resembling a typical
// fixed-width wire format: repetitive little-endian records.
func samplePayload() []byte {
	payload := make([]byte, 0, 4096)
	for i := 0; i < 512; i++ {
		payload = append(payload, byte(i), byte(i>>8), 0, 0, 0xAB, 0xCD, 0, 0)
	}

	return payload
}

func TestCompressionType_String(t *testing.T) {
	assert.Equal(t, "None", CompressionNone.String())
	assert.Equal(t, "Zstd", CompressionZstd.String())
	assert.Equal(t, "S2", CompressionS2.String())
	assert.Equal(t, "LZ4", CompressionLZ4.String())
	assert.Equal(t, "Unknown", CompressionType(0xFF).String())
}

func TestCompressionType_IsValid(t *testing.T) {
	for _, typ := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		assert.True(t, typ.IsValid(), typ.String())
	}

	assert.False(t, CompressionType(0).IsValid())
	assert.False(t, CompressionType(0x99).IsValid())
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := samplePayload()

	for _, typ := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(typ)
		require.NoError(t, err, typ.String())

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, typ.String())

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, typ.String())
		require.True(t, bytes.Equal(payload, restored), "%s round trip must be lossless", typ)
	}
}

func TestCodecs_CompressibleDataShrinks(t *testing.T) {
	payload := samplePayload()

	for _, typ := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		assert.Less(t, len(compressed), len(payload), "%s should shrink repetitive payloads", typ)
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	assert.True(t, &payload[0] == &compressed[0], "no-op must not copy")

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.True(t, &payload[0] == &restored[0])
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, typ := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err, typ.String())

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, typ.String())
		assert.Empty(t, restored, typ.String())
	}
}

func TestCodecs_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	for _, typ := range []CompressionType{CompressionZstd, CompressionLZ4} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		assert.Error(t, err, "%s should reject garbage", typ)
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(CompressionType(0x42))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestCreateCodec(t *testing.T) {
	for _, typ := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := CreateCodec(typ, "payload")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(CompressionType(0x42), "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload")
}
