package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	// Verify the result matches the actual system endianness
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestCheckEndiannessConsistency(t *testing.T) {
	first := CheckEndianness()
	for i := 0; i < 100; i++ {
		result := CheckEndianness()
		if result != first {
			t.Errorf("CheckEndianness() returned inconsistent results: first=%v, iteration %d=%v", first, i, result)
		}
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	// IsNativeLittleEndian and IsNativeBigEndian should be inverses
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
	require.Equal(t, CheckEndianness() == binary.LittleEndian, IsNativeLittleEndian())
	require.Equal(t, CheckEndianness() == binary.BigEndian, IsNativeBigEndian())
}

func TestCompareNativeEndian(t *testing.T) {
	native := CheckEndianness()

	if native == binary.LittleEndian {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}

func TestGetEngines(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	require.Equal(t, binary.LittleEndian, le)
	require.Equal(t, binary.BigEndian, be)

	// Engines must decode what they append
	buf := le.AppendUint32(nil, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), le.Uint32(buf))
	require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, buf)

	buf = be.AppendUint32(nil, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), be.Uint32(buf))
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, buf)
}
