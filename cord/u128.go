package cord

// Uint128 is an unsigned 128-bit integer represented as two 64-bit halves.
// Go has no native 128-bit integer type; the halves keep the decode path
// consistent with the other fixed-width accessors (two engine.Uint64 reads).
type Uint128 struct {
	// Hi holds the most significant 64 bits.
	Hi uint64
	// Lo holds the least significant 64 bits.
	Lo uint64
}

// IsZero reports whether the value is zero.
func (v Uint128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Int128 is a signed 128-bit integer in two's complement representation.
// The sign lives in the high half; the low half is the raw low 64 bits.
type Int128 struct {
	// Hi holds the most significant 64 bits, including the sign.
	Hi int64
	// Lo holds the least significant 64 bits.
	Lo uint64
}

// IsZero reports whether the value is zero.
func (v Int128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (v Int128) Sign() int {
	switch {
	case v.Hi < 0:
		return -1
	case v.Hi == 0 && v.Lo == 0:
		return 0
	default:
		return 1
	}
}

// Int128FromInt64 sign-extends value to 128 bits.
func Int128FromInt64(value int64) Int128 {
	hi := int64(0)
	if value < 0 {
		hi = -1
	}

	return Int128{Hi: hi, Lo: uint64(value)}
}

// Uint128FromUint64 zero-extends value to 128 bits.
func Uint128FromUint64(value uint64) Uint128 {
	return Uint128{Lo: value}
}
