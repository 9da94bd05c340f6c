package cord

// Slice-to-array-pointer conversions backing the fixed-size accessors.
//
// Every call site validates the window length against the storage bounds
// before converting, so the converted pointer covers exactly the validated
// bytes and shares their lifetime (no bytes are copied, only re-typed).
// Keeping the conversions here, behind the bounds checks in Cord and Reader,
// is what makes them sound; do not call them with slices of any other length.

func asArray2(b []byte) *[2]byte { return (*[2]byte)(b) }

func asArray4(b []byte) *[4]byte { return (*[4]byte)(b) }

func asArray8(b []byte) *[8]byte { return (*[8]byte)(b) }

func asArray16(b []byte) *[16]byte { return (*[16]byte)(b) }
