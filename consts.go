package charconv

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxI128 = I128{hi: signMask, lo: maxUint64}
	MinI128 = I128{hi: signBit, lo: 0}

	zeroU128 U128
	zeroI128 I128

	// minI128AsAbsU128 is the magnitude of MinI128, which has no positive
	// I128 counterpart.
	minI128AsAbsU128 = U128{hi: signBit, lo: 0}
)
