package charconv

import "math/bits"

// baseMetric describes how much of a uint64 a single strconv call can soak
// up in a given base.
type baseMetric struct {
	// maxDigits is the greatest d such that base^d <= 1<<64; mathematically,
	// floor(64 / log2(base)).
	maxDigits int

	// maxPower is base^maxDigits, or 0 when that power is exactly 1<<64.
	// The zero sentinel only occurs for power-of-two bases; it means no bit
	// of a full uint64 chunk is wasted, as in base 2 or base 16.
	maxPower uint64
}

// baseMetrics is indexed by base; slots 0 and 1 are never valid. It is
// built once before first use and read-only afterwards, so any number of
// goroutines may read it without locking.
var baseMetrics [37]baseMetric

func init() {
	for base := 2; base <= 36; base++ {
		// Repeated exact multiplication with overflow detection; a
		// floating-point log would round at the table's edges.
		m := baseMetric{maxPower: 1}
		for {
			hi, lo := bits.Mul64(m.maxPower, uint64(base))
			if hi == 0 {
				m.maxPower = lo
				m.maxDigits++
			} else if hi == 1 && lo == 0 {
				// The next power is exactly 1<<64.
				m.maxPower = 0
				m.maxDigits++
				break
			} else {
				break
			}
		}
		baseMetrics[base] = m
	}
}

func checkBase(base int) {
	if base < 2 || base > 36 {
		panic("charconv: base out of range [2,36]")
	}
}

// digitValue maps a digit character to its value, ignoring case, or -1 if
// the character is not a digit in any base up to 36.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// patternLength reports the length of the longest prefix of src made
// entirely of valid digits for base.
func patternLength(src []byte, base int) int {
	n := 0
	for ; n < len(src); n++ {
		v := digitValue(src[n])
		if v < 0 || v >= base {
			break
		}
	}
	return n
}
