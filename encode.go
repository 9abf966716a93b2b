package charconv

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// ErrShortBuffer is returned by the Encode functions when the destination
// cannot hold the textual representation. The destination contents up to
// the returned count are unspecified.
var ErrShortBuffer = errors.New("charconv: destination buffer too small")

// EncodeU128 writes the text of x in the given base to dst, reporting the
// number of bytes written. Digit values 10-35 are written as 'a'-'z'. No
// sign, prefix, padding or terminator is written. Bases outside [2,36]
// panic.
//
// When x fits a uint64 this is a single strconv call. Otherwise x is cut
// into at most three uint64-sized chunks, each rendered by strconv: for
// power-of-two bases the chunks are bit slices, for the rest they are the
// quotient and remainder by the largest base power that fits a uint64.
func EncodeU128(dst []byte, x U128, base int) (int, error) {
	checkBase(base)

	if x.hi == 0 {
		return encodeNative(dst, x.lo, base)
	}
	if len(dst) == 0 {
		return 0, ErrShortBuffer
	}

	m := baseMetrics[base]
	if base&(base-1) == 0 {
		return encodePow2(dst, x, base, m)
	}
	return encodeGeneric(dst, x, base, m)
}

// EncodeI128 writes the text of x in the given base to dst, reporting the
// number of bytes written. Negative values get a leading '-' followed by
// the magnitude; unsigned negation turns MinI128 into its out-of-I128-range
// magnitude 1<<127, so it round-trips like everything else.
func EncodeI128(dst []byte, x I128, base int) (int, error) {
	checkBase(base)

	if x.Sign() >= 0 {
		return EncodeU128(dst, x.AsU128(), base)
	}
	if x.IsInt64() {
		return encodeNativeInt(dst, x.AsInt64(), base)
	}
	if len(dst) < 2 {
		return 0, ErrShortBuffer
	}
	dst[0] = '-'
	n, err := EncodeU128(dst[1:], zeroU128.Sub(x.AsU128()), base)
	return n + 1, err
}

// AppendU128 appends the text of x in the given base to dst, in the manner
// of strconv.AppendUint.
func AppendU128(dst []byte, x U128, base int) []byte {
	var buf [128]byte // 128 base-2 digits is the most a U128 can hold
	n, _ := EncodeU128(buf[:], x, base)
	return append(dst, buf[:n]...)
}

// AppendI128 appends the text of x in the given base to dst, in the manner
// of strconv.AppendInt.
func AppendI128(dst []byte, x I128, base int) []byte {
	var buf [129]byte
	n, _ := EncodeI128(buf[:], x, base)
	return append(dst, buf[:n]...)
}

// encodeNative delegates a 64-bit value to strconv, bounds-checked against
// dst.
func encodeNative(dst []byte, v uint64, base int) (int, error) {
	var scratch [64]byte
	text := strconv.AppendUint(scratch[:0], v, base)
	if len(text) > len(dst) {
		return 0, ErrShortBuffer
	}
	return copy(dst, text), nil
}

func encodeNativeInt(dst []byte, v int64, base int) (int, error) {
	var scratch [65]byte
	text := strconv.AppendInt(scratch[:0], v, base)
	if len(text) > len(dst) {
		return 0, ErrShortBuffer
	}
	return copy(dst, text), nil
}

// encodeField renders v at dst[pos:], left-padded with zeros to width when
// width > 0, reporting the new position.
func encodeField(dst []byte, pos int, v uint64, base, width int) (int, error) {
	var scratch [64]byte
	text := strconv.AppendUint(scratch[:0], v, base)
	pad := width - len(text)
	if pad < 0 {
		pad = 0
	}
	if pos+pad+len(text) > len(dst) {
		return pos, ErrShortBuffer
	}
	for i := 0; i < pad; i++ {
		dst[pos] = '0'
		pos++
	}
	pos += copy(dst[pos:], text)
	return pos, nil
}

func encodePow2(dst []byte, x U128, base int, m baseMetric) (int, error) {
	chunkBits := uint(bits.TrailingZeros64(m.maxPower)) // 64 for the zero sentinel
	leading := 128 % chunkBits

	pos := 0
	first := true

	// The top bits do not fill a whole chunk for every base; octal chunks
	// cover 63 bits, leaving 2 at the top. A zero head is suppressed.
	if leading != 0 {
		head := x.Rsh(128 - leading).lo
		if head != 0 {
			var err error
			pos, err = encodeField(dst, pos, head, base, 0)
			if err != nil {
				return pos, err
			}
			first = false
		}
	}

	// Past the head, every chunk covers exactly chunkBits bits and must
	// occupy its full digit width however small its value; only the first
	// emitted chunk goes unpadded.
	mask := uint64(1)<<chunkBits - 1
	shift := 128 - leading - chunkBits
	for {
		piece := x.Rsh(shift).lo & mask
		width := m.maxDigits
		if first {
			width = 0
		}
		var err error
		pos, err = encodeField(dst, pos, piece, base, width)
		if err != nil {
			return pos, err
		}
		if shift == 0 {
			return pos, nil
		}
		shift -= chunkBits
		first = false
	}
}

func encodeGeneric(dst []byte, x U128, base int, m baseMetric) (int, error) {
	// Everything above the lowest maxDigits digits is the quotient,
	// encoded recursively until it fits a single strconv call.
	q, r := quoRem64(x, m.maxPower)
	pos, err := EncodeU128(dst, q, base)
	if err != nil {
		return pos, err
	}

	// The remainder occupies a fixed field of exactly maxDigits characters;
	// shortening it would make the concatenation ambiguous ("1"+"23" reads
	// the same as "12"+"3").
	return encodeField(dst, pos, r, base, m.maxDigits)
}

// plainFormatBase maps an fmt verb with no width, precision or flags to a
// base the codec can render directly.
func plainFormatBase(s fmt.State, verb rune) (base int, upper, ok bool) {
	if _, set := s.Width(); set {
		return 0, false, false
	}
	if _, set := s.Precision(); set {
		return 0, false, false
	}
	for _, f := range "+-# 0" {
		if s.Flag(int(f)) {
			return 0, false, false
		}
	}
	switch verb {
	case 'b':
		return 2, false, true
	case 'o':
		return 8, false, true
	case 'd', 'v', 's':
		return 10, false, true
	case 'x':
		return 16, false, true
	case 'X':
		return 16, true, true
	}
	return 0, false, false
}

func upperASCII(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}
