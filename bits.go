package charconv

import "strconv"

func checkBits(bits int) {
	if bits < 1 || bits > 128 {
		panic("charconv: bit width out of range [1,128]")
	}
}

// DecodeUintBits decodes like DecodeU128 but treats the target as an
// unsigned integer of the declared bit width. Widths of 64 or less dispatch
// straight to the native primitive at the exact size; wider targets run the
// 128-bit codec and then re-validate representability, demoting success to
// ErrRange when the value does not fit the width.
func DecodeUintBits(src []byte, base, bits int) (U128, int, error) {
	checkBase(base)
	checkBits(bits)

	if bits <= 64 {
		pat := patternLength(src, base)
		if pat == 0 {
			return U128{}, 0, ErrSyntax
		}
		v, err := strconv.ParseUint(string(src[:pat]), base, bits)
		if err != nil {
			return U128{}, pat, ErrRange
		}
		return U128From64(v), pat, nil
	}

	x, n, err := DecodeU128(src, base)
	if err != nil {
		return U128{}, n, err
	}
	if !x.FitsBits(bits) {
		return U128{}, n, ErrRange
	}
	return x, n, nil
}

// DecodeIntBits is the signed counterpart to DecodeUintBits; the declared
// width counts the sign bit, so a width of 8 spans [-128,127].
func DecodeIntBits(src []byte, base, bits int) (I128, int, error) {
	checkBase(base)
	checkBits(bits)

	if bits <= 64 {
		digits := src
		signlen := 0
		if len(src) > 0 && src[0] == '-' {
			digits = src[1:]
			signlen = 1
		}
		pat := patternLength(digits, base)
		if pat == 0 {
			return I128{}, 0, ErrSyntax
		}
		v, err := strconv.ParseInt(string(src[:signlen+pat]), base, bits)
		if err != nil {
			return I128{}, signlen + pat, ErrRange
		}
		return I128From64(v), signlen + pat, nil
	}

	x, n, err := DecodeI128(src, base)
	if err != nil {
		return I128{}, n, err
	}
	if !x.FitsBits(bits) {
		return I128{}, n, ErrRange
	}
	return x, n, nil
}

// EncodeUintBits encodes x as an unsigned integer of the declared bit
// width. A value that does not fit the width is a precondition violation.
func EncodeUintBits(dst []byte, x U128, base, bits int) (int, error) {
	checkBase(base)
	checkBits(bits)
	if !x.FitsBits(bits) {
		panic("charconv: value does not fit declared bit width")
	}
	if bits <= 64 {
		return encodeNative(dst, x.lo, base)
	}
	return EncodeU128(dst, x, base)
}

// EncodeIntBits is the signed counterpart to EncodeUintBits.
func EncodeIntBits(dst []byte, x I128, base, bits int) (int, error) {
	checkBase(base)
	checkBits(bits)
	if !x.FitsBits(bits) {
		panic("charconv: value does not fit declared bit width")
	}
	if bits <= 64 {
		return encodeNativeInt(dst, x.AsInt64(), base)
	}
	return EncodeI128(dst, x, base)
}
