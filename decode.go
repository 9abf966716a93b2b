package charconv

import (
	"errors"
	"math/bits"
	"strconv"
)

var (
	// ErrSyntax reports that no digits were found at the expected position.
	ErrSyntax = errors.New("charconv: invalid syntax")

	// ErrRange reports numeric text whose value does not fit the target
	// type. The count returned alongside spans the whole matched token
	// rather than the point where it stopped fitting, so a caller scanning
	// delimited input can resume at the delimiter.
	ErrRange = errors.New("charconv: value out of range")
)

// DecodeU128 parses the longest prefix of src made of valid digits for
// base, reporting the value and the number of bytes consumed. Letter digits
// are accepted in either case. No sign, whitespace or base prefix is
// recognised. Bases outside [2,36] panic.
func DecodeU128(src []byte, base int) (U128, int, error) {
	checkBase(base)

	pat := patternLength(src, base)
	if pat == 0 {
		return U128{}, 0, ErrSyntax
	}

	m := baseMetrics[base]
	if base&(base-1) == 0 {
		return decodePow2(src[:pat], base, m)
	}
	return decodeGeneric(src[:pat], base, m)
}

// DecodeI128 parses like DecodeU128 but recognises a leading '-'. The sign
// is not consumed unless digits follow it.
func DecodeI128(src []byte, base int) (I128, int, error) {
	checkBase(base)

	if len(src) == 0 {
		return I128{}, 0, ErrSyntax
	}

	if src[0] != '-' {
		x, n, err := DecodeU128(src, base)
		if err != nil {
			return I128{}, n, err
		}
		if x.hi&signBit != 0 {
			return I128{}, n, ErrRange
		}
		return x.AsI128(), n, nil
	}

	m := baseMetrics[base]
	if len(src) <= m.maxDigits {
		// Short enough that even ignoring the sign the digits cannot
		// exceed an int64, so one strconv call covers the whole token.
		pat := patternLength(src[1:], base)
		if pat == 0 {
			return I128{}, 0, ErrSyntax
		}
		v, err := strconv.ParseInt(string(src[:1+pat]), base, 64)
		if err != nil {
			panic("charconv: native parse of validated token failed: " + err.Error())
		}
		return I128From64(v), 1 + pat, nil
	}

	x, n, err := DecodeU128(src[1:], base)
	if err == ErrSyntax {
		return I128{}, 0, ErrSyntax
	}
	if err != nil {
		return I128{}, 1 + n, err
	}
	if x.Cmp(minI128AsAbsU128) > 0 {
		// The bound admits a magnitude of exactly 1<<127: MinI128 has no
		// positive counterpart but must parse.
		return I128{}, 1 + n, ErrRange
	}
	return x.AsI128().Neg(), 1 + n, nil
}

// parseNative runs a pre-validated digit run of at most maxDigits
// characters through the native 64-bit primitive. By construction the run
// cannot fail to parse or exceed a uint64.
func parseNative(chunk []byte, base int) uint64 {
	v, err := strconv.ParseUint(string(chunk), base, 64)
	if err != nil {
		panic("charconv: native parse of validated chunk failed: " + err.Error())
	}
	return v
}

// decodePow2 consumes pat from the low-order end in chunks of maxDigits
// characters, ORing each chunk in at its bit offset. Decoding runs
// rightwards where encoding ran leftwards: accumulation needs the offset,
// and the offset of the leftmost chunk isn't known until the pattern ends.
func decodePow2(pat []byte, base int, m baseMetric) (U128, int, error) {
	chunkBits := uint(bits.TrailingZeros64(m.maxPower))

	var out U128
	var shift uint
	rest := pat
	for {
		chunk := rest
		if len(chunk) > m.maxDigits {
			chunk = rest[len(rest)-m.maxDigits:]
		}
		digits := parseNative(chunk, base)

		// A zero chunk adds no significant bits no matter how far left it
		// sits; heavily zero-padded input stays in range.
		if digits != 0 {
			width := shift + uint(64-bits.LeadingZeros64(digits))
			if width > 128 {
				return U128{}, len(pat), ErrRange
			}
			out = out.Or(U128From64(digits).Lsh(shift))
		}

		rest = rest[:len(rest)-len(chunk)]
		if len(rest) == 0 {
			return out, len(pat), nil
		}
		if shift <= 128 { // saturate; anything nonzero past here is out of range
			shift += chunkBits
		}
	}
}

// decodeGeneric consumes pat from the low-order end in chunks of maxDigits
// characters, accumulating out += chunk * factor with factor stepping
// through powers of maxPower. Both the multiply and the add are checked
// against 128-bit wraparound.
func decodeGeneric(pat []byte, base int, m baseMetric) (U128, int, error) {
	var out U128
	factor := U128From64(1)
	saturated := false
	rest := pat
	for {
		chunk := rest
		if len(chunk) > m.maxDigits {
			chunk = rest[len(rest)-m.maxDigits:]
		}
		digits := parseNative(chunk, base)

		if digits != 0 {
			if saturated {
				// The factor itself no longer fits 128 bits, so any
				// nonzero digits out here cannot either.
				return U128{}, len(pat), ErrRange
			}
			summand, overflow := mulCheck128by64(factor, digits)
			if overflow {
				return U128{}, len(pat), ErrRange
			}
			var carry bool
			out, carry = addCheck128(out, summand)
			if carry {
				return U128{}, len(pat), ErrRange
			}
		}

		rest = rest[:len(rest)-len(chunk)]
		if len(rest) == 0 {
			return out, len(pat), nil
		}
		next, overflow := mulCheck128by64(factor, m.maxPower)
		factor = next
		saturated = saturated || overflow
	}
}
