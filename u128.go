package charconv

import (
	"fmt"
	"math/big"
	"math/bits"
)

type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// ParseU128 interprets all of s in the given base, in the manner of
// strconv.ParseUint. Trailing characters that DecodeU128 would leave
// unconsumed make the whole string invalid.
func ParseU128(s string, base int) (U128, error) {
	out, n, err := DecodeU128([]byte(s), base)
	if err != nil {
		return U128{}, err
	}
	if n != len(s) {
		return U128{}, ErrSyntax
	}
	return out, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("charconv: unsupported bit size")
	}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	var buf [40]byte // 39 decimal digits is the most a U128 can hold
	n, _ := EncodeU128(buf[:], u, 10)
	return string(buf[:n])
}

func (u U128) Format(s fmt.State, c rune) {
	if base, upper, ok := plainFormatBase(s, c); ok {
		text := AppendU128(nil, u, base)
		if upper {
			upperASCII(text)
		}
		s.Write(text)
		return
	}
	// Width, precision and flag handling stays big.Int's problem.
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		if u.hi > 0 {
			b.SetUint64(u.hi)
			b.Lsh(b, 64)
		}
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret
// it as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you
// convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

// FitsBits reports whether u can be represented as an unsigned integer of
// the declared bit width. Widths outside [1,128] panic.
func (u U128) FitsBits(bits int) bool {
	checkBits(bits)
	return u.Rsh(uint(bits)).IsZero()
}

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) LeadingZeros() int {
	if u.hi == 0 {
		return bits.LeadingZeros64(u.lo) + 64
	}
	return bits.LeadingZeros64(u.hi)
}

func (u U128) TrailingZeros() int {
	if u.lo == 0 {
		return bits.TrailingZeros64(u.hi) + 64
	}
	return bits.TrailingZeros64(u.lo)
}

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u U128) BitLen() int {
	return 128 - u.LeadingZeros()
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}

	return v
}

func (u U128) MarshalText() ([]byte, error) {
	return AppendU128(nil, u, 10), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU128(string(bts), 10)
	if err != nil {
		return fmt.Errorf("charconv: u128 string %q invalid", string(bts))
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("charconv: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
