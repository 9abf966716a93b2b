package charconv

import (
	"fmt"
	"math/big"
)

type I128 struct {
	hi uint64
	lo uint64
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

// ParseI128 interprets all of s in the given base, in the manner of
// strconv.ParseInt. A leading '-' is accepted; '+' is not.
func ParseI128(s string, base int) (I128, error) {
	out, n, err := DecodeI128([]byte(s), base)
	if err != nil {
		return I128{}, err
	}
	if n != len(s) {
		return I128{}, ErrSyntax
	}
	return out, nil
}

// I128FromBigInt creates an I128 from a big.Int. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	var u U128
	u, accurate = U128FromBigInt(new(big.Int).Abs(v))
	if !accurate {
		if neg {
			return MinI128, false
		}
		return MaxI128, false
	}

	if !neg {
		if u.hi&signBit != 0 {
			return MaxI128, false
		}
		return u.AsI128(), true
	}
	if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
		return MinI128, true
	} else if cmp > 0 {
		return MinI128, false
	}
	return u.AsI128().Neg(), true
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	var buf [41]byte // sign + 39 decimal digits is the most an I128 can hold
	n, _ := EncodeI128(buf[:], i, 10)
	return string(buf[:n])
}

func (i I128) Format(s fmt.State, c rune) {
	if base, upper, ok := plainFormatBase(s, c); ok {
		text := AppendI128(nil, i, base)
		if upper {
			upperASCII(text)
		}
		s.Write(text)
		return
	}
	i.AsBigInt().Format(s, c)
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	mag := i.AsU128()
	if i.hi&signBit != 0 {
		mag = zeroU128.Sub(mag)
	}
	mag.IntoBigInt(b)
	if i.hi&signBit != 0 {
		b.Neg(b)
	}
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you
// convert.
func (i I128) AsInt64() int64 {
	if i.hi&signBit != 0 {
		return -int64(^(i.lo - 1))
	} else {
		return int64(i.lo)
	}
}

// IsInt64 reports whether i can be represented as an int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	} else {
		return i.hi == 0 && i.lo <= maxInt64
	}
}

// FitsBits reports whether i can be represented as a two's complement
// integer of the declared bit width. Widths outside [1,128] panic.
func (i I128) FitsBits(bits int) bool {
	checkBits(bits)
	if i.Sign() >= 0 {
		return i.AsU128().Rsh(uint(bits - 1)).IsZero()
	}
	mag := zeroU128.Sub(i.AsU128())
	return mag.Dec().Rsh(uint(bits - 1)).IsZero()
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Neg() (v I128) {
	if i.hi == 0 && i.lo == 0 {
		return v
	}

	if i == MinI128 {
		// Overflow case: -MinI128 == MinI128
		return i

	} else if i.hi&signBit != 0 {
		v.hi = ^i.hi
		v.lo = ^(i.lo - 1)
	} else {
		v.hi = ^i.hi
		v.lo = (^i.lo) + 1
	}
	if v.lo == 0 { // handle overflow
		v.hi++
	}
	return v
}

func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		i.hi = ^i.hi
		i.lo = ^(i.lo - 1)
		if i.lo == 0 { // handle overflow
			i.hi++
		}
	}
	return i
}

func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) MarshalText() ([]byte, error) {
	return AppendI128(nil, i, 10), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseI128(string(bts), 10)
	if err != nil {
		return fmt.Errorf("charconv: i128 string %q invalid", string(bts))
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("charconv: i128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}
