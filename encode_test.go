package charconv

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func mustEncodeU128(tb testing.TB, x U128, base int) string {
	tb.Helper()
	var buf [128]byte
	n, err := EncodeU128(buf[:], x, base)
	if err != nil {
		tb.Fatal(err)
	}
	return string(buf[:n])
}

func mustEncodeI128(tb testing.TB, x I128, base int) string {
	tb.Helper()
	var buf [129]byte
	n, err := EncodeI128(buf[:], x, base)
	if err != nil {
		tb.Fatal(err)
	}
	return string(buf[:n])
}

func TestEncodeU128Zero(t *testing.T) {
	for base := 2; base <= 36; base++ {
		t.Run(fmt.Sprintf("base=%d", base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual("0", mustEncodeU128(t, U128{}, base))
		})
	}
}

func TestEncodeU128(t *testing.T) {
	for idx, tc := range []struct {
		x    U128
		base int
		out  string
	}{
		{U128From64(1), 10, "1"},
		{U128From64(255), 16, "ff"},
		{U128From64(maxUint64), 10, "18446744073709551615"},
		{u128s("18446744073709551616"), 10, "18446744073709551616"}, // smallest value off the fast path
		{u128s("18446744073709551616"), 16, "10000000000000000"},
		{u128s("0x80000000000000000000000000000000"), 16, "80000000000000000000000000000000"},
		{u128s("0x80000000000000000000000000000000"), 10, "170141183460469231731687303715884105728"},
		{MaxU128, 10, "340282366920938463463374607431768211455"},
		{MaxU128, 16, "ffffffffffffffffffffffffffffffff"},
		{MaxU128, 32, "7vvvvvvvvvvvvvvvvvvvvvvvvv"},
		{u128s("0x 00000001 00000000 00000000 00000001"), 16, "1000000000000000000000001"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%d", idx, tc.out, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, mustEncodeU128(t, tc.x, tc.base))
		})
	}
}

// Each chunk past the first must occupy its full fixed digit width; this is
// where a truncated inner chunk would corrupt the output silently.
func TestEncodeU128Pow2Padding(t *testing.T) {
	tt := assert.WrapTB(t)

	x := accU128FromBigInt(new(big.Int).Div(new(big.Int).Lsh(big1, 100), big.NewInt(10)))
	tt.MustEqual("1999999999999999999999999", mustEncodeU128(t, x, 16))

	// An octal chunk covers 63 bits, so 1<<126 is a 2-bit head over two full
	// chunks of zeros, each 21 digits wide:
	tt.MustEqual("1"+zeros(42), mustEncodeU128(t, U128From64(1).Lsh(126), 8))
}

func TestEncodeU128AgainstBigInt(t *testing.T) {
	values := []U128{
		U128From64(1),
		U128From64(35),
		U128From64(36),
		U128From64(maxUint64),
		u128s("18446744073709551616"),
		u128s("0x1 00000000 00000001"),
		u128s("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"),
		u128s("0x80000000000000000000000000000000"),
		MaxU128,
	}
	for base := 2; base <= 36; base++ {
		for _, v := range values {
			t.Run(fmt.Sprintf("%s/%d", v, base), func(t *testing.T) {
				tt := assert.WrapTB(t)
				tt.MustEqual(v.AsBigInt().Text(base), mustEncodeU128(t, v, base))
			})
		}
	}
}

func TestEncodeU128ShortBuffer(t *testing.T) {
	for idx, tc := range []struct {
		x    U128
		base int
		sz   int
	}{
		{MaxU128, 10, 0},
		{MaxU128, 10, 5},
		{MaxU128, 10, 38},
		{MaxU128, 16, 31},
		{MaxU128, 2, 127},
		{U128From64(1000), 10, 3},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			n, err := EncodeU128(make([]byte, tc.sz), tc.x, tc.base)
			tt.MustEqual(ErrShortBuffer, err)
			tt.MustAssert(n <= tc.sz, "wrote %d into %d", n, tc.sz)
		})
	}
}

func TestEncodeI128(t *testing.T) {
	for idx, tc := range []struct {
		x    I128
		base int
		out  string
	}{
		{I128From64(0), 10, "0"},
		{I128From64(-1), 10, "-1"},
		{I128From64(-255), 16, "-ff"},
		{I128From64(minInt64()), 10, "-9223372036854775808"},
		{i128s("-9223372036854775809"), 10, "-9223372036854775809"}, // smallest magnitude off the int64 fast path
		{i128s("-18446744073709551616"), 16, "-10000000000000000"},
		{MaxI128, 10, "170141183460469231731687303715884105727"},
		{MinI128, 10, "-170141183460469231731687303715884105728"},
		{MinI128, 16, "-80000000000000000000000000000000"},
		{MinI128, 2, "-1" + zeros(127)},
	} {
		t.Run(fmt.Sprintf("%d/%s/%d", idx, tc.out, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, mustEncodeI128(t, tc.x, tc.base))
		})
	}
}

func TestEncodeI128ShortBuffer(t *testing.T) {
	tt := assert.WrapTB(t)

	// A negative wide value needs room for the sign and at least one digit:
	n, err := EncodeI128(make([]byte, 1), MinI128, 10)
	tt.MustEqual(ErrShortBuffer, err)
	tt.MustEqual(0, n)

	n, err = EncodeI128(make([]byte, 10), MinI128, 10)
	tt.MustEqual(ErrShortBuffer, err)
	tt.MustAssert(n <= 10)

	n, err = EncodeI128(make([]byte, 2), I128From64(-100), 10)
	tt.MustEqual(ErrShortBuffer, err)
	tt.MustEqual(0, n)
}

func TestAppendU128(t *testing.T) {
	tt := assert.WrapTB(t)

	out := AppendU128(nil, MaxU128, 10)
	tt.MustEqual("340282366920938463463374607431768211455", string(out))

	out = AppendU128([]byte("x="), U128From64(255), 16)
	tt.MustEqual("x=ff", string(out))
}

func TestAppendI128(t *testing.T) {
	tt := assert.WrapTB(t)

	out := AppendI128(nil, MinI128, 10)
	tt.MustEqual("-170141183460469231731687303715884105728", string(out))

	out = AppendI128([]byte("v:"), I128From64(-15), 16)
	tt.MustEqual("v:-f", string(out))
}

func minInt64() int64 { return -1 << 63 }

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
