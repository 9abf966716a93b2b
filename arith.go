package charconv

import "math/bits"

// addCheck128 computes u + n, reporting whether the result wrapped past 128
// bits.
func addCheck128(u, n U128) (v U128, overflow bool) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.hi, c = bits.Add64(u.hi, n.hi, c)
	return v, c != 0
}

// mulCheck128by64 computes u * n, reporting whether the result wrapped past
// 128 bits.
func mulCheck128by64(u U128, n uint64) (v U128, overflow bool) {
	hi1, lo1 := bits.Mul64(u.lo, n)
	hi2, lo2 := bits.Mul64(u.hi, n)

	var c uint64
	v.lo = lo1
	v.hi, c = bits.Add64(hi1, lo2, 0)
	return v, hi2 != 0 || c != 0
}

// quoRem64 divides u by a 64-bit divisor, which is all the codec ever
// divides by; the divisor is always one of the baseMetrics powers.
func quoRem64(u U128, by uint64) (q U128, r uint64) {
	if u.hi == 0 {
		// protected from div/0 because by is never zero here:
		return U128{lo: u.lo / by}, u.lo % by
	}
	if u.hi < by {
		q.lo, r = bits.Div64(u.hi, u.lo, by)
		return q, r
	}
	q.hi = u.hi / by
	q.lo, r = bits.Div64(u.hi%by, u.lo, by)
	return q, r
}
