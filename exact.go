package floatradix

import (
	"math/big"
)

// exactValue is the exact rational value of a finite, non-zero float, split
// into its integer part and the fractional remainder scaled by den.
//
// For value = mant * 2**exp:
//
//	exp >= 0: integer = mant << exp, rem = 0, den = 1
//	exp < 0:  den = 2**(2-exp), integer = mant >> -exp, rem = (mant mod 2**-exp) << 2
//
// The extra factor of 4 on den keeps the half gaps (mPlus and mMinus) integral,
// including the quarter-ulp lower gap at a power of two.
type exactValue struct {
	neg     bool
	integer big.Int
	rem     big.Int // fraction * den, 0 <= rem < den
	den     big.Int // power of two
	mPlus   big.Int // half the gap to the next larger float, scaled by den
	mMinus  big.Int // half the gap to the next smaller float, scaled by den
	exp     int
	exactly bool // rem == 0
}

func newExactValue(v floatBits) *exactValue {
	if v.kind != KindFinite {
		panic(`floatradix: exact value: not finite`)
	}

	x := exactValue{neg: v.neg, exp: v.exp}
	x.integer.SetUint64(v.mant)

	if v.exp >= 0 {
		x.integer.Lsh(&x.integer, uint(v.exp))
		x.den.SetInt64(1)
		x.exactly = true
		return &x
	}

	shift := uint(-v.exp)
	x.den.SetInt64(1)
	x.den.Lsh(&x.den, shift+2)

	// rem = low bits of mant, below the binary point
	x.rem.SetInt64(1)
	x.rem.Lsh(&x.rem, shift)
	x.rem.Sub(&x.rem, bigOne)
	x.rem.And(&x.rem, &x.integer)
	x.rem.Lsh(&x.rem, 2)

	x.integer.Rsh(&x.integer, shift)

	// one ulp is 4, scaled
	x.mPlus.SetInt64(2)
	if v.lowerBoundary {
		x.mMinus.SetInt64(1)
	} else {
		x.mMinus.SetInt64(2)
	}

	x.exactly = x.rem.Sign() == 0

	return &x
}

var (
	bigOne = big.NewInt(1)
)

// hasFraction reports if any fractional digits are significant, i.e. the
// fractional remainder is at least half the gap to the next smaller float.
func (x *exactValue) hasFraction() bool {
	return x.rem.Sign() != 0 && x.rem.Cmp(&x.mMinus) >= 0
}

// nextFractionDigit scales the remainder and both half gaps by base, and
// extracts the next digit, leaving the new remainder in x.rem.
func (x *exactValue) nextFractionDigit(base *big.Int, scratch *big.Int) int {
	x.rem.Mul(&x.rem, base)
	x.mPlus.Mul(&x.mPlus, base)
	x.mMinus.Mul(&x.mMinus, base)
	scratch.QuoRem(&x.rem, &x.den, &x.rem)
	x.exactly = x.rem.Sign() == 0
	return int(scratch.Int64())
}

// cmpRemainderToHalf compares 2*rem against den, i.e. the remaining fraction
// of a digit against one half.
func (x *exactValue) cmpRemainderToHalf(scratch *big.Int) int {
	scratch.Lsh(&x.rem, 1)
	return scratch.Cmp(&x.den)
}

// withinUpperGap reports if rounding up the last digit would stay strictly
// within half the gap to the next larger float, i.e. rem + mPlus > den.
func (x *exactValue) withinUpperGap(scratch *big.Int) bool {
	scratch.Add(&x.rem, &x.mPlus)
	return scratch.Cmp(&x.den) > 0
}

// belowLowerGap reports if the emitted digits are already closer than half
// the gap to the next smaller float, i.e. rem < mMinus.
func (x *exactValue) belowLowerGap() bool {
	return x.rem.Cmp(&x.mMinus) < 0
}
