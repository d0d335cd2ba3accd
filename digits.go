package floatradix

import (
	"math"
	"math/big"
	"math/bits"
)

type (
	// Digits is the digit stream for a single value, in a given base. The
	// Integer and Fraction slices hold digit values (0 to Base-1), not
	// characters, most significant first. Hand built values must keep that
	// range, see [Digits.Append].
	//
	// For any Kind other than KindFinite, both slices are empty.
	Digits struct {
		Integer  []byte
		Fraction []byte
		Base     int
		Kind     Kind
		// Neg is the sign bit, for every kind but KindNaN.
		Neg bool
		// Exact is true if the Fraction terminated exactly, i.e. the digits
		// represent the value with no remainder.
		Exact bool
		// Rounded is true if the last fractional digit was rounded up,
		// possibly carrying into the integer part.
		Rounded bool
	}

	// Kind classifies a float value.
	Kind uint8
)

const (
	KindZero Kind = iota
	KindFinite
	KindInf
	KindNaN
)

func (x Kind) String() string {
	switch x {
	case KindZero:
		return `zero`
	case KindFinite:
		return `finite`
	case KindInf:
		return `inf`
	case KindNaN:
		return `nan`
	default:
		return `unknown`
	}
}

// generateExact produces the shortest digit stream that identifies v, in the
// given base, using exact arithmetic. The base must be valid.
func generateExact(v floatBits, base int) Digits {
	d := Digits{
		Base: base,
		Kind: v.kind,
		Neg:  v.neg,
	}
	if v.kind != KindFinite {
		d.Exact = true
		return d
	}

	x := newExactValue(v)

	var scratch big.Int
	b := big.NewInt(int64(base))

	if x.hasFraction() {
		budget := fractionDigitBudget(x.exp, base)
		for {
			digit := x.nextFractionDigit(b, &scratch)
			d.Fraction = append(d.Fraction, byte(digit))

			c := x.cmpRemainderToHalf(&scratch)
			up := c > 0 || (c == 0 && digit&1 == 1) // ties to even

			// the budget checks are a guard: the gap tests always stop first
			if up && (len(d.Fraction) >= budget || x.withinUpperGap(&scratch)) {
				d.Rounded = true
				if d.roundUp() {
					x.integer.Add(&x.integer, bigOne)
				}
				break
			}

			if x.belowLowerGap() || len(d.Fraction) >= budget {
				break
			}
		}
	}

	d.Exact = x.exactly && !d.Rounded
	d.Integer = appendIntegerDigits(d.Integer, &x.integer, base)

	return d
}

// roundUp increments the last fractional digit, propagating the carry, and
// dropping any digits that overflow. Returns true if the carry propagated
// into the integer part (leaving no fractional digits).
func (x *Digits) roundUp() bool {
	for i := len(x.Fraction) - 1; i >= 0; i-- {
		if int(x.Fraction[i])+1 < x.Base {
			x.Fraction[i]++
			x.Fraction = x.Fraction[:i+1]
			return false
		}
	}
	x.Fraction = x.Fraction[:0]
	return true
}

// fractionDigitBudget is the maximum number of fractional digits that will be
// generated for a value with the given binary exponent. The half-gap cutoff
// always terminates first, once mMinus * base**n >= den, and den is at most
// 2**(2-exp).
func fractionDigitBudget(exp, base int) int {
	if exp >= 0 {
		return 0
	}
	return int(math.Ceil(float64(2-exp)/math.Log2(float64(base)))) + 1
}

// appendIntegerDigits appends the digits of the non-negative integer n, in the
// given base, to dst. The value of n is consumed. At least one digit is
// always appended.
func appendIntegerDigits(dst []byte, n *big.Int, base int) []byte {
	if n.Sign() == 0 {
		return append(dst, 0)
	}

	// divide by the largest power of base that fits in a word, and split each
	// remainder using word arithmetic (see also math/big natconv)
	bb, ndigits := maxPow(uint64(base))
	divisor := new(big.Int).SetUint64(bb)

	start := len(dst)
	var r big.Int
	for n.Sign() != 0 {
		n.QuoRem(n, divisor, &r)
		w := r.Uint64()
		if n.Sign() == 0 {
			// most significant chunk: no leading zeros
			for w != 0 {
				dst = append(dst, byte(w%uint64(base)))
				w /= uint64(base)
			}
			break
		}
		for range ndigits {
			dst = append(dst, byte(w%uint64(base)))
			w /= uint64(base)
		}
	}

	// digits were appended least significant first
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}

	return dst
}

// maxPow returns (b**n, n) such that b**n is the largest power b**n fitting
// in 63 bits.
func maxPow(b uint64) (p uint64, n int) {
	p, n = b, 1
	for {
		hi, lo := bits.Mul64(p, b)
		if hi != 0 || lo > math.MaxInt64 {
			return p, n
		}
		p = lo
		n++
	}
}
