package floatradix

import (
	"math"
)

// generateV8 reproduces the digit generation of the V8 JavaScript engine's
// DoubleToRadixCString, which performs all arithmetic using doubles.
//
// The output is identical to Number.prototype.toString(radix) as implemented
// by V8, including its deviations from the shortest round-trip form: fraction
// digits drift for bases that aren't powers of two, and integer digits past
// 2**53 * base are zero filled.
func generateV8(value float64, base int) Digits {
	d := Digits{Base: base}

	switch {
	case math.IsNaN(value):
		d.Kind = KindNaN
		d.Exact = true
		return d
	case value == 0:
		d.Kind = KindZero
		d.Neg = math.Signbit(value)
		d.Exact = true
		return d
	case math.IsInf(value, 0):
		d.Kind = KindInf
		d.Neg = value < 0
		d.Exact = true
		return d
	}

	d.Kind = KindFinite
	if value < 0 {
		d.Neg = true
		value = -value
	}

	radix := float64(base)

	integer := math.Floor(value)
	fraction := value - integer

	// only compute fractional digits up to the input's precision
	delta := 0.5 * (math.Nextafter(value, math.Inf(1)) - value)
	delta = max(math.Nextafter(0, 1), delta)

	if fraction >= delta {
		for {
			// explicit conversions prevent fused multiply-add
			fraction = float64(fraction * radix)
			delta = float64(delta * radix)

			digit := int(fraction)
			d.Fraction = append(d.Fraction, byte(digit))

			fraction = float64(fraction - float64(digit))

			if (fraction > 0.5 || (fraction == 0.5 && digit&1 == 1)) && fraction+delta > 1 {
				d.Rounded = true
				if d.roundUp() {
					integer += 1
				}
				break
			}

			if fraction < delta {
				break
			}
		}
	}

	d.Exact = fraction == 0 && !d.Rounded

	// integer digits, least significant first
	for v8Exponent(integer/radix) > 0 {
		integer /= radix
		d.Integer = append(d.Integer, 0)
	}
	for {
		remainder := math.Mod(integer, radix)
		d.Integer = append(d.Integer, byte(remainder))
		integer = (integer - remainder) / radix
		if integer <= 0 {
			break
		}
	}
	for i, j := 0, len(d.Integer)-1; i < j; i, j = i+1, j-1 {
		d.Integer[i], d.Integer[j] = d.Integer[j], d.Integer[i]
	}

	return d
}

// v8Exponent is the binary exponent of the integer significand of f, per
// V8's Double::Exponent. It is positive only if f >= 2**53.
func v8Exponent(f float64) int {
	v := decompose(math.Float64bits(f), &float64info)
	if v.kind != KindFinite {
		return float64info.minExp()
	}
	return v.exp
}
