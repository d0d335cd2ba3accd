package floatradix

import (
	"math"
)

type (
	// format describes an IEEE-754 binary interchange format.
	format struct {
		mantbits uint // stored significand bits, excludes the hidden bit
		expbits  uint
		bias     int
	}

	// floatBits is a decomposed float: value = mant * 2**exp.
	floatBits struct {
		kind Kind
		neg  bool
		mant uint64
		exp  int
		// lowerBoundary is set if the gap to the next smaller float is half
		// the gap to the next larger one.
		lowerBoundary bool
	}
)

var (
	float32info = format{mantbits: 23, expbits: 8, bias: -127}
	float64info = format{mantbits: 52, expbits: 11, bias: -1023}
)

func formatForBitSize(bitSize int) *format {
	switch bitSize {
	case 32:
		return &float32info
	case 64:
		return &float64info
	default:
		panic(`floatradix: illegal bitSize`)
	}
}

// rawBits returns the bit pattern of f, in the given format. The value must
// already be representable in that format.
func (x *format) rawBits(f float64) uint64 {
	if x == &float32info {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(f)
}

// minExp is the binary exponent (of the integer significand) used by the
// smallest normal and every subnormal value.
func (x *format) minExp() int {
	return 1 + x.bias - int(x.mantbits)
}

func decompose(bits uint64, flt *format) floatBits {
	v := floatBits{
		neg:  bits>>(flt.expbits+flt.mantbits) != 0,
		mant: bits & (uint64(1)<<flt.mantbits - 1),
	}
	biased := int(bits>>flt.mantbits) & (1<<flt.expbits - 1)

	switch biased {
	case 1<<flt.expbits - 1:
		if v.mant == 0 {
			v.kind = KindInf
		} else {
			v.kind = KindNaN
			v.neg = false
		}
		v.mant = 0

	case 0:
		if v.mant == 0 {
			v.kind = KindZero
			break
		}
		// subnormal: no hidden bit
		v.kind = KindFinite
		v.exp = flt.minExp()

	default:
		v.kind = KindFinite
		v.lowerBoundary = v.mant == 0 && biased > 1
		v.mant |= uint64(1) << flt.mantbits
		v.exp = biased + flt.bias - int(flt.mantbits)
	}

	return v
}
