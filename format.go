package floatradix

import (
	"unsafe"
)

const (
	digitChars = `0123456789abcdefghijklmnopqrstuvwxyz`
	strNaN     = `NaN`
	strPosInf  = `Infinity`
	strNegInf  = `-Infinity`
	strZero    = `0`
)

// String formats the digits, using the same rules as [FormatFloat].
func (x Digits) String() string {
	b := x.Append(make([]byte, 0, x.size()))
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Append appends the formatted digits to dst, returning the extended buffer.
//
// NaN, infinities and zero (of either sign) are formatted as "NaN",
// "Infinity", "-Infinity" and "0". Finite values are formatted as an optional
// "-", the integer digits, then (if any non-zero fractional digits remain) a
// "." and the fractional digits. Digit values 10 to 35 use 'a' to 'z'.
//
// Digit values must be less than Base. Append panics on any value above 35,
// which has no character.
func (x Digits) Append(dst []byte) []byte {
	switch x.Kind {
	case KindNaN:
		return append(dst, strNaN...)
	case KindInf:
		if x.Neg {
			return append(dst, strNegInf...)
		}
		return append(dst, strPosInf...)
	case KindFinite:
	default:
		return append(dst, strZero...)
	}

	integer := trimLeadingZeros(x.Integer)
	fraction := trimTrailingZeros(x.Fraction)

	if len(integer) == 0 && len(fraction) == 0 {
		// not reachable from any generator
		return append(dst, strZero...)
	}

	if x.Neg {
		dst = append(dst, '-')
	}

	if len(integer) == 0 {
		dst = append(dst, '0')
	} else {
		dst = appendDigitChars(dst, integer)
	}

	if len(fraction) != 0 {
		dst = append(dst, '.')
		dst = appendDigitChars(dst, fraction)
	}

	return dst
}

// size is the maximum number of bytes Append will add.
func (x Digits) size() int {
	return len(x.Integer) + len(x.Fraction) + len(strNegInf)
}

func appendDigitChars(dst []byte, digits []byte) []byte {
	for _, v := range digits {
		if int(v) >= len(digitChars) {
			panic(`floatradix: digit value out of range`)
		}
		dst = append(dst, digitChars[v])
	}
	return dst
}

func trimLeadingZeros(b []byte) []byte {
	for len(b) != 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}

func trimTrailingZeros(b []byte) []byte {
	for len(b) != 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return b
}
