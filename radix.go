package floatradix

import (
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type (
	// Converter formats floating point values in a given radix. The zero
	// value is ready to use, and uses ModeExact.
	Converter struct {
		Mode Mode
	}

	// Mode selects the digit generation algorithm used by a Converter.
	Mode uint8
)

const (
	// ModeExact generates the shortest digits that uniquely identify the
	// value, at its own precision, using exact arithmetic.
	ModeExact Mode = iota

	// ModeV8 matches the output of the V8 JavaScript engine's
	// Number.prototype.toString(radix) exactly, which uses double
	// arithmetic. Float32 values are widened to float64, as in JavaScript.
	ModeV8
)

func (x Mode) String() string {
	switch x {
	case ModeExact:
		return `exact`
	case ModeV8:
		return `v8`
	default:
		return `unknown`
	}
}

// FormatFloat converts the floating point number f to a string, in the given
// base, which must be in [MinBase, MaxBase], or an [*InvalidBaseError] will
// be returned.
//
// The result is the ECMAScript Number::toString(radix) representation: the
// integer digits, followed by a "." and the fractional digits, if any. The
// fractional digits are the fewest such that parsing the result (in the same
// base, rounding to nearest) recovers f, assuming that the original was
// obtained from a floating point value of bitSize bits (32 for float32, 64
// for float64). Any other bitSize will panic.
//
// Special cases are:
//
//	FormatFloat(NaN, base, bitSize)  = "NaN"
//	FormatFloat(±0, base, bitSize)   = "0"
//	FormatFloat(+Inf, base, bitSize) = "Infinity"
//	FormatFloat(-Inf, base, bitSize) = "-Infinity"
func FormatFloat(f float64, base, bitSize int) (string, error) {
	return Converter{}.FormatFloat(f, base, bitSize)
}

// AppendFloat is the append variant of [FormatFloat]. On error, dst is
// returned unmodified.
func AppendFloat(dst []byte, f float64, base, bitSize int) ([]byte, error) {
	return Converter{}.AppendFloat(dst, f, base, bitSize)
}

// GenerateDigits returns the digit stream used by [FormatFloat].
func GenerateDigits(f float64, base, bitSize int) (Digits, error) {
	return Converter{}.GenerateDigits(f, base, bitSize)
}

// Format is a generic variant of [FormatFloat], where the bitSize is derived
// from the type of v.
func Format[F constraints.Float](v F, base int) (string, error) {
	return FormatFloat(float64(v), base, bitSizeOf(v))
}

func bitSizeOf[F constraints.Float](v F) int {
	return int(unsafe.Sizeof(v)) * 8
}

// FormatFloat is per the package-level [FormatFloat], using x.Mode.
func (x Converter) FormatFloat(f float64, base, bitSize int) (string, error) {
	b, err := x.AppendFloat(nil, f, base, bitSize)
	if err != nil {
		return ``, err
	}
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

// AppendFloat is per the package-level [AppendFloat], using x.Mode.
func (x Converter) AppendFloat(dst []byte, f float64, base, bitSize int) ([]byte, error) {
	d, err := x.GenerateDigits(f, base, bitSize)
	if err != nil {
		return dst, err
	}
	dst = slices.Grow(dst, d.size())
	return d.Append(dst), nil
}

// GenerateDigits is per the package-level [GenerateDigits], using x.Mode.
func (x Converter) GenerateDigits(f float64, base, bitSize int) (Digits, error) {
	if err := ValidateBase(base); err != nil {
		return Digits{}, err
	}

	flt := formatForBitSize(bitSize)

	switch x.Mode {
	case ModeExact:
		return generateExact(decompose(flt.rawBits(f), flt), base), nil

	case ModeV8:
		if flt == &float32info {
			f = float64(float32(f))
		}
		return generateV8(f, base), nil

	default:
		panic(`floatradix: invalid mode`)
	}
}
