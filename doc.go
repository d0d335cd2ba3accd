// Package floatradix formats float32 and float64 values in any radix from 2
// to 36, per the ECMAScript Number::toString(radix) algorithm (ECMA-262
// section 9.8.1, as implemented by V8's DoubleToRadixCString).
//
// By default, digits are generated using exact [math/big] arithmetic, and are
// the shortest that round trip, i.e. parsing the output in the same radix,
// rounding to the nearest value of the same precision, recovers the input.
// The V8 double-arithmetic algorithm is available via [ModeV8], for output
// that is byte-identical to JavaScript's `(x).toString(radix)`.
//
//	s, err := floatradix.FormatFloat(0.123, 16, 64) // "0.1f7ced916872b"
//
// The only error is [*InvalidBaseError], and all functions are safe for
// concurrent use.
package floatradix
