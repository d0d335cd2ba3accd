package floatradix

import (
	"strconv"
)

const (
	// MinBase is the smallest radix accepted by the conversion functions.
	MinBase = 2

	// MaxBase is the largest radix accepted by the conversion functions,
	// using the digits 0-9 then a-z.
	MaxBase = 36
)

// InvalidBaseError indicates that a radix outside [MinBase, MaxBase] was
// requested. It is the only error returned by this package.
type InvalidBaseError struct {
	Base int
}

func (x *InvalidBaseError) Error() string {
	b := append(make([]byte, 0, 32), `floatradix: invalid base: `...)
	b = strconv.AppendInt(b, int64(x.Base), 10)
	return string(b)
}

// ValidateBase returns an [*InvalidBaseError] if base is not within
// [MinBase, MaxBase].
func ValidateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return &InvalidBaseError{Base: base}
	}
	return nil
}
