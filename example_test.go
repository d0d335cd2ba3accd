package floatradix_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/joeycumines/floatradix"
)

func ExampleFormatFloat() {
	p := func(f float64, base int) {
		s, err := floatradix.FormatFloat(f, base, 64)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v in base %d: %s\n", f, base, s)
	}

	p(0.123, 16)
	p(0.5, 2)
	p(-255.5, 16)
	p(123.456, 36)
	p(1.0/3, 3)
	p(math.Inf(-1), 10)
	p(math.NaN(), 2)

	//output:
	//0.123 in base 16: 0.1f7ced916872b
	//0.5 in base 2: 0.1
	//-255.5 in base 16: -ff.8
	//123.456 in base 36: 3f.gez4w97ry
	//0.3333333333333333 in base 3: 0.1
	//-Inf in base 10: -Infinity
	//NaN in base 2: NaN
}

func ExampleFormatFloat_invalidBase() {
	_, err := floatradix.FormatFloat(1, 37, 64)
	var target *floatradix.InvalidBaseError
	fmt.Println(errors.As(err, &target), target.Base)
	fmt.Println(err)

	//output:
	//true 37
	//floatradix: invalid base: 37
}

func ExampleFormat() {
	fmt.Println(floatradix.Format(float32(0.1), 10))
	fmt.Println(floatradix.Format(float64(float32(0.1)), 10))

	//output:
	//0.1 <nil>
	//0.10000000149011612 <nil>
}

func ExampleConverter() {
	for _, mode := range [...]floatradix.Mode{floatradix.ModeExact, floatradix.ModeV8} {
		s, _ := floatradix.Converter{Mode: mode}.FormatFloat(1<<60, 36, 64)
		fmt.Println(mode, s)
	}

	//output:
	//exact 8rc4kbdvss1s
	//v8 8rc4kbdvss00
}
