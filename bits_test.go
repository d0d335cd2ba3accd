package floatradix

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecompose(t *testing.T) {
	for _, tt := range [...]struct {
		name string
		bits uint64
		flt  *format
		want floatBits
	}{
		{
			name: "positive zero",
			bits: math.Float64bits(0),
			flt:  &float64info,
			want: floatBits{kind: KindZero},
		},
		{
			name: "negative zero",
			bits: math.Float64bits(math.Copysign(0, -1)),
			flt:  &float64info,
			want: floatBits{kind: KindZero, neg: true},
		},
		{
			name: "negative nan",
			bits: math.Float64bits(math.Copysign(math.NaN(), -1)),
			flt:  &float64info,
			want: floatBits{kind: KindNaN},
		},
		{
			name: "negative infinity",
			bits: math.Float64bits(math.Inf(-1)),
			flt:  &float64info,
			want: floatBits{kind: KindInf, neg: true},
		},
		{
			name: "one",
			bits: math.Float64bits(1),
			flt:  &float64info,
			want: floatBits{kind: KindFinite, mant: 1 << 52, exp: -52, lowerBoundary: true},
		},
		{
			name: "one and a half",
			bits: math.Float64bits(-1.5),
			flt:  &float64info,
			want: floatBits{kind: KindFinite, neg: true, mant: 3 << 51, exp: -52},
		},
		{
			name: "smallest normal",
			bits: math.Float64bits(0x1p-1022),
			flt:  &float64info,
			want: floatBits{kind: KindFinite, mant: 1 << 52, exp: -1074},
		},
		{
			name: "smallest subnormal",
			bits: math.Float64bits(math.SmallestNonzeroFloat64),
			flt:  &float64info,
			want: floatBits{kind: KindFinite, mant: 1, exp: -1074},
		},
		{
			name: "float32 one",
			bits: uint64(math.Float32bits(1)),
			flt:  &float32info,
			want: floatBits{kind: KindFinite, mant: 1 << 23, exp: -23, lowerBoundary: true},
		},
		{
			name: "float32 smallest subnormal",
			bits: uint64(math.Float32bits(math.SmallestNonzeroFloat32)),
			flt:  &float32info,
			want: floatBits{kind: KindFinite, mant: 1, exp: -149},
		},
		{
			name: "float32 negative infinity",
			bits: uint64(math.Float32bits(float32(math.Inf(-1)))),
			flt:  &float32info,
			want: floatBits{kind: KindInf, neg: true},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := decompose(tt.bits, tt.flt)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(floatBits{})); diff != `` {
				t.Errorf("decompose(%#x) mismatch (-want +got):\n%s", tt.bits, diff)
			}
		})
	}
}

func TestFormat_rawBits(t *testing.T) {
	if v := float32info.rawBits(0.1); v != uint64(math.Float32bits(0.1)) {
		t.Errorf("unexpected float32 bits %#x", v)
	}
	if v := float64info.rawBits(0.1); v != math.Float64bits(0.1) {
		t.Errorf("unexpected float64 bits %#x", v)
	}
}

func TestFormat_minExp(t *testing.T) {
	if v := float32info.minExp(); v != -149 {
		t.Error(v)
	}
	if v := float64info.minExp(); v != -1074 {
		t.Error(v)
	}
}
