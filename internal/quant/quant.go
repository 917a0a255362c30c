// Package quant converts between float32 values and the fixed-point buffers
// consumed by the kernels. It runs on the host, ahead of time or in tests;
// kernels never call it.
//
// A fixed-point value q at scale s represents the real number q * 2^-s.
package quant

import (
	"fmt"
	"math"

	"github.com/seedot-ml/seedot/internal/tensor"
)

// Quantize writes round(x * 2^scale) for every x in src into dst, clamping
// to the range of T. NaN quantizes to zero.
func Quantize[T tensor.Elem](dst []T, src []float32, scale int) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("quant: dst has %d elements, src has %d", len(dst), len(src)))
	}
	for i, x := range src {
		dst[i] = toFixed[T](float64(x), scale)
	}
}

func toFixed[T tensor.Elem](x float64, scale int) T {
	if math.IsNaN(x) {
		return 0
	}
	dt := tensor.DataTypeOf[T]()
	q := math.Round(math.Ldexp(x, scale))
	switch {
	case q <= float64(dt.Min()):
		return T(dt.Min())
	case q >= float64(dt.Max()):
		return T(dt.Max())
	}
	return T(q)
}

// Dequantize writes q * 2^-scale for every q in src into dst.
func Dequantize[T tensor.Elem](dst []float32, src []T, scale int) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("quant: dst has %d elements, src has %d", len(dst), len(src)))
	}
	for i, q := range src {
		dst[i] = float32(math.Ldexp(float64(q), -scale))
	}
}

// ScaleFor returns the largest scale at which maxAbs still quantizes into
// a bits-wide signed integer without clamping.
func ScaleFor(maxAbs float32, bits int) int {
	if bits < 2 || bits > 64 {
		panic(fmt.Sprintf("quant: bits must be in [2,64], got %d", bits))
	}
	m := math.Abs(float64(maxAbs))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return bits - 1
	}
	limit := math.Ldexp(1, bits-1) - 1
	_, exp := math.Frexp(m)
	s := bits - 1 - exp
	if math.Round(math.Ldexp(m, s)) > limit {
		s--
	}
	return s
}

// MaxAbs returns the largest magnitude in xs.
func MaxAbs(xs []float32) float32 {
	var m float32
	for _, x := range xs {
		if x < 0 {
			x = -x
		}
		m = max(m, x)
	}
	return m
}
