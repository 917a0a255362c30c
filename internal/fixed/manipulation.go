package fixed

import "github.com/seedot-ml/seedot/internal/tensor"

// Transpose writes b[i*J+j] = a[j*I+i] for i < I, j < J.
//
// The formula reads a as a J×I matrix; it is a true transpose when a is
// J×I, which includes every square input.
func Transpose[A tensor.Elem](a, b []A, I, J int) {
	for i := 0; i < I; i++ {
		row := b[i*J : i*J+J]
		for j := range row {
			row[j] = a[j*I+i]
		}
	}
}

// AdjustScaleShr divides every element of the I×J tensor a by scale, in
// place. scale need not be a power of two.
func AdjustScaleShr[A tensor.Elem](a []A, I, J int, scale int32) {
	for x := 0; x < I*J; x++ {
		a[x] = div(a[x], scale)
	}
}

// AdjustScaleShl multiplies every element of the I×J tensor a by scale, in
// place. Overflow wraps.
func AdjustScaleShl[A tensor.Elem](a []A, I, J int, scale int32) {
	for x := 0; x < I*J; x++ {
		a[x] = A(int64(a[x]) * int64(scale))
	}
}
