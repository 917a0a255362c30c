package tensor

import "github.com/cockroachdb/errors"

// Shape represents the dimensions of a flat row-major buffer.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Newf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// ComputeStrides returns the row-major element strides of the shape. The
// last dimension is contiguous.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// Offset returns the flat row-major offset of the given coordinates.
// Coordinates are not bounds-checked.
func (s Shape) Offset(coords ...int) int {
	off := 0
	for i, c := range coords {
		off = off*s[i] + c
	}
	return off
}

// CeilLog2 returns ceil(log2 n), the number of pairwise rounds that reduce
// n values to one. It is 0 for n <= 1.
func CeilLog2(n int) int {
	d := 0
	for c := 1; c < n; c <<= 1 {
		d++
	}
	return d
}
