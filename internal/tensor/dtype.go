// Package tensor provides the element types and shapes shared by the fixed-point kernels.
package tensor

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Elem is the constraint for buffer elements and accumulators.
// Every kernel is instantiated with signed integer types only.
type Elem interface {
	constraints.Signed
}

// DataType represents runtime type information for a buffer element.
type DataType int

// Supported element types.
const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32:
		return 4
	case Int64:
		return 8
	default:
		panic("unknown data type")
	}
}

// Bits returns the width of the data type in bits.
func (dt DataType) Bits() int {
	return dt.Size() * 8
}

// Min returns the smallest representable value.
func (dt DataType) Min() int64 {
	return -1 << (dt.Bits() - 1)
}

// Max returns the largest representable value.
func (dt DataType) Max() int64 {
	return 1<<(dt.Bits()-1) - 1
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// Bits returns the width of T in bits.
func Bits[T Elem]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// DataTypeOf infers the DataType of T from its width.
func DataTypeOf[T Elem]() DataType {
	switch Bits[T]() {
	case 8:
		return Int8
	case 16:
		return Int16
	case 32:
		return Int32
	default:
		return Int64
	}
}
