package tensor

import "testing"

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		bits  int
	}{
		{Int8, 1, 8},
		{Int16, 2, 16},
		{Int32, 4, 32},
		{Int64, 8, 64},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
		if got := tt.dtype.Bits(); got != tt.bits {
			t.Errorf("%s.Bits() = %d, want %d", tt.dtype, got, tt.bits)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Int8, "int8"},
		{Int16, "int16"},
		{Int32, "int32"},
		{Int64, "int64"},
		{DataType(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("DataType(%d).String() = %q, want %q", int(tt.dtype), got, tt.str)
		}
	}
}

func TestDataTypeRange(t *testing.T) {
	tests := []struct {
		dtype    DataType
		min, max int64
	}{
		{Int8, -128, 127},
		{Int16, -32768, 32767},
		{Int32, -2147483648, 2147483647},
		{Int64, -9223372036854775808, 9223372036854775807},
	}

	for _, tt := range tests {
		if got := tt.dtype.Min(); got != tt.min {
			t.Errorf("%s.Min() = %d, want %d", tt.dtype, got, tt.min)
		}
		if got := tt.dtype.Max(); got != tt.max {
			t.Errorf("%s.Max() = %d, want %d", tt.dtype, got, tt.max)
		}
	}
}

func TestDataTypeSizeUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Size() on unknown type should panic")
		}
	}()
	_ = DataType(42).Size()
}

func TestGenericWidths(t *testing.T) {
	if got := Bits[int8](); got != 8 {
		t.Errorf("Bits[int8]() = %d", got)
	}
	if got := Bits[int16](); got != 16 {
		t.Errorf("Bits[int16]() = %d", got)
	}
	if got := DataTypeOf[int32](); got != Int32 {
		t.Errorf("DataTypeOf[int32]() = %s", got)
	}
	if got := DataTypeOf[int64](); got != Int64 {
		t.Errorf("DataTypeOf[int64]() = %s", got)
	}
	if got := DataTypeOf[int8](); got.Min() != -128 || got.Max() != 127 {
		t.Errorf("int8 range = [%d,%d]", got.Min(), got.Max())
	}
	if got := DataTypeOf[int16](); got != Int16 {
		t.Errorf("DataTypeOf[int16]() = %s", got)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{1, 28, 28, 3}, 2352},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShapeStridesAndOffset(t *testing.T) {
	s := Shape{2, 3, 4}
	strides := s.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Fatalf("strides = %v, want %v", strides, want)
		}
	}

	if got := s.Offset(1, 2, 3); got != 23 {
		t.Errorf("Offset(1,2,3) = %d, want 23", got)
	}
	if got := s.Offset(1, 2, 3); got != 1*strides[0]+2*strides[1]+3*strides[2] {
		t.Errorf("Offset disagrees with strides")
	}
	if got := (Shape{}).ComputeStrides(); len(got) != 0 {
		t.Errorf("scalar strides = %v", got)
	}
}

func TestCeilLog2(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{8, 3},
		{9, 4},
		{27, 5},
	}

	for _, tt := range tests {
		if got := CeilLog2(tt.n); got != tt.want {
			t.Errorf("CeilLog2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
