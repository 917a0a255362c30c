package fixed

import "github.com/seedot-ml/seedot/internal/tensor"

// Mode selects how a wide accumulator is narrowed to the output width.
type Mode int

// Narrowing modes.
const (
	// Wrap truncates the high bits; overflow wraps silently.
	Wrap Mode = iota
	// Saturate clamps to the target range before truncating.
	Saturate
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	default:
		return "unknown"
	}
}

// narrow converts v to C using the mode compiled into this build.
// Narrowing is a constant, so the branch is folded away.
func narrow[C tensor.Elem](v int64) C {
	if Narrowing == Saturate {
		return SaturateTo[C](v)
	}
	return C(v)
}

// Narrow converts v to C using the mode compiled into this build.
func Narrow[C tensor.Elem](v int64) C {
	return narrow[C](v)
}

// SaturateTo clamps v into the range of C. Only 8- and 16-bit targets are
// clamped; wider targets are converted unchanged.
func SaturateTo[C tensor.Elem](v int64) C {
	dt := tensor.DataTypeOf[C]()
	if dt.Bits() >= 32 {
		return C(v)
	}
	return C(min(max(v, dt.Min()), dt.Max()))
}

// WrapTo truncates v to the width of C.
func WrapTo[C tensor.Elem](v int64) C {
	return C(v)
}

// div divides x by d with truncation toward zero and stores the quotient
// back into T.
func div[T tensor.Elem](x T, d int32) T {
	return T(int64(x) / int64(d))
}
