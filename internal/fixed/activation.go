package fixed

import (
	"math"

	"github.com/seedot-ml/seedot/internal/tensor"
)

// ActivationPath selects how TanH and Sigmoid are evaluated.
type ActivationPath int

// Activation paths.
const (
	// FloatPath converts to float32, applies the function and converts back.
	FloatPath ActivationPath = iota
	// PiecewisePath uses clamped linear segments in integer arithmetic.
	PiecewisePath
)

// String returns the path name.
func (p ActivationPath) String() string {
	switch p {
	case FloatPath:
		return "float"
	case PiecewisePath:
		return "piecewise"
	default:
		return "unknown"
	}
}

// TanH applies tanh to the I×J tensor a in place, using the activation path
// compiled into this build.
func TanH[A tensor.Elem](a []A, I, J int, limit A) {
	if Activation == PiecewisePath {
		TanHPiecewise(a, I, J, limit)
		return
	}
	TanHFloat(a, I, J, limit)
}

// TanHFloat computes tanh(x/limit)*limit for every element of a, in place.
// The result is truncated toward zero.
func TanHFloat[A tensor.Elem](a []A, I, J int, limit A) {
	l := float32(limit)
	for x := 0; x < I*J; x++ {
		f := float32(a[x]) / l
		y := float32(math.Tanh(float64(f)))
		a[x] = A(y * l)
	}
}

// TanHPiecewise clamps every element of a to [-limit, limit], in place.
func TanHPiecewise[A tensor.Elem](a []A, I, J int, limit A) {
	for x := 0; x < I*J; x++ {
		a[x] = min(max(a[x], -limit), limit)
	}
}

// Sigmoid applies the logistic function to the I×J tensor a in place, using
// the activation path compiled into this build. divisor, add and limit only
// matter to the piecewise path.
func Sigmoid[A tensor.Elem](a []A, I, J int, divisor, add, limit, scaleIn, scaleOut int32) {
	if Activation == PiecewisePath {
		SigmoidPiecewise(a, I, J, divisor, add, limit, scaleIn, scaleOut)
		return
	}
	SigmoidFloat(a, I, J, scaleIn, scaleOut)
}

// SigmoidFloat computes 1/(1+exp(-x/scaleIn))*scaleOut for every element of
// a, in place.
func SigmoidFloat[A tensor.Elem](a []A, I, J int, scaleIn, scaleOut int32) {
	in, out := float32(scaleIn), float32(scaleOut)
	for x := 0; x < I*J; x++ {
		f := float32(a[x]) / in
		y := 1 / (1 + float32(math.Exp(float64(-f))))
		a[x] = A(y * out)
	}
}

// SigmoidPiecewise evaluates the hard sigmoid x/divisor + add clamped to
// [0, limit], then rescales by the integer ratio scaleOut/scaleIn.
func SigmoidPiecewise[A tensor.Elem](a []A, I, J int, divisor, add, limit, scaleIn, scaleOut int32) {
	scaleDiff := int64(scaleOut / scaleIn)
	for x := 0; x < I*J; x++ {
		v := int64(a[x])/int64(divisor) + int64(add)
		v = min(max(v, 0), int64(limit))
		a[x] = A(v * scaleDiff)
	}
}

// Exp computes b = (exp(a/shrA) * shrB) / demote for the I×J tensor a.
// The float result is truncated toward zero into B. shrB is 32-bit because
// it usually exceeds the range of the element type.
func Exp[A, B tensor.Elem](a []A, b []B, I, J int, shrA, shrB, demote int32) {
	sa, sb, d := float32(shrA), float32(shrB), float32(demote)
	for x := 0; x < I*J; x++ {
		e := float32(math.Exp(float64(float32(a[x]) / sa)))
		b[x] = B((e * sb) / d)
	}
}

// Relu2D clamps negative elements of the H×W tensor a to zero, in place.
func Relu2D[A tensor.Elem](a []A, H, W int) {
	relu(a[:H*W])
}

// Relu4D clamps negative elements of the N×H×W×C tensor a to zero, in place.
func Relu4D[A tensor.Elem](a []A, N, H, W, C int) {
	relu(a[:N*H*W*C])
}

func relu[A tensor.Elem](a []A) {
	for i, v := range a {
		if v < 0 {
			a[i] = 0
		}
	}
}
