// Package diag checks kernel call parameters ahead of time.
//
// The kernels in package fixed trust their callers and never validate
// anything. The checks here are opt-in: a code generator or a test harness
// calls them before dispatching a kernel. They never change kernel
// behavior.
package diag

import (
	"github.com/cockroachdb/errors"

	"github.com/seedot-ml/seedot/internal/tensor"
)

// Sentinel errors. Every error returned by this package is marked with one
// of them, so callers can match with errors.Is.
var (
	ErrShape   = errors.New("buffer does not match shape")
	ErrScratch = errors.New("scratch buffer too small")
	ErrDepth   = errors.New("reduction depth too small")
	ErrDivisor = errors.New("divisor must be non-zero")
	ErrSparse  = errors.New("malformed sparse matrix")
)

// Report accumulates failures from several checks. The combined error
// matches every sentinel of its parts under errors.Is.
type Report struct {
	err error
}

// Add records err if it is non-nil.
func (r *Report) Add(err error) {
	if err != nil {
		r.err = errors.Join(r.err, err)
	}
}

// Err returns the combined error, or nil when every check passed.
func (r *Report) Err() error {
	return r.err
}

// CheckLen verifies that a buffer of length n matches shape.
func CheckLen(op, name string, n int, shape tensor.Shape) error {
	if err := shape.Validate(); err != nil {
		return errors.Mark(errors.Wrapf(err, "%s: %s", op, name), ErrShape)
	}
	if want := shape.NumElements(); n != want {
		return errors.Mark(
			errors.Newf("%s: %s has %d elements, shape %v needs %d", op, name, n, shape, want),
			ErrShape)
	}
	return nil
}

// CheckScalar verifies that a broadcast operand holds a single element.
func CheckScalar(op, name string, n int) error {
	if n != 1 {
		return errors.Mark(
			errors.Newf("%s: broadcast operand %s has %d elements, want 1", op, name, n),
			ErrShape)
	}
	return nil
}

// Divisor names a scale parameter of a kernel call.
type Divisor struct {
	Name  string
	Value int32
}

// CheckDivisors verifies that every divisor is non-zero. Failures are
// reported in argument order.
func CheckDivisors(op string, divisors ...Divisor) error {
	var r Report
	for _, d := range divisors {
		if d.Value == 0 {
			r.Add(errors.Mark(errors.Newf("%s: %s is zero", op, d.Name), ErrDivisor))
		}
	}
	return r.Err()
}

// CheckScratch verifies that scratch can hold need elements.
func CheckScratch(op string, n, need int) error {
	if n < max(need, 1) {
		return errors.Mark(
			errors.Newf("%s: scratch has %d elements, need %d", op, n, max(need, 1)),
			ErrScratch)
	}
	return nil
}

// CheckTreeDepth verifies that h1+h2 rounds complete a reduction of n
// values. Excess halving rounds are legal but change the result, so they
// are reported with a hint rather than rejected.
func CheckTreeDepth(op string, n, h1, h2 int) error {
	if h1 < 0 || h2 < 0 {
		return errors.Mark(errors.Newf("%s: negative depth h1=%d h2=%d", op, h1, h2), ErrDepth)
	}
	if need := tensor.CeilLog2(n); h1+h2 < need {
		return errors.WithHint(
			errors.Mark(errors.Newf("%s: depth %d+%d cannot reduce %d values", op, h1, h2, n), ErrDepth),
			"h1+h2 must be at least ceil(log2(n)); the partial sum is silently wrong otherwise")
	}
	return nil
}

// ExcessHalving returns how many halving rounds run after the reduction of
// n values has already completed. Each one halves the result again.
func ExcessHalving(n, h1 int) int {
	return max(h1-tensor.CeilLog2(n), 0)
}
