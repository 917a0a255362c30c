package quant

import (
	"fmt"
	"math"

	"github.com/seedot-ml/seedot/internal/tensor"
)

// Stats summarizes the error of a fixed-point result against a float
// reference.
type Stats struct {
	Count   int
	MaxAbs  float64
	MeanAbs float64
	// Worst is the index of the element with the largest error.
	Worst int
}

// String formats the stats for reports.
func (s Stats) String() string {
	return fmt.Sprintf("n=%d max=%.6g mean=%.6g worst=%d", s.Count, s.MaxAbs, s.MeanAbs, s.Worst)
}

// Diff dequantizes fixed at the given scale and compares it element by
// element with ref.
func Diff[T tensor.Elem](ref []float32, fixed []T, scale int) Stats {
	if len(ref) != len(fixed) {
		panic(fmt.Sprintf("quant: reference has %d elements, fixed has %d", len(ref), len(fixed)))
	}
	s := Stats{Count: len(ref)}
	if s.Count == 0 {
		return s
	}
	var sum float64
	for i, r := range ref {
		e := math.Abs(math.Ldexp(float64(fixed[i]), -scale) - float64(r))
		sum += e
		if e > s.MaxAbs {
			s.MaxAbs, s.Worst = e, i
		}
	}
	s.MeanAbs = sum / float64(s.Count)
	return s
}
