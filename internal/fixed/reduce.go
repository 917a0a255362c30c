package fixed

import "github.com/seedot-ml/seedot/internal/tensor"

// confidenceEpsilon bounds the spread below which Confidence treats the
// tensor as flat.
const confidenceEpsilon = 0.0001

// ArgMax returns the row-major index of the largest element of the I×J
// tensor a. The first occurrence wins ties.
func ArgMax[A tensor.Elem](a []A, I, J int) int {
	maxVal := a[0]
	maxIndex := 0
	for x := 0; x < I*J; x++ {
		if maxVal < a[x] {
			maxIndex = x
			maxVal = a[x]
		}
	}
	return maxIndex
}

// ConfidenceScalar returns the magnitude of a single score.
func ConfidenceScalar[A tensor.Elem](a A) float32 {
	c := float32(a)
	if c < 0 {
		c = -c
	}
	return c
}

// Confidence returns the argmax of the I×J tensor a and the share of the
// winning score in the total spread:
//
//	(a[index] - min) / Σ(a[x] - min)
//
// When the spread is below 1e-4 every class is equally likely and the
// confidence is 1/(I*J).
func Confidence[A tensor.Elem](a []A, I, J int) (index int, confidence float32) {
	maxVal, minVal := a[0], a[0]
	n := I * J
	for x := 0; x < n; x++ {
		v := a[x]
		if maxVal < v {
			index = x
			maxVal = v
		}
		if minVal > v {
			minVal = v
		}
	}

	var sum float32
	for x := 0; x < n; x++ {
		sum += float32(int64(a[x]) - int64(minVal))
	}

	if sum < confidenceEpsilon && sum > -confidenceEpsilon {
		return index, 1 / float32(n)
	}
	return index, float32(int64(a[index])-int64(minVal)) / sum
}
