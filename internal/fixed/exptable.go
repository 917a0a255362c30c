package fixed

import (
	"fmt"
	"math"

	"github.com/seedot-ml/seedot/internal/tensor"
)

// expTableScale is the fixed-point scale of every table entry (2^14 = 1.0).
const expTableScale = 14

// ExpTables holds the two lookup tables of the integer-only exponential.
//
// A non-positive input x is negated and split as u = hi<<ShrHi | lo, so
// that exp(x) = Hi[hi] * Lo[lo]. Each entry is exp of its slice of u at
// scale 2^14; the product is brought to the output scale by ShrOut.
type ExpTables struct {
	Hi, Lo []int32
	ShrHi  uint
	Mask   int64
	ShrOut uint
}

// NewExpTables builds tables for inputs at scale 2^scaleIn and outputs at
// scale 2^scaleOut, with 2^bits entries per table. Inputs whose magnitude
// does not fit in 2*bits bits saturate to the last entries.
//
// Tables are computed with float math and are meant to be generated on the
// host, ahead of time.
func NewExpTables(scaleIn, scaleOut int, bits uint) *ExpTables {
	if bits == 0 || bits > 15 {
		panic(fmt.Sprintf("exptable: bits must be in [1,15], got %d", bits))
	}
	if scaleOut < 0 || scaleOut > 2*expTableScale {
		panic(fmt.Sprintf("exptable: output scale %d out of range [0,%d]", scaleOut, 2*expTableScale))
	}

	size := 1 << bits
	t := &ExpTables{
		Hi:     make([]int32, size),
		Lo:     make([]int32, size),
		ShrHi:  bits,
		Mask:   int64(size - 1),
		ShrOut: uint(2*expTableScale - scaleOut),
	}

	one := math.Ldexp(1, expTableScale)
	step := math.Ldexp(1, -scaleIn)
	for k := 0; k < size; k++ {
		t.Hi[k] = int32(math.Round(math.Exp(-float64(k<<bits)*step) * one))
		t.Lo[k] = int32(math.Round(math.Exp(-float64(k)*step) * one))
	}
	return t
}

// ExpTable computes b = exp(a) / demote for the I×J tensor a using integer
// arithmetic only. Positive inputs are treated as zero, so the result never
// exceeds 1.0 at the output scale.
func ExpTable[A, B tensor.Elem](a []A, b []B, I, J int, t *ExpTables, demote int32) {
	limit := t.Mask<<t.ShrHi | t.Mask
	for x := 0; x < I*J; x++ {
		u := min(max(-int64(a[x]), 0), limit)
		hi := int64(t.Hi[(u>>t.ShrHi)&t.Mask])
		lo := int64(t.Lo[u&t.Mask])
		b[x] = narrow[B]((hi * lo >> t.ShrOut) / int64(demote))
	}
}
