package fixed

import "github.com/seedot-ml/seedot/internal/tensor"

// Element-wise addition and subtraction.
//
// Every variant computes, per position,
//
//	a = A / shrA
//	b = B / shrB
//	c = a/shrC ± b/shrC
//	C = narrow(c / demote)
//
// with each intermediate stored in the accumulator type T. The variants only
// differ in whether an operand is a full I×J tensor or a single broadcast
// scalar (a slice of length 1).

// MatAdd adds two I×J tensors.
func MatAdd[A, B, T, C tensor.Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	addSub[A, B, T, C](a, 1, b, 1, c, I*J, shrA, shrB, shrC, demote, false)
}

// MatAddBroadcastA adds the scalar a[0] to every element of the I×J tensor b.
func MatAddBroadcastA[A, B, T, C tensor.Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	addSub[A, B, T, C](a, 0, b, 1, c, I*J, shrA, shrB, shrC, demote, false)
}

// MatAddBroadcastB adds the scalar b[0] to every element of the I×J tensor a.
func MatAddBroadcastB[A, B, T, C tensor.Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	addSub[A, B, T, C](a, 1, b, 0, c, I*J, shrA, shrB, shrC, demote, false)
}

// MatSub subtracts the I×J tensor b from a.
// shrB is always 32-bit because subtraction sites often need a divisor
// wider than the element type.
func MatSub[A, B, T, C tensor.Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	addSub[A, B, T, C](a, 1, b, 1, c, I*J, shrA, shrB, shrC, demote, true)
}

// MatSubBroadcastA subtracts every element of b from the scalar a[0].
func MatSubBroadcastA[A, B, T, C tensor.Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	addSub[A, B, T, C](a, 0, b, 1, c, I*J, shrA, shrB, shrC, demote, true)
}

// MatSubBroadcastB subtracts the scalar b[0] from every element of a.
func MatSubBroadcastB[A, B, T, C tensor.Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	addSub[A, B, T, C](a, 1, b, 0, c, I*J, shrA, shrB, shrC, demote, true)
}

// addSub walks n positions; a stride of 0 broadcasts element 0.
func addSub[A, B, T, C tensor.Elem](a []A, aStep int, b []B, bStep int, c []C, n int, shrA, shrB, shrC, demote int32, sub bool) {
	for x := 0; x < n; x++ {
		av := div(T(a[x*aStep]), shrA)
		bv := div(T(b[x*bStep]), shrB)

		var cv T
		if sub {
			cv = div(av, shrC) - div(bv, shrC)
		} else {
			cv = div(av, shrC) + div(bv, shrC)
		}

		c[x] = narrow[C](int64(cv) / int64(demote))
	}
}

// AddOrSubCir4D adds (or subtracts) the per-channel vector b to every
// position of the N×H×W×C tensor a, in place. b holds C elements. The result
// is narrowed to a's element type; there is no demote step.
func AddOrSubCir4D[A, B, T tensor.Elem](a []A, b []B, N, H, W, C int, shrA, shrB, shrC int32, add bool) {
	addOrSubCir[A, B, T](a, b, N*H*W, C, shrA, shrB, shrC, add)
}

// AddOrSubCir2D adds (or subtracts) the per-column vector b to every row of
// the H×W tensor a, in place. b holds W elements.
func AddOrSubCir2D[A, B, T tensor.Elem](a []A, b []B, H, W int, shrA, shrB, shrC int32, add bool) {
	addOrSubCir[A, B, T](a, b, H, W, shrA, shrB, shrC, add)
}

func addOrSubCir[A, B, T tensor.Elem](a []A, b []B, rows, cols int, shrA, shrB, shrC int32, add bool) {
	for r := 0; r < rows; r++ {
		row := a[r*cols : r*cols+cols]
		for k := range row {
			av := div(T(row[k]), shrA)
			bv := div(T(b[k]), shrB)

			var res T
			if add {
				res = div(av, shrC) + div(bv, shrC)
			} else {
				res = div(av, shrC) - div(bv, shrC)
			}

			row[k] = narrow[A](int64(res))
		}
	}
}

// MulCir multiplies two I×J tensors element by element.
func MulCir[A, B, T, C tensor.Elem](a []A, b []B, c []C, I, J int, shrA, shrB, demote int32) {
	for x := 0; x < I*J; x++ {
		prod := T(a[x]) * T(b[x])
		c[x] = narrow[C](int64(prod) / int64(shrA) / int64(shrB) / int64(demote))
	}
}

// ScalarMul multiplies every element of the I×J tensor b by the scalar a[0].
func ScalarMul[A, B, T, C tensor.Elem](a []A, b []B, c []C, I, J int, shrA, shrB, demote int32) {
	av := T(a[0])
	for x := 0; x < I*J; x++ {
		prod := av * T(b[x])
		c[x] = narrow[C](int64(prod) / int64(shrA) / int64(shrB) / int64(demote))
	}
}
