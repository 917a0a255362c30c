package fixed

import "github.com/seedot-ml/seedot/internal/tensor"

// MatMul multiplies the I×K matrix a by the K×J matrix b into the I×J
// matrix c.
//
// For each output cell the K products a[i,k]*b[k,j] are written to tmp and
// reduced with TreeSum over h1+h2 rounds. The sum is then divided by shrA,
// shrB and demote in that order and narrowed into c[i,j].
//
// tmp is scratch space of at least K elements and is reused for every cell.
// The exact dot product is obtained with unit divisors, h1 = 0 and
// h2 = Depth(K).
func MatMul[A, B, T, C tensor.Elem](a []A, b []B, c []C, tmp []T, I, K, J int, shrA, shrB int32, h1, h2 int, demote int32) {
	matMulCells(a, b, c, tmp, K, J, 0, I*J, shrA, shrB, h1, h2, demote)
}

// matMulCells computes the flat output cells [from, to) of MatMul.
func matMulCells[A, B, T, C tensor.Elem](a []A, b []B, c []C, tmp []T, K, J, from, to int, shrA, shrB int32, h1, h2 int, demote int32) {
	for cell := from; cell < to; cell++ {
		i, j := cell/J, cell%J

		row := a[i*K : i*K+K]
		for k, av := range row {
			tmp[k] = T(av) * T(b[k*J+j])
		}

		sum := TreeSum(tmp, K, h1, h2)
		c[cell] = narrow[C](int64(sum) / int64(shrA) / int64(shrB) / int64(demote))
	}
}

// SparseMatMul multiplies a column-compressed sparse matrix by the dense
// vector b of K features and accumulates the result into c.
//
// Column k of the matrix is the run of (aidx, aval) pairs read from a
// cursor shared by all columns, up to the next 0 in aidx. Row indices are
// 1-based. The terminating 0 advances the index cursor but has no entry in
// aval. Each pair contributes
//
//	c[idx-1] += narrow((((v*b[k])/shrA)/shrB)/shrC/demote)
//
// c is accumulated into, not overwritten: callers must zero it first.
func SparseMatMul[A, Idx, B, T, C tensor.Elem](aidx []Idx, aval []A, b []B, c []C, K int, shrA, shrB, shrC, demote int32) {
	iteIdx, iteVal := 0, 0
	for k := 0; k < K; k++ {
		bv := T(b[k])

		idx := int(aidx[iteIdx])
		for idx != 0 {
			prod := T(aval[iteVal]) * bv
			c[idx-1] += narrow[C](int64(prod) / int64(shrA) / int64(shrB) / int64(shrC) / int64(demote))

			iteIdx++
			iteVal++
			idx = int(aidx[iteIdx])
		}
		iteIdx++
	}
}
