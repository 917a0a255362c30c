package diag

import (
	"github.com/cockroachdb/errors"

	"github.com/seedot-ml/seedot/internal/tensor"
)

// CheckElementwise validates a MatAdd/MatSub/MulCir call on I×J operands.
func CheckElementwise(lenA, lenB, lenC, I, J int, shrA, shrB, shrC, demote int32) error {
	var r Report
	shape := tensor.Shape{I, J}
	r.Add(CheckLen("elementwise", "A", lenA, shape))
	r.Add(CheckLen("elementwise", "B", lenB, shape))
	r.Add(CheckLen("elementwise", "C", lenC, shape))
	r.Add(CheckDivisors("elementwise", shifts(shrA, shrB, shrC, demote)...))
	return r.Err()
}

// CheckBroadcast validates a broadcast add/sub where one operand is a
// scalar. scalarA selects which side is broadcast.
func CheckBroadcast(lenA, lenB, lenC, I, J int, scalarA bool, shrA, shrB, shrC, demote int32) error {
	var r Report
	shape := tensor.Shape{I, J}
	if scalarA {
		r.Add(CheckScalar("broadcast", "A", lenA))
		r.Add(CheckLen("broadcast", "B", lenB, shape))
	} else {
		r.Add(CheckLen("broadcast", "A", lenA, shape))
		r.Add(CheckScalar("broadcast", "B", lenB))
	}
	r.Add(CheckLen("broadcast", "C", lenC, shape))
	r.Add(CheckDivisors("broadcast", shifts(shrA, shrB, shrC, demote)...))
	return r.Err()
}

// CheckMatMul validates a dense MatMul call.
func CheckMatMul(lenA, lenB, lenC, lenTmp, I, K, J int, shrA, shrB int32, h1, h2 int, demote int32) error {
	var r Report
	r.Add(CheckLen("matmul", "A", lenA, tensor.Shape{I, K}))
	r.Add(CheckLen("matmul", "B", lenB, tensor.Shape{K, J}))
	r.Add(CheckLen("matmul", "C", lenC, tensor.Shape{I, J}))
	r.Add(CheckScratch("matmul", lenTmp, K))
	r.Add(CheckTreeDepth("matmul", K, h1, h2))
	r.Add(CheckDivisors("matmul", Divisor{"shrA", shrA}, Divisor{"shrB", shrB}, Divisor{"demote", demote}))
	return r.Err()
}

// CheckSparse validates the index/value encoding of a sparse matrix with K
// columns and rows rows, as consumed by SparseMatMul.
func CheckSparse[Idx tensor.Elem](aidx []Idx, lenVal, K, rows int) error {
	cursor, values := 0, 0
	for k := 0; k < K; k++ {
		for {
			if cursor >= len(aidx) {
				return errors.Mark(
					errors.Newf("sparse: index list ends inside column %d", k),
					ErrSparse)
			}
			idx := int(aidx[cursor])
			cursor++
			if idx == 0 {
				break
			}
			if idx < 0 || idx > rows {
				return errors.Mark(
					errors.Newf("sparse: column %d has row index %d outside [1,%d]", k, idx, rows),
					ErrSparse)
			}
			values++
		}
	}
	if values != lenVal {
		return errors.Mark(
			errors.Newf("sparse: %d index entries but %d values", values, lenVal),
			ErrSparse)
	}
	return nil
}

// CheckConv validates a Conv call.
func CheckConv(lenA, lenB, lenC, lenTmp, N, H, W, CI, HF, WF, CO int, shrA, shrB int32, h1, h2 int, demote int32) error {
	var r Report
	r.Add(CheckLen("conv", "A", lenA, tensor.Shape{N, H, W, CI}))
	r.Add(CheckLen("conv", "B", lenB, tensor.Shape{HF, WF, CI, CO}))
	r.Add(CheckLen("conv", "C", lenC, tensor.Shape{N, H, W, CO}))
	total := HF * WF * CI
	r.Add(CheckScratch("conv", lenTmp, total))
	r.Add(CheckTreeDepth("conv", total, h1, h2))
	r.Add(CheckDivisors("conv", Divisor{"shrA", shrA}, Divisor{"shrB", shrB}, Divisor{"demote", demote}))
	return r.Err()
}

// CheckMaxPool validates a MaxPool call.
func CheckMaxPool(lenA, lenB, N, H, W, C, stride int, demote int32) error {
	var r Report
	r.Add(CheckLen("maxpool", "A", lenA, tensor.Shape{N, H, W, C}))
	if stride <= 0 {
		r.Add(errors.Mark(errors.Newf("maxpool: invalid stride %d", stride), ErrShape))
		return r.Err()
	}
	r.Add(CheckLen("maxpool", "B", lenB, tensor.Shape{N, H / stride, W / stride, C}))
	r.Add(CheckDivisors("maxpool", Divisor{"demote", demote}))
	return r.Err()
}

// CheckTranspose reports whether Transpose's indexing reads a as the J×I
// matrix the caller expects.
func CheckTranspose(lenA, lenB, I, J int) error {
	var r Report
	r.Add(CheckLen("transpose", "A", lenA, tensor.Shape{J, I}))
	r.Add(CheckLen("transpose", "B", lenB, tensor.Shape{I, J}))
	return r.Err()
}

func shifts(shrA, shrB, shrC, demote int32) []Divisor {
	return []Divisor{{"shrA", shrA}, {"shrB", shrB}, {"shrC", shrC}, {"demote", demote}}
}
