// Copyright 2025 The seedot Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fixed

import "github.com/seedot-ml/seedot/internal/fixed"

// MatAdd computes C = A + B for I×J operands.
func MatAdd[A, B, T, C Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	fixed.MatAdd[A, B, T, C](a, b, c, I, J, shrA, shrB, shrC, demote)
}

// MatAddBroadcastA computes C = a + B where a holds a single value.
func MatAddBroadcastA[A, B, T, C Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	fixed.MatAddBroadcastA[A, B, T, C](a, b, c, I, J, shrA, shrB, shrC, demote)
}

// MatAddBroadcastB computes C = A + b where b holds a single value.
func MatAddBroadcastB[A, B, T, C Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	fixed.MatAddBroadcastB[A, B, T, C](a, b, c, I, J, shrA, shrB, shrC, demote)
}

// MatSub computes C = A - B for I×J operands.
func MatSub[A, B, T, C Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	fixed.MatSub[A, B, T, C](a, b, c, I, J, shrA, shrB, shrC, demote)
}

// MatSubBroadcastA computes C = a - B where a holds a single value.
func MatSubBroadcastA[A, B, T, C Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	fixed.MatSubBroadcastA[A, B, T, C](a, b, c, I, J, shrA, shrB, shrC, demote)
}

// MatSubBroadcastB computes C = A - b where b holds a single value.
func MatSubBroadcastB[A, B, T, C Elem](a []A, b []B, c []C, I, J int, shrA, shrB, shrC, demote int32) {
	fixed.MatSubBroadcastB[A, B, T, C](a, b, c, I, J, shrA, shrB, shrC, demote)
}

// AddOrSubCir4D adds (or subtracts) the per-channel vector b to every
// position of the N×H×W×C tensor a, in place.
func AddOrSubCir4D[A, B, T Elem](a []A, b []B, N, H, W, C int, shrA, shrB, shrC int32, add bool) {
	fixed.AddOrSubCir4D[A, B, T](a, b, N, H, W, C, shrA, shrB, shrC, add)
}

// AddOrSubCir2D adds (or subtracts) the per-column vector b to every row of
// the H×W matrix a, in place.
func AddOrSubCir2D[A, B, T Elem](a []A, b []B, H, W int, shrA, shrB, shrC int32, add bool) {
	fixed.AddOrSubCir2D[A, B, T](a, b, H, W, shrA, shrB, shrC, add)
}

// MulCir computes the elementwise product of two I×J operands.
func MulCir[A, B, T, C Elem](a []A, b []B, c []C, I, J int, shrA, shrB, demote int32) {
	fixed.MulCir[A, B, T, C](a, b, c, I, J, shrA, shrB, demote)
}

// ScalarMul multiplies every element of the I×J matrix b by the scalar a[0].
func ScalarMul[A, B, T, C Elem](a []A, b []B, c []C, I, J int, shrA, shrB, demote int32) {
	fixed.ScalarMul[A, B, T, C](a, b, c, I, J, shrA, shrB, demote)
}

// MatMul computes C = A·B for an I×K matrix A and a K×J matrix B. tmp must
// hold at least K elements.
func MatMul[A, B, T, C Elem](a []A, b []B, c []C, tmp []T, I, K, J int, shrA, shrB int32, h1, h2 int, demote int32) {
	fixed.MatMul(a, b, c, tmp, I, K, J, shrA, shrB, h1, h2, demote)
}

// SparseMatMul accumulates A·b into c, where A is a sparse matrix with K
// columns stored as zero-terminated, 1-based row indices in aidx and the
// matching values in aval.
func SparseMatMul[A, Idx, B, T, C Elem](aidx []Idx, aval []A, b []B, c []C, K int, shrA, shrB, shrC, demote int32) {
	fixed.SparseMatMul[A, Idx, B, T, C](aidx, aval, b, c, K, shrA, shrB, shrC, demote)
}

// Conv computes a same-padded, stride-1 convolution of an N×H×W×CI input
// with an HF×WF×CI×CO filter. tmp must hold at least HF·WF·CI elements.
func Conv[A, B, T, C Elem](a []A, b []B, c []C, tmp []T, N, H, W, CI, HF, WF, CO int, shrA, shrB int32, h1, h2 int, demote int32) {
	fixed.Conv(a, b, c, tmp, N, H, W, CI, HF, WF, CO, shrA, shrB, h1, h2, demote)
}

// MaxPool takes the maximum over non-overlapping stride×stride windows.
func MaxPool[A, B Elem](a []A, b []B, N, H, W, C, stride int, demote int32) {
	fixed.MaxPool(a, b, N, H, W, C, stride, demote)
}

// ScratchWorkers returns how many scratch buffers MatMulParallel and
// ConvParallel need for cells output cells.
func ScratchWorkers(cells int, cfg Config) int {
	return fixed.ScratchWorkers(cells, cfg)
}

// MatMulParallel is MatMul with the output cells split across workers.
// scratch[w] is the tmp buffer of worker w.
func MatMulParallel[A, B, T, C Elem](cfg Config, a []A, b []B, c []C, scratch [][]T, I, K, J int, shrA, shrB int32, h1, h2 int, demote int32) error {
	return fixed.MatMulParallel(cfg, a, b, c, scratch, I, K, J, shrA, shrB, h1, h2, demote)
}

// ConvParallel is Conv with the output cells split across workers.
func ConvParallel[A, B, T, C Elem](cfg Config, a []A, b []B, c []C, scratch [][]T, N, H, W, CI, HF, WF, CO int, shrA, shrB int32, h1, h2 int, demote int32) error {
	return fixed.ConvParallel(cfg, a, b, c, scratch, N, H, W, CI, HF, WF, CO, shrA, shrB, h1, h2, demote)
}

// MaxPoolParallel is MaxPool with every image and channel pooled as a
// separate task.
func MaxPoolParallel[A, B Elem](cfg Config, a []A, b []B, N, H, W, C, stride int, demote int32) {
	fixed.MaxPoolParallel(cfg, a, b, N, H, W, C, stride, demote)
}
