// Copyright 2025 The seedot Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package diag validates fixed-point kernel calls before they run.
//
// The kernels in package fixed trust their arguments. A code generator or a
// test harness can call the checks here first; every returned error is
// marked with one of the sentinel errors below so it can be matched with
// errors.Is.
//
// Example:
//
//	if err := diag.CheckMatMul(len(a), len(b), len(c), len(tmp), I, K, J, shrA, shrB, h1, h2, demote); err != nil {
//	    return err
//	}
//	fixed.MatMul(a, b, c, tmp, I, K, J, shrA, shrB, h1, h2, demote)
package diag

import (
	"github.com/seedot-ml/seedot/internal/diag"
	"github.com/seedot-ml/seedot/internal/tensor"
)

// Sentinel errors.
var (
	ErrShape   = diag.ErrShape
	ErrScratch = diag.ErrScratch
	ErrDepth   = diag.ErrDepth
	ErrDivisor = diag.ErrDivisor
	ErrSparse  = diag.ErrSparse
)

// Report accumulates failures from several checks.
type Report = diag.Report

// Divisor names a scale parameter of a kernel call.
type Divisor = diag.Divisor

// CheckDivisors verifies that every divisor is non-zero, reporting failures
// in argument order.
func CheckDivisors(op string, divisors ...Divisor) error {
	return diag.CheckDivisors(op, divisors...)
}

// CheckElementwise validates a MatAdd, MatSub or MulCir call.
func CheckElementwise(lenA, lenB, lenC, I, J int, shrA, shrB, shrC, demote int32) error {
	return diag.CheckElementwise(lenA, lenB, lenC, I, J, shrA, shrB, shrC, demote)
}

// CheckBroadcast validates a broadcast add or sub. scalarA reports whether
// A is the scalar operand.
func CheckBroadcast(lenA, lenB, lenC, I, J int, scalarA bool, shrA, shrB, shrC, demote int32) error {
	return diag.CheckBroadcast(lenA, lenB, lenC, I, J, scalarA, shrA, shrB, shrC, demote)
}

// CheckMatMul validates a MatMul call.
func CheckMatMul(lenA, lenB, lenC, lenTmp, I, K, J int, shrA, shrB int32, h1, h2 int, demote int32) error {
	return diag.CheckMatMul(lenA, lenB, lenC, lenTmp, I, K, J, shrA, shrB, h1, h2, demote)
}

// CheckSparse validates the encoding of a sparse matrix with K columns.
func CheckSparse[Idx tensor.Elem](aidx []Idx, lenVal, K, rows int) error {
	return diag.CheckSparse(aidx, lenVal, K, rows)
}

// CheckConv validates a Conv call.
func CheckConv(lenA, lenB, lenC, lenTmp, N, H, W, CI, HF, WF, CO int, shrA, shrB int32, h1, h2 int, demote int32) error {
	return diag.CheckConv(lenA, lenB, lenC, lenTmp, N, H, W, CI, HF, WF, CO, shrA, shrB, h1, h2, demote)
}

// CheckMaxPool validates a MaxPool call.
func CheckMaxPool(lenA, lenB, N, H, W, C, stride int, demote int32) error {
	return diag.CheckMaxPool(lenA, lenB, N, H, W, C, stride, demote)
}

// CheckTreeDepth verifies that h1+h2 rounds complete a reduction of n values.
func CheckTreeDepth(op string, n, h1, h2 int) error {
	return diag.CheckTreeDepth(op, n, h1, h2)
}

// CheckTranspose verifies the buffer sizes of a Transpose call.
func CheckTranspose(lenA, lenB, I, J int) error {
	return diag.CheckTranspose(lenA, lenB, I, J)
}

// ExcessHalving returns how many halving rounds run after a reduction of n
// values has completed.
func ExcessHalving(n, h1 int) int {
	return diag.ExcessHalving(n, h1)
}
