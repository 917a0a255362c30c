// Copyright 2025 The seedot Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fixed

import "github.com/seedot-ml/seedot/internal/fixed"

// TanH applies tanh in place to the I×J matrix a. limit is 1.0 at a's scale.
func TanH[A Elem](a []A, I, J int, limit A) {
	fixed.TanH(a, I, J, limit)
}

// TanHFloat is TanH computed with float math regardless of build tags.
func TanHFloat[A Elem](a []A, I, J int, limit A) {
	fixed.TanHFloat(a, I, J, limit)
}

// TanHPiecewise is the hard tanh: clamp to [-limit, limit].
func TanHPiecewise[A Elem](a []A, I, J int, limit A) {
	fixed.TanHPiecewise(a, I, J, limit)
}

// Sigmoid applies the logistic function in place. divisor, add and limit
// parameterize the piecewise path; scaleIn and scaleOut are 1.0 at the
// input and output scales.
func Sigmoid[A Elem](a []A, I, J int, divisor, add, limit, scaleIn, scaleOut int32) {
	fixed.Sigmoid(a, I, J, divisor, add, limit, scaleIn, scaleOut)
}

// SigmoidFloat is Sigmoid computed with float math regardless of build tags.
func SigmoidFloat[A Elem](a []A, I, J int, scaleIn, scaleOut int32) {
	fixed.SigmoidFloat(a, I, J, scaleIn, scaleOut)
}

// SigmoidPiecewise is the piecewise-linear sigmoid.
func SigmoidPiecewise[A Elem](a []A, I, J int, divisor, add, limit, scaleIn, scaleOut int32) {
	fixed.SigmoidPiecewise(a, I, J, divisor, add, limit, scaleIn, scaleOut)
}

// Exp computes b = exp(a/shrA)·shrB/demote with float math.
func Exp[A, B Elem](a []A, b []B, I, J int, shrA, shrB, demote int32) {
	fixed.Exp(a, b, I, J, shrA, shrB, demote)
}

// NewExpTables builds lookup tables for ExpTable. See the internal
// implementation for the table layout.
func NewExpTables(scaleIn, scaleOut int, bits uint) *ExpTables {
	return fixed.NewExpTables(scaleIn, scaleOut, bits)
}

// ExpTable computes exp with integer arithmetic only.
func ExpTable[A, B Elem](a []A, b []B, I, J int, t *ExpTables, demote int32) {
	fixed.ExpTable(a, b, I, J, t, demote)
}

// Relu2D clamps negative values of the H×W matrix a to zero, in place.
func Relu2D[A Elem](a []A, H, W int) {
	fixed.Relu2D(a, H, W)
}

// Relu4D clamps negative values of the N×H×W×C tensor a to zero, in place.
func Relu4D[A Elem](a []A, N, H, W, C int) {
	fixed.Relu4D(a, N, H, W, C)
}

// ArgMax returns the flat index of the first maximum of the I×J matrix a.
func ArgMax[A Elem](a []A, I, J int) int {
	return fixed.ArgMax(a, I, J)
}

// ConfidenceScalar returns the magnitude of a single score.
func ConfidenceScalar[A Elem](a A) float32 {
	return fixed.ConfidenceScalar(a)
}

// Confidence returns the argmax of a and the confidence of that choice.
func Confidence[A Elem](a []A, I, J int) (index int, confidence float32) {
	return fixed.Confidence(a, I, J)
}

// Transpose writes the transpose of a into b. a is read as a J×I matrix.
func Transpose[A Elem](a, b []A, I, J int) {
	fixed.Transpose(a, b, I, J)
}

// AdjustScaleShr divides every element of a by scale, in place.
func AdjustScaleShr[A Elem](a []A, I, J int, scale int32) {
	fixed.AdjustScaleShr(a, I, J, scale)
}

// AdjustScaleShl multiplies every element of a by scale, in place.
func AdjustScaleShl[A Elem](a []A, I, J int, scale int32) {
	fixed.AdjustScaleShl(a, I, J, scale)
}
