// Copyright 2025 The seedot Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fixed provides fixed-point kernels for quantized inference on
// devices without a floating-point unit.
//
// # Overview
//
// Every kernel works on flat row-major integer buffers and is parameterized
// by the element types of its operands:
//   - A, B: input operand types
//   - T: accumulator type for intermediates
//   - C: output type
//
// Scale parameters (shrA, shrB, shrC, demote) are divisors applied with
// truncating integer division. Sum reductions take h1 halving rounds and
// h2 plain rounds; h1+h2 should be at least ceil(log2(n)).
//
// Kernels never allocate, never fail and never validate their arguments.
// Use package diag to check a call ahead of time.
//
// # Basic Usage
//
//	import "github.com/seedot-ml/seedot/fixed"
//
//	func main() {
//	    a := []int16{1, 2, 3, 4}     // 1x4
//	    b := []int16{1, 1, 1, 1}     // 4x1
//	    c := make([]int16, 1)
//	    tmp := make([]int32, 4)
//	    fixed.MatMul(a, b, c, tmp, 1, 4, 1, 1, 1, 0, 2, 1)
//	    // c[0] == 10
//	}
//
// # Build Tags
//
//   - seedot_saturate: clamp results to the output range instead of
//     wrapping them (see [Narrowing])
//   - seedot_fastapprox: use piecewise-linear TanH and Sigmoid instead of
//     float math (see [Activation])
package fixed
