// Copyright 2025 The seedot Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fixed

import (
	"github.com/seedot-ml/seedot/internal/fixed"
	"github.com/seedot-ml/seedot/internal/parallel"
	"github.com/seedot-ml/seedot/internal/tensor"
)

// Type aliases for public API

// Elem is the constraint satisfied by every buffer and accumulator type.
type Elem = tensor.Elem

// Shape represents the dimensions of a flat row-major buffer.
type Shape = tensor.Shape

// DataType describes a buffer element type at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Int8  DataType = tensor.Int8
	Int16 DataType = tensor.Int16
	Int32 DataType = tensor.Int32
	Int64 DataType = tensor.Int64
)

// Mode selects how results are narrowed to their output type.
type Mode = fixed.Mode

// Narrowing modes.
const (
	Wrap     Mode = fixed.Wrap
	Saturate Mode = fixed.Saturate
)

// Narrowing is the narrowing mode compiled into this build.
const Narrowing = fixed.Narrowing

// ActivationPath selects how TanH and Sigmoid are computed.
type ActivationPath = fixed.ActivationPath

// Activation paths.
const (
	FloatPath     ActivationPath = fixed.FloatPath
	PiecewisePath ActivationPath = fixed.PiecewisePath
)

// Activation is the activation path compiled into this build.
const Activation = fixed.Activation

// ExpTables holds the lookup tables of the integer-only exponential.
type ExpTables = fixed.ExpTables

// Config controls how the parallel kernels fan out.
type Config = parallel.Config

// DefaultConfig returns a Config using every CPU.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// ErrScratchWorkers is returned by the parallel kernels when fewer scratch
// buffers than workers are supplied.
var ErrScratchWorkers = fixed.ErrScratchWorkers

// ErrScratchSize is returned by the parallel kernels when a worker's scratch
// buffer cannot hold one reduction.
var ErrScratchSize = fixed.ErrScratchSize

// Narrow converts v to C using the compiled-in narrowing mode.
func Narrow[C Elem](v int64) C {
	return fixed.Narrow[C](v)
}

// TreeSum reduces tmp[:n] with h1 halving rounds and h2 plain rounds.
// tmp is overwritten.
func TreeSum[T Elem](tmp []T, n, h1, h2 int) T {
	return fixed.TreeSum(tmp, n, h1, h2)
}

// Depth returns ceil(log2(n)), the number of rounds a reduction of n values
// needs.
func Depth(n int) int {
	return fixed.Depth(n)
}
