package fixed

import (
	"github.com/cockroachdb/errors"

	"github.com/seedot-ml/seedot/internal/parallel"
	"github.com/seedot-ml/seedot/internal/tensor"
)

// ErrScratchWorkers is returned when a parallel kernel is given fewer
// scratch buffers than it has workers.
var ErrScratchWorkers = errors.New("not enough scratch buffers for workers")

// ErrScratchSize is returned by a worker whose scratch buffer is shorter
// than one reduction.
var ErrScratchSize = errors.New("scratch buffer shorter than reduction")

// ScratchWorkers returns how many private scratch buffers MatMulParallel
// and ConvParallel need for the given number of output cells.
func ScratchWorkers(cells int, cfg parallel.Config) int {
	return parallel.Workers(cells, cfg)
}

// MatMulParallel computes the same result as MatMul, splitting output cells
// across workers. Worker w uses scratch[w], which must hold at least K
// elements; len(scratch) must be at least ScratchWorkers(I*J, cfg).
func MatMulParallel[A, B, T, C tensor.Elem](cfg parallel.Config, a []A, b []B, c []C, scratch [][]T, I, K, J int, shrA, shrB int32, h1, h2 int, demote int32) error {
	cells := I * J
	if need := parallel.Workers(cells, cfg); len(scratch) < need {
		return errors.Wrapf(ErrScratchWorkers, "matmul: have %d, need %d", len(scratch), need)
	}
	return parallel.ForChunks(cells, cfg, func(worker, start, end int) error {
		tmp := scratch[worker]
		if len(tmp) < K {
			return errors.Wrapf(ErrScratchSize, "matmul: worker %d has %d, need %d", worker, len(tmp), K)
		}
		matMulCells(a, b, c, tmp, K, J, start, end, shrA, shrB, h1, h2, demote)
		return nil
	})
}

// ConvParallel computes the same result as Conv, splitting output elements
// across workers. Worker w uses scratch[w], which must hold at least
// HF*WF*CI elements; len(scratch) must be at least
// ScratchWorkers(N*H*W*CO, cfg).
func ConvParallel[A, B, T, C tensor.Elem](cfg parallel.Config, a []A, b []B, c []C, scratch [][]T, N, H, W, CI, HF, WF, CO int, shrA, shrB int32, h1, h2 int, demote int32) error {
	cells := N * H * W * CO
	if need := parallel.Workers(cells, cfg); len(scratch) < need {
		return errors.Wrapf(ErrScratchWorkers, "conv: have %d, need %d", len(scratch), need)
	}
	g := newConvGeometry(N, H, W, CI, HF, WF, CO)
	total := HF * WF * CI
	return parallel.ForChunks(cells, cfg, func(worker, start, end int) error {
		tmp := scratch[worker]
		if len(tmp) < total {
			return errors.Wrapf(ErrScratchSize, "conv: worker %d has %d, need %d", worker, len(tmp), total)
		}
		convCells(a, b, c, tmp, g, start, end, shrA, shrB, h1, h2, demote)
		return nil
	})
}

// MaxPoolParallel computes the same result as MaxPool, with one task per
// image and channel. It needs no scratch.
func MaxPoolParallel[A, B tensor.Elem](cfg parallel.Config, a []A, b []B, N, H, W, C, stride int, demote int32) {
	g := newPoolGeometry(N, H, W, C, stride)
	parallel.ForBatch(N, C, func(n, c int) {
		maxPoolChannel(a, b, g, n, c, demote)
	}, cfg)
}
