package fixed

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedot-ml/seedot/internal/parallel"
)

func ones(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func TestConv_BoxFilterZeroPadding(t *testing.T) {
	// Input [1, 3, 3, 1] = 1..9, filter [3, 3, 1, 1] of ones.
	a := []int16{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := ones(9)
	c := make([]int32, 9)
	tmp := make([]int32, 9)

	Conv(a, b, c, tmp, 1, 3, 3, 1, 3, 3, 1, 1, 1, 0, Depth(9), 1)

	// Each output is the sum of its in-bounds 3×3 neighborhood.
	assert.Equal(t, []int32{12, 21, 16, 27, 45, 33, 24, 39, 28}, c)
}

func TestConv_EvenFilterPadsBottomRight(t *testing.T) {
	// padH = padW = (2-1)/2 = 0: the window starts at the output position.
	a := []int16{1, 2, 3, 4}
	b := ones(4)
	c := make([]int32, 4)
	tmp := make([]int32, 4)

	Conv(a, b, c, tmp, 1, 2, 2, 1, 2, 2, 1, 1, 1, 0, Depth(4), 1)
	assert.Equal(t, []int32{10, 6, 7, 4}, c)
}

func TestConv_PointwiseChannelMix(t *testing.T) {
	// 1×1 filter mixing CI=2 into CO=2 is a per-pixel matmul.
	// Filter [1, 1, 2, 2] laid out as [ci][co].
	a := []int16{
		1, 2, // pixel 0
		3, 4, // pixel 1
	}
	b := []int16{
		1, 10, // ci=0 → co0, co1
		2, 20, // ci=1 → co0, co1
	}
	c := make([]int32, 4)
	tmp := make([]int32, 2)

	Conv(a, b, c, tmp, 1, 1, 2, 2, 1, 1, 2, 1, 1, 0, 1, 1)
	assert.Equal(t, []int32{5, 50, 11, 110}, c)
}

func TestConv_Batch(t *testing.T) {
	// Two 1×1 images with a 3×3 filter only see the center tap.
	a := []int16{5, -7}
	b := []int16{0, 0, 0, 0, 3, 0, 0, 0, 0}
	c := make([]int32, 2)
	tmp := make([]int32, 9)

	Conv(a, b, c, tmp, 2, 1, 1, 1, 3, 3, 1, 1, 1, 0, Depth(9), 1)
	assert.Equal(t, []int32{15, -21}, c)
}

func TestConv_Rescale(t *testing.T) {
	a := []int16{100}
	b := []int16{90}
	c := make([]int16, 1)
	tmp := make([]int32, 1)

	// 9000 / 3 / 2 / 5 = 300.
	Conv(a, b, c, tmp, 1, 1, 1, 1, 1, 1, 1, 3, 2, 0, 0, 5)
	assert.Equal(t, []int16{300}, c)
}

func TestConvParallel_MatchesSequential(t *testing.T) {
	N, H, W, CI, HF, WF, CO := 2, 5, 4, 3, 3, 3, 2
	a := fill[int16](N*H*W*CI, 40, 40, 7)
	b := fill[int16](HF*WF*CI*CO, 20, 20, 3)
	total := HF * WF * CI

	want := make([]int16, N*H*W*CO)
	Conv(a, b, want, make([]int32, total), N, H, W, CI, HF, WF, CO, 2, 2, 1, Depth(total)-1, 1)

	cfg := parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 4}
	scratch := make([][]int32, ScratchWorkers(len(want), cfg))
	for w := range scratch {
		scratch[w] = make([]int32, total)
	}

	got := make([]int16, len(want))
	err := ConvParallel(cfg, a, b, got, scratch, N, H, W, CI, HF, WF, CO, 2, 2, 1, Depth(total)-1, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvParallel_ShortWorkerScratch(t *testing.T) {
	N, H, W, CI, HF, WF, CO := 1, 3, 3, 2, 3, 3, 1
	a := fill[int16](N*H*W*CI, 10, 10, 3)
	b := fill[int16](HF*WF*CI*CO, 10, 10, 7)
	c := make([]int16, N*H*W*CO)

	cfg := parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}
	scratch := make([][]int32, ScratchWorkers(len(c), cfg))
	for w := range scratch {
		scratch[w] = make([]int32, HF*WF)
	}

	var err error
	require.NotPanics(t, func() {
		err = ConvParallel(cfg, a, b, c, scratch, N, H, W, CI, HF, WF, CO, 1, 1, 0, 5, 1)
	})
	assert.True(t, errors.Is(err, ErrScratchSize))
}
