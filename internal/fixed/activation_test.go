package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTanHFloat(t *testing.T) {
	// tanh(1) * 1024 = 779.87, truncated.
	a := []int16{0, 1024, -1024, 8192}
	TanHFloat(a, 2, 2, 1024)
	assert.Equal(t, []int16{0, 779, -779, 1023}, a)
}

func TestTanHPiecewise(t *testing.T) {
	a := []int16{0, 500, -500, 2000, -2000}
	TanHPiecewise(a, 1, 5, 1024)
	assert.Equal(t, []int16{0, 500, -500, 1024, -1024}, a)
}

func TestTanH_FollowsBuildPath(t *testing.T) {
	in := []int16{-3000, -700, 0, 300, 5000}

	want := append([]int16(nil), in...)
	if Activation == PiecewisePath {
		TanHPiecewise(want, 1, 5, 1024)
	} else {
		TanHFloat(want, 1, 5, 1024)
	}

	got := append([]int16(nil), in...)
	TanH(got, 1, 5, 1024)
	assert.Equal(t, want, got)
}

func TestSigmoidFloat(t *testing.T) {
	// sigmoid(0) = 0.5, sigmoid(8) = 0.99966, sigmoid(-8) = 0.000335.
	a := []int16{0, 8192, -8192}
	SigmoidFloat(a, 1, 3, 1024, 1024)
	assert.Equal(t, []int16{512, 1023, 0}, a)
}

func TestSigmoidPiecewise(t *testing.T) {
	// x/4 + 256 clamped to [0, 512], then scaled by 2/1.
	a := []int16{0, 2048, -2048, 400}
	SigmoidPiecewise(a, 2, 2, 4, 256, 512, 1, 2)
	assert.Equal(t, []int16{512, 1024, 0, 712}, a)
}

func TestSigmoid_FollowsBuildPath(t *testing.T) {
	in := []int16{-4096, -100, 0, 100, 4096}

	want := append([]int16(nil), in...)
	if Activation == PiecewisePath {
		SigmoidPiecewise(want, 1, 5, 4, 256, 512, 1024, 1024)
	} else {
		SigmoidFloat(want, 1, 5, 1024, 1024)
	}

	got := append([]int16(nil), in...)
	Sigmoid(got, 1, 5, 4, 256, 512, 1024, 1024)
	assert.Equal(t, want, got)
}

func TestExp(t *testing.T) {
	a := []int16{0, -1024, 1024, -8192}
	b := make([]int32, 4)

	Exp(a, b, 2, 2, 1024, 32768, 1)

	// exp(0)*32768, exp(-1)*32768 = 12054.9, exp(1)*32768 = 89072.7,
	// exp(-8)*32768 = 10.99.
	assert.Equal(t, []int32{32768, 12054, 89072, 10}, b)

	Exp(a, b, 2, 2, 1024, 32768, 4)
	assert.Equal(t, int32(8192), b[0])
}

func TestRelu(t *testing.T) {
	a := []int16{-1, 2, -3, 0, 5, -32768}
	Relu2D(a, 2, 3)
	assert.Equal(t, []int16{0, 2, 0, 0, 5, 0}, a)

	b := []int8{-5, 5, -128, 127}
	Relu4D(b, 1, 2, 1, 2)
	assert.Equal(t, []int8{0, 5, 0, 127}, b)
}

func TestExpTable_MatchesFloatExp(t *testing.T) {
	const scaleIn, scaleOut = 10, 14
	tables := NewExpTables(scaleIn, scaleOut, 6)

	a := []int16{0, -1024, -512, -100, -3000}
	b := make([]int32, len(a))
	ExpTable(a, b, 1, len(a), tables, 1)

	for i, x := range a {
		want := math.Exp(float64(x)/(1<<scaleIn)) * (1 << scaleOut)
		assert.InDelta(t, want, float64(b[i]), 8, "input %d", x)
	}
	assert.Equal(t, int32(1<<scaleOut), b[0])
}

func TestExpTable_ClampsInputRange(t *testing.T) {
	tables := NewExpTables(10, 14, 4)
	a := []int16{100, -30000}
	b := make([]int32, 2)

	ExpTable(a, b, 1, 2, tables, 1)

	// Positive inputs read as zero; inputs beyond 2^8-1 saturate.
	assert.Equal(t, int32(1<<14), b[0])
	limit := make([]int32, 1)
	ExpTable([]int16{-255}, limit, 1, 1, tables, 1)
	assert.Equal(t, limit[0], b[1])
}

func TestNewExpTables_InvalidParams(t *testing.T) {
	assert.Panics(t, func() { NewExpTables(10, 14, 0) })
	assert.Panics(t, func() { NewExpTables(10, 14, 16) })
	assert.Panics(t, func() { NewExpTables(10, 40, 8) })
}
