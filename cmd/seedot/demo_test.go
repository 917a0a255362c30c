package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedot-ml/seedot/fixed"
	"github.com/seedot-ml/seedot/internal/quant"
)

func TestQuantizeLayer(t *testing.T) {
	l, err := quantizeLayer(demoInput, demoW, demoBias)
	require.NoError(t, err)
	// max |x| = 0.91 and max |w| = 0.93 both land at scale 15.
	assert.Equal(t, 15, l.sx)
	assert.Equal(t, 15, l.sw)
	assert.Equal(t, int32(1<<9), l.shrA)
	assert.Equal(t, int32(1<<9), l.shrB)
}

func TestForward_TracksFloatReference(t *testing.T) {
	l, err := quantizeLayer(demoInput, demoW, demoBias)
	require.NoError(t, err)

	seq, err := l.forward(fixed.Config{})
	require.NoError(t, err)
	par, err := l.forward(fixed.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1})
	require.NoError(t, err)
	assert.Equal(t, seq, par)

	ref := reference(demoInput, demoW, demoBias)
	stats := quant.Diff(ref, seq, outScale)
	if fixed.Activation == fixed.FloatPath {
		assert.Less(t, stats.MaxAbs, 0.005)
	}
	assert.Equal(t, fixed.ArgMax(ref32(ref), 1, demoJ), fixed.ArgMax(seq, 1, demoJ))
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf))
	assert.Contains(t, buf.String(), "prediction:")
	assert.Contains(t, buf.String(), "error:")
	assert.Contains(t, buf.String(), "element type int16, accumulator int64")
}
