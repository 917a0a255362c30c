package main

import (
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/seedot-ml/seedot/diag"
	"github.com/seedot-ml/seedot/fixed"
	"github.com/seedot-ml/seedot/internal/quant"
	"github.com/seedot-ml/seedot/internal/tensor"
)

// outScale is the fixed-point scale of the layer output; tanh saturates at
// 1<<outScale.
const outScale = 12

// A 4-feature, 3-class linear classifier with a tanh head.
var (
	demoInput = []float32{0.62, -0.35, 0.18, 0.91}
	demoW     = []float32{
		0.40, -0.72, 0.15,
		-0.31, 0.22, 0.64,
		0.87, 0.05, -0.48,
		0.12, -0.26, 0.93,
	}
	demoBias = []float32{0.05, -0.10, 0.02}
)

const demoK, demoJ = 4, 3

// layer holds a quantized dense layer and the divisors that bring its
// products to outScale.
type layer struct {
	x, w, bias []int16
	shrA, shrB int32
	sx, sw     int
}

func quantizeLayer(x, w, bias []float32) (*layer, error) {
	l := &layer{
		x:    make([]int16, len(x)),
		w:    make([]int16, len(w)),
		bias: make([]int16, len(bias)),
		sx:   quant.ScaleFor(quant.MaxAbs(x), 16),
		sw:   quant.ScaleFor(quant.MaxAbs(w), 16),
	}
	d := l.sx + l.sw - outScale
	if d < 0 || d > 60 {
		return nil, errors.Newf("product scale %d cannot be brought to output scale %d", l.sx+l.sw, outScale)
	}
	quant.Quantize(l.x, x, l.sx)
	quant.Quantize(l.w, w, l.sw)
	quant.Quantize(l.bias, bias, outScale)
	l.shrA = int32(1) << (d / 2)
	l.shrB = int32(1) << (d - d/2)
	return l, nil
}

// forward runs matmul, bias, tanh. The accumulator is int64 because two
// full-range int16 products summed over K overflow int32.
func (l *layer) forward(cfg fixed.Config) ([]int16, error) {
	h2 := fixed.Depth(demoK)
	out := make([]int16, demoJ)

	var r diag.Report
	r.Add(diag.CheckMatMul(len(l.x), len(l.w), len(out), demoK, 1, demoK, demoJ, l.shrA, l.shrB, 0, h2, 1))
	r.Add(diag.CheckElementwise(len(out), len(l.bias), len(out), 1, demoJ, 1, 1, 1, 1))
	if err := r.Err(); err != nil {
		return nil, errors.Wrap(err, "invalid layer")
	}

	scratch := make([][]int64, fixed.ScratchWorkers(demoJ, cfg))
	for i := range scratch {
		scratch[i] = make([]int64, demoK)
	}
	if err := fixed.MatMulParallel(cfg, l.x, l.w, out, scratch, 1, demoK, demoJ, l.shrA, l.shrB, 0, h2, 1); err != nil {
		return nil, err
	}
	fixed.AddOrSubCir2D[int16, int16, int32](out, l.bias, 1, demoJ, 1, 1, 1, true)
	fixed.TanH(out, 1, demoJ, int16(1<<outScale))
	return out, nil
}

// reference computes the same layer in float32.
func reference(x, w, bias []float32) []float32 {
	out := make([]float32, demoJ)
	for j := range out {
		var s float32
		for k := 0; k < demoK; k++ {
			s += x[k] * w[k*demoJ+j]
		}
		out[j] = float32(math.Tanh(float64(s + bias[j])))
	}
	return out
}

func runDemo(w io.Writer) error {
	l, err := quantizeLayer(demoInput, demoW, demoBias)
	if err != nil {
		return err
	}
	out, err := l.forward(fixed.DefaultConfig())
	if err != nil {
		return err
	}

	ref := reference(demoInput, demoW, demoBias)
	class, conf := fixed.Confidence(out, 1, demoJ)
	refClass := fixed.ArgMax(ref32(ref), 1, demoJ)
	stats := quant.Diff(ref, out, outScale)

	fmt.Fprintf(w, "element type %s, accumulator %s\n", tensor.DataTypeOf[int16](), tensor.DataTypeOf[int64]())
	fmt.Fprintf(w, "input scale 2^-%d, weight scale 2^-%d, shrA=%d shrB=%d\n", l.sx, l.sw, l.shrA, l.shrB)
	fmt.Fprintf(w, "fixed output: %v\n", out)
	fmt.Fprintf(w, "float output: %v\n", ref)
	fmt.Fprintf(w, "prediction:   class %d (confidence %.3f), float reference class %d\n", class, conf, refClass)
	fmt.Fprintf(w, "error:        %s\n", stats)
	return nil
}

// ref32 quantizes the float reference so ArgMax can rank it.
func ref32(ref []float32) []int32 {
	q := make([]int32, len(ref))
	quant.Quantize(q, ref, 24)
	return q
}
