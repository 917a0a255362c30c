package fixed

import "github.com/seedot-ml/seedot/internal/tensor"

// Conv performs a direct 2D convolution with "same" output size.
//
// Shapes (row-major):
//
//	a:   [N, H, W, CI]
//	b:   [HF, WF, CI, CO]
//	c:   [N, H, W, CO]
//	tmp: at least HF*WF*CI elements
//
// The filter is offset by padH = (HF-1)/2 and padW = (WF-1)/2, so even
// filter extents pad one more row or column at the bottom and right than at
// the top and left. Input positions outside [0,H)×[0,W) read as zero.
//
// For every output element the HF*WF*CI products of the receptive field are
// reduced with TreeSum over h1+h2 rounds, divided by shrA, shrB and demote,
// and narrowed into c.
func Conv[A, B, T, C tensor.Elem](a []A, b []B, c []C, tmp []T, N, H, W, CI, HF, WF, CO int, shrA, shrB int32, h1, h2 int, demote int32) {
	g := newConvGeometry(N, H, W, CI, HF, WF, CO)
	convCells(a, b, c, tmp, g, 0, N*H*W*CO, shrA, shrB, h1, h2, demote)
}

// convGeometry carries the dimensions and strides shared by every output
// element.
type convGeometry struct {
	H, W, CI, HF, WF, CO int
	in, filter, out      []int
}

func newConvGeometry(N, H, W, CI, HF, WF, CO int) convGeometry {
	return convGeometry{
		H: H, W: W, CI: CI, HF: HF, WF: WF, CO: CO,
		in:     tensor.Shape{N, H, W, CI}.ComputeStrides(),
		filter: tensor.Shape{HF, WF, CI, CO}.ComputeStrides(),
		out:    tensor.Shape{N, H, W, CO}.ComputeStrides(),
	}
}

// convCells computes the flat output elements [from, to) of Conv.
func convCells[A, B, T, C tensor.Elem](a []A, b []B, c []C, tmp []T, g convGeometry, from, to int, shrA, shrB int32, h1, h2 int, demote int32) {
	padH := (g.HF - 1) / 2
	padW := (g.WF - 1) / 2
	total := g.HF * g.WF * g.CI

	for o := from; o < to; o++ {
		n := o / g.out[0]
		h := o / g.out[1] % g.H
		w := o / g.out[2] % g.W
		co := o % g.CO

		counter := 0
		for hf := 0; hf < g.HF; hf++ {
			ih := h + hf - padH
			for wf := 0; wf < g.WF; wf++ {
				iw := w + wf - padW
				inside := ih >= 0 && ih < g.H && iw >= 0 && iw < g.W
				base := n*g.in[0] + ih*g.in[1] + iw*g.in[2]
				fbase := hf*g.filter[0] + wf*g.filter[1] + co
				for ci := 0; ci < g.CI; ci++ {
					var av T
					if inside {
						av = T(a[base+ci])
					}
					tmp[counter] = av * T(b[fbase+ci*g.filter[2]])
					counter++
				}
			}
		}

		sum := TreeSum(tmp, total, h1, h2)
		c[o] = narrow[C](int64(sum) / int64(shrA) / int64(shrB) / int64(demote))
	}
}
