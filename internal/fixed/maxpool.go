package fixed

import "github.com/seedot-ml/seedot/internal/tensor"

// MaxPool performs strided max pooling over an N×H×W×C tensor.
//
// The window is stride×stride and windows do not overlap:
//
//	out_height = H / stride
//	out_width  = W / stride
//
// Trailing rows and columns that do not fill a window are dropped. Each
// window maximum is divided by demote and converted to the output type with
// a plain conversion; this kernel never saturates.
//
// Example (4×4, stride 2, demote 1):
//
//	Input: [[1,2,3,4],    Output: [[6,8],
//	        [5,6,7,8],             [14,16]]
//	        [9,10,11,12],
//	        [13,14,15,16]]
func MaxPool[A, B tensor.Elem](a []A, b []B, N, H, W, C, stride int, demote int32) {
	g := newPoolGeometry(N, H, W, C, stride)
	for n := 0; n < N; n++ {
		for c := 0; c < C; c++ {
			maxPoolChannel(a, b, g, n, c, demote)
		}
	}
}

// poolGeometry holds the input and output shapes of MaxPool.
type poolGeometry struct {
	in, out tensor.Shape
	stride  int
}

func newPoolGeometry(N, H, W, C, stride int) poolGeometry {
	return poolGeometry{
		in:     tensor.Shape{N, H, W, C},
		out:    tensor.Shape{N, H / stride, W / stride, C},
		stride: stride,
	}
}

// maxPoolChannel pools channel c of image n. Channels of different images
// write disjoint output elements.
func maxPoolChannel[A, B tensor.Elem](a []A, b []B, g poolGeometry, n, c int, demote int32) {
	s := g.stride
	for ho := 0; ho < g.out[1]; ho++ {
		for wo := 0; wo < g.out[2]; wo++ {
			maxVal := a[g.in.Offset(n, s*ho, s*wo, c)]
			for hs := 0; hs < s; hs++ {
				for ws := 0; ws < s; ws++ {
					if v := a[g.in.Offset(n, s*ho+hs, s*wo+ws, c)]; v > maxVal {
						maxVal = v
					}
				}
			}
			b[g.out.Offset(n, ho, wo, c)] = B(int64(maxVal) / int64(demote))
		}
	}
}
