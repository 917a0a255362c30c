package fixed

import "github.com/seedot-ml/seedot/internal/tensor"

// TreeSum reduces the first n values of tmp by pairwise summation and
// returns the result, which is also left in tmp[0].
//
// The reduction runs exactly h1+h2 rounds. In each of the first h1 rounds
// every operand is halved (integer division by 2) before it is added, which
// trades one bit of precision for one bit of headroom. The remaining h2
// rounds add without halving. Each round pairs tmp[2p] with tmp[2p+1],
// carries an odd trailing element through on its own, compacts the results
// to the front and zeroes the rest of the n/2+1 window.
//
// Rounds are not capped at ceil(log2 n): once a single value remains, every
// further halving round halves it again, and too few rounds leave a partial
// sum in tmp[0]. Callers rely on both behaviors for their scale bookkeeping.
//
// tmp must hold at least max(n, 1) elements.
func TreeSum[T tensor.Elem](tmp []T, n, h1, h2 int) T {
	count := n
	window := n/2 + 1
	for depth := 0; depth < h1+h2; depth++ {
		shr := depth < h1
		half := count >> 1
		for p := 0; p < window; p++ {
			var sum T
			switch {
			case p < half:
				if shr {
					sum = tmp[2*p]/2 + tmp[2*p+1]/2
				} else {
					sum = tmp[2*p] + tmp[2*p+1]
				}
			case p == half && count&1 == 1:
				if shr {
					sum = tmp[2*p] / 2
				} else {
					sum = tmp[2*p]
				}
			}
			tmp[p] = sum
		}
		count = (count + 1) >> 1
	}
	return tmp[0]
}

// Depth returns ceil(log2 n), the smallest h1+h2 that completes a reduction
// of n values.
func Depth(n int) int {
	return tensor.CeilLog2(n)
}
