package vq

import "math"

// Vector finds the entry of the flat codebook cb (nCB entries of dim
// values) nearest to x[:dim] in squared Euclidean distance, copies it
// into xq and returns its index. Ties keep the lowest index.
func Vector(xq, x, cb []float64, nCB, dim int) int {
	best := 0
	bestDist := math.MaxFloat64
	pos := 0
	for j := 0; j < nCB; j++ {
		if d := sqDist(x[:dim], cb[pos:pos+dim]); d < bestDist {
			bestDist = d
			best = j
		}
		pos += dim
	}
	copy(xq[:dim], cb[best*dim:(best+1)*dim])
	return best
}

func sqDist(x, c []float64) float64 {
	c = c[:len(x)]
	var d float64
	for i := range x {
		t := x[i] - c[i]
		d += t * t
	}
	return d
}
