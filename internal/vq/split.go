package vq

import "github.com/thesyncim/golpc/types"

// Split quantizes each segment of x independently against its own region
// of the flat codebook cb. idx receives one index per segment and xq the
// concatenated quantized segments.
func Split(xq []float64, idx []int, x, cb []float64, segs []types.Segment) {
	for i, s := range segs {
		lo, hi := s.XOffset, s.XOffset+s.Dim
		idx[i] = Vector(xq[lo:hi], x[lo:hi], cb[s.CBOffset:s.CBOffset+s.Len()], s.Size, s.Dim)
	}
}

// SplitDims is Split for a layout given as parallel dims and sizes,
// accumulating offsets as it goes.
func SplitDims(xq []float64, idx []int, x, cb []float64, dims, sizes []int) {
	xPos, cbPos := 0, 0
	for i, dim := range dims {
		n := dim * sizes[i]
		idx[i] = Vector(xq[xPos:xPos+dim], x[xPos:xPos+dim], cb[cbPos:cbPos+n], sizes[i], dim)
		xPos += dim
		cbPos += n
	}
}
