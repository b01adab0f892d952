// Package types defines shared types used across golpc packages.
// This package exists to break import cycles between the root golpc package
// and internal packages.
package types

// SplitLayout describes a split-vector codebook: segment i has dimension
// Dims[i] and Sizes[i] entries.
type SplitLayout struct {
	Dims  []int
	Sizes []int
}

// Segment locates one split of a split-vector codebook.
type Segment struct {
	XOffset  int // offset into the input vector
	Dim      int // segment dimension
	CBOffset int // offset into the flat codebook
	Size     int // number of codebook entries
}

// Len returns the number of codebook values covered by the segment.
func (s Segment) Len() int { return s.Dim * s.Size }

// Segments converts a layout into segment descriptors with accumulated
// offsets. The layout is not validated.
func Segments(layout SplitLayout) []Segment {
	segs := make([]Segment, len(layout.Dims))
	xPos, cbPos := 0, 0
	for i, dim := range layout.Dims {
		segs[i] = Segment{XOffset: xPos, Dim: dim, CBOffset: cbPos, Size: layout.Sizes[i]}
		xPos += dim
		cbPos += dim * layout.Sizes[i]
	}
	return segs
}

// VectorLen returns the total dimension covered by segs.
func VectorLen(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += s.Dim
	}
	return n
}

// CodebookLen returns the total number of codebook values covered by segs.
func CodebookLen(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += s.Len()
	}
	return n
}
