// quantizer.go implements scalar, vector and split-vector codebook quantization.

package golpc

import (
	"fmt"
	"math"

	"github.com/thesyncim/golpc/internal/vq"
	"github.com/thesyncim/golpc/types"
)

// SplitLayout describes the dimension and entry count of each split.
type SplitLayout = types.SplitLayout

// Segment locates one split within the input vector and the flat codebook.
type Segment = types.Segment

// ILBCSplitLayout is the three-way LSF split of the iLBC codec: ten LSFs
// quantized as 3+3+4 against 64, 128 and 128 entries.
var ILBCSplitLayout = SplitLayout{
	Dims:  []int{3, 3, 4},
	Sizes: []int{64, 128, 128},
}

// ScalarQuantize quantizes x against the ascending, non-empty codebook cb.
// Values exactly between two entries map to the higher one.
func ScalarQuantize(x float64, cb []float64) (int, float64) {
	return vq.Scalar(x, cb)
}

// VectorQuantize finds the entry of the flat codebook cb (nCB entries of
// dim values) nearest to x, copies it into xq and returns its index.
func VectorQuantize(xq, x, cb []float64, nCB, dim int) int {
	return vq.Vector(xq, x, cb, nCB, dim)
}

// SplitVectorQuantize quantizes consecutive segments of x of lengths
// dims[i] against consecutive codebook regions of dims[i]*sizes[i] values.
// idx receives one index per split.
func SplitVectorQuantize(xq []float64, idx []int, x, cb []float64, dims, sizes []int) {
	vq.SplitDims(xq, idx, x, cb, dims, sizes)
}

// ScalarCodebook is a validated ascending scalar codebook.
type ScalarCodebook struct {
	cb []float64
}

// NewScalarCodebook validates cb. The slice is retained, not copied, and
// must not be modified afterwards.
func NewScalarCodebook(cb []float64) (*ScalarCodebook, error) {
	if len(cb) == 0 {
		return nil, fmt.Errorf("%w: empty scalar codebook", ErrInvalidCodebook)
	}
	for i, v := range cb {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: NaN at entry %d", ErrInvalidCodebook, i)
		}
		if i > 0 && v < cb[i-1] {
			return nil, fmt.Errorf("%w: entry %d", ErrUnsortedCodebook, i)
		}
	}
	return &ScalarCodebook{cb: cb}, nil
}

// Len returns the number of entries.
func (s *ScalarCodebook) Len() int { return len(s.cb) }

// Value returns entry i.
func (s *ScalarCodebook) Value(i int) float64 { return s.cb[i] }

// Quantize returns the index and value of the entry nearest to x.
func (s *ScalarCodebook) Quantize(x float64) (int, float64) {
	return vq.Scalar(x, s.cb)
}

// Codebook is a validated flat vector codebook.
type Codebook struct {
	cb  []float64
	dim int
	n   int
}

// NewCodebook validates a flat codebook of dimension dim. The slice is
// retained, not copied.
func NewCodebook(cb []float64, dim int) (*Codebook, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension %d", ErrInvalidCodebook, dim)
	}
	if len(cb) == 0 || len(cb)%dim != 0 {
		return nil, fmt.Errorf("%w: %d values for dimension %d", ErrInvalidCodebook, len(cb), dim)
	}
	return &Codebook{cb: cb, dim: dim, n: len(cb) / dim}, nil
}

// Dim returns the vector dimension.
func (c *Codebook) Dim() int { return c.dim }

// Len returns the number of entries.
func (c *Codebook) Len() int { return c.n }

// Entry returns entry i. The returned slice aliases the codebook.
func (c *Codebook) Entry(i int) []float64 {
	return c.cb[i*c.dim : (i+1)*c.dim : (i+1)*c.dim]
}

// Quantize returns the index of the entry nearest to x and a copy of it.
func (c *Codebook) Quantize(x []float64) (int, []float64, error) {
	xq := make([]float64, c.dim)
	idx, err := c.QuantizeInto(xq, x)
	if err != nil {
		return 0, nil, err
	}
	return idx, xq, nil
}

// QuantizeInto is Quantize writing into xq, which must hold Dim values.
func (c *Codebook) QuantizeInto(xq, x []float64) (int, error) {
	if len(x) != c.dim || len(xq) < c.dim {
		return 0, fmt.Errorf("%w: got %d/%d, want %d", ErrInvalidDimension, len(x), len(xq), c.dim)
	}
	return vq.Vector(xq, x, c.cb, c.n, c.dim), nil
}

// SplitCodebook is a validated split-vector codebook. Segment offsets are
// computed once at construction.
type SplitCodebook struct {
	cb   []float64
	segs []Segment
	dim  int
}

// NewSplitCodebook validates cb against layout. The codebook slice is
// retained, not copied.
func NewSplitCodebook(cb []float64, layout SplitLayout) (*SplitCodebook, error) {
	if len(layout.Dims) == 0 || len(layout.Dims) != len(layout.Sizes) {
		return nil, fmt.Errorf("%w: %d dims, %d sizes", ErrInvalidSplit, len(layout.Dims), len(layout.Sizes))
	}
	for i := range layout.Dims {
		if layout.Dims[i] <= 0 || layout.Sizes[i] <= 0 {
			return nil, fmt.Errorf("%w: split %d has dim %d, size %d", ErrInvalidSplit, i, layout.Dims[i], layout.Sizes[i])
		}
	}
	segs := types.Segments(layout)
	if n := types.CodebookLen(segs); n != len(cb) {
		return nil, fmt.Errorf("%w: layout covers %d values, codebook has %d", ErrInvalidSplit, n, len(cb))
	}
	return &SplitCodebook{cb: cb, segs: segs, dim: types.VectorLen(segs)}, nil
}

// Dim returns the total input dimension.
func (s *SplitCodebook) Dim() int { return s.dim }

// Splits returns the number of segments.
func (s *SplitCodebook) Splits() int { return len(s.segs) }

// Segments returns a copy of the segment descriptors.
func (s *SplitCodebook) Segments() []Segment {
	return append([]Segment(nil), s.segs...)
}

// Quantize quantizes each split of x independently and returns one index
// per split and the concatenated quantized vector.
func (s *SplitCodebook) Quantize(x []float64) ([]int, []float64, error) {
	idx := make([]int, len(s.segs))
	xq := make([]float64, s.dim)
	if err := s.QuantizeInto(xq, idx, x); err != nil {
		return nil, nil, err
	}
	return idx, xq, nil
}

// QuantizeInto is Quantize writing into caller buffers: xq must hold Dim
// values and idx Splits values.
func (s *SplitCodebook) QuantizeInto(xq []float64, idx []int, x []float64) error {
	if len(x) != s.dim || len(xq) < s.dim || len(idx) < len(s.segs) {
		return fmt.Errorf("%w: got x=%d xq=%d idx=%d, want %d/%d", ErrInvalidDimension, len(x), len(xq), len(idx), s.dim, len(s.segs))
	}
	vq.Split(xq, idx, x, s.cb, s.segs)
	return nil
}
