package tensor

import (
	"errors"
	"fmt"
)

// ErrBadShape is returned when a shape or buffer cannot form a valid tensor.
var ErrBadShape = errors.New("tensor: bad shape")

// Tensor is an 8-bit image tensor with a colorspace label.
//
// Pixel data is stored row-major: index = (y*width + x)*channels + c. A 2-D tensor
// has an implicit single channel.
type Tensor struct {
	pix        []uint8
	shape      []int
	colorspace Colorspace
}

// New allocates a zeroed tensor with the given shape and label.
//
// Parameters:
//   - shape: (height, width) or (height, width, channels), all dimensions > 0.
//   - cs: The colorspace label to attach.
//
// Returns ErrBadShape if the shape is not 2-D or 3-D or has a non-positive dimension.
func New(shape []int, cs Colorspace) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	return &Tensor{
		pix:        make([]uint8, n),
		shape:      append([]int(nil), shape...),
		colorspace: cs,
	}, nil
}

// FromPix wraps an existing pixel buffer without copying it.
//
// The buffer length must equal the product of the shape's dimensions. The caller
// must not keep writing to pix after handing it over.
func FromPix(pix []uint8, shape []int, cs Colorspace) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	if len(pix) != n {
		return nil, fmt.Errorf("%w: buffer has %d values, shape %v needs %d", ErrBadShape, len(pix), shape, n)
	}
	return &Tensor{
		pix:        pix,
		shape:      append([]int(nil), shape...),
		colorspace: cs,
	}, nil
}

func volume(shape []int) (int, error) {
	if len(shape) != 2 && len(shape) != 3 {
		return 0, fmt.Errorf("%w: rank %d, want 2 or 3", ErrBadShape, len(shape))
	}
	n := 1
	for i, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: dimension %d must be > 0, got %d", ErrBadShape, i, d)
		}
		n *= d
	}
	return n, nil
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// NDim returns the number of dimensions (2 or 3).
func (t *Tensor) NDim() int { return len(t.shape) }

// Height returns the number of rows.
func (t *Tensor) Height() int { return t.shape[0] }

// Width returns the number of columns.
func (t *Tensor) Width() int { return t.shape[1] }

// Channels returns the size of the last dimension, or 1 for a 2-D tensor.
func (t *Tensor) Channels() int {
	if len(t.shape) == 2 {
		return 1
	}
	return t.shape[2]
}

// Pix returns the underlying pixel buffer. Writes are visible to the tensor.
func (t *Tensor) Pix() []uint8 { return t.pix }

// Colorspace returns the tensor's label.
func (t *Tensor) Colorspace() Colorspace { return t.colorspace }

// SetColorspace rewrites the label. Pixel data is untouched.
func (t *Tensor) SetColorspace(cs Colorspace) { t.colorspace = cs }

// IsRGB reports whether the tensor is labeled rgb.
func (t *Tensor) IsRGB() bool { return t.colorspace == RGB }

// IsBGR reports whether the tensor is labeled bgr.
func (t *Tensor) IsBGR() bool { return t.colorspace == BGR }

// IsGray reports whether the tensor is labeled gray.
func (t *Tensor) IsGray() bool { return t.colorspace == Gray }

// IsHSV reports whether the tensor is labeled hsv.
func (t *Tensor) IsHSV() bool { return t.colorspace == HSV }

// IsHLS reports whether the tensor is labeled hls.
func (t *Tensor) IsHLS() bool { return t.colorspace == HLS }

// IsLAB reports whether the tensor is labeled lab.
func (t *Tensor) IsLAB() bool { return t.colorspace == LAB }

// Offset returns the index of channel c of pixel (x, y) in Pix.
func (t *Tensor) Offset(x, y, c int) int {
	ch := t.Channels()
	return (y*t.shape[1]+x)*ch + c
}

// At returns channel c of the pixel at (x, y). It panics if out of range.
func (t *Tensor) At(x, y, c int) uint8 {
	return t.pix[t.Offset(x, y, c)]
}

// Set writes channel c of the pixel at (x, y). It panics if out of range.
func (t *Tensor) Set(x, y, c int, v uint8) {
	t.pix[t.Offset(x, y, c)] = v
}

// Clone returns a deep copy with the same label.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		pix:        append([]uint8(nil), t.pix...),
		shape:      t.Shape(),
		colorspace: t.colorspace,
	}
}

// String summarizes the tensor, e.g. "Tensor(shape=[100 100 3], colorspace=rgb)".
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(shape=%v, colorspace=%s)", t.shape, t.colorspace)
}
