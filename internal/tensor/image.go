package tensor

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FromImage copies a decoded image into a new tensor.
//
// Grayscale images (*image.Gray, *image.Gray16) become 2-D gray tensors. Every
// other image is flattened to non-premultiplied RGB and labeled rgb; alpha is
// dropped. 16-bit sources are reduced to 8 bits.
func FromImage(img image.Image) (*Tensor, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrBadShape, w, h)
	}

	switch src := img.(type) {
	case *image.Gray:
		pix := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			row := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride+(b.Min.X-src.Rect.Min.X):]
			copy(pix[y*w:(y+1)*w], row[:w])
		}
		return FromPix(pix, []int{h, w}, Gray)
	case *image.Gray16:
		pix := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pix[y*w+x] = uint8(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y >> 8)
			}
		}
		return FromPix(pix, []int{h, w}, Gray)
	}

	// imaging.Clone normalizes any image type to *image.NRGBA anchored at (0,0).
	nrgba := imaging.Clone(img)
	pix := make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < w; x++ {
			copy(pix[(y*w+x)*3:(y*w+x)*3+3], row[x*4:x*4+3])
		}
	}
	return FromPix(pix, []int{h, w, 3}, RGB)
}

// ToImage renders the tensor as a Go image.
//
// Gray and single-channel tensors become *image.Gray. rgb and bgr tensors become
// opaque *image.NRGBA with channels placed in display order. Other 3-channel
// labels are rendered with their raw channels as R, G and B, which gives a false
// color view of HSV, HLS or LAB data.
func ToImage(t *Tensor) (image.Image, error) {
	w, h := t.Width(), t.Height()
	switch t.Channels() {
	case 1:
		img := image.NewGray(image.Rect(0, 0, w, h))
		copy(img.Pix, t.pix)
		return img, nil
	case 3:
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		r, b := 0, 2
		if t.colorspace == BGR {
			r, b = 2, 0
		}
		for i, j := 0, 0; i < len(t.pix); i, j = i+3, j+4 {
			img.Pix[j] = t.pix[i+r]
			img.Pix[j+1] = t.pix[i+1]
			img.Pix[j+2] = t.pix[i+b]
			img.Pix[j+3] = 0xff
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%w: cannot render %d channels", ErrBadShape, t.Channels())
	}
}

// ColorAt returns the pixel at (x, y) as a color.Color in display terms, using
// the same rules as ToImage.
func ColorAt(t *Tensor, x, y int) color.Color {
	if t.Channels() == 1 {
		return color.Gray{Y: t.At(x, y, 0)}
	}
	r, g, b := t.At(x, y, 0), t.At(x, y, 1), t.At(x, y, 2)
	if t.colorspace == BGR {
		r, b = b, r
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
