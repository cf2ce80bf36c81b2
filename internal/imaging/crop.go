package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// CropTensor copies a rectangular region out of t into a new tensor with the
// same label and channel count.
func CropTensor(t *tensor.Tensor, r Region) (*tensor.Tensor, error) {
	if r.X1 < 0 || r.Y1 < 0 || r.X2 > t.Width() || r.Y2 > t.Height() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, t.Width(), t.Height())
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	w, h := r.X2-r.X1, r.Y2-r.Y1
	shape := t.Shape()
	shape[0], shape[1] = h, w

	out, err := tensor.New(shape, t.Colorspace())
	if err != nil {
		return nil, err
	}

	rowLen := w * t.Channels()
	for y := 0; y < h; y++ {
		src := t.Offset(r.X1, r.Y1+y, 0)
		copy(out.Pix()[y*rowLen:(y+1)*rowLen], t.Pix()[src:src+rowLen])
	}
	return out, nil
}

// PreviewResult contains a rendered tensor as a base64-encoded PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview renders t as a PNG, optionally scaled, and base64-encodes it.
//
// A scale of 0 or 1 keeps the original size. Labels other than rgb, bgr and gray
// are rendered as false color (see tensor.ToImage).
func Preview(t *tensor.Tensor, scale float64) (*PreviewResult, error) {
	img, err := tensor.ToImage(t)
	if err != nil {
		return nil, err
	}

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(t.Width()) * scale)
		newHeight := int(float64(t.Height()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f leaves no pixels", scale)
		}
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
