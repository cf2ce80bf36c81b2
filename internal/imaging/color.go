package imaging

import (
	"fmt"

	"github.com/ironsheep/colorconv-mcp/internal/colorconv"
	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// PixelSample holds one pixel's channel values in a single colorspace.
type PixelSample struct {
	// Colorspace is the label the values are expressed in.
	Colorspace string `json:"colorspace"`

	// Values are the 8-bit channel values in label order (e.g. H, L, S for hls).
	// Gray samples have a single value.
	Values []uint8 `json:"values"`
}

// SamplePixel returns the channel values of the pixel at (x, y).
//
// Coordinates are 0-based with origin at top-left. Returns an error if the
// coordinates fall outside the tensor.
func SamplePixel(t *tensor.Tensor, x, y int) (*PixelSample, error) {
	if x < 0 || y < 0 || x >= t.Width() || y >= t.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	ch := t.Channels()
	off := t.Offset(x, y, 0)
	return &PixelSample{
		Colorspace: t.Colorspace().String(),
		Values:     append([]uint8(nil), t.Pix()[off:off+ch]...),
	}, nil
}

// ColorResult contains one pixel expressed in several colorspaces.
type ColorResult struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Hex is the display color "#RRGGBB" for rgb, bgr and gray sources, empty
	// otherwise.
	Hex string `json:"hex,omitempty"`

	// Samples holds the source pixel first, followed by one entry per
	// requested colorspace in request order.
	Samples []PixelSample `json:"samples"`
}

// SampleColorspaces reads the pixel at (x, y) and converts it into each of the
// requested colorspaces.
//
// Only the single pixel is converted, so the cost does not depend on image size.
// A requested colorspace equal to the source label is answered from the source
// values. Conversions go through conv, so a source the converter rejects, or a
// pair with no conversion, fails the whole call.
func SampleColorspaces(conv *colorconv.Converter, t *tensor.Tensor, x, y int, spaces []tensor.Colorspace) (*ColorResult, error) {
	src, err := SamplePixel(t, x, y)
	if err != nil {
		return nil, err
	}

	result := &ColorResult{X: x, Y: y, Samples: []PixelSample{*src}}

	switch t.Colorspace() {
	case tensor.RGB, tensor.BGR, tensor.Gray:
		r, g, b, _ := tensor.ColorAt(t, x, y).RGBA()
		result.Hex = fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}

	shape := []int{1, 1, len(src.Values)}
	if len(src.Values) == 1 {
		shape = []int{1, 1}
	}
	one, err := tensor.FromPix(append([]uint8(nil), src.Values...), shape, t.Colorspace())
	if err != nil {
		return nil, err
	}

	for _, cs := range spaces {
		if cs == t.Colorspace() {
			result.Samples = append(result.Samples, *src)
			continue
		}
		pair, err := colorconv.Find(t.Colorspace(), cs)
		if err != nil {
			return nil, err
		}
		out, err := conv.Convert(one, pair)
		if err != nil {
			return nil, err
		}
		result.Samples = append(result.Samples, PixelSample{
			Colorspace: cs.String(),
			Values:     out.Pix(),
		})
	}

	return result, nil
}
