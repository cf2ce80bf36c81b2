package colorconv

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ironsheep/colorconv-mcp/internal/kernel"
	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

var registry = buildRegistry()

func buildRegistry() map[string]Conversion {
	reg := make(map[string]Conversion)
	for _, m := range kernel.Modes() {
		conv := Conversion{
			Name:   strings.ToLower(m.String()),
			Source: m.Source(),
			Target: m.Target(),
			Mode:   m,
		}
		reg[conv.Name] = conv
	}
	return reg
}

// Conversions returns every supported conversion, sorted by name.
func Conversions() []Conversion {
	out := make([]Conversion, 0, len(registry))
	for _, conv := range registry {
		out = append(out, conv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the conversion with the given name, e.g. "rgb2hsv".
// Matching is case-insensitive.
func Lookup(name string) (Conversion, error) {
	conv, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Conversion{}, fmt.Errorf("%w: %q", ErrUnknownConversion, name)
	}
	return conv, nil
}

// Find returns the conversion from src to dst. There are no identity
// conversions, so Find(x, x) always fails.
func Find(src, dst tensor.Colorspace) (Conversion, error) {
	m, ok := kernel.ModeFor(src, dst)
	if !ok {
		return Conversion{}, fmt.Errorf("%w: %s to %s", ErrUnknownConversion, src, dst)
	}
	return registry[strings.ToLower(m.String())], nil
}

// Resolve picks a conversion from user input. A non-empty name wins and is
// passed to Lookup. Otherwise to is required and from defaults to label, the
// colorspace the image is currently tagged with.
func Resolve(name, from, to string, label tensor.Colorspace) (Conversion, error) {
	if name != "" {
		return Lookup(name)
	}
	if to == "" {
		return Conversion{}, fmt.Errorf("%w: either a conversion name or a target colorspace is required", ErrUnknownConversion)
	}

	dst, err := tensor.ParseColorspace(to)
	if err != nil {
		return Conversion{}, err
	}
	src := label
	if from != "" {
		if src, err = tensor.ParseColorspace(from); err != nil {
			return Conversion{}, err
		}
	}
	return Find(src, dst)
}

var std = New()

func convert(img *tensor.Tensor, m kernel.Mode) (*tensor.Tensor, error) {
	return std.Convert(img, registry[strings.ToLower(m.String())])
}

// RGB2BGR converts an RGB image to its BGR version.
//
// img must be labeled rgb or be shaped (height, width, 3). The result has shape
// (height, width, 3) and is labeled bgr. Returns a *ShapeError otherwise.
func RGB2BGR(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.RGB2BGR) }

// RGB2Gray converts an RGB image to its grayscale version.
//
// The result is 2-D, shaped (height, width), and labeled gray.
func RGB2Gray(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.RGB2GRAY) }

// RGB2HSV converts an RGB image to its HSV version.
func RGB2HSV(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.RGB2HSV) }

// RGB2LAB converts an RGB image to its LAB version.
func RGB2LAB(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.RGB2LAB) }

// RGB2HLS converts an RGB image to its HLS version.
func RGB2HLS(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.RGB2HLS) }

// LAB2RGB converts a LAB image to its RGB version.
//
// 8-bit LAB is quantized, so RGB2LAB followed by LAB2RGB is close to, but not
// always equal to, the original.
func LAB2RGB(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.LAB2RGB) }

// LAB2BGR converts a LAB image to its BGR version.
func LAB2BGR(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.LAB2BGR) }

// LAB2Gray converts a LAB image to its grayscale version.
func LAB2Gray(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.LAB2GRAY) }

// LAB2HSV converts a LAB image to its HSV version.
func LAB2HSV(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.LAB2HSV) }

// LAB2HLS converts a LAB image to its HLS version.
func LAB2HLS(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.LAB2HLS) }

// BGR2RGB converts a BGR image to its RGB version.
func BGR2RGB(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.BGR2RGB) }

// BGR2Gray converts a BGR image to its grayscale version.
func BGR2Gray(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.BGR2GRAY) }

// BGR2HSV converts a BGR image to its HSV version.
func BGR2HSV(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.BGR2HSV) }

// BGR2LAB converts a BGR image to its LAB version.
func BGR2LAB(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.BGR2LAB) }

// BGR2HLS converts a BGR image to its HLS version.
func BGR2HLS(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.BGR2HLS) }

// HSV2RGB converts an HSV image to its RGB version.
func HSV2RGB(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.HSV2RGB) }

// HSV2BGR converts an HSV image to its BGR version.
func HSV2BGR(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.HSV2BGR) }

// HLS2RGB converts an HLS image to its RGB version.
func HLS2RGB(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.HLS2RGB) }

// HLS2BGR converts an HLS image to its BGR version.
func HLS2BGR(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.HLS2BGR) }

// Gray2RGB replicates a grayscale image into three identical channels.
func Gray2RGB(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.GRAY2RGB) }

// Gray2BGR replicates a grayscale image into three identical channels.
func Gray2BGR(img *tensor.Tensor) (*tensor.Tensor, error) { return convert(img, kernel.GRAY2BGR) }
