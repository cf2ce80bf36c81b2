package kernel

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// ColorfulName is the registry name of the pure-Go backend.
const ColorfulName = "colorful"

// Rec.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

type (
	decodeFunc func(p []uint8) colorful.Color
	encodeFunc func(c colorful.Color, p []uint8)
)

var decoders = map[tensor.Colorspace]decodeFunc{
	tensor.RGB: func(p []uint8) colorful.Color {
		return colorful.Color{R: unit(p[0]), G: unit(p[1]), B: unit(p[2])}
	},
	tensor.BGR: func(p []uint8) colorful.Color {
		return colorful.Color{R: unit(p[2]), G: unit(p[1]), B: unit(p[0])}
	},
	tensor.Gray: func(p []uint8) colorful.Color {
		v := unit(p[0])
		return colorful.Color{R: v, G: v, B: v}
	},
	tensor.HSV: func(p []uint8) colorful.Color {
		return colorful.Hsv(hueDegrees(p[0]), unit(p[1]), unit(p[2]))
	},
	tensor.HLS: func(p []uint8) colorful.Color {
		return colorful.Hsl(hueDegrees(p[0]), unit(p[2]), unit(p[1]))
	},
	tensor.LAB: func(p []uint8) colorful.Color {
		return colorful.Lab(unit(p[0]), (float64(p[1])-128)/100, (float64(p[2])-128)/100)
	},
}

var encoders = map[tensor.Colorspace]encodeFunc{
	tensor.RGB: func(c colorful.Color, p []uint8) {
		c = c.Clamped()
		p[0], p[1], p[2] = toByte(c.R*255), toByte(c.G*255), toByte(c.B*255)
	},
	tensor.BGR: func(c colorful.Color, p []uint8) {
		c = c.Clamped()
		p[0], p[1], p[2] = toByte(c.B*255), toByte(c.G*255), toByte(c.R*255)
	},
	tensor.Gray: func(c colorful.Color, p []uint8) {
		c = c.Clamped()
		p[0] = toByte((lumaR*c.R + lumaG*c.G + lumaB*c.B) * 255)
	},
	tensor.HSV: func(c colorful.Color, p []uint8) {
		h, s, v := c.Clamped().Hsv()
		p[0], p[1], p[2] = hueByte(h), toByte(s*255), toByte(v*255)
	},
	tensor.HLS: func(c colorful.Color, p []uint8) {
		h, s, l := c.Clamped().Hsl()
		p[0], p[1], p[2] = hueByte(h), toByte(l*255), toByte(s*255)
	},
	tensor.LAB: func(c colorful.Color, p []uint8) {
		l, a, b := c.Clamped().Lab()
		p[0], p[1], p[2] = toByte(l*255), toByte(a*100+128), toByte(b*100+128)
	},
}

// Colorful is the pure-Go backend. Each pixel is decoded into a go-colorful
// Color and re-encoded in the target space; rows are spread over GOMAXPROCS
// goroutines. It is safe for concurrent use.
type Colorful struct{}

// NewColorful returns the pure-Go backend.
func NewColorful() *Colorful {
	return &Colorful{}
}

func (k *Colorful) Name() string { return ColorfulName }

func (k *Colorful) Convert(src *tensor.Tensor, mode Mode) ([]uint8, []int, error) {
	if err := checkInput(src, mode); err != nil {
		return nil, nil, err
	}

	decode := decoderFor(mode)
	encode := encoders[mode.Target()]
	inCh := mode.Source().Channels()
	outCh := mode.Target().Channels()
	h, w := src.Height(), src.Width()

	in := src.Pix()
	out := make([]uint8, h*w*outCh)

	parallel.Line(h, func(start, end int) {
		for i := start * w; i < end*w; i++ {
			encode(decode(in[i*inCh:i*inCh+inCh]), out[i*outCh:i*outCh+outCh])
		}
	})

	return out, outputShape(h, w, mode.Target()), nil
}

// decoderFor returns the pixel decoder for mode. LAB sources bound for gray,
// HSV or HLS pass through 8-bit RGB first, the same chain the OpenCV backend
// runs, so neutral LAB pixels come out with zero hue and saturation.
func decoderFor(mode Mode) decodeFunc {
	decode := decoders[mode.Source()]
	if mode.Source() != tensor.LAB {
		return decode
	}
	switch mode.Target() {
	case tensor.RGB, tensor.BGR:
		return decode
	}
	toRGB, fromRGB := encoders[tensor.RGB], decoders[tensor.RGB]
	return func(p []uint8) colorful.Color {
		var rgb [3]uint8
		toRGB(decode(p), rgb[:])
		return fromRGB(rgb[:])
	}
}

func unit(v uint8) float64 {
	return float64(v) / 255
}

// toByte rounds v to the nearest integer and clamps it to [0, 255].
func toByte(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// hueDegrees expands a halved 8-bit hue to degrees. Bytes of 180 and above
// wrap around the circle.
func hueDegrees(v uint8) float64 {
	return math.Mod(float64(v)*2, 360)
}

// hueByte maps a hue in degrees to the halved 8-bit range [0, 180).
func hueByte(deg float64) uint8 {
	h := math.Round(deg / 2)
	if h >= 180 || h < 0 || math.IsNaN(h) {
		h = 0
	}
	return uint8(h)
}
