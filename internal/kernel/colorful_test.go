package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

func pixel(t *testing.T, cs tensor.Colorspace, vals ...uint8) *tensor.Tensor {
	t.Helper()
	shape := []int{1, 1, len(vals)}
	if len(vals) == 1 {
		shape = []int{1, 1}
	}
	tt, err := tensor.FromPix(append([]uint8(nil), vals...), shape, cs)
	require.NoError(t, err)
	return tt
}

func assertNear(t *testing.T, want, got []uint8, tol int, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		d := int(want[i]) - int(got[i])
		if d < 0 {
			d = -d
		}
		assert.LessOrEqual(t, d, tol, append([]interface{}{"channel %d: want %v, got %v"}, i, want, got)...)
	}
}

func TestColorful_KnownValues(t *testing.T) {
	k := NewColorful()

	tests := []struct {
		name string
		mode Mode
		in   []uint8
		want []uint8
		tol  int
	}{
		{"red to bgr", RGB2BGR, []uint8{255, 0, 0}, []uint8{0, 0, 255}, 0},
		{"red to gray", RGB2GRAY, []uint8{255, 0, 0}, []uint8{76}, 0},
		{"white to gray", RGB2GRAY, []uint8{255, 255, 255}, []uint8{255}, 0},
		{"red to hsv", RGB2HSV, []uint8{255, 0, 0}, []uint8{0, 255, 255}, 0},
		{"green to hsv", RGB2HSV, []uint8{0, 255, 0}, []uint8{60, 255, 255}, 0},
		{"blue to hsv", RGB2HSV, []uint8{0, 0, 255}, []uint8{120, 255, 255}, 0},
		{"gray to hsv", RGB2HSV, []uint8{128, 128, 128}, []uint8{0, 0, 128}, 0},
		{"red to hls", RGB2HLS, []uint8{255, 0, 0}, []uint8{0, 128, 255}, 0},
		{"white to lab", RGB2LAB, []uint8{255, 255, 255}, []uint8{255, 128, 128}, 0},
		{"black to lab", RGB2LAB, []uint8{0, 0, 0}, []uint8{0, 128, 128}, 0},
		{"red to lab", RGB2LAB, []uint8{255, 0, 0}, []uint8{136, 208, 195}, 1},
		{"bgr red to rgb", BGR2RGB, []uint8{0, 0, 255}, []uint8{255, 0, 0}, 0},
		{"bgr red to hsv", BGR2HSV, []uint8{0, 0, 255}, []uint8{0, 255, 255}, 0},
		{"bgr blue to gray", BGR2GRAY, []uint8{255, 0, 0}, []uint8{29}, 0},
		{"hsv green to rgb", HSV2RGB, []uint8{60, 255, 255}, []uint8{0, 255, 0}, 0},
		{"hsv green to bgr", HSV2BGR, []uint8{60, 255, 255}, []uint8{0, 255, 0}, 0},
		{"hls red to rgb", HLS2RGB, []uint8{0, 128, 255}, []uint8{255, 1, 1}, 1},
		{"hls blue to bgr", HLS2BGR, []uint8{120, 128, 255}, []uint8{255, 1, 1}, 1},
		{"gray to rgb", GRAY2RGB, []uint8{90}, []uint8{90, 90, 90}, 0},
		{"gray to bgr", GRAY2BGR, []uint8{90}, []uint8{90, 90, 90}, 0},
		{"lab white to rgb", LAB2RGB, []uint8{255, 128, 128}, []uint8{255, 255, 255}, 1},
		{"lab white to bgr", LAB2BGR, []uint8{255, 128, 128}, []uint8{255, 255, 255}, 1},
		{"lab white to gray", LAB2GRAY, []uint8{255, 128, 128}, []uint8{255}, 1},
		{"lab black to hsv", LAB2HSV, []uint8{0, 128, 128}, []uint8{0, 0, 0}, 0},
		{"lab black to hls", LAB2HLS, []uint8{0, 128, 128}, []uint8{0, 0, 0}, 0},
		{"hsv hue 180 wraps to red", HSV2RGB, []uint8{180, 255, 255}, []uint8{255, 0, 0}, 0},
		{"hls hue 180 wraps to red", HLS2RGB, []uint8{180, 128, 255}, []uint8{255, 1, 1}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := pixel(t, tc.mode.Source(), tc.in...)
			out, shape, err := k.Convert(src, tc.mode)
			require.NoError(t, err)

			if tc.mode.Target() == tensor.Gray {
				assert.Equal(t, []int{1, 1}, shape)
			} else {
				assert.Equal(t, []int{1, 1, 3}, shape)
			}
			assertNear(t, tc.want, out, tc.tol)
		})
	}
}

func TestColorful_DoesNotModifyInput(t *testing.T) {
	src := pixel(t, tensor.RGB, 10, 20, 30)
	before := append([]uint8(nil), src.Pix()...)

	_, _, err := NewColorful().Convert(src, RGB2HSV)
	require.NoError(t, err)

	assert.Equal(t, before, src.Pix())
}

func TestColorful_NeutralLABHasNoHue(t *testing.T) {
	k := NewColorful()

	for _, l := range []uint8{0, 50, 128, 255} {
		src := pixel(t, tensor.LAB, l, 128, 128)

		hsv, _, err := k.Convert(src, LAB2HSV)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), hsv[0], "hsv hue for L=%d", l)
		assert.Equal(t, uint8(0), hsv[1], "hsv saturation for L=%d", l)

		hls, _, err := k.Convert(src, LAB2HLS)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), hls[0], "hls hue for L=%d", l)
		assert.Equal(t, uint8(0), hls[2], "hls saturation for L=%d", l)

		rgb, _, err := k.Convert(src, LAB2RGB)
		require.NoError(t, err)
		assert.Equal(t, rgb[0], hsv[2], "hsv value matches 8-bit rgb for L=%d", l)
		assert.Equal(t, rgb[0], hls[1], "hls lightness matches 8-bit rgb for L=%d", l)
	}
}

func labRoundTrip(t *testing.T, k Kernel, lo int) (pix, back []uint8) {
	t.Helper()

	for r := lo; r <= 255; r += 51 {
		for g := lo; g <= 255; g += 51 {
			for b := lo; b <= 255; b += 51 {
				pix = append(pix, uint8(r), uint8(g), uint8(b))
			}
		}
	}
	src, err := tensor.FromPix(pix, []int{1, len(pix) / 3, 3}, tensor.RGB)
	require.NoError(t, err)

	lab, shape, err := k.Convert(src, RGB2LAB)
	require.NoError(t, err)
	labT, err := tensor.FromPix(lab, shape, tensor.LAB)
	require.NoError(t, err)

	back, _, err = k.Convert(labT, LAB2RGB)
	require.NoError(t, err)
	return pix, back
}

func TestColorful_RoundTripLAB(t *testing.T) {
	k := NewColorful()

	// Away from zero channels one LAB step moves sRGB by a few levels.
	pix, back := labRoundTrip(t, k, 51)
	assertNear(t, pix, back, 8)

	// Near zero the sRGB curve is steep and a single LAB step can move a
	// channel by up to about 17 levels, e.g. (0,204,153) comes back as
	// (17,204,153).
	pix, back = labRoundTrip(t, k, 0)
	assertNear(t, pix, back, 20)
}

func TestColorful_ParallelMatchesPerPixel(t *testing.T) {
	k := NewColorful()
	const w, h = 37, 29

	pix := make([]uint8, w*h*3)
	for i := range pix {
		pix[i] = uint8((i * 31) % 256)
	}
	src, err := tensor.FromPix(pix, []int{h, w, 3}, tensor.RGB)
	require.NoError(t, err)

	out, shape, err := k.Convert(src, RGB2HLS)
	require.NoError(t, err)
	require.Equal(t, []int{h, w, 3}, shape)

	for _, i := range []int{0, 1, w, w*h/2 + 3, w*h - 1} {
		one := pixel(t, tensor.RGB, pix[i*3], pix[i*3+1], pix[i*3+2])
		want, _, err := k.Convert(one, RGB2HLS)
		require.NoError(t, err)
		assert.Equal(t, want, out[i*3:i*3+3], "pixel %d", i)
	}
}

func TestColorful_Errors(t *testing.T) {
	k := NewColorful()

	_, _, err := k.Convert(nil, RGB2BGR)
	assert.Error(t, err)

	_, _, err = k.Convert(pixel(t, tensor.RGB, 1, 2, 3), Mode(999))
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, _, err = k.Convert(pixel(t, tensor.Gray, 1), RGB2BGR)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs 3 input channels")
}

func TestHueByte(t *testing.T) {
	assert.Equal(t, uint8(0), hueByte(0))
	assert.Equal(t, uint8(90), hueByte(180))
	assert.Equal(t, uint8(179), hueByte(358))
	assert.Equal(t, uint8(0), hueByte(359.5))
}

func TestHueDegrees(t *testing.T) {
	assert.Equal(t, 0.0, hueDegrees(0))
	assert.Equal(t, 358.0, hueDegrees(179))
	assert.Equal(t, 0.0, hueDegrees(180))
	assert.Equal(t, 150.0, hueDegrees(255))
}

func TestToByte(t *testing.T) {
	assert.Equal(t, uint8(0), toByte(-3))
	assert.Equal(t, uint8(255), toByte(300))
	assert.Equal(t, uint8(128), toByte(127.5))
}
