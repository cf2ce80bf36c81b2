//go:build opencv

package kernel

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// OpenCVName is the registry name of the OpenCV backend.
const OpenCVName = "opencv"

// Codes applied in order. Modes OpenCV lacks (LAB2GRAY, LAB2HSV, LAB2HLS)
// chain through RGB.
var opencvCodes = map[Mode][]gocv.ColorConversionCode{
	RGB2BGR:  {gocv.ColorBGRToRGB},
	RGB2GRAY: {gocv.ColorRGBToGray},
	RGB2HSV:  {gocv.ColorRGBToHSV},
	RGB2LAB:  {gocv.ColorRGBToLab},
	RGB2HLS:  {gocv.ColorRGBToHLS},
	LAB2RGB:  {gocv.ColorLabToRGB},
	LAB2BGR:  {gocv.ColorLabToBGR},
	LAB2GRAY: {gocv.ColorLabToRGB, gocv.ColorRGBToGray},
	LAB2HSV:  {gocv.ColorLabToRGB, gocv.ColorRGBToHSV},
	LAB2HLS:  {gocv.ColorLabToRGB, gocv.ColorRGBToHLS},
	BGR2RGB:  {gocv.ColorBGRToRGB},
	BGR2GRAY: {gocv.ColorBGRToGray},
	BGR2HSV:  {gocv.ColorBGRToHSV},
	BGR2LAB:  {gocv.ColorBGRToLab},
	BGR2HLS:  {gocv.ColorBGRToHLS},
	HSV2RGB:  {gocv.ColorHSVToRGB},
	HSV2BGR:  {gocv.ColorHSVToBGR},
	HLS2RGB:  {gocv.ColorHLSToRGB},
	HLS2BGR:  {gocv.ColorHLSToBGR},
	GRAY2RGB: {gocv.ColorGrayToBGR},
	GRAY2BGR: {gocv.ColorGrayToBGR},
}

func init() {
	register(OpenCVName, func() (Kernel, error) { return NewOpenCV(), nil })
}

// OpenCV delegates to cv::cvtColor through gocv. It needs OpenCV 4 installed
// and is only built with the opencv tag.
type OpenCV struct{}

// NewOpenCV returns the OpenCV backend.
func NewOpenCV() *OpenCV {
	return &OpenCV{}
}

func (k *OpenCV) Name() string { return OpenCVName }

func (k *OpenCV) Convert(src *tensor.Tensor, mode Mode) ([]uint8, []int, error) {
	if err := checkInput(src, mode); err != nil {
		return nil, nil, err
	}

	matType := gocv.MatTypeCV8UC3
	if src.Channels() == 1 {
		matType = gocv.MatTypeCV8UC1
	}
	cur, err := gocv.NewMatFromBytes(src.Height(), src.Width(), matType, src.Pix())
	if err != nil {
		return nil, nil, fmt.Errorf("kernel: wrap input: %w", err)
	}
	defer func() { cur.Close() }()

	for _, code := range opencvCodes[mode] {
		dst := gocv.NewMat()
		gocv.CvtColor(cur, &dst, code)
		cur.Close()
		cur = dst
	}

	// ToBytes copies out of the Mat, so the result outlives cur.
	return cur.ToBytes(), outputShape(src.Height(), src.Width(), mode.Target()), nil
}
