// Package kernel performs the pixel-level colorspace transforms.
//
// The conversion layer treats a Kernel as an opaque, correct
// convert(pixels, mode) -> pixels routine. Two backends exist:
//
//   - colorful: pure Go, built on go-colorful, always available
//   - opencv: cv::cvtColor via gocv, built only with `-tags opencv`
//
// Both follow the 8-bit encodings described in package tensor, so their outputs
// agree up to rounding.
package kernel
