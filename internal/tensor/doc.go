// Package tensor provides the image tensor type shared by the conversion layer.
//
// A Tensor is a row-major 8-bit pixel buffer with a shape of either
// (height, width) or (height, width, channels), plus a colorspace label that
// describes how the channels should be interpreted.
//
// # Channel Encoding
//
// Channel values follow the common 8-bit image conventions:
//   - RGB/BGR: 0-255 per channel, in the order named by the label
//   - Gray: 0-255 luma, stored as a 2-D tensor
//   - HSV/HLS: hue halved to fit a byte (0-179), other channels 0-255
//   - LAB: L scaled to 0-255, a and b offset by 128
//
// # Labels and Shapes
//
// The label is metadata only; it never changes pixel values. A tensor carrying a
// label is expected to have a matching shape (3 channels for rgb, bgr, hsv, hls and
// lab; 2-D or single channel for gray). Classify reports how well a tensor matches a
// given colorspace:
//
//   - Confirmed: the tensor's own label says so
//   - Plausible: the shape fits, but the label does not confirm it
//   - Rejected: the shape does not fit
//
// Shape alone cannot tell RGB from BGR, HSV, HLS or LAB. Callers that need
// certainty should require a Confirmed classification.
//
// # Thread Safety
//
// Tensors are not synchronized. Reading one tensor from several goroutines is safe;
// mutating it (SetColorspace, Set, writing Pix) while others read it is not.
package tensor
