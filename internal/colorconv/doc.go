// Package colorconv converts image tensors between colorspaces.
//
// Every conversion follows the same three steps:
//
//  1. Validate: classify the input against the source colorspace (see
//     tensor.Classify). Inputs whose shape cannot hold the source colorspace fail
//     with a *ShapeError before any pixel work happens. A label never rescues a
//     bad shape: a 2-D tensor labeled rgb is still rejected.
//  2. Delegate: run the kernel with the conversion's mode.
//  3. Tag: wrap the kernel output in a new tensor labeled with the target
//     colorspace.
//
// The package-level functions (RGB2BGR, LAB2HSV, ...) use a shared Converter with
// the pure-Go kernel and the AcceptPlausible policy. Build a Converter with New to
// pick another kernel, require explicit labels, or attach a logger.
//
// # Known Weakness
//
// RGB, BGR, HSV, HLS and LAB images are all three-channel, so an unlabeled tensor
// cannot be checked for the right interpretation. Under AcceptPlausible an HSV
// tensor passed to RGB2BGR converts without error; a mismatched label is only
// logged. Use RequireLabel where that matters.
package colorconv
