// Package imaging moves images between disk and tensors for the MCP server.
//
// It decodes image files into tensors (see LoadTensor), writes tensors back out
// (see SaveTensor), and provides the small pixel-level helpers the server tools
// need: cropping a tensor, sampling one pixel across colorspaces, and rendering a
// preview PNG.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Supported Formats
//
// PNG, JPEG and GIF decoders come from the standard library; BMP, TIFF and WebP
// are registered from golang.org/x/image. Saving supports the formats handled by
// github.com/disintegration/imaging (png, jpg, gif, bmp, tif).
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The tensor helpers never
// modify their input and always return fresh tensors.
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid redundant
// disk reads. Large images may consume significant memory when cached.
// Consider using Evict() or Clear() to manage memory for long-running processes.
package imaging
