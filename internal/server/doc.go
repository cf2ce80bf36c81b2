// Package server implements the MCP (Model Context Protocol) server for colorspace
// conversion tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorconv
// conversions through the MCP protocol, so MCP clients can load images, convert
// them between colorspaces, and inspect individual pixels in any colorspace.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - colorspace_list: Supported colorspaces, conversions and the active backend
//   - image_load: Load image and get metadata, including tensor shape and label
//   - image_dimensions: Get width and height
//   - image_convert: Convert a whole image or a region; write it or preview it
//   - image_sample_color: One pixel expressed in several colorspaces
//
// Images load as rgb tensors, or gray tensors for grayscale files. The "assume"
// argument relabels the loaded pixels, which is how a file holding raw LAB or HSV
// channels (for example one written by image_convert) is fed back in.
//
// # Label Policy
//
// By default a conversion accepts any image whose shape fits its source
// colorspace. Passing strict=true to image_convert, or configuring the server's
// converter with colorconv.RequireLabel, also requires the image label to match.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Logging
//
// The server logs through zap. Logs must go to stderr or a file since stdout
// carries the protocol stream; the default logger discards everything.
//
// # Usage
//
//	srv := server.New(server.WithLogger(logger))
//	if err := srv.Run(); err != nil {
//	    logger.Fatal("server stopped", zap.Error(err))
//	}
package server
