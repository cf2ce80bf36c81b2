package server

import (
	"github.com/ironsheep/colorconv-mcp/internal/colorconv"
	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func colorspaceNames() []string {
	var names []string
	for _, cs := range tensor.Colorspaces() {
		names = append(names, cs.String())
	}
	return names
}

func conversionNames() []string {
	var names []string
	for _, conv := range colorconv.Conversions() {
		names = append(names, conv.Name)
	}
	return names
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	spaces := colorspaceNames()

	return []Tool{
		{
			Name:        "colorspace_list",
			Description: "List the supported colorspaces, the available conversions between them, and the active conversion backend.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, tensor shape and colorspace label.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name: "image_convert",
			Description: "Convert an image to another colorspace. Select the conversion by name (e.g. rgb2hsv) or by from/to. " +
				"The result is written to output_path, or returned as a base64-encoded PNG preview when no output path is given. " +
				"Non-display colorspaces (hsv, hls, lab) are rendered with their raw channel values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"conversion": map[string]interface{}{
						"type":        "string",
						"enum":        conversionNames(),
						"description": "Conversion name. Takes precedence over from/to",
					},
					"from": map[string]interface{}{
						"type":        "string",
						"enum":        spaces,
						"description": "Source colorspace. Defaults to the image's label (rgb, or gray for grayscale files)",
					},
					"to": map[string]interface{}{
						"type":        "string",
						"enum":        spaces,
						"description": "Target colorspace",
					},
					"assume": map[string]interface{}{
						"type":        "string",
						"enum":        spaces,
						"description": "Label to attach to the loaded pixels, e.g. lab for a file holding raw LAB channels",
					},
					"strict": map[string]interface{}{
						"type":        "boolean",
						"description": "Require the image label to match the conversion source instead of accepting any image of the right shape",
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to convert; x2 and y2 are exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write the result to; the format follows the extension",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional preview scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the channel values of one pixel in its own colorspace and in each requested colorspace.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
					"assume": map[string]interface{}{
						"type":        "string",
						"enum":        spaces,
						"description": "Label to attach to the loaded pixels",
					},
					"colorspaces": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string", "enum": spaces},
						"description": "Colorspaces to report. Defaults to every colorspace directly reachable from the image's label",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
