package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/colorconv-mcp/internal/colorconv"
	"github.com/ironsheep/colorconv-mcp/internal/imaging"
	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Info("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the image as a tensor and applies any label override
//  4. Calls the appropriate imaging/colorconv function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "colorspace_list":
		return s.handleColorspaceList(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Operations
	case "image_convert":
		return s.handleImageConvert(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments. Missing arguments decode as an empty
// object so tools without required parameters can be called bare.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Colorspace Listing ===

// ColorspaceInfo describes one colorspace label.
type ColorspaceInfo struct {
	Name     string `json:"name"`
	Channels int    `json:"channels"`
	NDim     int    `json:"ndim"`
}

// ConversionInfo describes one available conversion.
type ConversionInfo struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// ColorspaceListResult is returned by the colorspace_list tool.
type ColorspaceListResult struct {
	Colorspaces []ColorspaceInfo `json:"colorspaces"`
	Conversions []ConversionInfo `json:"conversions"`
	Backend     string           `json:"backend"`
	Policy      string           `json:"policy"`
}

func (s *Server) handleColorspaceList(args json.RawMessage) (interface{}, error) {
	var a struct{}
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	result := &ColorspaceListResult{
		Backend: s.conv.Kernel().Name(),
		Policy:  s.conv.Policy().String(),
	}
	for _, cs := range tensor.Colorspaces() {
		result.Colorspaces = append(result.Colorspaces, ColorspaceInfo{
			Name:     cs.String(),
			Channels: cs.Channels(),
			NDim:     tensor.ExpectedDims(cs),
		})
	}
	for _, conv := range colorconv.Conversions() {
		result.Conversions = append(result.Conversions, ConversionInfo{
			Name:   conv.Name,
			Source: conv.Source.String(),
			Target: conv.Target.String(),
		})
	}
	return result, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// loadTensor loads path as a tensor and relabels it when assume is set.
func (s *Server) loadTensor(path, assume string) (*tensor.Tensor, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	t, err := imaging.LoadTensor(s.cache, path)
	if err != nil {
		return nil, err
	}
	if assume != "" {
		cs, err := tensor.ParseColorspace(assume)
		if err != nil {
			return nil, err
		}
		t.SetColorspace(cs)
	}
	return t, nil
}

// === Conversion Handlers ===

type imageConvertArgs struct {
	Path       string          `json:"path"`
	Conversion string          `json:"conversion"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Assume     string          `json:"assume"`
	Strict     *bool           `json:"strict"`
	Region     *imaging.Region `json:"region"`
	OutputPath string          `json:"output_path"`
	Scale      float64         `json:"scale"`
}

// ConvertResult is returned by the image_convert tool.
type ConvertResult struct {
	Conversion string `json:"conversion"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Shape      []int  `json:"shape"`

	// OutputPath is set when the result was written to disk.
	OutputPath string `json:"output_path,omitempty"`

	// Preview holds the rendered result when no output path was given.
	Preview *imaging.PreviewResult `json:"preview,omitempty"`
}

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	var a imageConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	t, err := s.loadTensor(a.Path, a.Assume)
	if err != nil {
		return nil, err
	}
	if a.Region != nil {
		if t, err = imaging.CropTensor(t, *a.Region); err != nil {
			return nil, err
		}
	}

	conv, err := colorconv.Resolve(a.Conversion, a.From, a.To, t.Colorspace())
	if err != nil {
		return nil, err
	}

	out, err := s.converter(a.Strict).Convert(t, conv)
	if err != nil {
		return nil, err
	}

	result := &ConvertResult{
		Conversion: conv.Name,
		Source:     conv.Source.String(),
		Target:     conv.Target.String(),
		Shape:      out.Shape(),
	}
	if a.OutputPath != "" {
		if err := imaging.SaveTensor(out, a.OutputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		result.OutputPath = a.OutputPath
		return result, nil
	}

	if result.Preview, err = imaging.Preview(out, a.Scale); err != nil {
		return nil, err
	}
	return result, nil
}

// converter returns the server's converter, or a copy with the requested label
// policy when strict overrides it.
func (s *Server) converter(strict *bool) *colorconv.Converter {
	if strict == nil {
		return s.conv
	}
	policy := colorconv.AcceptPlausible
	if *strict {
		policy = colorconv.RequireLabel
	}
	if policy == s.conv.Policy() {
		return s.conv
	}
	return colorconv.New(
		colorconv.WithKernel(s.conv.Kernel()),
		colorconv.WithPolicy(policy),
		colorconv.WithLogger(s.logger),
	)
}

type imageSampleColorArgs struct {
	Path        string   `json:"path"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Assume      string   `json:"assume"`
	Colorspaces []string `json:"colorspaces"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	t, err := s.loadTensor(a.Path, a.Assume)
	if err != nil {
		return nil, err
	}

	var spaces []tensor.Colorspace
	if len(a.Colorspaces) == 0 {
		spaces = reachable(t.Colorspace())
	}
	for _, name := range a.Colorspaces {
		cs, err := tensor.ParseColorspace(name)
		if err != nil {
			return nil, err
		}
		spaces = append(spaces, cs)
	}

	return imaging.SampleColorspaces(s.conv, t, a.X, a.Y, spaces)
}

// reachable lists the colorspaces src converts to directly.
func reachable(src tensor.Colorspace) []tensor.Colorspace {
	var out []tensor.Colorspace
	for _, cs := range tensor.Colorspaces() {
		if _, err := colorconv.Find(src, cs); err == nil {
			out = append(out, cs)
		}
	}
	return out
}
