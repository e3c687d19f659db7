package server

import (
	"encoding/json"
	"fmt"

	"github.com/JPPhoto/image-fill-rotate-node/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_fill_rotate").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_fill_rotate":
		return s.handleImageFillRotate(args)
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
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

// === Fill and Rotate Handler ===

type imageFillRotateArgs struct {
	Path         string  `json:"path"`
	Angle        float64 `json:"angle"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	OutputPath   string  `json:"output_path"`
	PreviewScale float64 `json:"preview_scale"`
}

// fillRotateResult is the tool response: the rendered canvas plus the path
// it was saved to, if any.
type fillRotateResult struct {
	*imaging.RenderResult
	SavedPath string `json:"saved_path,omitempty"`
}

func (s *Server) handleImageFillRotate(args json.RawMessage) (interface{}, error) {
	var a imageFillRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 1024
	}
	if a.Height == 0 {
		a.Height = 1024
	}
	if a.PreviewScale == 0 {
		a.PreviewScale = 1.0
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	src, err := imaging.TensorFromImage(img)
	if err != nil {
		return nil, err
	}

	canvas, err := imaging.FillRotate(src, a.Width, a.Height, a.Angle)
	if err != nil {
		return nil, err
	}

	rendered, err := imaging.Render(canvas, a.PreviewScale)
	if err != nil {
		return nil, err
	}

	result := &fillRotateResult{RenderResult: rendered}
	if a.OutputPath != "" {
		if err := imaging.Save(canvas, a.OutputPath); err != nil {
			return nil, err
		}
		result.SavedPath = a.OutputPath
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

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}
