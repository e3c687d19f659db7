package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Fill and Rotate
		{
			Name:        "image_fill_rotate",
			Description: "Fill a target canvas by tiling and rotating a source image. Every output pixel samples the source under an inverse rotation, wrapping toroidally so the source repeats as an infinite rotated tiling. Returns the canvas as base64 PNG; optionally writes it to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image file",
					},
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "Angle to rotate the source image, in degrees. Default 0",
						"default":     0.0,
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target canvas width in pixels (must be > 0). Default 1024",
						"default":     1024,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target canvas height in pixels (must be > 0). Default 1024",
						"default":     1024,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the canvas (.png, .jpg, or .jpeg)",
					},
					"preview_scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned base64 preview only (e.g., 0.25 for a thumbnail). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and channel layout. The channel count predicts the fill-rotate output layout.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
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
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate. Useful for checking tile seams in a generated canvas.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}
