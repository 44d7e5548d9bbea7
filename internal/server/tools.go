package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool that reads an image file.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file (PNG, JPEG, GIF, TIFF or BMP)",
	}
}

// channelProperty is the schema of the optional sampling channel.
func channelProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"luma", "lightness"},
		"description": "How pixels are reduced to one sample: luma (0-255) or CIE lightness (0-100). Defaults to the server configuration.",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
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
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_value_range",
			Description: "Sample an image into a single channel and return the minimum and maximum sample values. Useful for choosing threshold bounds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty(),
					"channel": channelProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Filters
		{
			Name:        "image_filter",
			Description: "Apply a filter to an image and return the result as base64-encoded grayscale PNG. threshold keeps samples within [min, max] and replaces the rest with the image minimum; sharpen enhances edges; sobel returns the gradient magnitude.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"filter": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"threshold", "sharpen", "sobel"},
						"description": "Filter to apply",
					},
					"min": map[string]interface{}{
						"type":        "number",
						"description": "Threshold lower bound (inclusive). Only used by threshold.",
					},
					"max": map[string]interface{}{
						"type":        "number",
						"description": "Threshold upper bound (inclusive). Only used by threshold.",
					},
					"channel": channelProperty(),
					"normalize": map[string]interface{}{
						"type":        "boolean",
						"description": "Stretch the output value range to 0-255 instead of clamping. Recommended for sobel.",
						"default":     false,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "filter"},
			},
		},

		// Measurement Operations
		{
			Name:        "image_measure_distance",
			Description: "Measure the distance between two points in pixels. With a pixel spacing (argument or server configuration) the physical distance is also reported.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x1":   map[string]interface{}{"type": "integer", "description": "Start X"},
					"y1":   map[string]interface{}{"type": "integer", "description": "Start Y"},
					"x2":   map[string]interface{}{"type": "integer", "description": "End X"},
					"y2":   map[string]interface{}{"type": "integer", "description": "End Y"},
					"spacing": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "Pixel spacing in millimetres: [column, row]. Values must be non-zero.",
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_measure_angle",
			Description: "Measure the angle at the second of three points (0-180 degrees). With fewer than three points no angle is returned; more than three is an error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": map[string]interface{}{
						"type":     "array",
						"maxItems": 3,
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "number"},
								"y": map[string]interface{}{"type": "number"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points in order: arm end, vertex, arm end",
					},
				},
				"required": []string{"points"},
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
