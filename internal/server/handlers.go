package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
	"github.com/ironsheep/image-filter-mcp/internal/geometry"
	"github.com/ironsheep/image-filter-mcp/internal/i18n"
	"github.com/ironsheep/image-filter-mcp/internal/imaging"
	"github.com/ironsheep/image-filter-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_filter").
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
// Tool execution errors return a JSON-RPC error response with code -32000;
// a result that cannot be encoded returns -32603.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug() {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return s.toolResponse(req.ID, params.Name, result)
}

// toolResponse wraps a tool result in MCP text content.
func (s *Server) toolResponse(id interface{}, name string, result interface{}) *MCPResponse {
	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Printf("Tool %s result could not be encoded: %v", name, err)
		return s.errorResponse(id, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": string(text),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_value_range":
		return s.handleImageValueRange(args)

	// Filters
	case "image_filter":
		return s.handleImageFilter(args)

	// Measurement Operations
	case "image_measure_distance":
		return s.handleImageMeasureDistance(args)
	case "image_measure_angle":
		return s.handleImageMeasureAngle(args)

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

// channel resolves a requested channel name, falling back to the configured default.
func (s *Server) channel(name string) (raster.Channel, error) {
	if name == "" {
		name = s.cfg.Channel
	}
	return raster.ParseChannel(name)
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

type imageValueRangeArgs struct {
	Path    string `json:"path"`
	Channel string `json:"channel"`
}

func (s *Server) handleImageValueRange(args json.RawMessage) (interface{}, error) {
	var a imageValueRangeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ch, err := s.channel(a.Channel)
	if err != nil {
		return nil, err
	}
	return imaging.GetValueRange(s.cache, a.Path, ch)
}

// === Filter Handlers ===

type imageFilterArgs struct {
	Path      string   `json:"path"`
	Filter    string   `json:"filter"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Channel   string   `json:"channel"`
	Normalize bool     `json:"normalize"`
	Scale     float64  `json:"scale"`
}

func (s *Server) handleImageFilter(args json.RawMessage) (interface{}, error) {
	var a imageFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	params := filter.Params{Min: s.cfg.Threshold.Min, Max: s.cfg.Threshold.Max}
	if a.Min != nil {
		params.Min = *a.Min
	}
	if a.Max != nil {
		params.Max = *a.Max
	}
	f, err := filter.ByName(a.Filter, params)
	if err != nil {
		return nil, err
	}

	ch, err := s.channel(a.Channel)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.LoadRaster(a.Path, ch)
	if err != nil {
		return nil, err
	}

	stage := filter.NewStage(f)
	result, err := imaging.ApplyFilter(src, stage, imaging.EncodeOptions{
		Normalize: a.Normalize,
		Scale:     a.Scale,
	})
	if err != nil {
		return nil, err
	}
	result.Label = s.labels.Translate(i18n.FilterKey(stage.Name()))
	return result, nil
}

// === Measurement Operation Handlers ===

type imageMeasureDistanceArgs struct {
	Path    string    `json:"path"`
	X1      int       `json:"x1"`
	Y1      int       `json:"y1"`
	X2      int       `json:"x2"`
	Y2      int       `json:"y2"`
	Spacing []float64 `json:"spacing,omitempty"`
}

func (s *Server) handleImageMeasureDistance(args json.RawMessage) (interface{}, error) {
	var a imageMeasureDistanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	values := a.Spacing
	if len(values) == 0 {
		values = s.cfg.Spacing
	}
	var spacing *geometry.Spacing
	if len(values) > 0 {
		spacing, err = geometry.NewSpacing(values)
		if err != nil {
			return nil, err
		}
	}
	return imaging.MeasureDistance(img, a.X1, a.Y1, a.X2, a.Y2, spacing, s.labels.Translate(i18n.UnitMillimetre))
}

type imageMeasureAngleArgs struct {
	Points []geometry.Point2D `json:"points"`
}

func (s *Server) handleImageMeasureAngle(args json.RawMessage) (interface{}, error) {
	var a imageMeasureAngleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.MeasureAngle(a.Points, s.labels)
}
