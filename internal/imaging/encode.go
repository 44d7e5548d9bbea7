package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
	"github.com/ironsheep/image-filter-mcp/internal/raster"
)

// EncodeOptions controls how a raster grid is rendered to PNG.
type EncodeOptions struct {
	// Normalize stretches the value range onto 0-255 instead of clamping.
	Normalize bool

	// Scale resizes the output (e.g. 2.0 doubles it). Values <= 0 or 1 keep the size.
	Scale float64
}

// FilterResult contains a filtered image encoded as base64 PNG.
type FilterResult struct {
	// Filter is the name of the applied filter.
	Filter string `json:"filter"`

	// Label is the localized filter name, if the caller set one.
	Label string `json:"label,omitempty"`

	// Width and Height of the encoded image in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// SourceRange is the value range of the sampled input.
	SourceRange raster.Range `json:"source_range"`

	// ValueRange is the value range of the filter output, before encoding.
	ValueRange raster.Range `json:"value_range"`

	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// ApplyFilter runs stage on src and encodes the output.
func ApplyFilter(src *raster.Image, stage *filter.Stage, opts EncodeOptions) (*FilterResult, error) {
	out, err := stage.Run(src)
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s filter: %w", stage.Name(), err)
	}

	encoded, bounds, err := EncodePNG(out, opts)
	if err != nil {
		return nil, err
	}

	return &FilterResult{
		Filter:      stage.Name(),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		SourceRange: src.ValueRange(),
		ValueRange:  out.ValueRange(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// EncodePNG renders grid as grayscale PNG and returns it base64 encoded
// together with the bounds of the encoded image.
func EncodePNG(grid *raster.Image, opts EncodeOptions) (string, image.Rectangle, error) {
	var img image.Image = grid.ToGray(opts.Normalize)

	if opts.Scale > 0 && opts.Scale != 1.0 {
		newWidth := int(float64(grid.Width()) * opts.Scale)
		newHeight := int(float64(grid.Height()) * opts.Scale)
		if newWidth < 1 {
			newWidth = 1
		}
		if newHeight < 1 {
			newHeight = 1
		}
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", image.Rectangle{}, fmt.Errorf("failed to encode filtered image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), img.Bounds(), nil
}
