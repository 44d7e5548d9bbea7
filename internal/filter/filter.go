package filter

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/image-filter-mcp/internal/raster"
)

var (
	// ErrNoSource is returned when a filter is updated without a source image.
	ErrNoSource = errors.New("filter has no source image")

	// ErrUnknownFilter is returned by ByName for unsupported filter names.
	ErrUnknownFilter = errors.New("unknown filter")
)

// Filter names.
const (
	NameThreshold = "Threshold"
	NameSharpen   = "Sharpen"
	NameSobel     = "Sobel"
)

// Filter transforms a source image into a new image.
type Filter interface {
	// Name identifies the filter for callers and logs.
	Name() string

	// Update computes the filtered image. src is not modified.
	Update(src *raster.Image) (*raster.Image, error)
}

// Params holds the optional parameters used by ByName.
type Params struct {
	Min float64
	Max float64
}

// ByName creates a filter from its case-insensitive name.
// Params are only used by the threshold filter.
func ByName(name string, p Params) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "threshold":
		return NewThreshold(p.Min, p.Max), nil
	case "sharpen":
		return Sharpen{}, nil
	case "sobel":
		return Sobel{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: threshold, sharpen, sobel)", ErrUnknownFilter, name)
	}
}

// Threshold keeps samples inside [Min, Max] and replaces every other sample
// with the minimum of the source image.
//
// Min and Max are not ordered: with Min > Max every sample becomes background.
type Threshold struct {
	min float64
	max float64
}

// NewThreshold creates a threshold filter with the given bounds.
func NewThreshold(min, max float64) *Threshold {
	return &Threshold{min: min, max: max}
}

// Min returns the lower bound.
func (t *Threshold) Min() float64 { return t.min }

// SetMin sets the lower bound.
func (t *Threshold) SetMin(v float64) { t.min = v }

// Max returns the upper bound.
func (t *Threshold) Max() float64 { return t.max }

// SetMax sets the upper bound.
func (t *Threshold) SetMax(v float64) { t.max = v }

// Name returns "Threshold".
func (t *Threshold) Name() string { return NameThreshold }

// Update applies the threshold to src.
func (t *Threshold) Update(src *raster.Image) (*raster.Image, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	background := src.ValueRange().Min
	keep := raster.Range{Min: t.min, Max: t.max}
	return src.Transform(func(v float64) float64 {
		if !keep.Contains(v) {
			return background
		}
		return v
	}), nil
}

// SharpenKernel is the 3x3 sharpening kernel. Its weights sum to one.
var SharpenKernel = raster.Kernel{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// Sharpen enhances edges with SharpenKernel.
type Sharpen struct{}

// Name returns "Sharpen".
func (Sharpen) Name() string { return NameSharpen }

// Update convolves src with SharpenKernel.
func (Sharpen) Update(src *raster.Image) (*raster.Image, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	return src.Convolve3x3(SharpenKernel), nil
}

// Sobel gradient kernels.
var (
	SobelXKernel = raster.Kernel{
		1, 0, -1,
		2, 0, -2,
		1, 0, -1,
	}
	SobelYKernel = raster.Kernel{
		1, 2, 1,
		0, 0, 0,
		-1, -2, -1,
	}
)

// Sobel computes the gradient magnitude of an image.
type Sobel struct{}

// Name returns "Sobel".
func (Sobel) Name() string { return NameSobel }

// Update returns sqrt(Gx² + Gy²) for every sample of src.
func (Sobel) Update(src *raster.Image) (*raster.Image, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	gradX := src.Convolve3x3(SobelXKernel)
	gradY := src.Convolve3x3(SobelYKernel)
	out, err := gradX.Compose(gradY, func(x, y float64) float64 {
		return math.Sqrt(x*x + y*y)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compose gradients: %w", err)
	}
	return out, nil
}
