package raster

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyImage is returned when an image is created with a non-positive dimension.
	ErrEmptyImage = errors.New("image dimensions must be positive")

	// ErrSampleCount is returned when the sample slice does not fill the grid.
	ErrSampleCount = errors.New("sample count does not match image dimensions")

	// ErrGeometryMismatch is returned by Compose for images of different sizes.
	ErrGeometryMismatch = errors.New("image dimensions do not match")
)

// Range holds the lower and upper bounds of the samples in an image.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Kernel is a 3x3 convolution kernel in row-major order.
type Kernel [9]float64

// Sum returns the sum of the kernel weights.
func (k Kernel) Sum() float64 {
	var s float64
	for _, w := range k {
		s += w
	}
	return s
}

// Image is an immutable 2D grid of samples.
type Image struct {
	width   int
	height  int
	samples []float64
	rng     Range
}

// New creates an image from row-major samples. The samples are copied.
func New(width, height int, samples []float64) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSampleCount, len(samples), width*height)
	}
	owned := make([]float64, len(samples))
	copy(owned, samples)
	return newOwned(width, height, owned), nil
}

// NewUniform creates an image where every sample equals value.
func NewUniform(width, height int, value float64) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	samples := make([]float64, width*height)
	for i := range samples {
		samples[i] = value
	}
	return newOwned(width, height, samples), nil
}

// newOwned wraps samples without copying; callers must not keep a reference.
func newOwned(width, height int, samples []float64) *Image {
	rng := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range samples {
		if v < rng.Min {
			rng.Min = v
		}
		if v > rng.Max {
			rng.Max = v
		}
	}
	return &Image{
		width:   width,
		height:  height,
		samples: samples,
		rng:     rng,
	}
}

// Width returns the number of columns.
func (im *Image) Width() int { return im.width }

// Height returns the number of rows.
func (im *Image) Height() int { return im.height }

// Len returns the number of samples.
func (im *Image) Len() int { return len(im.samples) }

// At returns the sample at (x, y). Coordinates outside the grid panic.
func (im *Image) At(x, y int) float64 {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		panic(fmt.Sprintf("raster: (%d,%d) outside %dx%d image", x, y, im.width, im.height))
	}
	return im.samples[y*im.width+x]
}

// Samples returns a copy of the row-major samples.
func (im *Image) Samples() []float64 {
	out := make([]float64, len(im.samples))
	copy(out, im.samples)
	return out
}

// ValueRange returns the minimum and maximum sample values.
func (im *Image) ValueRange() Range { return im.rng }

// SameGeometry reports whether both images have the same dimensions.
func (im *Image) SameGeometry(other *Image) bool {
	return other != nil && im.width == other.width && im.height == other.height
}

// Transform applies fn to every sample and returns the result as a new image.
func (im *Image) Transform(fn func(v float64) float64) *Image {
	out := make([]float64, len(im.samples))
	for i, v := range im.samples {
		out[i] = fn(v)
	}
	return newOwned(im.width, im.height, out)
}

// Convolve3x3 applies kernel to every sample's 3x3 neighbourhood.
//
// Kernel index 0 weights the neighbour at (x-1, y-1) and index 8 the one at
// (x+1, y+1); the kernel is not flipped. Neighbours outside the grid are
// replaced by the nearest edge sample.
func (im *Image) Convolve3x3(kernel Kernel) *Image {
	out := make([]float64, len(im.samples))
	for y := 0; y < im.height; y++ {
		for x := 0; x < im.width; x++ {
			var sum float64
			for ky := -1; ky <= 1; ky++ {
				py := clamp(y+ky, 0, im.height-1)
				for kx := -1; kx <= 1; kx++ {
					px := clamp(x+kx, 0, im.width-1)
					sum += im.samples[py*im.width+px] * kernel[(ky+1)*3+(kx+1)]
				}
			}
			out[y*im.width+x] = sum
		}
	}
	return newOwned(im.width, im.height, out)
}

// Compose combines two images of the same size sample by sample.
func (im *Image) Compose(other *Image, fn func(a, b float64) float64) (*Image, error) {
	if !im.SameGeometry(other) {
		if other == nil {
			return nil, fmt.Errorf("%w: other image is nil", ErrGeometryMismatch)
		}
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrGeometryMismatch, im.width, im.height, other.width, other.height)
	}
	out := make([]float64, len(im.samples))
	for i, a := range im.samples {
		out[i] = fn(a, other.samples[i])
	}
	return newOwned(im.width, im.height, out), nil
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
