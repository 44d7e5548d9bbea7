package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/image-filter-mcp/internal/geometry"
)

// ErrPhysicalOverflow is returned when a calibrated distance is not finite.
var ErrPhysicalOverflow = errors.New("physical distance is not finite")

// PhysicalDistance is a distance calibrated by the pixel spacing.
type PhysicalDistance struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Spacing string  `json:"spacing"`
}

// DistanceResult contains measurement information
type DistanceResult struct {
	DistancePixels        float64           `json:"distance_pixels"`
	DeltaX                int               `json:"delta_x"`
	DeltaY                int               `json:"delta_y"`
	AngleDegrees          float64           `json:"angle_degrees"`
	DistancePercentWidth  float64           `json:"distance_percent_width"`
	DistancePercentHeight float64           `json:"distance_percent_height"`
	Physical              *PhysicalDistance `json:"physical,omitempty"`
}

// MeasureDistance calculates the distance between two points.
//
// When spacing is non-nil, the deltas are scaled by the column and row
// spacing and the physical distance is reported with unit. Spacing must then
// have at least two components.
func MeasureDistance(img image.Image, x1, y1, x2, y2 int, spacing *geometry.Spacing, unit string) (*DistanceResult, error) {
	bounds := img.Bounds()
	width := float64(bounds.Dx())
	height := float64(bounds.Dy())

	deltaX := x2 - x1
	deltaY := y2 - y1

	line := geometry.NewLine(
		geometry.Point2D{X: float64(x1), Y: float64(y1)},
		geometry.Point2D{X: float64(x2), Y: float64(y2)},
	)
	distance := line.Length()

	// 0 = horizontal right, 90 = down
	angle := math.Atan2(line.DeltaY(), line.DeltaX()) * 180 / math.Pi

	result := &DistanceResult{
		DistancePixels:        math.Round(distance*100) / 100,
		DeltaX:                deltaX,
		DeltaY:                deltaY,
		AngleDegrees:          math.Round(angle*10) / 10,
		DistancePercentWidth:  math.Round(distance/width*1000) / 10,
		DistancePercentHeight: math.Round(distance/height*1000) / 10,
	}

	if spacing != nil {
		s2d, err := spacing.Get2D()
		if err != nil {
			return nil, fmt.Errorf("cannot calibrate distance: %w", err)
		}
		physical := math.Hypot(line.DeltaX()*s2d.X, line.DeltaY()*s2d.Y)
		if math.IsInf(physical, 0) || math.IsNaN(physical) {
			return nil, fmt.Errorf("%w: spacing %s", ErrPhysicalOverflow, spacing)
		}
		result.Physical = &PhysicalDistance{
			Value:   math.Round(physical*100) / 100,
			Unit:    unit,
			Spacing: spacing.String(),
		}
	}

	return result, nil
}

// MeasureAngle builds a protractor from points and quantifies it.
// Fewer than three points give an empty quantification; more than three fail.
func MeasureAngle(points []geometry.Point2D, labels geometry.Translator) (*geometry.Quantification, error) {
	protractor, err := geometry.NewProtractor(points)
	if err != nil {
		return nil, err
	}
	q := protractor.Quantify(labels)
	return &q, nil
}
