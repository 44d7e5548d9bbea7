package geometry

import (
	"errors"
	"fmt"
)

// ErrTooManyPoints is returned when a protractor is created from more than three points.
var ErrTooManyPoints = errors.New("too many points for a protractor")

// ProtractorPoints is the number of points needed to measure an angle.
const ProtractorPoints = 3

// UnitDegreeKey is the label key of the angle unit.
const UnitDegreeKey = "unit.degree"

// Translator looks up a display label by key.
type Translator interface {
	Translate(key string) string
}

// Measurement is a value with its unit label.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Quantification holds the measurements derived from a shape. Angle is nil
// when the shape is incomplete.
type Quantification struct {
	Angle *Measurement `json:"angle,omitempty"`
}

// Protractor measures the angle formed by up to three points: the angle at
// the second point between the segments to the first and third.
type Protractor struct {
	points []Point2D
}

// NewProtractor creates a protractor from zero to three points.
func NewProtractor(points []Point2D) (*Protractor, error) {
	if len(points) > ProtractorPoints {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyPoints, len(points), ProtractorPoints)
	}
	owned := make([]Point2D, len(points))
	copy(owned, points)
	return &Protractor{points: owned}, nil
}

// Points returns a copy of the point list.
func (p *Protractor) Points() []Point2D {
	out := make([]Point2D, len(p.points))
	copy(out, p.points)
	return out
}

// Point returns the i-th point. It panics if i is out of range.
func (p *Protractor) Point(i int) Point2D { return p.points[i] }

// Len returns the number of points.
func (p *Protractor) Len() int { return len(p.points) }

// Quantify measures the angle in degrees, folded into [0, 180].
// With fewer than three points the result has no angle. A nil labels
// reports the raw key as the unit.
func (p *Protractor) Quantify(labels Translator) Quantification {
	var q Quantification
	if len(p.points) != ProtractorPoints {
		return q
	}
	line0 := NewLine(p.points[0], p.points[1])
	line1 := NewLine(p.points[1], p.points[2])
	angle := AngleBetween(line0, line1)
	if angle > 180 {
		angle = 360 - angle
	}
	unit := UnitDegreeKey
	if labels != nil {
		unit = labels.Translate(UnitDegreeKey)
	}
	q.Angle = &Measurement{Value: angle, Unit: unit}
	return q
}
