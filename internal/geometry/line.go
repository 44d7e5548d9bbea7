package geometry

import "math"

// Point2D is a point in image coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is a directed segment from Begin to End.
type Line struct {
	Begin Point2D `json:"begin"`
	End   Point2D `json:"end"`
}

// NewLine creates the directed segment begin -> end.
func NewLine(begin, end Point2D) Line {
	return Line{Begin: begin, End: end}
}

// DeltaX returns End.X - Begin.X.
func (l Line) DeltaX() float64 { return l.End.X - l.Begin.X }

// DeltaY returns End.Y - Begin.Y.
func (l Line) DeltaY() float64 { return l.End.Y - l.Begin.Y }

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 { return math.Hypot(l.DeltaX(), l.DeltaY()) }

// AngleBetween returns the angle in degrees, in [0, 360), formed at the joint
// of l0 followed by l1. Continuing straight on gives 180.
func AngleBetween(l0, l1 Line) float64 {
	dx0, dy0 := l0.DeltaX(), l0.DeltaY()
	dx1, dy1 := l1.DeltaX(), l1.DeltaY()
	dot := dx0*dx1 + dy0*dy1
	cross := dx0*dy1 - dy0*dx1
	return 180 - math.Atan2(cross, dot)*180/math.Pi
}
