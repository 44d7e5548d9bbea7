package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNoSpacingValues is returned when spacing is created from a nil slice.
	ErrNoSpacingValues = errors.New("cannot create spacing with no values")

	// ErrEmptySpacingValues is returned when spacing is created from an empty slice.
	ErrEmptySpacingValues = errors.New("cannot create spacing with empty values")

	// ErrInvalidSpacingValue is returned for zero, NaN or infinite components.
	ErrInvalidSpacingValue = errors.New("cannot create spacing with non-numeric or zero values")

	// ErrSpacingNot2D is returned by Get2D when the spacing has fewer than two components.
	ErrSpacingNot2D = errors.New("spacing has fewer than two components")
)

// Spacing is the physical distance between adjacent sample centers along
// each axis, one component per dimension.
type Spacing struct {
	values []float64
}

// NewSpacing validates values and returns a spacing holding a copy of them.
func NewSpacing(values []float64) (*Spacing, error) {
	if values == nil {
		return nil, ErrNoSpacingValues
	}
	if len(values) == 0 {
		return nil, ErrEmptySpacingValues
	}
	for i, v := range values {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: component %d is %v", ErrInvalidSpacingValue, i, v)
		}
	}
	owned := make([]float64, len(values))
	copy(owned, values)
	return &Spacing{values: owned}, nil
}

// Get returns the i-th component. It panics if i is out of range.
func (s *Spacing) Get(i int) float64 { return s.values[i] }

// Len returns the number of components.
func (s *Spacing) Len() int { return len(s.values) }

// Values returns a copy of the components.
func (s *Spacing) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Equal reports whether other has the same components in the same order.
// Comparison is exact.
func (s *Spacing) Equal(other *Spacing) bool {
	if other == nil {
		return false
	}
	if len(s.values) != len(other.values) {
		return false
	}
	for i, v := range s.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// Get2D returns the column and row spacing as X and Y.
func (s *Spacing) Get2D() (Point2D, error) {
	if len(s.values) < 2 {
		return Point2D{}, fmt.Errorf("%w: length %d", ErrSpacingNot2D, len(s.values))
	}
	return Point2D{X: s.values[0], Y: s.values[1]}, nil
}

// String formats the spacing as "(v0,v1,...)".
func (s *Spacing) String() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
