// Package geometry provides the measurement value objects used alongside
// the filters: 2D points and lines, pixel spacing, and the protractor.
//
// Spacing and Protractor are immutable after construction. Constructors copy
// their input and validate it, returning one of the sentinel errors of this
// package so callers can tell which rule was violated.
//
// Angles are expressed in degrees. Coordinates follow the image convention
// used across the server: X increases rightward, Y increases downward.
package geometry
