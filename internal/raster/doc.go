// Package raster provides the numeric sample grid that filters operate on.
//
// An Image is a rectangular grid of float64 samples with a value range
// computed at construction. Every operation on an Image is pure: Transform,
// Convolve3x3 and Compose return a brand-new Image and never touch the
// receiver, so an Image can be shared freely between goroutines.
//
// # Coordinate System
//
// Samples are stored row-major. (0,0) is the top-left sample, X increases
// rightward and Y increases downward, the same convention as the imaging
// package.
//
// # Boundary Policy
//
// Convolve3x3 uses edge replication: a neighbour that falls outside the grid
// takes the value of the nearest edge sample. A constant image is therefore a
// fixed point of every kernel whose weights sum to one, border included, and
// every zero-sum kernel maps it to zero everywhere.
//
// # Conversion
//
// FromImage samples a standard image.Image into a grid using one of the
// supported channels (see Channel). ToGray renders a grid back to an 8-bit
// grayscale image for encoding.
package raster
