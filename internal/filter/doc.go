// Package filter implements the image filters applied by the server.
//
// Every filter satisfies the Filter interface: it has a constant name and an
// Update method that computes a brand-new raster.Image from a source image.
// Update never modifies the source and keeps the source geometry.
//
// Available filters:
//
//   - Threshold: samples outside [Min, Max] are replaced by the source minimum
//   - Sharpen: 3x3 edge enhancement kernel (weights sum to one)
//   - Sobel: gradient magnitude sqrt(Gx² + Gy²) from two 3x3 kernels
//
// Filters take their source as an argument and are safe for concurrent use
// (Threshold only while its bounds are not being changed). Stage wraps a
// filter as a long-lived pipeline node that remembers its source image.
package filter
