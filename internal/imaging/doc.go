// Package imaging loads image files for the filter server and encodes
// filter results.
//
// Files are decoded once and kept in an ImageCache together with their
// sampled raster grids, so repeated filter calls on the same file skip both
// disk I/O and sampling. Supported formats are PNG, JPEG, GIF, TIFF and BMP.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Decoded images and raster
// grids are never modified after they enter the cache.
//
// # Physical Units
//
// MeasureDistance reports pixel distances and, when given a pixel spacing,
// the calibrated physical distance. Spacing components are column then row,
// matching geometry.Spacing.Get2D.
//
// # Performance Considerations
//
// Large images may consume significant memory when cached, twice over once a
// raster grid has been sampled. Use Evict() or Clear() to manage memory for
// long-running processes.
package imaging
