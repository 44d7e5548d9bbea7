package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder

	"github.com/ironsheep/image-filter-mcp/internal/raster"
)

// rasterKey identifies a sampled grid in the cache.
type rasterKey struct {
	path    string
	channel raster.Channel
}

// ImageCache provides thread-safe caching of loaded images and their sampled
// raster grids.
//
// The cache stores decoded image.Image objects keyed by their file path, and
// raster.Image grids keyed by path and channel. Once loaded, subsequent calls
// for the same key return the cached value without disk I/O.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	grid, err := cache.LoadRaster("/path/to/image.png", raster.ChannelLuma)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := filter.Sobel{}.Update(grid)
type ImageCache struct {
	mu      sync.RWMutex
	images  map[string]image.Image
	rasters map[rasterKey]*raster.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images:  make(map[string]image.Image),
		rasters: make(map[rasterKey]*raster.Image),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a valid PNG, JPEG, GIF, TIFF or BMP image
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadRaster returns the sampled grid of the image at path for the given channel.
func (c *ImageCache) LoadRaster(path string, ch raster.Channel) (*raster.Image, error) {
	key := rasterKey{path: path, channel: ch}

	c.mu.RLock()
	if grid, ok := c.rasters[key]; ok {
		c.mu.RUnlock()
		return grid, nil
	}
	c.mu.RUnlock()

	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	grid, err := raster.FromImage(img, ch)
	if err != nil {
		return nil, fmt.Errorf("failed to sample image: %w", err)
	}

	c.mu.Lock()
	c.rasters[key] = grid
	c.mu.Unlock()

	return grid, nil
}

// Clear removes all images and grids from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.rasters = make(map[rasterKey]*raster.Image)
	c.mu.Unlock()
}

// Evict removes a specific image and its grids from the cache.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	for key := range c.rasters {
		if key.path == path {
			delete(c.rasters, key)
		}
	}
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "tiff",
	// "bmp" or "unknown". Detection is based on file extension.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image has an alpha (transparency) channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatFromExt(path),
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// formatFromExt maps a file extension to a format name.
func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	default:
		return "unknown"
	}
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// ValueRangeResult describes the sampled values of an image.
type ValueRangeResult struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Channel string       `json:"channel"`
	Range   raster.Range `json:"value_range"`
}

// GetValueRange samples the image at path and returns its value range.
func GetValueRange(cache *ImageCache, path string, ch raster.Channel) (*ValueRangeResult, error) {
	grid, err := cache.LoadRaster(path, ch)
	if err != nil {
		return nil, err
	}
	return &ValueRangeResult{
		Width:   grid.Width(),
		Height:  grid.Height(),
		Channel: string(ch),
		Range:   grid.ValueRange(),
	}, nil
}
