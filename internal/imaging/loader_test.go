package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ironsheep/image-filter-mcp/internal/raster"
)

// uniformImage creates an in-memory image filled with c.
func uniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// writeTestPNG writes img as a PNG file under t.TempDir() and returns its path.
func writeTestPNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// createTestImage creates a uniform PNG image file and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	return writeTestPNG(t, "test-image.png", uniformImage(width, height, c))
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}

	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestImageCache_Load_Errors(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(invalid, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(invalid); err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestImageCache_Load_ExtraFormats(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()
	src := uniformImage(12, 7, color.RGBA{10, 20, 30, 255})

	tiffPath := filepath.Join(dir, "scan.tiff")
	f, err := os.Create(tiffPath)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := tiff.Encode(f, src, nil); err != nil {
		t.Fatalf("failed to encode tiff: %v", err)
	}
	f.Close()

	bmpPath := filepath.Join(dir, "scan.bmp")
	f, err = os.Create(bmpPath)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := bmp.Encode(f, src); err != nil {
		t.Fatalf("failed to encode bmp: %v", err)
	}
	f.Close()

	for _, path := range []string{tiffPath, bmpPath} {
		info, err := LoadImageInfo(cache, path)
		if err != nil {
			t.Fatalf("LoadImageInfo(%s) failed: %v", filepath.Base(path), err)
		}
		if info.Width != 12 || info.Height != 7 {
			t.Errorf("%s: got %dx%d, want 12x7", filepath.Base(path), info.Width, info.Height)
		}
	}
}

func TestImageCache_LoadRaster(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 20, 10, color.RGBA{128, 128, 128, 255})

	grid, err := cache.LoadRaster(imgPath, raster.ChannelLuma)
	if err != nil {
		t.Fatalf("LoadRaster failed: %v", err)
	}
	if grid.Width() != 20 || grid.Height() != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", grid.Width(), grid.Height())
	}
	if rng := grid.ValueRange(); rng.Min != rng.Max {
		t.Errorf("uniform image range: got %+v, want Min == Max", rng)
	}

	again, err := cache.LoadRaster(imgPath, raster.ChannelLuma)
	if err != nil {
		t.Fatalf("second LoadRaster failed: %v", err)
	}
	if again != grid {
		t.Error("second LoadRaster did not return cached grid")
	}

	lightness, err := cache.LoadRaster(imgPath, raster.ChannelLightness)
	if err != nil {
		t.Fatalf("LoadRaster(lightness) failed: %v", err)
	}
	if lightness == grid {
		t.Error("channels should be cached separately")
	}
}

func TestImageCache_ClearAndEvict(t *testing.T) {
	cache := NewImageCache()
	pathA := createTestImage(t, 5, 5, color.White)
	pathB := createTestImage(t, 6, 6, color.Black)

	for _, p := range []string{pathA, pathB} {
		if _, err := cache.LoadRaster(p, raster.ChannelLuma); err != nil {
			t.Fatalf("LoadRaster failed: %v", err)
		}
	}

	cache.Evict(pathA)
	cache.mu.RLock()
	_, imageLeft := cache.images[pathA]
	_, gridLeft := cache.rasters[rasterKey{path: pathA, channel: raster.ChannelLuma}]
	remaining := len(cache.rasters)
	cache.mu.RUnlock()
	if imageLeft || gridLeft {
		t.Error("Evict did not remove image and grid")
	}
	if remaining != 1 {
		t.Errorf("grids after Evict: got %d, want 1", remaining)
	}

	cache.Evict("/nonexistent/path")

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", cache.Len())
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.LoadRaster(imgPath, raster.ChannelLuma); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent LoadRaster error: %v", err)
	}
}

func TestLoadImageInfo_FormatDetection(t *testing.T) {
	cache := NewImageCache()

	tests := []struct {
		ext    string
		format string
	}{
		{".png", "png"},
		{".jpg", "jpeg"},
		{".JPEG", "jpeg"},
		{".gif", "gif"},
		{".tif", "tiff"},
		{".bmp", "bmp"},
		{".xyz", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			// A valid PNG regardless of extension
			path := writeTestPNG(t, "test-format"+tt.ext, image.NewRGBA(image.Rect(0, 0, 10, 10)))

			info, err := LoadImageInfo(cache, path)
			if err != nil {
				t.Fatalf("LoadImageInfo failed: %v", err)
			}
			if info.Format != tt.format {
				t.Errorf("Format for %s: got %s, want %s", tt.ext, info.Format, tt.format)
			}
			if info.FileSizeBytes <= 0 {
				t.Error("FileSizeBytes should be positive")
			}
		})
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 300, 200, color.RGBA{100, 100, 100, 255})

	dims, err := GetDimensions(cache, imgPath)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 300 || dims.Height != 200 {
		t.Errorf("dimensions: got %dx%d, want 300x200", dims.Width, dims.Height)
	}

	if _, err := GetDimensions(cache, "/nonexistent/image.png"); err == nil {
		t.Error("GetDimensions should fail for non-existent file")
	}
}

func TestGetValueRange(t *testing.T) {
	cache := NewImageCache()
	img := uniformImage(4, 4, color.Black)
	img.Set(2, 2, color.White)
	path := writeTestPNG(t, "range.png", img)

	result, err := GetValueRange(cache, path, raster.ChannelLuma)
	if err != nil {
		t.Fatalf("GetValueRange failed: %v", err)
	}
	if result.Range.Min != 0 || result.Range.Max < 254 {
		t.Errorf("range: got %+v, want {0 255}", result.Range)
	}
	if result.Channel != "luma" {
		t.Errorf("Channel: got %q, want luma", result.Channel)
	}
}
