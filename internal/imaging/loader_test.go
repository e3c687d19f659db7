package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
	"testing"
)

// createTestImage writes a solid-color NRGBA PNG and returns its path.
// The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

// createGrayTestImage writes a grayscale PNG and returns its path.
func createGrayTestImage(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 256)
	}

	tmpFile, err := os.CreateTemp("", "test-gray-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewImageCache did not initialize images map")
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 10, 8, color.NRGBA{255, 0, 0, 255})
	defer os.Remove(path)

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 10x8", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load should hit the cache even after the file is gone
	os.Remove(path)
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load failed: %v", err)
	}
}

func TestImageCache_LoadMissingFile(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("Load should fail for missing file")
	}
}

func TestImageCache_LoadInvalidFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "not-an-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	tmpFile.WriteString("this is not image data")
	tmpFile.Close()

	cache := NewImageCache()
	if _, err := cache.Load(tmpFile.Name()); err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestImageCache_EvictAndClear(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 4, 4, color.NRGBA{0, 255, 0, 255})
	defer os.Remove(path)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if _, ok := cache.images[path]; ok {
		t.Error("Evict did not remove entry")
	}

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	cache.Clear()
	if len(cache.images) != 0 {
		t.Error("Clear did not empty the cache")
	}
}

func TestImageCache_ConcurrentLoad(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 6, 6, color.NRGBA{0, 0, 255, 255})
	defer os.Remove(path)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 12, 9, color.NRGBA{1, 2, 3, 255})
	defer os.Remove(path)

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 12 || info.Height != 9 {
		t.Errorf("dimensions: got %dx%d, want 12x9", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	// Fully opaque images round-trip through PNG without an alpha channel
	if info.Channels != 3 || info.HasAlpha {
		t.Errorf("channels: got %d (alpha %v), want 3 without alpha", info.Channels, info.HasAlpha)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestLoadImageInfo_Transparent(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 6, 6, color.NRGBA{10, 20, 30, 128})
	defer os.Remove(path)

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Channels != 4 || !info.HasAlpha {
		t.Errorf("channels: got %d (alpha %v), want 4 with alpha", info.Channels, info.HasAlpha)
	}
}

func TestLoadImageInfo_Grayscale(t *testing.T) {
	cache := NewImageCache()
	path := createGrayTestImage(t, 5, 5)
	defer os.Remove(path)

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Channels != 1 {
		t.Errorf("channels: got %d, want 1", info.Channels)
	}
	if info.HasAlpha {
		t.Error("grayscale image should not report alpha")
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewImageCache()
	path := createTestImage(t, 7, 3, color.NRGBA{9, 9, 9, 255})
	defer os.Remove(path)

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 7 || dims.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 7x3", dims.Width, dims.Height)
	}
}
