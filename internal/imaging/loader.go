package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// ImageCache provides thread-safe caching of decoded source images so
// repeated tool calls against the same file skip the disk read.
//
// Cached images remain in memory until explicitly removed via Evict() or
// Clear(). Decoded images are treated as immutable; the cache hands out the
// same image.Image to every caller.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not
// cached. PNG, JPEG, and GIF are supported. The exact path string is the
// cache key, so relative and absolute paths to the same file are distinct
// entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, _, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// ImageInfo contains metadata about a loaded source image.
type ImageInfo struct {
	// Width and Height are the image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the registered decoder name: "png", "jpeg", or "gif".
	Format string `json:"format"`

	// Channels is the channel count the image decodes to when converted
	// for processing: 1 (grayscale), 3 (RGB), or 4 (RGBA). The fill-rotate
	// output carries the same count.
	Channels int `json:"channels"`

	// HasAlpha indicates whether the image carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image into the cache and returns its metadata.
//
// The format is taken from the decoder that handled the file, not from the
// file extension. Channels matches what TensorFromImage would produce, so
// callers can predict the output layout of a fill-rotate call up front.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	cache.mu.Lock()
	cache.images[path] = img
	cache.mu.Unlock()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	channels := channelCount(img)
	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		Channels:      channels,
		HasAlpha:      channels == 4,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains just the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the width and height of an image file.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &DimensionsResult{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
