package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// RenderResult contains a rendered canvas encoded for transport.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Channels    int    `json:"channels"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render encodes a tensor as base64 PNG.
//
// If previewScale is positive and not 1.0, the encoded image is resized by
// that factor with Lanczos resampling. Scaling affects only the encoded
// preview; the tensor itself is untouched.
func Render(t *Tensor, previewScale float64) (*RenderResult, error) {
	img := t.Image()

	if previewScale > 0 && previewScale != 1.0 {
		w := int(float64(t.Width) * previewScale)
		h := int(float64(t.Height) * previewScale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode canvas: %w", err)
	}

	bounds := img.Bounds()
	return &RenderResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Channels:    t.Channels,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes a tensor to disk, picking the encoder from the file extension.
// ".png" and ".jpg"/".jpeg" are supported.
func Save(t *Tensor, path string) error {
	var enc imgio.Encoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = imgio.PNGEncoder()
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(95)
	default:
		return fmt.Errorf("unsupported output extension %q (use .png, .jpg, or .jpeg)", filepath.Ext(path))
	}

	if err := imgio.Save(path, t.Image(), enc); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
