package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Tensor holds decoded pixel data as normalized floating-point values.
//
// Pixels are stored row-major, interleaved by channel: the value of channel k
// at column x, row y lives at Pix[(y*Width+x)*Channels+k]. Every value is in
// the closed interval [0, 1].
//
// Channels is 1 for grayscale, 3 for RGB, or 4 for RGBA. A Tensor is plain
// data with no internal synchronization; treat it as immutable once shared.
type Tensor struct {
	Width    int
	Height   int
	Channels int
	Pix      []float64
}

// NewTensor allocates a zero-filled tensor of the given shape.
func NewTensor(width, height, channels int) *Tensor {
	return &Tensor{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float64, width*height*channels),
	}
}

// offset returns the index of the first channel of pixel (x, y).
func (t *Tensor) offset(x, y int) int {
	return (y*t.Width + x) * t.Channels
}

// channelCount decides the tensor layout a decoded image maps to.
//
// Grayscale types map to 1. Alpha-capable types map to 4 only when the image
// actually carries transparency; fully opaque images map to 3, matching how
// PNG round-trips them (an opaque image encodes without an alpha channel).
// Everything else (YCbCr, CMYK, paletted, ...) maps to 3.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
			return 3
		}
		return 4
	}
	return 3
}

// TensorFromImage converts a decoded image into a normalized tensor.
//
// The channel layout follows channelCount: 1 for grayscale, 4 for images
// with transparency, 3 for everything else. Non-native layouts are cloned
// to NRGBA first so channel extraction reads straight-alpha values.
func TensorFromImage(img image.Image) (*Tensor, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image has empty bounds %v", bounds)
	}

	switch src := img.(type) {
	case *image.Gray:
		t := NewTensor(w, h, 1)
		for y := 0; y < h; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x, v := range src.Pix[i : i+w] {
				t.Pix[y*w+x] = float64(v) / 255.0
			}
		}
		return t, nil
	case *image.Gray16:
		t := NewTensor(w, h, 1)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				v := uint16(src.Pix[i])<<8 | uint16(src.Pix[i+1])
				t.Pix[y*w+x] = float64(v) / 65535.0
			}
		}
		return t, nil
	}

	channels := channelCount(img)
	nrgba := imaging.Clone(img)
	t := NewTensor(w, h, channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*nrgba.Stride + x*4
			o := t.offset(x, y)
			t.Pix[o] = float64(nrgba.Pix[i]) / 255.0
			t.Pix[o+1] = float64(nrgba.Pix[i+1]) / 255.0
			t.Pix[o+2] = float64(nrgba.Pix[i+2]) / 255.0
			if channels == 4 {
				t.Pix[o+3] = float64(nrgba.Pix[i+3]) / 255.0
			}
		}
	}
	return t, nil
}

// Image re-quantizes the tensor to an 8-bit image.
//
// Values are clamped to [0, 1] and truncated (not rounded) to 0-255.
// Single-channel tensors become *image.Gray; three- and four-channel
// tensors become *image.NRGBA, with alpha forced opaque for three channels.
func (t *Tensor) Image() image.Image {
	if t.Channels == 1 {
		img := image.NewGray(image.Rect(0, 0, t.Width, t.Height))
		for y := 0; y < t.Height; y++ {
			for x := 0; x < t.Width; x++ {
				img.Pix[y*img.Stride+x] = quantize(t.Pix[y*t.Width+x])
			}
		}
		return img
	}

	img := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			o := t.offset(x, y)
			i := y*img.Stride + x*4
			img.Pix[i] = quantize(t.Pix[o])
			img.Pix[i+1] = quantize(t.Pix[o+1])
			img.Pix[i+2] = quantize(t.Pix[o+2])
			if t.Channels == 4 {
				img.Pix[i+3] = quantize(t.Pix[o+3])
			} else {
				img.Pix[i+3] = 255
			}
		}
	}
	return img
}

// quantize maps a normalized value to 8 bits by truncation.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255.0)
}
