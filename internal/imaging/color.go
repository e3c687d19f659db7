package imaging

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents a color with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL space: hue 0-360 degrees,
// saturation and lightness 0-100 percent.
type HSLColor struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorResult contains a sampled color in several representations.
//
// Useful for checking the seams of a tiled canvas: sample just inside and
// just outside a tile boundary and compare values exactly.
type ColorResult struct {
	Hex  string    `json:"hex"`  // "#rrggbb", alpha excluded
	RGBA RGBAColor `json:"rgba"` // 8-bit components with alpha
	HSL  HSLColor  `json:"hsl"`  // perceptual representation
}

// SampleColor extracts the color value at a pixel coordinate.
//
// Coordinates are 0-based with the origin at the top-left. For 16-bit images
// values are scaled down to 8 bits. Returns an error if (x, y) lies outside
// the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	c := colorful.Color{
		R: float64(r8) / 255.0,
		G: float64(g8) / 255.0,
		B: float64(b8) / 255.0,
	}
	h, s, l := c.Hsl()

	return &ColorResult{
		Hex:  c.Hex(),
		RGBA: RGBAColor{R: r8, G: g8, B: b8, A: a8},
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}
