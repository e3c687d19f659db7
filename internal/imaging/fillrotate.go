package imaging

import (
	"fmt"
	"math"
)

// FillRotate fills a width x height canvas by tiling and rotating src.
//
// Every output pixel is produced by inverse mapping: its canvas coordinate is
// rotated by angleDegrees about the source image's center, and the source is
// sampled nearest-neighbor at the resulting point. Coordinates that land
// outside the source wrap toroidally, so the source repeats as an infinite
// rotated tiling in both axes.
//
// The source is read-only and the returned tensor is freshly allocated, so
// concurrent calls are safe. The angle may be any finite value; it is
// interpreted modulo 360 degrees by the trigonometry.
//
// Parameters:
//   - src: source tensor, both dimensions positive.
//   - width, height: target canvas size, both positive.
//   - angleDegrees: rotation angle; NaN and infinities are rejected.
//
// Returns a tensor of shape height x width with src's channel count, or an
// error before anything is written if a precondition fails.
func FillRotate(src *Tensor, width, height int, angleDegrees float64) (*Tensor, error) {
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		return nil, fmt.Errorf("source image must have positive dimensions")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("target dimensions must be positive, got %dx%d", width, height)
	}
	if math.IsNaN(angleDegrees) || math.IsInf(angleDegrees, 0) {
		return nil, fmt.Errorf("angle must be finite, got %v", angleDegrees)
	}

	ow, oh := src.Width, src.Height
	// Re-centering offsets: the source's own center, in its corner-origin frame.
	ow2, oh2 := float64(ow/2), float64(oh/2)

	phi := math.Pi * angleDegrees / 180.0
	sin, cos := math.Sincos(phi)

	dst := NewTensor(width, height, src.Channels)
	ch := src.Channels
	for r := 0; r < height; r++ {
		y := float64(r)
		for c := 0; c < width; c++ {
			x := float64(c)

			// Inverse rotation of the canvas coordinate, then shift into
			// the source frame. May land anywhere on the plane.
			newx := x*cos - y*sin + ow2
			newy := x*sin + y*cos + oh2

			sx := wrapIndex(newx, ow)
			sy := wrapIndex(newy, oh)

			so := (sy*ow + sx) * ch
			do := (r*width + c) * ch
			copy(dst.Pix[do:do+ch], src.Pix[so:so+ch])
		}
	}
	return dst, nil
}

// wrapIndex folds a real-valued coordinate into the integer range [0, n),
// treating the axis as periodic with period n.
//
// The conditional adjustment brings the value near range using truncating
// division; the final positive modulo is the authoritative guarantee and
// absorbs any floating-point boundary artifacts the adjustment leaves behind.
func wrapIndex(v float64, n int) int {
	fn := float64(n)
	if v >= fn {
		v -= fn * float64(int(v/fn))
	} else if v < 0 {
		q := int(v / fn) // truncates toward zero
		if q < 0 {
			q = -q
		}
		v += fn * float64(q+1)
	}
	i := int(v) % n
	if i < 0 {
		i += n
	}
	return i
}
