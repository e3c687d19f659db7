// Package imaging implements the fill-rotate transform and its supporting
// image plumbing.
//
// The core operation is FillRotate: fill a target canvas by sampling a source
// image under an inverse rotation, with out-of-bounds coordinates wrapped
// toroidally so the source repeats as an infinite rotated tiling. The
// surrounding code handles decoding (ImageCache), the normalized Tensor pixel
// model, re-encoding (Render, Save), and color sampling (SampleColor).
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner;
// X increases rightward and Y increases downward. During the transform,
// coordinates are real-valued and are truncated toward zero (not rounded)
// when selecting the source pixel.
//
// # Pixel Model
//
// Images are processed as Tensor values: float64 channels normalized to
// [0, 1], with 1 (grayscale), 3 (RGB), or 4 (RGBA) channels. The transform
// copies channel vectors verbatim, so output channel count always equals
// source channel count.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. FillRotate and the other operations
// are stateless pure functions over their inputs and can be called
// concurrently.
//
// # Error Handling
//
// Operations validate all preconditions before writing anything: positive
// source and target dimensions, a finite rotation angle, in-bounds sample
// coordinates. Given valid inputs, a call either returns a fully populated
// result or an error, never a partial one.
package imaging
