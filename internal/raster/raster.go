package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WEBP format decoder
)

// MaxDimension is the largest width or height a normalized buffer may have.
// Uploads larger than this are downscaled (aspect preserved) before any
// analysis runs.
const MaxDimension = 800

// ErrDecode marks input bytes that could not be decoded as an image.
// Test with errors.Is.
var ErrDecode = errors.New("decode image")

// Normalize decodes encoded image bytes into an RGBA pixel buffer suitable
// for the extraction pipeline.
//
// Parameters:
//   - data: Raw encoded bytes in any registered container format
//     (PNG, JPEG, GIF, WEBP).
//
// Returns:
//   - *image.NRGBA: Decoded buffer with bounds anchored at (0,0), an alpha
//     channel present, and both dimensions <= MaxDimension. Images already
//     within the limit are cloned at their original size, never upscaled.
//   - error: Wraps ErrDecode if the bytes are not a decodable image.
//
// The returned buffer is freshly allocated and owned by the caller; it is
// never shared or cached across calls.
func Normalize(data []byte) (*image.NRGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		// Fit preserves aspect ratio and only ever scales down here.
		return imaging.Fit(src, MaxDimension, MaxDimension, imaging.Lanczos), nil
	}
	return imaging.Clone(src), nil
}
