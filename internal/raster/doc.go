// Package raster handles the boundary between encoded image bytes and the
// in-memory pixel buffers the rest of the extractor works on.
//
// The entry point is Normalize, which decodes an uploaded photo (PNG, JPEG,
// GIF or WEBP) into an *image.NRGBA with a guaranteed alpha channel,
// downscaled so neither dimension exceeds MaxDimension. Images are never
// upscaled; a small photo keeps its original size. Capping the pixel count
// here is what bounds the runtime of every later per-pixel pass.
//
// The exit point is DataURI, which serializes a processed buffer back to a
// self-describing "data:image/png;base64," string for the caller.
//
// # Coordinate System
//
// Normalized buffers always have bounds anchored at (0, 0):
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Error Handling
//
// Decode failures wrap ErrDecode and encode failures wrap ErrEncode, so
// callers can classify with errors.Is without parsing messages. Both are
// hard errors: this package never silently substitutes a fallback image.
package raster
