// Package detect decides whether a photographed coloring page carries a
// closed dark shell outline, and if so which pixels lie inside it.
//
// Two interchangeable strategies implement the BorderDetector interface:
//
//   - FloodDetector: expands a 4-connected fill from the page center,
//     blocked by ink-dark pixels. Makes no shape assumption, so it handles
//     hand-drawn, irregular and partially occluded outlines, but a single
//     gap in the ink lets the fill leak out and detection fails.
//
//   - CircleDetector: a Hough circle transform over a blurred grayscale
//     copy, followed by dark-border verification around the winning
//     candidate's circumference. Tolerant of ink gaps and drawings crossing
//     the line, but only finds genuinely circular printed borders.
//
// The two strategies were tuned independently; their thresholds are not
// interchangeable and must not be merged.
//
// # Masks
//
// Per-pixel state is kept in row-major flat []bool arenas (Mask) rather
// than nested slices, and the flood fill uses an explicit stack, so memory
// stays bounded and large fills cannot overflow the goroutine stack.
//
// # Coordinate System
//
// All coordinates are 0-based with origin at the top-left corner of the
// normalized buffer. Detectors assume bounds anchored at (0, 0), which is
// what raster.Normalize guarantees.
package detect
