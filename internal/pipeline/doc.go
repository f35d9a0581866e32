// Package pipeline runs the full shell extraction for one uploaded photo:
// normalize, detect the shell outline, strip the paper background, boost
// faint marks when the strategy calls for it, crop to the shell, and
// encode the result as a PNG data URI.
//
// Each call is a single synchronous pass over a buffer owned exclusively
// by that call; nothing is shared across requests except the detection
// engine cached inside the detect package. Failure handling is local
// classification: an undetected shell is not an error (the naive
// white-stripping fallback runs instead, possibly with a user-facing
// hint), while decode and encode failures propagate to the caller.
package pipeline
