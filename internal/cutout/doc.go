// Package cutout turns a detected shell interior into a transparent-background
// cutout: it estimates the blank paper tone inside the outline, strips
// paper-matching pixels, optionally amplifies faint pencil marks, and crops
// the buffer to the detected shape.
//
// All functions mutate the normalized buffer in place; the pipeline owns
// that buffer for the duration of one request, so no copies are taken.
//
// The paper estimate is a per-channel median across interior pixels.
// Children's drawings are patterns and shapes rather than uniform fills,
// so the blank paper remains the statistical median even under a dominant
// drawn color. A bright, low-spread median is treated as paper-like and
// removed by color distance; anything else is treated as colored paper
// stock and only pure white is removed, so the stock itself survives.
package cutout
