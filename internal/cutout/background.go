package cutout

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/inkpond/shellcut/internal/detect"
)

const (
	// paperMatchDist is the RGB Euclidean distance (0–255 space) under
	// which an interior pixel counts as blank paper when the estimate is
	// paper-like. Removes paper texture and shading while keeping drawn
	// colors far enough from the paper tone.
	paperMatchDist = 22.0

	// pureWhiteFloor is the per-channel floor for the conservative rule:
	// with colored paper stock (or no detection at all), only pixels with
	// R, G and B each above this are stripped.
	pureWhiteFloor = 230
)

// ApplyMask makes background pixels fully transparent in place:
//
//   - outside the interior → transparent
//   - inside, paper-like estimate → transparent when the RGB distance to
//     the paper color is below the match threshold
//   - inside, non-paper-like estimate → transparent only for pure white,
//     so a colored paper stock is not accidentally removed
//
// Interior ink that is dark overall but not dark on every channel (a dark
// blue fill, say) sits far from the bright paper tone and survives both
// rules; interior darkness is never conflated with border darkness.
func ApplyMask(img *image.NRGBA, interior detect.Detection, paper PaperEstimate) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	paperColor := paper.Color()

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				off := img.PixOffset(x, y)
				if !interior.Inside(x, y) {
					img.Pix[off+3] = 0
					continue
				}
				if paper.PaperLike {
					px := colorful.Color{
						R: float64(img.Pix[off]) / 255,
						G: float64(img.Pix[off+1]) / 255,
						B: float64(img.Pix[off+2]) / 255,
					}
					if px.DistanceRgb(paperColor)*255 < paperMatchDist {
						img.Pix[off+3] = 0
					}
				} else if img.Pix[off] > pureWhiteFloor &&
					img.Pix[off+1] > pureWhiteFloor &&
					img.Pix[off+2] > pureWhiteFloor {
					img.Pix[off+3] = 0
				}
			}
		}
	})
}

// StripWhite is the naive fallback when no shell was detected: every
// pure-white pixel in the frame becomes transparent. An all-white input
// therefore ends with zero visible pixels (this is the strict
// white-removal variant).
func StripWhite(img *image.NRGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				off := img.PixOffset(x, y)
				if img.Pix[off] > pureWhiteFloor &&
					img.Pix[off+1] > pureWhiteFloor &&
					img.Pix[off+2] > pureWhiteFloor {
					img.Pix[off+3] = 0
				}
			}
		}
	})
}
