package detect

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// InkThreshold is the per-channel ceiling below which a pixel counts as
// ink-dark for the flood-fill strategy and the hint heuristic: a pixel is
// dark when R, G and B are each below this value.
const InkThreshold = 60

// DarkMask classifies every pixel of the buffer as ink-dark or not, using
// the per-channel threshold. Rows are processed in parallel; passes over
// disjoint rows have no ordering dependency.
func DarkMask(img *image.NRGBA, threshold uint8) *Mask {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	m := NewMask(w, h)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				off := img.PixOffset(x, y)
				if img.Pix[off] < threshold &&
					img.Pix[off+1] < threshold &&
					img.Pix[off+2] < threshold {
					m.Bits[y*w+x] = true
				}
			}
		}
	})
	return m
}

// DarkRatio returns the fraction of pixels classified ink-dark at
// InkThreshold. Used by the hint heuristic to judge whether substantial
// ink is present at all.
func DarkRatio(img *image.NRGBA) float64 {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w == 0 || h == 0 {
		return 0
	}
	return float64(DarkMask(img, InkThreshold).Count()) / float64(w*h)
}
