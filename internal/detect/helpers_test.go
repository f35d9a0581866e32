package detect

import (
	"image"
	"image/color"
	"math"
)

// newCanvas creates a solid-color test buffer.
func newCanvas(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// drawRing paints an annulus of ink from radius r to r+stroke.
func drawRing(img *image.NRGBA, cx, cy int, r, stroke float64, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x-cx), float64(y-cy))
			if d >= r && d <= r+stroke {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// fillDisc paints a filled circle.
func fillDisc(img *image.NRGBA, cx, cy int, r float64, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if math.Hypot(float64(x-cx), float64(y-cy)) <= r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// clearRect restores a rectangle to the given color, used to cut gaps
// into drawn borders.
func clearRect(img *image.NRGBA, x1, y1, x2, y2 int, c color.NRGBA) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
