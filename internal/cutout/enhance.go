package cutout

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/inkpond/shellcut/internal/detect"
)

// Boost curve: factor maxBoost at zero distance from the paper color,
// falling linearly to minBoost at capDist and beyond. Faint pencil marks
// near the paper tone are amplified hard; bold, already-distant colors
// are left nearly unchanged.
const (
	boostMax     = 5.5
	boostMin     = 1.5
	boostCapDist = 150.0
)

// Enhance amplifies the color distance of surviving interior pixels from
// the paper color, in place. Only meaningful when the estimate is
// paper-like; callers gate on that and on the detector's Boosts policy.
// Already-transparent pixels are untouched.
func Enhance(img *image.NRGBA, interior detect.Detection, paper PaperEstimate) {
	if !paper.PaperLike {
		return
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	paperColor := paper.Color()
	paperCh := [3]float64{float64(paper.R), float64(paper.G), float64(paper.B)}

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				off := img.PixOffset(x, y)
				if img.Pix[off+3] == 0 || !interior.Inside(x, y) {
					continue
				}
				px := colorful.Color{
					R: float64(img.Pix[off]) / 255,
					G: float64(img.Pix[off+1]) / 255,
					B: float64(img.Pix[off+2]) / 255,
				}
				d := px.DistanceRgb(paperColor) * 255
				falloff := 1 - d/boostCapDist
				if falloff < 0 {
					falloff = 0
				}
				boost := boostMin + (boostMax-boostMin)*falloff
				for c := 0; c < 3; c++ {
					v := paperCh[c] + (float64(img.Pix[off+c])-paperCh[c])*boost
					if v < 0 {
						v = 0
					} else if v > 255 {
						v = 255
					}
					img.Pix[off+c] = uint8(v)
				}
			}
		}
	})
}
