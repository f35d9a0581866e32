package cutout

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/inkpond/shellcut/internal/detect"
)

// Crop trims the buffer to the tight bounding box of the detected
// interior and returns the sub-image as a fresh buffer. With a circle
// detection, pixels inside the crop rectangle but outside the inset
// circle are additionally forced transparent, since that strategy never
// materializes a dense mask. When nothing was detected the input is
// returned unchanged.
func Crop(img *image.NRGBA, interior detect.Detection) *image.NRGBA {
	if !interior.Found {
		return img
	}
	rect, ok := interior.Bounds(img.Bounds())
	if !ok || rect.Empty() {
		return img
	}

	out := imaging.Crop(img, rect)

	if interior.Circle != nil {
		for y := 0; y < out.Bounds().Dy(); y++ {
			for x := 0; x < out.Bounds().Dx(); x++ {
				if !interior.Circle.Inside(rect.Min.X+x, rect.Min.Y+y) {
					out.Pix[out.PixOffset(x, y)+3] = 0
				}
			}
		}
	}
	return out
}
