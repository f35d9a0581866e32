package cutout

import (
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/inkpond/shellcut/internal/detect"
)

// Paper-likeness thresholds: bright and roughly neutral gray/white.
const (
	paperMinBrightness = 160
	paperMaxSpread     = 50
)

// PaperEstimate is the dominant blank-paper color inside the shell.
type PaperEstimate struct {
	R, G, B    uint8
	Brightness float64 // mean of the three channel medians
	Spread     float64 // max channel median − min channel median
	PaperLike  bool    // bright and low-spread
}

// Color returns the estimate as a colorful.Color for distance math.
func (p PaperEstimate) Color() colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}
}

// EstimatePaper computes the per-channel median color over all interior
// pixels and classifies it as paper-like or not. A false second return
// means the interior was empty and no estimate exists.
func EstimatePaper(img *image.NRGBA, interior detect.Detection) (PaperEstimate, bool) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	var rs, gs, bs []uint8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !interior.Inside(x, y) {
				continue
			}
			off := img.PixOffset(x, y)
			rs = append(rs, img.Pix[off])
			gs = append(gs, img.Pix[off+1])
			bs = append(bs, img.Pix[off+2])
		}
	}
	if len(rs) == 0 {
		return PaperEstimate{}, false
	}

	p := PaperEstimate{R: median(rs), G: median(gs), B: median(bs)}
	lo, hi := p.R, p.R
	for _, c := range [2]uint8{p.G, p.B} {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	p.Brightness = (float64(p.R) + float64(p.G) + float64(p.B)) / 3
	p.Spread = float64(hi) - float64(lo)
	p.PaperLike = p.Brightness > paperMinBrightness && p.Spread < paperMaxSpread
	return p, true
}

func median(vals []uint8) uint8 {
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals[len(vals)/2]
}
