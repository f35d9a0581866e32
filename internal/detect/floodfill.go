package detect

import (
	"image"
	"math"
)

// FloodDetector finds an enclosing dark outline by expanding a 4-connected
// fill from near the page center, with ink-dark pixels as barriers. It
// assumes nothing about the outline's shape, so hand-drawn and irregular
// borders work, as long as the ink is closed: any gap lets the fill leak
// to the image edge and the attempt is rejected.
type FloodDetector struct {
	// DarkThreshold is the per-channel ink ceiling. Zero means InkThreshold.
	DarkThreshold uint8
}

// Tuned acceptance constants for the flood-fill variant. Do not mix with
// the circle-transform thresholds.
const (
	floodSeedSpiralFrac = 0.15 // seed search extent, fraction of min(w,h)
	floodMaxFillFrac    = 0.70 // fill beyond this is an open region
	floodMinFillFrac    = 0.03
	floodEdgeTouchCoeff = 0.53 // edge touches allowed per sqrt(filled)
	floodErodeDepth     = 3
)

// Name implements BorderDetector.
func (d *FloodDetector) Name() string { return "flood" }

// Boosts implements BorderDetector. The flood-fill variant amplifies
// faint pencil marks after masking.
func (d *FloodDetector) Boosts() bool { return true }

// Detect implements BorderDetector.
//
// The fill starts from the first non-dark pixel found by spiraling outward
// from the center in square rings (the exact center may be colored in).
// Pixels on the outer image edge fill but never expand; each one counts as
// an edge touch. The region is accepted as a shell interior only when its
// size is plausible (between 3% and 70% of the frame) and the edge-touch
// count stays below 0.53·√filled, which tolerates an outline barely
// clipped by the photo frame while rejecting one substantially cut off.
// Accepted masks are eroded to trim anti-aliased border fringe.
func (d *FloodDetector) Detect(img *image.NRGBA) Detection {
	threshold := d.DarkThreshold
	if threshold == 0 {
		threshold = InkThreshold
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w < 3 || h < 3 {
		return Detection{}
	}

	dark := DarkMask(img, threshold)

	seedX, seedY, ok := findSeed(dark)
	if !ok {
		// Everything near the center is ink: treated as "no shell", not
		// an error.
		return Detection{}
	}

	mask, filled, edgeTouches, aborted := fill(dark, seedX, seedY)

	total := w * h
	fillRatio := float64(filled) / float64(total)
	clipped := aborted || float64(edgeTouches) >= floodEdgeTouchCoeff*math.Sqrt(float64(filled))

	if aborted || fillRatio <= floodMinFillFrac || fillRatio >= floodMaxFillFrac || clipped {
		return Detection{EdgeClipped: clipped}
	}

	mask.Erode(floodErodeDepth)
	return Detection{Found: true, Mask: mask}
}

// findSeed spirals outward from the image center in square rings, up to
// 15% of min(w,h), returning the first non-dark pixel.
func findSeed(dark *Mask) (int, int, bool) {
	cx, cy := dark.W/2, dark.H/2
	minDim := dark.W
	if dark.H < minDim {
		minDim = dark.H
	}
	maxRing := int(float64(minDim) * floodSeedSpiralFrac)

	inBounds := func(x, y int) bool {
		return x >= 0 && x < dark.W && y >= 0 && y < dark.H
	}

	for ring := 0; ring <= maxRing; ring++ {
		if ring == 0 {
			if !dark.At(cx, cy) {
				return cx, cy, true
			}
			continue
		}
		for dx := -ring; dx <= ring; dx++ {
			for _, dy := range [2]int{-ring, ring} {
				x, y := cx+dx, cy+dy
				if inBounds(x, y) && !dark.Bits[y*dark.W+x] {
					return x, y, true
				}
			}
		}
		for dy := -ring + 1; dy <= ring-1; dy++ {
			for _, dx := range [2]int{-ring, ring} {
				x, y := cx+dx, cy+dy
				if inBounds(x, y) && !dark.Bits[y*dark.W+x] {
					return x, y, true
				}
			}
		}
	}
	return 0, 0, false
}

// fill runs the 4-connected expansion with an explicit stack of flat
// indices. Dark pixels are barriers. Edge pixels are filled and counted
// but not expanded. The fill aborts once it exceeds 70% of the frame;
// that is an open region, not an enclosed interior.
func fill(dark *Mask, seedX, seedY int) (mask *Mask, filled, edgeTouches int, aborted bool) {
	w, h := dark.W, dark.H
	limit := int(float64(w*h) * floodMaxFillFrac)

	mask = NewMask(w, h)
	stack := make([]int, 0, 1024)

	seed := seedY*w + seedX
	mask.Bits[seed] = true
	filled = 1
	stack = append(stack, seed)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := idx%w, idx/w

		if x == 0 || y == 0 || x == w-1 || y == h-1 {
			edgeTouches++
			continue
		}

		for _, n := range [4]int{idx - 1, idx + 1, idx - w, idx + w} {
			if mask.Bits[n] || dark.Bits[n] {
				continue
			}
			mask.Bits[n] = true
			filled++
			stack = append(stack, n)
		}

		if filled > limit {
			return mask, filled, edgeTouches, true
		}
	}
	return mask, filled, edgeTouches, false
}
