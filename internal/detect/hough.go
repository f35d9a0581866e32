package detect

import (
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// CircleDetector finds a genuinely circular printed border with a Hough
// circle transform over a blurred grayscale copy, then verifies each
// candidate by probing for dark border ink around its circumference. Ink
// gaps and drawings crossing the line do not defeat it, but only circular
// outlines are found.
//
// Accepted candidates need a dark hit on at least half of their sampled
// angles and are ranked by darkHitRatio × radius, preferring larger
// well-bordered circles. (The looser 0.3 floor from an earlier tuning is
// deliberately not used: combined with size-weighted ranking it lets a
// large, barely-dark circle outrank a small solid one.)
type CircleDetector struct{}

// Tuned constants for the circle-transform variant. Do not mix with the
// flood-fill thresholds.
const (
	voteAngles   = 72 // accumulator votes per edge pixel (5° steps)
	sampleAngles = 72 // verification probes around a candidate

	houghBlurRadius  = 2.0  // Gaussian sigma-scale pre-blur (≈9px kernel)
	houghEdgeGrad    = 30.0 // grayscale gradient threshold for edge pixels
	houghMinRadFrac  = 0.15 // radius search range, fraction of min(w,h)
	houghMaxRadFrac  = 0.49
	houghRadiusStep  = 2
	houghPeakFrac    = 0.60 // accumulator peak threshold, fraction of 2r
	houghBorderDark  = 80   // per-channel ink ceiling when probing
	houghMinInBounds = 0.75 // sampled angles that must land in frame
	houghMinHitRatio = 0.50 // dark-hit floor for acceptance
)

// Name implements BorderDetector.
func (d *CircleDetector) Name() string { return "circle" }

// Boosts implements BorderDetector. The circle variant defers contrast
// handling to the downstream consumer.
func (d *CircleDetector) Boosts() bool { return false }

// candidate is a circle center that survived accumulator peak detection.
type candidate struct {
	cx, cy     int
	radius     int
	confidence float64 // windowed accumulator votes / (2·radius)
}

// Detect implements BorderDetector.
//
// Pipeline: grayscale + Gaussian blur, gradient edge detection, Hough
// accumulator voting per radius in [0.15, 0.49]·min(w,h), windowed peak
// extraction, duplicate suppression with a minimum center separation
// of height/4, then dark-border verification of each surviving candidate
// against the original (unblurred) buffer. The best-scoring verified
// candidate becomes the shell circle, with the interior inset by
// max(8, 15% of radius) to exclude the border ink itself.
func (d *CircleDetector) Detect(img *image.NRGBA) Detection {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	minDim := w
	if h < minDim {
		minDim = h
	}
	minRadius := int(float64(minDim) * houghMinRadFrac)
	maxRadius := int(float64(minDim) * houghMaxRadFrac)
	if minRadius < 1 || maxRadius <= minRadius {
		return Detection{}
	}

	eng := acquireEngine()

	blurred := blur.Gaussian(effect.Grayscale(img), houghBlurRadius)
	edges := edgePoints(blurred, w, h)
	if len(edges) == 0 {
		return Detection{}
	}

	candidates := votePeaks(eng, edges, w, h, minRadius, maxRadius)
	candidates = suppressNeighbors(candidates, float64(h)/4)

	best, clipped := verifyCandidates(eng, img, candidates)
	if best == nil {
		return Detection{EdgeClipped: clipped}
	}

	r := float64(best.radius)
	inset := r - math.Max(8, 0.15*r)
	if inset <= 0 {
		return Detection{EdgeClipped: clipped}
	}
	return Detection{
		Found:  true,
		Circle: &Circle{CX: best.cx, CY: best.cy, Radius: r, Inset: inset},
	}
}

// edgePoints collects flat indices of edge pixels using a simple gradient
// threshold against the right and down neighbors.
func edgePoints(gray *image.RGBA, w, h int) []int {
	edges := make([]int, 0, w*h/16)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			c := float64(gray.Pix[gray.PixOffset(x, y)])
			gx := math.Abs(c - float64(gray.Pix[gray.PixOffset(x+1, y)]))
			gy := math.Abs(c - float64(gray.Pix[gray.PixOffset(x, y+1)]))
			if gx > houghEdgeGrad || gy > houghEdgeGrad {
				edges = append(edges, y*w+x)
			}
		}
	}
	return edges
}

// votePeaks runs the accumulator per radius and extracts cells whose
// 11×11 windowed vote sum clears the peak threshold. With 72 discrete
// vote angles the votes for one true center disperse over a few
// neighboring cells (angular quantization error grows with radius), so a
// single-cell threshold would under-count strong circles; the window
// gathers them back. Cells far below the threshold are pruned before the
// window sum is computed. The accumulator buffer is reused across radii.
func votePeaks(eng *engine, edges []int, w, h, minRadius, maxRadius int) []candidate {
	acc := make([]int32, w*h)
	var out []candidate

	for radius := minRadius; radius <= maxRadius; radius += houghRadiusStep {
		for i := range acc {
			acc[i] = 0
		}
		fr := float64(radius)
		for _, idx := range edges {
			ex, ey := idx%w, idx/w
			for a := 0; a < voteAngles; a++ {
				cx := ex - int(fr*eng.voteCos[a])
				cy := ey - int(fr*eng.voteSin[a])
				if cx >= 0 && cx < w && cy >= 0 && cy < h {
					acc[cy*w+cx]++
				}
			}
		}

		threshold := int32(float64(2*radius) * houghPeakFrac)
		floor := threshold / 8
		if floor < 8 {
			floor = 8
		}
		for cy := 0; cy < h; cy++ {
			for cx := 0; cx < w; cx++ {
				if acc[cy*w+cx] < floor {
					continue
				}
				sum := windowSum(acc, w, h, cx, cy)
				if sum < threshold {
					continue
				}
				out = append(out, candidate{
					cx: cx, cy: cy, radius: radius,
					confidence: float64(sum) / float64(2*radius),
				})
			}
		}
	}
	return out
}

// windowSum totals accumulator votes in the 11×11 window around a cell.
func windowSum(acc []int32, w, h, cx, cy int) int32 {
	var sum int32
	for dy := -5; dy <= 5; dy++ {
		ny := cy + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -5; dx <= 5; dx++ {
			nx := cx + dx
			if nx >= 0 && nx < w {
				sum += acc[ny*w+nx]
			}
		}
	}
	return sum
}

// suppressNeighbors drops candidates closer than minSeparation to an
// already-kept, higher-confidence one.
func suppressNeighbors(candidates []candidate, minSeparation float64) []candidate {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].confidence > candidates[j].confidence
	})
	kept := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		dup := false
		for _, k := range kept {
			dx := float64(c.cx - k.cx)
			dy := float64(c.cy - k.cy)
			if math.Sqrt(dx*dx+dy*dy) < minSeparation {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, c)
		}
	}
	return kept
}

// verifyCandidates probes each candidate's circumference for border ink
// and returns the best scorer, plus whether any candidate was rejected
// for sampling outside the frame (the edge-clipped diagnostic).
//
// For each of the 72 sample angles a small radial band of
// ± max(10, 8% of radius) is searched for the first ink-dark pixel
// (R, G, B each below 80). A candidate is rejected outright when fewer
// than 75% of its angles land inside the frame, or when the dark-hit
// fraction over in-frame angles stays below 0.5. Survivors are ranked by
// hitRatio × radius.
func verifyCandidates(eng *engine, img *image.NRGBA, candidates []candidate) (*candidate, bool) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	var best *candidate
	bestScore := 0.0
	clipped := false

	for i := range candidates {
		c := &candidates[i]
		fr := float64(c.radius)
		band := math.Max(10, 0.08*fr)

		inBounds, darkHits := 0, 0
		for a := 0; a < sampleAngles; a++ {
			cos, sin := eng.sampleCos[a], eng.sampleSin[a]
			sampled, hit := false, false
			for dr := -band; dr <= band; dr++ {
				x := c.cx + int((fr+dr)*cos)
				y := c.cy + int((fr+dr)*sin)
				if x < 0 || x >= w || y < 0 || y >= h {
					continue
				}
				sampled = true
				off := img.PixOffset(x, y)
				if img.Pix[off] < houghBorderDark &&
					img.Pix[off+1] < houghBorderDark &&
					img.Pix[off+2] < houghBorderDark {
					hit = true
					break
				}
			}
			if sampled {
				inBounds++
			}
			if hit {
				darkHits++
			}
		}

		if float64(inBounds) < houghMinInBounds*sampleAngles {
			clipped = true
			continue
		}
		ratio := float64(darkHits) / float64(inBounds)
		if ratio < houghMinHitRatio {
			continue
		}
		if score := ratio * fr; score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best, clipped
}
