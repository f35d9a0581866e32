package detect

import (
	"image"
	"math"
)

// Circle describes a detected shell circle in normalized-buffer
// coordinates. Inset is the interior radius after shrinking inward from
// the detected border so that border ink is excluded.
type Circle struct {
	CX, CY int
	Radius float64
	Inset  float64
}

// Inside reports whether (x, y) lies within the inset interior.
func (c Circle) Inside(x, y int) bool {
	dx := float64(x - c.CX)
	dy := float64(y - c.CY)
	return dx*dx+dy*dy <= c.Inset*c.Inset
}

// Bounds returns the bounding rectangle of the inset interior clipped to
// the given limit.
func (c Circle) Bounds(limit image.Rectangle) image.Rectangle {
	r := int(math.Ceil(c.Inset))
	return image.Rect(c.CX-r, c.CY-r, c.CX+r+1, c.CY+r+1).Intersect(limit)
}

// Detection is the outcome of one border-detection attempt.
//
// When Found is true exactly one of Mask or Circle is non-nil, depending
// on the strategy: the flood-fill detector materializes a dense interior
// Mask, the circle detector carries only the Circle descriptor and tests
// membership geometrically.
//
// EdgeClipped is a diagnostic for the hint path: it records that the
// attempt ran into the image edge (the fill escaped through the frame, or
// every circle candidate sampled outside it), suggesting a coloring page
// whose outline is cut off by the photo.
type Detection struct {
	Found       bool
	Mask        *Mask
	Circle      *Circle
	EdgeClipped bool
}

// Inside reports whether (x, y) belongs to the detected interior.
// Always false when nothing was found.
func (d Detection) Inside(x, y int) bool {
	switch {
	case d.Mask != nil:
		return d.Mask.At(x, y)
	case d.Circle != nil:
		return d.Circle.Inside(x, y)
	default:
		return false
	}
}

// Bounds returns the tight bounding rectangle of the detected interior
// clipped to limit, or (limit, false) when nothing was found.
func (d Detection) Bounds(limit image.Rectangle) (image.Rectangle, bool) {
	switch {
	case d.Mask != nil:
		r, ok := d.Mask.Bounds()
		if !ok {
			return limit, false
		}
		return r.Intersect(limit), true
	case d.Circle != nil:
		return d.Circle.Bounds(limit), true
	default:
		return limit, false
	}
}

// BorderDetector is the strategy interface for finding an enclosing dark
// shell outline. Implementations are alternatives selected at config
// time, not layers of an ensemble; their thresholds were tuned
// independently.
type BorderDetector interface {
	// Detect analyzes a normalized buffer. It never fails: an image with
	// no usable outline yields a Detection with Found == false.
	Detect(img *image.NRGBA) Detection

	// Boosts reports whether this strategy's variant applies the contrast
	// enhancer to surviving interior pixels. The flood-fill variant
	// boosts faint pencil marks; the circle variant defers contrast
	// handling to the consumer.
	Boosts() bool

	// Name identifies the strategy for logs and CLI selection.
	Name() string
}
