package cutout

import (
	"image"
	"image/color"
	"testing"

	"github.com/inkpond/shellcut/internal/detect"
)

func newCanvas(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// rectDetection builds a flood-style detection whose interior is the
// given rectangle.
func rectDetection(w, h int, r image.Rectangle) detect.Detection {
	m := detect.NewMask(w, h)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Set(x, y)
		}
	}
	return detect.Detection{Found: true, Mask: m}
}

func alphaAt(img *image.NRGBA, x, y int) uint8 {
	return img.Pix[img.PixOffset(x, y)+3]
}

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	offWhite  = color.NRGBA{R: 245, G: 245, B: 242, A: 255}
	red       = color.NRGBA{R: 230, G: 30, B: 30, A: 255}
	darkBlue  = color.NRGBA{B: 180, A: 255}
	paperTan  = color.NRGBA{R: 205, G: 170, B: 120, A: 255}
	faintMark = color.NRGBA{R: 215, G: 215, B: 225, A: 255}
)

func TestEstimatePaper_WhitePage(t *testing.T) {
	img := newCanvas(50, 50, offWhite)
	// A few drawn pixels must not shift the median.
	img.SetNRGBA(20, 20, red)
	img.SetNRGBA(21, 20, red)
	img.SetNRGBA(22, 20, darkBlue)

	paper, ok := EstimatePaper(img, rectDetection(50, 50, image.Rect(10, 10, 40, 40)))
	if !ok {
		t.Fatal("estimate should succeed with a non-empty interior")
	}
	if paper.R != 245 || paper.G != 245 || paper.B != 242 {
		t.Errorf("median: got (%d,%d,%d), want (245,245,242)", paper.R, paper.G, paper.B)
	}
	if !paper.PaperLike {
		t.Error("bright low-spread page should be paper-like")
	}
}

func TestEstimatePaper_ColoredStock(t *testing.T) {
	img := newCanvas(50, 50, paperTan)

	paper, ok := EstimatePaper(img, rectDetection(50, 50, image.Rect(0, 0, 50, 50)))
	if !ok {
		t.Fatal("estimate should succeed")
	}
	// Brightness (205+170+120)/3 = 165 is fine, but spread 85 is not
	// neutral: this is colored stock, not blank paper.
	if paper.PaperLike {
		t.Error("high-spread tan stock must not be paper-like")
	}
}

func TestEstimatePaper_DarkPage(t *testing.T) {
	img := newCanvas(50, 50, color.NRGBA{R: 90, G: 90, B: 90, A: 255})

	paper, ok := EstimatePaper(img, rectDetection(50, 50, image.Rect(0, 0, 50, 50)))
	if !ok {
		t.Fatal("estimate should succeed")
	}
	if paper.PaperLike {
		t.Error("dark page must not be paper-like")
	}
}

func TestEstimatePaper_EmptyInterior(t *testing.T) {
	img := newCanvas(50, 50, white)
	if _, ok := EstimatePaper(img, detect.Detection{Found: true, Mask: detect.NewMask(50, 50)}); ok {
		t.Error("estimate over an empty interior should report false")
	}
}

func TestApplyMask_PaperLike(t *testing.T) {
	img := newCanvas(60, 60, offWhite)
	img.SetNRGBA(30, 30, red)
	img.SetNRGBA(31, 30, darkBlue)
	img.SetNRGBA(32, 30, color.NRGBA{R: 247, G: 243, B: 244, A: 255}) // near paper

	interior := rectDetection(60, 60, image.Rect(10, 10, 50, 50))
	paper, _ := EstimatePaper(img, interior)
	if !paper.PaperLike {
		t.Fatal("setup: page should be paper-like")
	}

	ApplyMask(img, interior, paper)

	if alphaAt(img, 5, 5) != 0 {
		t.Error("pixel outside interior should be transparent")
	}
	if alphaAt(img, 20, 20) != 0 {
		t.Error("blank paper inside interior should be transparent")
	}
	if alphaAt(img, 32, 30) != 0 {
		t.Error("pixel within match distance of paper should be transparent")
	}
	if alphaAt(img, 30, 30) == 0 {
		t.Error("red drawing should survive masking")
	}
	if alphaAt(img, 31, 30) == 0 {
		t.Error("dark blue drawing should survive masking (interior dark is not border dark)")
	}
}

func TestApplyMask_ColoredStock(t *testing.T) {
	img := newCanvas(60, 60, paperTan)
	img.SetNRGBA(30, 30, white)
	img.SetNRGBA(31, 30, red)

	interior := rectDetection(60, 60, image.Rect(10, 10, 50, 50))
	paper, _ := EstimatePaper(img, interior)
	if paper.PaperLike {
		t.Fatal("setup: tan stock should not be paper-like")
	}

	ApplyMask(img, interior, paper)

	if alphaAt(img, 30, 30) != 0 {
		t.Error("pure white should be stripped even on colored stock")
	}
	if alphaAt(img, 20, 20) == 0 {
		t.Error("the colored stock itself must not be stripped")
	}
	if alphaAt(img, 31, 30) == 0 {
		t.Error("red drawing should survive")
	}
}

func TestStripWhite(t *testing.T) {
	img := newCanvas(20, 20, white)
	img.SetNRGBA(10, 10, red)
	img.SetNRGBA(11, 10, color.NRGBA{R: 231, G: 231, B: 231, A: 255})
	img.SetNRGBA(12, 10, color.NRGBA{R: 230, G: 231, B: 231, A: 255})

	StripWhite(img)

	if alphaAt(img, 0, 0) != 0 {
		t.Error("white background should be stripped")
	}
	if alphaAt(img, 11, 10) != 0 {
		t.Error("all channels above 230 should be stripped")
	}
	if alphaAt(img, 12, 10) == 0 {
		t.Error("a channel at exactly 230 is not pure white")
	}
	if alphaAt(img, 10, 10) == 0 {
		t.Error("red pixel should survive")
	}
}

func TestEnhance_BoostsFaintMarks(t *testing.T) {
	img := newCanvas(40, 40, white)
	img.SetNRGBA(20, 20, faintMark)
	img.SetNRGBA(21, 20, red)

	interior := rectDetection(40, 40, image.Rect(5, 5, 35, 35))
	paper, _ := EstimatePaper(img, interior)
	ApplyMask(img, interior, paper)
	if alphaAt(img, 20, 20) == 0 {
		t.Fatal("setup: faint mark should survive masking")
	}

	redBefore := img.NRGBAAt(21, 20)
	Enhance(img, interior, paper)

	faintAfter := img.NRGBAAt(20, 20)
	if faintAfter.R >= faintMark.R {
		t.Errorf("faint mark should be pushed away from paper: R %d -> %d",
			faintMark.R, faintAfter.R)
	}

	// A bold, distant color moves far less than the faint mark.
	redAfter := img.NRGBAAt(21, 20)
	faintShift := int(faintMark.R) - int(faintAfter.R)
	redShift := int(redBefore.R) - int(redAfter.R)
	if redShift < 0 {
		redShift = -redShift
	}
	if faintShift <= redShift {
		t.Errorf("faint shift (%d) should exceed bold shift (%d)", faintShift, redShift)
	}
}

func TestEnhance_SkipsNonPaperLike(t *testing.T) {
	img := newCanvas(40, 40, paperTan)
	interior := rectDetection(40, 40, image.Rect(5, 5, 35, 35))
	paper, _ := EstimatePaper(img, interior)

	before := img.NRGBAAt(20, 20)
	Enhance(img, interior, paper)
	if img.NRGBAAt(20, 20) != before {
		t.Error("enhancer must be a no-op on non-paper-like pages")
	}
}

func TestEnhance_SkipsTransparent(t *testing.T) {
	img := newCanvas(40, 40, white)
	interior := rectDetection(40, 40, image.Rect(5, 5, 35, 35))
	paper, _ := EstimatePaper(img, interior)
	ApplyMask(img, interior, paper)

	Enhance(img, interior, paper)
	if alphaAt(img, 20, 20) != 0 {
		t.Error("stripped pixels must stay transparent through enhancement")
	}
}

func TestCrop_MaskBounds(t *testing.T) {
	img := newCanvas(100, 100, red)
	interior := rectDetection(100, 100, image.Rect(20, 30, 60, 70))

	out := Crop(img, interior)
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 40 {
		t.Errorf("crop dimensions: got %dx%d, want 40x40",
			out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestCrop_Circle(t *testing.T) {
	img := newCanvas(100, 100, red)
	c := &detect.Circle{CX: 50, CY: 50, Radius: 40, Inset: 30}
	interior := detect.Detection{Found: true, Circle: c}

	out := Crop(img, interior)
	if out.Bounds().Dx() != 61 || out.Bounds().Dy() != 61 {
		t.Errorf("crop dimensions: got %dx%d, want 61x61",
			out.Bounds().Dx(), out.Bounds().Dy())
	}

	// In-rect pixels outside the inset circle are forced transparent.
	if alphaAt(out, 0, 0) != 0 {
		t.Error("crop corner outside the circle should be transparent")
	}
	if alphaAt(out, 30, 30) == 0 {
		t.Error("circle center should remain visible")
	}
}

func TestCrop_NoDetection(t *testing.T) {
	img := newCanvas(100, 100, red)
	out := Crop(img, detect.Detection{})
	if out != img {
		t.Error("no detection should return the frame untouched")
	}
}
