package pipeline

import (
	"fmt"

	"github.com/inkpond/shellcut/internal/cutout"
	"github.com/inkpond/shellcut/internal/detect"
	"github.com/inkpond/shellcut/internal/raster"
)

// Result is what one extraction returns to the caller. It is built once
// per call and never retained; persistence is a collaborator's problem.
type Result struct {
	// ImageData is the processed image as a "data:image/png;base64,..."
	// string.
	ImageData string `json:"imageData"`

	// ShellDetected is true iff a valid interior mask or circle was
	// accepted.
	ShellDetected bool `json:"shellDetected"`

	// Hint is a short instruction for the user when the photo looks like
	// a cut-off coloring page. Empty means no hint.
	Hint string `json:"hint,omitempty"`
}

// Options selects the detection strategy. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Detector is the border-detection strategy. Its Boosts policy also
	// decides whether the contrast enhancer runs.
	Detector detect.BorderDetector
}

// DefaultOptions uses the flood-fill strategy, which boosts faint pencil
// marks after masking.
func DefaultOptions() Options {
	return Options{Detector: &detect.FloodDetector{}}
}

// hintReframe is emitted when the photo appears to show a coloring page
// whose outline is not fully inside the frame.
const hintReframe = "It looks like the shell circle is cut off at the edge of the photo. " +
	"Please retake the picture with the whole circle inside the frame."

// Extract runs the full pipeline on encoded image bytes.
//
// Control flow: normalize → detect → (estimate paper → mask background →
// enhance) → crop → encode. When no shell is detected the fallback strips
// pure-white pixels across the whole frame (strict variant: an all-white
// input ends fully transparent) and the hint heuristic runs.
//
// Errors: a decode failure wraps raster.ErrDecode, an encode failure
// wraps raster.ErrEncode; both propagate. An undetected shell is a soft
// outcome reported through Result.ShellDetected, never an error.
func Extract(data []byte, opts Options) (*Result, error) {
	if opts.Detector == nil {
		opts.Detector = &detect.FloodDetector{}
	}

	img, err := raster.Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("normalize input: %w", err)
	}

	detection := opts.Detector.Detect(img)

	hint := ""
	if detection.Found {
		paper, ok := cutout.EstimatePaper(img, detection)
		if ok {
			cutout.ApplyMask(img, detection, paper)
			if opts.Detector.Boosts() {
				cutout.Enhance(img, detection, paper)
			}
		}
		img = cutout.Crop(img, detection)
	} else {
		cutout.StripWhite(img)
		hint = hintFor(detection, detect.DarkRatio(img))
	}

	encoded, err := raster.DataURI(img)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}

	return &Result{
		ImageData:     encoded,
		ShellDetected: detection.Found,
		Hint:          hint,
	}, nil
}

// hintDarkRatio is the minimum ink fraction before the re-frame hint is
// worth showing: below it the photo probably is not a coloring page at
// all.
const hintDarkRatio = 0.05

// hintFor classifies a failed detection. Only an attempt that ran into
// the image edge on a page with substantial ink earns the hint.
func hintFor(detection detect.Detection, darkRatio float64) string {
	if detection.EdgeClipped && darkRatio > hintDarkRatio {
		return hintReframe
	}
	return ""
}
