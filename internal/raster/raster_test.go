package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG serializes a solid-color image for use as pipeline input.
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestNormalize(t *testing.T) {
	data := encodePNG(t, 100, 50, color.White)

	img, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50 (no upscale)",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
	if img.Bounds().Min != (image.Point{}) {
		t.Errorf("bounds not anchored at origin: %v", img.Bounds())
	}
}

func TestNormalize_Downscale(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"wide", 1600, 800, 800, 400},
		{"tall", 400, 1600, 200, 800},
		{"square", 1000, 1000, 800, 800},
		{"within limit", 800, 600, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Normalize(encodePNG(t, tt.w, tt.h, color.White))
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					img.Bounds().Dx(), img.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNormalize_DecodeError(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	if err == nil {
		t.Fatal("Normalize should fail on garbage input")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error should wrap ErrDecode, got: %v", err)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	_, err := Normalize(nil)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error should wrap ErrDecode, got: %v", err)
	}
}
