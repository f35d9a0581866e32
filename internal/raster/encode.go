package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// ErrEncode marks a failure while serializing the output PNG.
// Test with errors.Is.
var ErrEncode = errors.New("encode image")

// dataURIPrefix is the standard self-describing prefix for inline PNGs.
const dataURIPrefix = "data:image/png;base64,"

// DataURI serializes a pixel buffer to an inline PNG data URI
// ("data:image/png;base64,...").
//
// Returns an error wrapping ErrEncode if PNG encoding fails; that is fatal
// for the request and must be propagated, not swallowed.
func DataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}

	var b strings.Builder
	b.Grow(len(dataURIPrefix) + base64.StdEncoding.EncodedLen(buf.Len()))
	b.WriteString(dataURIPrefix)
	b.WriteString(base64.StdEncoding.EncodeToString(buf.Bytes()))
	return b.String(), nil
}

// PNGBytes extracts the raw PNG payload from a string produced by
// DataURI.
func PNGBytes(uri string) ([]byte, error) {
	payload, ok := strings.CutPrefix(uri, dataURIPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrDecode, dataURIPrefix)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return raw, nil
}

// DecodeDataURI decodes a string produced by DataURI back into a pixel
// buffer. It exists mainly for tests and for callers that post-process the
// pipeline output.
func DecodeDataURI(uri string) (*image.NRGBA, error) {
	raw, err := PNGBytes(uri)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}
