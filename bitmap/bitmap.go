// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bitmap converts arbitrary-size monochrome bitmaps into the
// fixed-length feature vectors the glyph classifier consumes: crop to
// content, rescale to the canonical 5x7 grid, flatten to 0/1 floats.
package bitmap

import (
	"image"
	"io"

	"github.com/born-ml/glyph/internal/bitmap"
)

// Canonical grid the classifier was designed around.
const (
	Width    = bitmap.Width
	Height   = bitmap.Height
	Features = bitmap.Features
)

// ErrMalformed reports bitmap text that cannot be parsed.
var ErrMalformed = bitmap.ErrMalformed

// Bitmap is a row-major monochrome grid.
type Bitmap = bitmap.Bitmap

// New returns a cleared w by h bitmap.
func New(w, h int) Bitmap {
	return bitmap.New(w, h)
}

// Parse builds a bitmap from text rows of '#'/'.' or '1'/'0' cells.
func Parse(rows ...string) (Bitmap, error) {
	return bitmap.Parse(rows...)
}

// MustParse is Parse for statically known bitmaps; it panics on malformed
// input.
func MustParse(rows ...string) Bitmap {
	return bitmap.MustParse(rows...)
}

// Normalize maps b onto the canonical grid and flattens it row-major into
// a Features-length vector of 0s and 1s.
func Normalize(b Bitmap) []float64 {
	return bitmap.Normalize(b)
}

// FromImage thresholds img into a bitmap; pixels darker than threshold
// (on a [0,1] luminance scale) become set cells.
func FromImage(img image.Image, threshold float64) Bitmap {
	return bitmap.FromImage(img, threshold)
}

// Decode reads a PNG, JPEG or BMP image from r and thresholds it into a
// bitmap.
func Decode(r io.Reader) (Bitmap, error) {
	return bitmap.Decode(r)
}

// DecodeFile reads the image at path and thresholds it into a bitmap.
func DecodeFile(path string) (Bitmap, error) {
	return bitmap.DecodeFile(path)
}
