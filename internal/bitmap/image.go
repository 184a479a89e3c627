package bitmap

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// Pixels with luminance below this count as ink.
const decodeThreshold = 0.5

// FromImage thresholds img into a bitmap. A pixel is set when its luminance
// falls below threshold on a [0,1] scale, so dark ink on a light background
// becomes set cells.
func FromImage(img image.Image, threshold float64) Bitmap {
	rect := img.Bounds()
	b := New(rect.Dx(), rect.Dy())
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			r, g, bl, _ := img.At(rect.Min.X+x, rect.Min.Y+y).RGBA()
			lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)) / 0xffff
			if lum < threshold {
				b.Set(x, y, true)
			}
		}
	}
	return b
}

// Decode reads a PNG, JPEG or BMP image from r and thresholds it into a
// bitmap.
func Decode(r io.Reader) (Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Bitmap{}, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img, decodeThreshold), nil
}

// DecodeFile reads the image at path and thresholds it into a bitmap.
func DecodeFile(path string) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
