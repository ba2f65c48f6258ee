package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// PrepareTexture decodes an equirectangular Earth map and keeps its left half, which is the longitude range the
// hemisphere shows. If either side of the result exceeds maxSize it is scaled down to fit, keeping the aspect.
// maxSize <= 0 disables scaling.
func PrepareTexture(data []byte, maxSize int) (*image.RGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	b := img.Bounds()
	if b.Dx() < 2 || b.Dy() < 1 {
		return nil, fmt.Errorf("%s texture too small: %dx%d", format, b.Dx(), b.Dy())
	}
	half := transform.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+b.Dx()/2, b.Max.Y))
	w, h := FitWithin(half.Bounds().Dx(), half.Bounds().Dy(), maxSize)
	if w == half.Bounds().Dx() && h == half.Bounds().Dy() {
		return half, nil
	}
	return transform.Resize(half, w, h, transform.Linear), nil
}

// FitWithin scales w x h down so neither side exceeds maxSize. Sides never drop below 1.
func FitWithin(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}
