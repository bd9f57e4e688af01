package viewer

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a JPEG, PNG, BMP, TIFF or WebP file into tightly packed
// RGBA rows, first row at the top. flipV reverses the row order for images
// authored bottom-up.
func LoadImage(path string, flipV bool) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("texture %s (%s) is empty", path, format)
	}

	if flipV {
		return transform.FlipV(img), nil
	}
	return clone.AsRGBA(img), nil
}
