// Package bitmap loads image files into drawable surfaces.
package bitmap

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
)

// Bitmap is a decoded image backed by a drawable surface.
type Bitmap struct {
	surface *graphics.Surface
}

// Load decodes the image file at path. PNG, JPEG, GIF, and BMP files are
// supported.
func Load(path string) (*Bitmap, error) {
	const op = "bitmap.Load"
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Resource(op, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Resource(op, err)
	}
	return &Bitmap{surface: graphics.SurfaceFromImage(img)}, nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Bitmap {
	return &Bitmap{surface: graphics.SurfaceFromImage(img)}
}

// Size returns the pixel dimensions.
func (b *Bitmap) Size() geometry.Size {
	return b.surface.Size()
}

// Surface returns the drawable surface holding the pixels.
func (b *Bitmap) Surface() *graphics.Surface {
	return b.surface
}
