package graphics

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-slate/slate/pkg/geometry"
)

var (
	defaultFaceOnce sync.Once
	defaultFace     font.Face
)

// DefaultFace returns a shared sans-serif face at 14px. Widgets use it when
// the host does not supply a face of its own.
func DefaultFace() font.Face {
	defaultFaceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// The embedded font data is a build-time constant; failing to
			// parse it is unrecoverable.
			panic("graphics: parsing embedded font: " + err.Error())
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    14,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			panic("graphics: creating default face: " + err.Error())
		}
		defaultFace = face
	})
	return defaultFace
}

// MeasureText returns the pixel size of a single line of text: the advance
// width and the face's line height.
func MeasureText(face font.Face, text string) geometry.Size {
	m := face.Metrics()
	return geometry.Size{
		Width:  font.MeasureString(face, text).Ceil(),
		Height: (m.Ascent + m.Descent).Ceil(),
	}
}

// RenderText rasterizes a single line of text into a fresh surface sized to
// fit it exactly.
func RenderText(text string, face font.Face, col Color) *Surface {
	size := MeasureText(face, text)
	if size.IsEmpty() {
		return NewSurface(geometry.Size{Width: 1, Height: 1})
	}
	surf := NewSurface(size)
	d := font.Drawer{
		Dst:  surf.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return surf
}
