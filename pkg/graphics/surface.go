package graphics

import (
	"image"
	stddraw "image/draw"

	"github.com/go-slate/slate/pkg/geometry"
)

// Surface is a drawable pixel buffer. Rendering always happens into an
// RGBA working image; Convert emits the pixels in any supported
// presentation format.
type Surface struct {
	img *image.NRGBA
}

// NewSurface allocates a zeroed surface of the given size.
func NewSurface(size geometry.Size) *Surface {
	return &Surface{img: image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))}
}

// SurfaceFromImage copies src into a new surface.
func SurfaceFromImage(src image.Image) *Surface {
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	stddraw.Draw(img, img.Bounds(), src, b.Min, stddraw.Src)
	return &Surface{img: img}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() geometry.Size {
	b := s.img.Bounds()
	return geometry.Size{Width: b.Dx(), Height: b.Dy()}
}

// Image exposes the working image for hosts that composite it directly.
// Pixels are non-premultiplied RGBA.
func (s *Surface) Image() *image.NRGBA {
	return s.img
}

// Convert writes the surface pixels into dst using the given presentation
// format and row stride. dst must hold at least height*stride bytes.
func (s *Surface) Convert(format PixelFormat, dst []byte, stride int) {
	size := s.Size()
	bpp := format.BytesPerPixel()
	for y := 0; y < size.Height; y++ {
		srcRow := s.img.Pix[y*s.img.Stride:]
		dstRow := dst[y*stride:]
		for x := 0; x < size.Width; x++ {
			r := srcRow[x*4+0]
			g := srcRow[x*4+1]
			b := srcRow[x*4+2]
			a := srcRow[x*4+3]
			out := dstRow[x*bpp:]
			switch format {
			case ARGB32:
				// Premultiplied, A in the high byte.
				out[0] = mulByte(b, a)
				out[1] = mulByte(g, a)
				out[2] = mulByte(r, a)
				out[3] = a
			case RGB24:
				out[0] = b
				out[1] = g
				out[2] = r
				out[3] = 0
			case RGB16:
				v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
				out[0] = byte(v)
				out[1] = byte(v >> 8)
			case RGB30:
				v := uint32(expand10(r))<<20 | uint32(expand10(g))<<10 | uint32(expand10(b))
				out[0] = byte(v)
				out[1] = byte(v >> 8)
				out[2] = byte(v >> 16)
				out[3] = byte(v >> 24)
			}
		}
	}
}

// mulByte multiplies two bytes treated as [0,1] fractions.
func mulByte(v, a uint8) uint8 {
	return uint8((uint16(v)*uint16(a) + 127) / 255)
}

// expand10 widens an 8-bit component to 10 bits by bit replication.
func expand10(v uint8) uint16 {
	return uint16(v)<<2 | uint16(v)>>6
}
