package graphics

import "fmt"

// PixelFormat enumerates the framebuffer layouts a screen can present into.
//
// All formats are stored little-endian, matching what display controllers
// on the target hardware scan out directly.
type PixelFormat uint8

const (
	// ARGB32 is 32 bits per pixel with premultiplied alpha in the high byte
	// (memory order B, G, R, A).
	ARGB32 PixelFormat = iota
	// RGB24 is 32 bits per pixel with the high byte unused
	// (memory order B, G, R, x).
	RGB24
	// RGB16 is 16 bits per pixel, 5-6-5.
	RGB16
	// RGB30 is 32 bits per pixel with 10 bits per component
	// (x2 R10 G10 B10).
	RGB30
)

func (f PixelFormat) String() string {
	switch f {
	case ARGB32:
		return "ARGB32"
	case RGB24:
		return "RGB24"
	case RGB16:
		return "RGB16-565"
	case RGB30:
		return "RGB30"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// Valid returns whether f names a known pixel format.
func (f PixelFormat) Valid() bool {
	return f <= RGB30
}

// BytesPerPixel returns the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	if f == RGB16 {
		return 2
	}
	return 4
}

// OptimalStride returns the preferred bytes-per-row for a buffer of the
// given width: the packed row length rounded up to 4-byte alignment.
func OptimalStride(format PixelFormat, width int) int {
	return (width*format.BytesPerPixel() + 3) &^ 3
}
