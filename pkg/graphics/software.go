package graphics

import (
	"image"
	stdcolor "image/color"
	stddraw "image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"

	"github.com/go-slate/slate/pkg/geometry"
)

// canvasState is one entry of the save/restore stack.
type canvasState struct {
	// m maps user coordinates to device pixels.
	m f64.Aff3
	// clip is the active clip region, in device pixels.
	clip image.Rectangle
}

// SoftwareCanvas rasterizes Canvas operations into a Surface on the CPU.
//
// The transform is restricted to translations, uniform scales, and quarter
// rotations, so every rectangle stays axis-aligned in device space.
type SoftwareCanvas struct {
	dst   *Surface
	cur   canvasState
	stack []canvasState
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// NewCanvas creates a canvas drawing into dst with an identity transform
// and the clip covering the whole surface.
func NewCanvas(dst *Surface) *SoftwareCanvas {
	return &SoftwareCanvas{
		dst: dst,
		cur: canvasState{m: identity, clip: dst.img.Bounds()},
	}
}

// Reset restores the identity transform and full-surface clip and empties
// the state stack. The screen calls this at the start of every redraw.
func (c *SoftwareCanvas) Reset() {
	c.cur = canvasState{m: identity, clip: c.dst.img.Bounds()}
	c.stack = c.stack[:0]
}

// Save pushes the current transform and clip.
func (c *SoftwareCanvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the state stack. Restoring past the bottom is a no-op.
func (c *SoftwareCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Translate moves the coordinate origin by (dx, dy).
func (c *SoftwareCanvas) Translate(dx, dy int) {
	c.cur.m = mulAff3(c.cur.m, f64.Aff3{1, 0, float64(dx), 0, 1, float64(dy)})
}

// ScaleBy applies a uniform scale factor. Used by the screen for logical
// scaling; widgets never call it.
func (c *SoftwareCanvas) ScaleBy(factor float64) {
	c.cur.m = mulAff3(c.cur.m, f64.Aff3{factor, 0, 0, 0, factor, 0})
}

// RotateQuarters rotates the coordinate space by turns * 90 degrees. Used
// by the screen for display rotation; widgets never call it.
func (c *SoftwareCanvas) RotateQuarters(turns int) {
	t := ((turns % 4) + 4) % 4
	var cos, sin float64
	switch t {
	case 0:
		cos, sin = 1, 0
	case 1:
		cos, sin = 0, 1
	case 2:
		cos, sin = -1, 0
	case 3:
		cos, sin = 0, -1
	}
	c.cur.m = mulAff3(c.cur.m, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

// ClipRect intersects the clip region with r.
func (c *SoftwareCanvas) ClipRect(r geometry.Rect) {
	c.cur.clip = c.cur.clip.Intersect(c.mapRect(r))
}

// Clear fills the entire clip region.
func (c *SoftwareCanvas) Clear(col Color) {
	c.fillDevice(c.cur.clip, col)
}

// FillRect fills r with a color.
func (c *SoftwareCanvas) FillRect(r geometry.Rect, col Color) {
	c.fillDevice(c.mapRect(r).Intersect(c.cur.clip), col)
}

// StrokeRect outlines r with a border of the given width, drawn inside the
// rectangle.
func (c *SoftwareCanvas) StrokeRect(r geometry.Rect, width int, col Color) {
	if width <= 0 || r.IsEmpty() {
		return
	}
	w, h := r.Size.Width, r.Size.Height
	c.FillRect(geometry.RectMake(r.Origin.X, r.Origin.Y, w, width), col)
	c.FillRect(geometry.RectMake(r.Origin.X, r.MaxY()-width, w, width), col)
	c.FillRect(geometry.RectMake(r.Origin.X, r.Origin.Y+width, width, h-2*width), col)
	c.FillRect(geometry.RectMake(r.MaxX()-width, r.Origin.Y+width, width, h-2*width), col)
}

// FillRoundedRect fills r with circular corners of the given radius.
func (c *SoftwareCanvas) FillRoundedRect(r geometry.Rect, radius int, col Color) {
	if r.IsEmpty() {
		return
	}
	if radius <= 0 {
		c.FillRect(r, col)
		return
	}
	if m := min(r.Size.Width, r.Size.Height) / 2; radius > m {
		radius = m
	}

	// Rasterize the shape at its natural size, then blit it through the
	// current transform like any other surface.
	mask := NewSurface(r.Size)
	rasterizeRoundedRect(mask.img, radius, col.NRGBA())
	c.DrawSurfaceScaled(mask, r)
}

// rasterizeRoundedRect fills img with col, carving the four corners down to
// quarter circles of the given radius.
func rasterizeRoundedRect(img *image.NRGBA, radius int, col stdcolor.NRGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rr := float64(radius)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Distance test applies only inside the corner squares.
			cx, cy := -1, -1
			if x < radius && y < radius {
				cx, cy = radius, radius
			} else if x >= w-radius && y < radius {
				cx, cy = w-radius-1, radius
			} else if x < radius && y >= h-radius {
				cx, cy = radius, h-radius-1
			} else if x >= w-radius && y >= h-radius {
				cx, cy = w-radius-1, h-radius-1
			}
			if cx >= 0 {
				dx := float64(x-cx) + 0.5
				dy := float64(y-cy) + 0.5
				if math.Sqrt(dx*dx+dy*dy) > rr {
					continue
				}
			}
			img.SetNRGBA(x, y, col)
		}
	}
}

// DrawSurface blits a surface with its natural size at the given point.
func (c *SoftwareCanvas) DrawSurface(s *Surface, at geometry.Point) {
	size := s.Size()
	c.drawSurfaceTransformed(s, mulAff3(c.cur.m,
		f64.Aff3{1, 0, float64(at.X), 0, 1, float64(at.Y)}), size)
}

// DrawSurfaceScaled blits a surface scaled to fill dst.
func (c *SoftwareCanvas) DrawSurfaceScaled(s *Surface, dst geometry.Rect) {
	size := s.Size()
	if size.IsEmpty() || dst.IsEmpty() {
		return
	}
	sx := float64(dst.Size.Width) / float64(size.Width)
	sy := float64(dst.Size.Height) / float64(size.Height)
	m := mulAff3(c.cur.m, f64.Aff3{1, 0, float64(dst.Origin.X), 0, 1, float64(dst.Origin.Y)})
	m = mulAff3(m, f64.Aff3{sx, 0, 0, 0, sy, 0})
	c.drawSurfaceTransformed(s, m, size)
}

// DrawText draws a single line of text. at is the top-left of the line box;
// the baseline is derived from the face metrics.
func (c *SoftwareCanvas) DrawText(text string, face font.Face, col Color, at geometry.Point) {
	if text == "" {
		return
	}
	surf := RenderText(text, face, col)
	c.DrawSurface(surf, at)
}

// drawSurfaceTransformed blits src through matrix m (user of src → device).
func (c *SoftwareCanvas) drawSurfaceTransformed(src *Surface, m f64.Aff3, size geometry.Size) {
	if size.IsEmpty() || c.cur.clip.Empty() {
		return
	}

	// Fast path: pure integer translation.
	if m[0] == 1 && m[1] == 0 && m[3] == 0 && m[4] == 1 &&
		m[2] == math.Trunc(m[2]) && m[5] == math.Trunc(m[5]) {
		dr := image.Rect(int(m[2]), int(m[5]), int(m[2])+size.Width, int(m[5])+size.Height)
		dr = dr.Intersect(c.cur.clip)
		if dr.Empty() {
			return
		}
		sp := image.Pt(dr.Min.X-int(m[2]), dr.Min.Y-int(m[5]))
		stddraw.Draw(c.dst.img, dr, src.img, sp, stddraw.Over)
		return
	}

	sub, ok := c.dst.img.SubImage(c.cur.clip).(*image.NRGBA)
	if !ok {
		return
	}
	xdraw.ApproxBiLinear.Transform(sub, m, src.img, src.img.Bounds(), xdraw.Over, nil)
}

// fillDevice fills a device-space rectangle, ignoring the transform.
func (c *SoftwareCanvas) fillDevice(dr image.Rectangle, col Color) {
	if dr.Empty() {
		return
	}
	src := image.NewUniform(col.NRGBA())
	op := stddraw.Over
	if col.IsOpaque() {
		op = stddraw.Src
	}
	stddraw.Draw(c.dst.img, dr, src, image.Point{}, op)
}

// mapRect transforms a user-space rectangle to device pixels. The transform
// keeps rectangles axis-aligned, so mapping the two opposite corners is
// exact.
func (c *SoftwareCanvas) mapRect(r geometry.Rect) image.Rectangle {
	x0, y0 := mapPoint(c.cur.m, float64(r.Origin.X), float64(r.Origin.Y))
	x1, y1 := mapPoint(c.cur.m, float64(r.MaxX()), float64(r.MaxY()))
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return image.Rect(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1))
}

func mapPoint(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// mulAff3 composes two affine transforms: the result applies b, then a.
func mulAff3(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
