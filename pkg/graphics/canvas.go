package graphics

import (
	"golang.org/x/image/font"

	"github.com/go-slate/slate/pkg/geometry"
)

// Canvas is the 2D drawing-context capability widgets render through.
//
// During tree traversal a widget receives a canvas already translated and
// clipped to its own coordinate space; the save/restore stack lets the
// traversal undo per-child transforms. Implementations are not safe for
// concurrent use.
type Canvas interface {
	// Save pushes the current transform and clip onto the state stack.
	Save()
	// Restore pops the state stack.
	Restore()
	// Translate moves the coordinate origin by (dx, dy).
	Translate(dx, dy int)
	// ClipRect intersects the clip region with r.
	ClipRect(r geometry.Rect)
	// Clear fills the entire clip region with a color.
	Clear(c Color)
	// FillRect fills r with a color.
	FillRect(r geometry.Rect, c Color)
	// StrokeRect outlines r with a border of the given width, drawn inside
	// the rectangle.
	StrokeRect(r geometry.Rect, width int, c Color)
	// FillRoundedRect fills r with circular corners of the given radius.
	FillRoundedRect(r geometry.Rect, radius int, c Color)
	// DrawSurface blits a surface with its natural size at the given point.
	DrawSurface(s *Surface, at geometry.Point)
	// DrawSurfaceScaled blits a surface scaled to fill dst.
	DrawSurfaceScaled(s *Surface, dst geometry.Rect)
	// DrawText draws a single line of text with its left edge and baseline
	// derived from at (the top-left of the line box).
	DrawText(text string, face font.Face, c Color, at geometry.Point)
}
