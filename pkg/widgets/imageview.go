package widgets

import (
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/widget"
)

// ImageView displays a bitmap surface, either at its natural size or
// scaled to fill the view's bounds.
type ImageView struct {
	widget.Base

	surface    *graphics.Surface
	scaleToFit bool
	background graphics.Color
}

// NewImageView creates a view showing the surface at its natural size,
// anchored at the top-left corner.
func NewImageView(frame geometry.Rect, s *graphics.Surface) *ImageView {
	v := &ImageView{surface: s}
	v.Init(v, frame)
	return v
}

// SetSurface replaces the displayed surface. Pass nil to clear.
func (v *ImageView) SetSurface(s *graphics.Surface) {
	v.surface = s
	v.SetNeedsDisplay()
}

// SetScaleToFit stretches the image over the full bounds when enabled.
func (v *ImageView) SetScaleToFit(on bool) {
	if on == v.scaleToFit {
		return
	}
	v.scaleToFit = on
	v.SetNeedsDisplay()
}

// SetBackground sets the fill behind the image. Zero means transparent.
func (v *ImageView) SetBackground(col graphics.Color) {
	v.background = col
	v.SetNeedsDisplay()
}

// IsOpaque is true only when the background has full alpha; image pixels
// may carry transparency.
func (v *ImageView) IsOpaque() bool { return v.background.IsOpaque() }

func (v *ImageView) Draw(g graphics.Canvas, everything bool) {
	b := v.Bounds()
	if v.background.Alpha() > 0 {
		g.FillRect(b, v.background)
	}
	if v.surface != nil {
		if v.scaleToFit {
			g.DrawSurfaceScaled(v.surface, b)
		} else {
			g.DrawSurface(v.surface, geometry.Point{})
		}
	}
	v.Base.Draw(g, everything)
}
