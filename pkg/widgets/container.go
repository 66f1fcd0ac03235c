package widgets

import (
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/widget"
)

// Container is a plain grouping widget with an optional background fill,
// border, and rounded corners.
type Container struct {
	widget.Base

	background   graphics.Color
	borderColor  graphics.Color
	borderWidth  int
	cornerRadius int
}

// NewContainer creates a container with a transparent background.
func NewContainer(frame geometry.Rect) *Container {
	c := &Container{}
	c.Init(c, frame)
	return c
}

// SetBackground sets the fill color. Zero means transparent.
func (c *Container) SetBackground(col graphics.Color) {
	c.background = col
	c.SetNeedsDisplay()
}

// Background returns the fill color.
func (c *Container) Background() graphics.Color { return c.background }

// SetBorder sets the outline width and color. A zero width disables it.
func (c *Container) SetBorder(width int, col graphics.Color) {
	c.borderWidth = width
	c.borderColor = col
	c.SetNeedsDisplay()
}

// SetCornerRadius rounds the background corners. Zero means sharp corners.
func (c *Container) SetCornerRadius(radius int) {
	c.cornerRadius = radius
	c.SetNeedsDisplay()
}

// IsOpaque is true only when the background covers every pixel of the
// bounds: full alpha and square corners.
func (c *Container) IsOpaque() bool {
	return c.background.IsOpaque() && c.cornerRadius == 0
}

func (c *Container) Draw(g graphics.Canvas, everything bool) {
	b := c.Bounds()
	if c.background.Alpha() > 0 {
		if c.cornerRadius > 0 {
			g.FillRoundedRect(b, c.cornerRadius, c.background)
		} else {
			g.FillRect(b, c.background)
		}
	}
	if c.borderWidth > 0 && c.borderColor.Alpha() > 0 {
		g.StrokeRect(b, c.borderWidth, c.borderColor)
	}
	c.Base.Draw(g, everything)
}
