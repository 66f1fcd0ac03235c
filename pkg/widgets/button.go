package widgets

import (
	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/widget"
)

// Button is a tappable control with a title.
//
// A button tracks the touch that went down inside it: it stays highlighted
// while the touch is held, un-highlights when the touch leaves its bounds,
// and fires OnTap only when the touch is released inside.
type Button struct {
	widget.Base

	title string

	// OnTap is called when a touch is released inside the button.
	OnTap func()

	fill      graphics.Color
	highlight graphics.Color
	textColor graphics.Color
	radius    int

	pressed bool
}

// NewButton creates a button with the default palette.
func NewButton(frame geometry.Rect, title string) *Button {
	b := &Button{
		title:     title,
		fill:      graphics.RGB(36, 41, 46),
		highlight: graphics.RGB(68, 77, 86),
		textColor: graphics.ColorWhite,
		radius:    4,
	}
	b.Init(b, frame)
	return b
}

// Title returns the button's text.
func (b *Button) Title() string { return b.title }

// SetTitle replaces the button's text.
func (b *Button) SetTitle(title string) {
	if title == b.title {
		return
	}
	b.title = title
	b.SetNeedsDisplay()
}

// SetColors sets the idle fill, the pressed fill, and the title color.
func (b *Button) SetColors(fill, highlight, text graphics.Color) {
	b.fill = fill
	b.highlight = highlight
	b.textColor = text
	b.SetNeedsDisplay()
}

// SetCornerRadius rounds the button's corners.
func (b *Button) SetCornerRadius(radius int) {
	b.radius = radius
	b.SetNeedsDisplay()
}

// IsPressed returns whether a touch is currently held inside the button.
func (b *Button) IsPressed() bool { return b.pressed }

// IsOpaque is false: the rounded corners leave the backdrop visible.
func (b *Button) IsOpaque() bool { return false }

// WantsTouchTracking keeps the gesture bound to the button once it
// consumes the touch-down, so drag-out and release are seen.
func (b *Button) WantsTouchTracking() bool { return true }

func (b *Button) HandleTouchEvent(ev event.Touch) bool {
	local := widget.ScreenToLocal(b, ev.Position)
	inside := b.Bounds().Contains(local)

	switch {
	case ev.Down && !b.pressed:
		if !inside {
			return false
		}
		b.setPressed(true)
	case ev.Down:
		// Held and moving: highlight follows whether the touch is inside.
		b.setPressed(inside)
	default:
		wasPressed := b.pressed
		b.setPressed(false)
		if wasPressed && inside && b.OnTap != nil {
			b.OnTap()
		}
	}
	return true
}

func (b *Button) setPressed(pressed bool) {
	if pressed == b.pressed {
		return
	}
	b.pressed = pressed
	b.SetNeedsDisplay()
}

func (b *Button) Draw(g graphics.Canvas, everything bool) {
	bounds := b.Bounds()
	fill := b.fill
	if b.pressed {
		fill = b.highlight
	}
	if b.radius > 0 {
		g.FillRoundedRect(bounds, b.radius, fill)
	} else {
		g.FillRect(bounds, fill)
	}
	if b.title != "" {
		face := graphics.DefaultFace()
		size := graphics.MeasureText(face, b.title)
		at := geometry.Point{
			X: (bounds.Size.Width - size.Width) / 2,
			Y: (bounds.Size.Height - size.Height) / 2,
		}
		g.DrawText(b.title, face, b.textColor, at)
	}
	b.Base.Draw(g, everything)
}
