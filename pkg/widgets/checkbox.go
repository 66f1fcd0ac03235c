package widgets

import (
	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/widget"
)

// Checkbox is a toggleable check control.
//
// Checkbox is a controlled component: it displays the value it holds and
// calls OnChanged after a tap toggles it.
type Checkbox struct {
	widget.Base

	value bool

	// OnChanged is called with the new value after a toggle.
	OnChanged func(bool)

	activeColor graphics.Color
	checkColor  graphics.Color
	borderColor graphics.Color
}

// NewCheckbox creates an unchecked checkbox with the default palette.
func NewCheckbox(frame geometry.Rect) *Checkbox {
	c := &Checkbox{
		activeColor: graphics.RGB(33, 150, 243),
		checkColor:  graphics.ColorWhite,
		borderColor: graphics.RGB(120, 120, 120),
	}
	c.Init(c, frame)
	return c
}

// Value returns whether the checkbox is checked.
func (c *Checkbox) Value() bool { return c.value }

// SetValue sets the checked state without invoking OnChanged.
func (c *Checkbox) SetValue(v bool) {
	if v == c.value {
		return
	}
	c.value = v
	c.SetNeedsDisplay()
}

// SetColors sets the checked fill, check mark, and outline colors.
func (c *Checkbox) SetColors(active, check, border graphics.Color) {
	c.activeColor = active
	c.checkColor = check
	c.borderColor = border
	c.SetNeedsDisplay()
}

// IsOpaque is false: the control draws an outline, not a full fill.
func (c *Checkbox) IsOpaque() bool { return false }

func (c *Checkbox) HandleTouchEvent(ev event.Touch) bool {
	if ev.Down {
		return false
	}
	local := widget.ScreenToLocal(c, ev.Position)
	if !c.Bounds().Contains(local) {
		return false
	}
	c.value = !c.value
	c.SetNeedsDisplay()
	if c.OnChanged != nil {
		c.OnChanged(c.value)
	}
	return true
}

func (c *Checkbox) Draw(g graphics.Canvas, everything bool) {
	b := c.Bounds()
	if c.value {
		g.FillRoundedRect(b, 3, c.activeColor)
		// Inner square stands in for the check mark.
		inset := b.Size.Width / 4
		g.FillRect(b.Inset(inset, inset), c.checkColor)
	} else {
		g.StrokeRect(b, 2, c.borderColor)
	}
	c.Base.Draw(g, everything)
}
