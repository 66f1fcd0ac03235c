package widgets

import (
	"golang.org/x/image/font"

	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/widget"
)

// TextAlignment positions a single line of text inside its bounds.
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// Label displays a single line of text.
type Label struct {
	widget.Base

	text       string
	face       font.Face
	textColor  graphics.Color
	background graphics.Color
	alignment  TextAlignment
}

// NewLabel creates a label using the built-in face, white text, and a
// transparent background.
func NewLabel(frame geometry.Rect, text string) *Label {
	l := &Label{
		text:      text,
		face:      graphics.DefaultFace(),
		textColor: graphics.ColorWhite,
	}
	l.Init(l, frame)
	return l
}

// Text returns the displayed string.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed string.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.SetNeedsDisplay()
}

// SetFace sets the type face used to render the text.
func (l *Label) SetFace(face font.Face) {
	l.face = face
	l.SetNeedsDisplay()
}

// SetTextColor sets the text color.
func (l *Label) SetTextColor(col graphics.Color) {
	l.textColor = col
	l.SetNeedsDisplay()
}

// SetBackground sets the fill behind the text. Zero means transparent.
func (l *Label) SetBackground(col graphics.Color) {
	l.background = col
	l.SetNeedsDisplay()
}

// SetAlignment sets the horizontal text position.
func (l *Label) SetAlignment(a TextAlignment) {
	l.alignment = a
	l.SetNeedsDisplay()
}

// IsOpaque is true only when the background has full alpha.
func (l *Label) IsOpaque() bool {
	return l.background.IsOpaque()
}

func (l *Label) Draw(g graphics.Canvas, everything bool) {
	b := l.Bounds()
	if l.background.Alpha() > 0 {
		g.FillRect(b, l.background)
	}
	if l.text != "" && l.textColor.Alpha() > 0 {
		size := graphics.MeasureText(l.face, l.text)
		at := geometry.Point{Y: (b.Size.Height - size.Height) / 2}
		switch l.alignment {
		case AlignCenter:
			at.X = (b.Size.Width - size.Width) / 2
		case AlignRight:
			at.X = b.Size.Width - size.Width
		}
		g.DrawText(l.text, l.face, l.textColor, at)
	}
	l.Base.Draw(g, everything)
}
