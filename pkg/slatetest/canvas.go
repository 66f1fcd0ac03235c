package slatetest

import (
	"fmt"

	"golang.org/x/image/font"

	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
)

// Op is one recorded canvas operation.
type Op struct {
	Name   string
	Rect   geometry.Rect
	Point  geometry.Point
	Color  graphics.Color
	Scalar int
	Text   string
}

// String renders the op compactly for test failure messages.
func (o Op) String() string {
	switch o.Name {
	case "save", "restore":
		return o.Name
	case "translate":
		return fmt.Sprintf("translate(%d,%d)", o.Point.X, o.Point.Y)
	case "clip":
		return fmt.Sprintf("clip(%v)", o.Rect)
	case "clear":
		return fmt.Sprintf("clear(%08x)", uint32(o.Color))
	case "text":
		return fmt.Sprintf("text(%q)", o.Text)
	default:
		return fmt.Sprintf("%s(%v)", o.Name, o.Rect)
	}
}

// RecordingCanvas implements graphics.Canvas by recording every call.
// It tracks the translation stack so recorded rectangles can also be
// resolved to absolute coordinates.
type RecordingCanvas struct {
	Ops []Op

	offset geometry.Point
	stack  []geometry.Point
}

// NewRecordingCanvas returns an empty recorder.
func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{}
}

// Reset discards all recorded operations and state.
func (c *RecordingCanvas) Reset() {
	c.Ops = c.Ops[:0]
	c.offset = geometry.Point{}
	c.stack = c.stack[:0]
}

// OpNames returns just the operation names, in order.
func (c *RecordingCanvas) OpNames() []string {
	names := make([]string, len(c.Ops))
	for i, op := range c.Ops {
		names[i] = op.Name
	}
	return names
}

// FillsOf returns the absolute rectangles of every FillRect call with the
// given color, in draw order.
func (c *RecordingCanvas) FillsOf(col graphics.Color) []geometry.Rect {
	var rects []geometry.Rect
	for _, op := range c.Ops {
		if op.Name == "fill" && op.Color == col {
			rects = append(rects, op.Rect)
		}
	}
	return rects
}

func (c *RecordingCanvas) record(op Op) {
	c.Ops = append(c.Ops, op)
}

func (c *RecordingCanvas) Save() {
	c.stack = append(c.stack, c.offset)
	c.record(Op{Name: "save"})
}

func (c *RecordingCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.offset = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
	c.record(Op{Name: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy int) {
	c.offset = c.offset.Add(geometry.Point{X: dx, Y: dy})
	c.record(Op{Name: "translate", Point: geometry.Point{X: dx, Y: dy}})
}

func (c *RecordingCanvas) ClipRect(r geometry.Rect) {
	c.record(Op{Name: "clip", Rect: r.Translate(c.offset.X, c.offset.Y)})
}

func (c *RecordingCanvas) Clear(col graphics.Color) {
	c.record(Op{Name: "clear", Color: col})
}

func (c *RecordingCanvas) FillRect(r geometry.Rect, col graphics.Color) {
	c.record(Op{Name: "fill", Rect: r.Translate(c.offset.X, c.offset.Y), Color: col})
}

func (c *RecordingCanvas) StrokeRect(r geometry.Rect, width int, col graphics.Color) {
	c.record(Op{Name: "stroke", Rect: r.Translate(c.offset.X, c.offset.Y), Scalar: width, Color: col})
}

func (c *RecordingCanvas) FillRoundedRect(r geometry.Rect, radius int, col graphics.Color) {
	c.record(Op{Name: "roundedFill", Rect: r.Translate(c.offset.X, c.offset.Y), Scalar: radius, Color: col})
}

func (c *RecordingCanvas) DrawSurface(s *graphics.Surface, at geometry.Point) {
	c.record(Op{Name: "surface", Point: at.Add(c.offset)})
}

func (c *RecordingCanvas) DrawSurfaceScaled(s *graphics.Surface, dst geometry.Rect) {
	c.record(Op{Name: "surfaceScaled", Rect: dst.Translate(c.offset.X, c.offset.Y)})
}

func (c *RecordingCanvas) DrawText(text string, face font.Face, col graphics.Color, at geometry.Point) {
	c.record(Op{Name: "text", Point: at.Add(c.offset), Color: col, Text: text})
}
