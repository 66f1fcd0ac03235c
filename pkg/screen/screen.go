// Package screen hosts a widget tree on a pixel buffer: it owns the
// render surface, the animator, the inbound event queue and its routing,
// and the root widget or root view controller.
//
// The host application drives a screen from its display loop, once per
// tick: ProcessEvents, HandleAnimations, then Redraw when IsDirty reports
// work. All methods except QueueEvent belong to that single UI thread.
package screen

import (
	"math"

	"github.com/go-slate/slate/pkg/animation"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/viewcontroller"
	"github.com/go-slate/slate/pkg/widget"
)

// Rotation is a display rotation in quarter turns, applied when
// compositing logical widget coordinates onto the physical buffer.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Screen composites a widget tree into a pixel buffer and routes input
// events into it.
type Screen struct {
	format   graphics.PixelFormat
	physical geometry.Size
	scale    float64
	rotation Rotation

	render *graphics.Surface
	canvas *graphics.SoftwareCanvas
	out    []byte
	stride int

	background graphics.Color

	root   widget.Widget
	rootVC viewcontroller.Controller

	anim   *animation.Animator
	events event.Queue

	firstResponder widget.Widget
	touchTracking  widget.Widget

	dirty           bool
	forceDisplay    bool
	eventsInhibited bool
}

var _ widget.Screen = (*Screen)(nil)

// New creates a screen with an internally allocated pixel buffer of the
// given format and physical size.
func New(format graphics.PixelFormat, size geometry.Size) (*Screen, error) {
	const op = "screen.New"
	if !format.Valid() {
		return nil, errors.Resource(op, errors.ErrInvalidFormat)
	}
	if size.IsEmpty() {
		return nil, errors.Resource(op, errors.ErrInvalidSize)
	}
	stride := graphics.OptimalStride(format, size.Width)
	return newScreen(format, size, make([]byte, stride*size.Height), stride), nil
}

// NewWithBuffer creates a screen compositing into an externally owned
// pixel buffer with the given row stride in bytes. The buffer must hold
// one full frame.
func NewWithBuffer(format graphics.PixelFormat, size geometry.Size, buf []byte, stride int) (*Screen, error) {
	const op = "screen.NewWithBuffer"
	if !format.Valid() {
		return nil, errors.Resource(op, errors.ErrInvalidFormat)
	}
	if size.IsEmpty() {
		return nil, errors.Resource(op, errors.ErrInvalidSize)
	}
	if stride < size.Width*format.BytesPerPixel() || len(buf) < stride*size.Height {
		return nil, errors.Resource(op, errors.ErrBufferTooSmall)
	}
	return newScreen(format, size, buf, stride), nil
}

func newScreen(format graphics.PixelFormat, size geometry.Size, buf []byte, stride int) *Screen {
	render := graphics.NewSurface(size)
	return &Screen{
		format:       format,
		physical:     size,
		scale:        1,
		render:       render,
		canvas:       graphics.NewCanvas(render),
		out:          buf,
		stride:       stride,
		background:   graphics.ColorBlack,
		anim:         animation.NewAnimator(),
		forceDisplay: true,
		dirty:        true,
	}
}

// Format returns the pixel format of the output buffer.
func (s *Screen) Format() graphics.PixelFormat { return s.format }

// Buffer returns the output pixel buffer a host compositor presents.
// Its contents are valid after a Redraw.
func (s *Screen) Buffer() []byte { return s.out }

// BufferStride returns the byte length of one output buffer row.
func (s *Screen) BufferStride() int { return s.stride }

// PhysicalSize returns the buffer size in device pixels.
func (s *Screen) PhysicalSize() geometry.Size { return s.physical }

// Size returns the logical size widgets lay out against: the physical
// size divided by the scale factor, with the axes swapped for quarter
// rotations.
func (s *Screen) Size() geometry.Size {
	w := int(math.Round(float64(s.physical.Width) / s.scale))
	h := int(math.Round(float64(s.physical.Height) / s.scale))
	if s.rotation == Rotate90 || s.rotation == Rotate270 {
		w, h = h, w
	}
	return geometry.Size{Width: w, Height: h}
}

// SetScale sets the logical scale factor. Non-positive values are ignored.
func (s *Screen) SetScale(factor float64) {
	if factor <= 0 || factor == s.scale {
		return
	}
	s.scale = factor
	s.forceDisplay = true
	s.dirty = true
}

// SetRotation sets the display rotation.
func (s *Screen) SetRotation(r Rotation) {
	if r == s.rotation {
		return
	}
	s.rotation = r
	s.forceDisplay = true
	s.dirty = true
}

// SetBackground sets the color painted behind an absent or non-opaque
// root widget.
func (s *Screen) SetBackground(c graphics.Color) {
	s.background = c
	s.forceDisplay = true
	s.dirty = true
}

// RootWidget returns the root of the hosted tree, or nil.
func (s *Screen) RootWidget() widget.Widget { return s.root }

// SetRootWidget replaces the hosted widget tree. The old tree (if any) is
// detached from the screen first. Responder and tracking bindings reset.
func (s *Screen) SetRootWidget(root widget.Widget) {
	if s.root != nil {
		widget.SetScreen(s.root, nil)
	}
	s.root = root
	if root != nil {
		widget.SetScreen(root, s)
	}
	s.firstResponder = nil
	s.touchTracking = nil
	s.forceDisplay = true
	s.dirty = true
}

// RootViewController returns the root controller, or nil.
func (s *Screen) RootViewController() viewcontroller.Controller { return s.rootVC }

// SetRootViewController replaces the root view controller, installing its
// widget as the root of the tree and running the appear/disappear
// callbacks around the swap.
func (s *Screen) SetRootViewController(vc viewcontroller.Controller) {
	if old := s.rootVC; old != nil {
		old.ViewWillDisappear(false)
		s.SetRootWidget(nil)
		old.ViewDidDisappear(false)
		s.rootVC = nil
	}
	if vc != nil {
		s.rootVC = vc
		vc.ViewWillAppear(false)
		s.SetRootWidget(vc.Widget())
		vc.ViewDidAppear(false)
	}
}

// FirstResponder returns the widget input falls back to, or nil.
func (s *Screen) FirstResponder() widget.Widget { return s.firstResponder }

// SetFirstResponder designates the widget that receives input events not
// resolved by hit testing. Pass nil to clear.
func (s *Screen) SetFirstResponder(w widget.Widget) {
	s.firstResponder = w
}

// Animator returns the screen's per-frame callback registry.
func (s *Screen) Animator() *animation.Animator { return s.anim }

// MarkDirty records that some widget on the screen needs redrawing.
func (s *Screen) MarkDirty() { s.dirty = true }

// IsDirty reports whether the next Redraw has any work.
func (s *Screen) IsDirty() bool {
	return s.dirty || s.forceDisplay || (s.root != nil && s.root.IsDirty())
}

// SetEventsInhibited suspends (true) or resumes (false) event dispatch.
// While inhibited, ProcessEvents discards the backlog.
func (s *Screen) SetEventsInhibited(inhibited bool) {
	s.eventsInhibited = inhibited
}

// QueueEvent enqueues an input event for the next ProcessEvents pass,
// at the back of the queue or (when atFront is set) the head. Safe to
// call from any thread.
func (s *Screen) QueueEvent(ev event.Event, atFront bool) {
	if atFront {
		s.events.PushFront(ev)
	} else {
		s.events.Push(ev)
	}
}

// HandleAnimations advances every registered animation by one frame. The
// host calls it once per display tick.
func (s *Screen) HandleAnimations() {
	s.anim.Frame()
}

// Redraw composites the widget tree into the output buffer and clears
// the dirty state. Only dirty subtrees are walked unless a full redraw is
// pending.
func (s *Screen) Redraw() {
	force := s.forceDisplay

	c := s.canvas
	c.Reset()
	if s.scale != 1 {
		c.ScaleBy(s.scale)
	}
	logical := s.Size()
	switch s.rotation {
	case Rotate90:
		c.RotateQuarters(1)
		c.Translate(0, -logical.Height)
	case Rotate180:
		c.RotateQuarters(2)
		c.Translate(-logical.Width, -logical.Height)
	case Rotate270:
		c.RotateQuarters(3)
		c.Translate(-logical.Width, 0)
	}

	// Without an opaque root the previous frame shows through, so partial
	// redraw is off the table.
	if s.root == nil || !s.root.IsOpaque() {
		c.Clear(s.background)
		force = true
	}
	if s.root != nil {
		// The root's own Draw repaints its whole background without a
		// clip, so whenever it ran dirty the children pass must be full
		// or clean siblings would be wiped from the buffer. Capture the
		// flag first since Draw clears it.
		rootDirty := s.root.IsDirty()
		s.root.Draw(c, force)
		s.root.DrawChildren(c, force || rootDirty)
	}

	s.forceDisplay = false
	s.dirty = false
	s.render.Convert(s.format, s.out, s.stride)
}

// ProcessEvents drains the inbound queue, routing each event on the
// calling (UI) thread. While events are inhibited the backlog is dropped
// wholesale and nothing is dispatched.
func (s *Screen) ProcessEvents() {
	if s.eventsInhibited {
		s.events.Clear()
		return
	}
	for {
		ev, ok := s.events.Pop()
		if !ok {
			return
		}
		switch e := ev.(type) {
		case event.Touch:
			s.routeTouch(e)
		case event.Scroll:
			if s.firstResponder != nil {
				s.firstResponder.HandleScrollEvent(e)
			}
		case event.Button:
			s.routeButton(e)
		}
	}
}

// routeTouch dispatches one touch event: the tracking widget gets first
// refusal, then the hit-test target (binding new tracking on a consumed
// down), then the first responder best-effort. Any touch-up releases the
// tracking binding.
func (s *Screen) routeTouch(e event.Touch) {
	handled := false
	hadTracking := s.touchTracking != nil
	if hadTracking {
		handled = s.touchTracking.HandleTouchEvent(e)
	}
	if !handled && s.root != nil {
		if target, _ := s.root.FindChildAt(e.Position); target != nil {
			if target.HandleTouchEvent(e) {
				handled = true
				if !hadTracking && target.WantsTouchTracking() {
					s.touchTracking = target
				}
			}
		}
	}
	if !handled && s.firstResponder != nil {
		s.firstResponder.HandleTouchEvent(e)
	}
	if !e.Down {
		s.touchTracking = nil
	}
}

// routeButton dispatches one button event: first responder, then the
// presentation chain, else a reported diagnostic.
func (s *Screen) routeButton(e event.Button) {
	if s.firstResponder != nil && s.firstResponder.HandleButtonEvent(e) {
		return
	}
	if s.rootVC != nil && viewcontroller.RouteButton(s.rootVC, e) {
		return
	}
	errors.Report(errors.Event("screen.ProcessEvents", errors.ErrUnknownButton))
}
