// Package widget implements the widget tree: attachment and detachment,
// dirty-state propagation, draw ordering, and hit testing.
//
// Concrete widgets embed [Base] and override the capability hooks they
// care about. Base provides the tree bookkeeping; the embedded self
// reference (registered via [Base.Init]) lets it dispatch overridden hooks
// through the outermost type, the way subclass virtual calls would.
//
// All widget and tree mutation belongs to the single UI thread; nothing in
// this package is safe for concurrent use.
package widget

import (
	"github.com/go-slate/slate/pkg/animation"
	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
)

// Screen is the surface a widget tree is hosted on. The root widget keeps a
// back-reference to it; everything the tree needs from its host goes
// through this interface.
type Screen interface {
	// MarkDirty records that some widget on the screen needs redrawing.
	MarkDirty()
	// Animator returns the screen's per-frame callback registry.
	Animator() *animation.Animator
	// SetEventsInhibited suspends (true) or resumes (false) input event
	// processing, dropping anything queued meanwhile.
	SetEventsInhibited(inhibited bool)
}

// Widget is a node in the tree. It is implemented by embedding [Base];
// the unexported method pins satisfaction to types that do so.
type Widget interface {
	base() *Base

	// AddChild adds a widget as a child of this one, at the end of the
	// child list or (when atStart is set) the front. The child list order
	// is the paint order, back to front.
	AddChild(child Widget, atStart bool) error
	// RemoveChild removes a child, reporting whether a removal occurred.
	RemoveChild(child Widget) (bool, error)
	// RemoveFromParent detaches this widget from its parent, reporting
	// whether it was attached.
	RemoveFromParent() bool
	// Parent returns the parent widget, or nil for the root.
	Parent() Widget
	// Children returns the child list in paint order. The slice is shared;
	// callers must not mutate it.
	Children() []Widget
	// HasChildren returns whether the widget has any children.
	HasChildren() bool
	// FindChildAt hit-tests the subtree rooted at this widget. It returns
	// the deepest widget whose bounds contain p (front-most sibling first)
	// and p translated into that widget's coordinate space, or nil if this
	// widget's own bounds reject the point.
	FindChildAt(p geometry.Point) (Widget, geometry.Point)

	// Frame returns the widget's rectangle in its parent's coordinates.
	Frame() geometry.Rect
	// SetFrame moves/resizes the widget and invalidates it.
	SetFrame(frame geometry.Rect)
	// Bounds returns the widget's rectangle in its own coordinate space
	// (origin always zero).
	Bounds() geometry.Rect

	// IsDirty returns whether this widget or any descendant must be drawn.
	IsDirty() bool
	// SetNeedsDisplay marks the widget's own content as needing redraw and
	// propagates a children-dirty mark up every ancestor.
	SetNeedsDisplay()

	// Draw renders the widget's own content (never its children) and
	// clears the self-dirty flag. Overrides must call the Base
	// implementation or dirty tracking breaks. The canvas arrives
	// translated (and, if ClipsToBounds, clipped) to the widget's bounds.
	Draw(c graphics.Canvas, everything bool)
	// DrawChildren renders the subtree below this widget, honoring dirty
	// flags unless everything is set. The canvas arrives in the parent's
	// coordinate space.
	DrawChildren(c graphics.Canvas, everything bool)

	// IsOpaque returns whether the widget fills its bounds with full
	// alpha. Opaque widgets enable drawing optimizations.
	IsOpaque() bool
	// ClipsToBounds returns whether drawing is clipped to the widget's
	// frame during traversal.
	ClipsToBounds() bool
	// WantsAnimation opts the widget into a per-frame AnimationFrame call
	// while attached to a screen.
	WantsAnimation() bool
	// WantsTouchTracking opts the widget into receiving every touch event
	// of a gesture it consumed the start of, regardless of position.
	WantsTouchTracking() bool
	// AnimationFrame is invoked once per rendered frame for widgets that
	// want animation.
	AnimationFrame()

	// HandleTouchEvent processes a touch event in screen coordinates,
	// returning whether it was consumed.
	HandleTouchEvent(ev event.Touch) bool
	// HandleScrollEvent processes a scroll event, returning whether it
	// was consumed.
	HandleScrollEvent(ev event.Scroll) bool
	// HandleButtonEvent processes a hardware button event, returning
	// whether it was consumed.
	HandleButtonEvent(ev event.Button) bool

	// WillMoveToParent is invoked before the widget's parent changes;
	// newParent is nil on removal. Overrides must call the Base
	// implementation.
	WillMoveToParent(newParent Widget)
	// DidMoveToParent is invoked after the widget's parent changed.
	// Overrides must call the Base implementation.
	DidMoveToParent()
	// WillMoveToScreen is invoked on every widget of a tree before the
	// tree's screen changes; s is nil on detach.
	WillMoveToScreen(s Screen)
	// DidMoveToScreen is invoked on every widget of a tree after the
	// tree's screen changed. Overrides must call the Base implementation.
	DidMoveToScreen(s Screen)
	// FrameDidChange is invoked after SetFrame updates the frame.
	FrameDidChange()

	// SetDrawInhibited excludes (true) or re-includes (false) the widget
	// from rendering. Used while a modal presentation fully obscures it.
	SetDrawInhibited(inhibited bool)
	// DrawInhibited returns whether rendering of this widget is inhibited.
	DrawInhibited() bool
}

// Visit calls fn for w and every widget below it, parents first.
func Visit(w Widget, fn func(Widget)) {
	if w == nil {
		return
	}
	fn(w)
	for _, child := range w.Children() {
		Visit(child, fn)
	}
}

// RootOf walks up from w to the root of its tree.
func RootOf(w Widget) Widget {
	for w.Parent() != nil {
		w = w.Parent()
	}
	return w
}

// ScreenOf returns the screen hosting w's tree, or nil when the tree is
// not attached to one.
func ScreenOf(w Widget) Screen {
	if w == nil {
		return nil
	}
	return RootOf(w).base().screen
}

// ScreenToLocal converts a point in screen coordinates to w's own
// coordinate space by unwinding the frame origins along its ancestor
// chain. The root's own origin is not subtracted: hit testing starts in
// the root's space, so screen coordinates already are root coordinates.
// Event handlers receive screen coordinates and use this to test against
// their bounds.
func ScreenToLocal(w Widget, p geometry.Point) geometry.Point {
	for a := w; a != nil && a.Parent() != nil; a = a.Parent() {
		p = p.Sub(a.Frame().Origin)
	}
	return p
}

// AnimatorOf returns the animator of the screen hosting w, or nil when the
// tree is off-screen.
func AnimatorOf(w Widget) *animation.Animator {
	if s := ScreenOf(w); s != nil {
		return s.Animator()
	}
	return nil
}

// SetScreen attaches the tree rooted at root to a screen (or detaches it,
// when s is nil), running the will/did move callbacks on every widget.
// Screens call this when their root widget changes.
func SetScreen(root Widget, s Screen) {
	Visit(root, func(w Widget) { w.WillMoveToScreen(s) })
	root.base().screen = s
	Visit(root, func(w Widget) { w.DidMoveToScreen(s) })
}
