package widget

import (
	"slices"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
)

// Base carries the tree node state every widget shares. Embed it and call
// Init with the outermost value before using the widget.
type Base struct {
	self Widget

	frame  geometry.Rect
	bounds geometry.Rect

	parent   Widget
	children []Widget
	// screen is set on the root widget only, by SetScreen.
	screen Screen

	dirty         bool
	childrenDirty bool
	drawInhibited bool

	// hasTransparentChildren is recomputed whenever the child list changes.
	hasTransparentChildren bool

	// animToken is the widget's animator registration, zero when none.
	animToken uint32
}

// Init registers the outermost widget value and assigns the initial frame.
// Constructors call this exactly once.
func (b *Base) Init(self Widget, frame geometry.Rect) {
	b.self = self
	b.frame = frame
	b.bounds = frame.Bounds()
	b.dirty = true
}

func (b *Base) base() *Base { return b }

// AddChild adds a widget as a child of this one.
//
// A widget that already has a parent is detached from it first; moving a
// widget between parents is not an error. Adding a nil widget, the widget
// itself, or one of its ancestors is a usage error.
func (b *Base) AddChild(child Widget, atStart bool) error {
	const op = "widget.AddChild"
	if child == nil {
		return errors.Usage(op, errors.ErrNilWidget)
	}
	if child.base() == b {
		return errors.Usage(op, errors.ErrSelfChild)
	}
	for a := b.self.Parent(); a != nil; a = a.Parent() {
		if a.base() == child.base() {
			return errors.Usage(op, errors.ErrCycle)
		}
	}

	if child.Parent() != nil {
		child.RemoveFromParent()
	}

	child.WillMoveToParent(b.self)
	if atStart {
		b.children = slices.Insert(b.children, 0, child)
	} else {
		b.children = append(b.children, child)
	}
	child.base().parent = b.self
	child.DidMoveToParent()

	b.updateChildData()
	return nil
}

// RemoveChild removes a child widget, reporting whether a removal occurred.
func (b *Base) RemoveChild(child Widget) (bool, error) {
	if child == nil {
		return false, errors.Usage("widget.RemoveChild", errors.ErrNilWidget)
	}
	idx := slices.IndexFunc(b.children, func(w Widget) bool {
		return w.base() == child.base()
	})
	if idx < 0 {
		return false, nil
	}

	child.WillMoveToParent(nil)
	b.children = slices.Delete(b.children, idx, idx+1)
	child.base().parent = nil
	child.DidMoveToParent()

	b.updateChildData()
	return true, nil
}

// RemoveFromParent detaches this widget from its parent.
func (b *Base) RemoveFromParent() bool {
	if b.parent == nil {
		return false
	}
	removed, _ := b.parent.RemoveChild(b.self)
	return removed
}

// Parent returns the parent widget, or nil for the root.
func (b *Base) Parent() Widget { return b.parent }

// Children returns the child list in paint order.
func (b *Base) Children() []Widget { return b.children }

// HasChildren returns whether the widget has any children.
func (b *Base) HasChildren() bool { return len(b.children) > 0 }

// HasTransparentChildren returns whether any child is not opaque. The value
// is cached and refreshed when the child list changes.
func (b *Base) HasTransparentChildren() bool { return b.hasTransparentChildren }

// updateChildData refreshes cached aggregate state after the child list
// changed, and invalidates the subtree.
func (b *Base) updateChildData() {
	transparent := false
	for _, child := range b.children {
		if !child.IsOpaque() {
			transparent = true
			break
		}
	}
	b.hasTransparentChildren = transparent

	// A structural change means some descendant content is stale; the mark
	// has to reach the root for the next redraw to descend this far.
	b.childrenDirty = true
	b.propagateChildrenDirty()
}

// Frame returns the widget's rectangle in its parent's coordinates.
func (b *Base) Frame() geometry.Rect { return b.frame }

// Bounds returns the widget's rectangle in its own coordinate space.
func (b *Base) Bounds() geometry.Rect { return b.bounds }

// SetFrame moves/resizes the widget and invalidates it.
func (b *Base) SetFrame(frame geometry.Rect) {
	b.frame = frame
	b.bounds = frame.Bounds()
	b.self.SetNeedsDisplay()
	b.self.FrameDidChange()
}

// IsDirty returns whether this widget or any descendant must be drawn.
func (b *Base) IsDirty() bool {
	return b.dirty || b.childrenDirty
}

// SetNeedsDisplay marks this widget as needing redraw and propagates a
// children-dirty mark up every ancestor, terminating at the screen.
func (b *Base) SetNeedsDisplay() {
	b.dirty = true
	b.propagateChildrenDirty()
}

// propagateChildrenDirty sets the children-dirty flag on every ancestor and
// notifies the hosting screen, if any.
func (b *Base) propagateChildrenDirty() {
	root := b.self
	for a := b.self.Parent(); a != nil; a = a.Parent() {
		a.base().childrenDirty = true
		root = a
	}
	if s := root.base().screen; s != nil {
		s.MarkDirty()
	}
}

// Draw renders the widget's own content. The base implementation only
// clears the self-dirty flag; overrides must invoke it.
func (b *Base) Draw(c graphics.Canvas, everything bool) {
	b.dirty = false
}

// DrawChildren renders the subtree below this widget.
//
// The canvas arrives in the parent's coordinate space. Each child that is
// dirty (or everything is set) and not draw-inhibited is clipped to its
// frame when it opts in, translated to its origin, and drawn. The
// traversal then recurses regardless of the child's own dirty status,
// because a grandchild may be dirty while the child itself is clean.
func (b *Base) DrawChildren(c graphics.Canvas, everything bool) {
	if len(b.children) == 0 {
		return
	}

	c.Save()
	c.Translate(b.frame.Origin.X, b.frame.Origin.Y)

	for _, child := range b.children {
		cb := child.base()
		if cb.drawInhibited {
			continue
		}
		if child.IsDirty() || everything {
			childFrame := child.Frame()
			c.Save()
			if child.ClipsToBounds() {
				c.ClipRect(childFrame)
			}
			c.Translate(childFrame.Origin.X, childFrame.Origin.Y)
			child.Draw(c, everything)
			c.Restore()
		}
		child.DrawChildren(c, everything)
	}

	c.Restore()
	b.childrenDirty = false
}

// FindChildAt hit-tests the subtree rooted at this widget.
//
// Children are visited in reverse insertion order so the most recently
// added, visually topmost sibling wins on overlap. The query point is
// translated into each child's coordinate space as the search descends.
func (b *Base) FindChildAt(p geometry.Point) (Widget, geometry.Point) {
	if !b.bounds.Contains(p) {
		return nil, geometry.Point{}
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		local := p.Sub(child.Frame().Origin)
		if found, fp := child.FindChildAt(local); found != nil {
			return found, fp
		}
	}
	return b.self, p
}

// IsOpaque reports full-alpha coverage; defaults to true.
func (b *Base) IsOpaque() bool { return true }

// ClipsToBounds defaults to true.
func (b *Base) ClipsToBounds() bool { return true }

// WantsAnimation defaults to false.
func (b *Base) WantsAnimation() bool { return false }

// WantsTouchTracking defaults to false.
func (b *Base) WantsTouchTracking() bool { return false }

// AnimationFrame does nothing by default.
func (b *Base) AnimationFrame() {}

// HandleTouchEvent ignores the event by default.
func (b *Base) HandleTouchEvent(ev event.Touch) bool { return false }

// HandleScrollEvent ignores the event by default.
func (b *Base) HandleScrollEvent(ev event.Scroll) bool { return false }

// HandleButtonEvent ignores the event by default.
func (b *Base) HandleButtonEvent(ev event.Button) bool { return false }

// WillMoveToParent releases the animator registration; a new ancestor chain
// may lead to a different screen.
func (b *Base) WillMoveToParent(newParent Widget) {
	b.unregisterAnimation()
}

// DidMoveToParent re-registers with the animator when the widget wants
// animation and the new tree is on a screen.
func (b *Base) DidMoveToParent() {
	if b.self.WantsAnimation() {
		b.registerAnimation()
	}
}

// WillMoveToScreen releases the animator registration held on the screen
// being left.
func (b *Base) WillMoveToScreen(s Screen) {
	b.unregisterAnimation()
}

// DidMoveToScreen registers with the new screen's animator when the widget
// wants animation.
func (b *Base) DidMoveToScreen(s Screen) {
	if s != nil && b.self.WantsAnimation() {
		b.registerAnimation()
	}
}

// FrameDidChange does nothing by default.
func (b *Base) FrameDidChange() {}

// SetDrawInhibited excludes or re-includes the widget from rendering.
func (b *Base) SetDrawInhibited(inhibited bool) {
	b.drawInhibited = inhibited
}

// DrawInhibited returns whether rendering of this widget is inhibited.
func (b *Base) DrawInhibited() bool { return b.drawInhibited }

func (b *Base) registerAnimation() {
	if b.animToken != 0 {
		return
	}
	anim := AnimatorOf(b.self)
	if anim == nil {
		return
	}
	var token uint32
	token = anim.Register(func() bool {
		// Retire the callback if the widget was detached without reaching
		// this animator to unregister.
		if b.animToken != token {
			return false
		}
		b.self.AnimationFrame()
		return true
	})
	b.animToken = token
}

func (b *Base) unregisterAnimation() {
	if b.animToken == 0 {
		return
	}
	if anim := AnimatorOf(b.self); anim != nil {
		anim.Unregister(b.animToken)
	}
	b.animToken = 0
}
