// Package viewcontroller implements modal presentation of view controllers:
// the Idle → Presenting → Presented → Dismissing state machine, the timed
// slide-up transition, and root-level button event bubbling.
//
// A Controller pairs a widget subtree with lifecycle callbacks. Concrete
// controllers embed [Base], call [Base.Init], and implement Widget; Base
// supplies the coordination machinery and default policies.
package viewcontroller

import (
	"math"
	"slices"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-slate/slate/pkg/animation"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/widget"
)

// PresentationAnimation selects how a presented controller arrives on
// screen.
type PresentationAnimation uint8

const (
	// AnimationNone swaps the content in place, without animating.
	AnimationNone PresentationAnimation = iota
	// AnimationSlideUp slides the content up from the bottom edge.
	AnimationSlideUp
)

// TransitionDuration is how long an animated presentation or dismissal
// takes.
const TransitionDuration = 350 * time.Millisecond

// State is the presentation state of a controller, as seen from its role
// as a presenter.
type State uint8

const (
	// StateIdle means no child controller is presented.
	StateIdle State = iota
	// StatePresenting means a slide-up presentation is in flight.
	StatePresenting
	// StatePresented means a child controller is fully on screen.
	StatePresented
	// StateDismissing means a slide-down dismissal is in flight.
	StateDismissing
)

// Controller is a unit of full-screen content with lifecycle callbacks.
// It is implemented by embedding [Base] and providing Widget.
type Controller interface {
	base() *Base

	// Widget returns the root widget of the controller's content. It must
	// return the same tree for the controller's entire lifetime.
	Widget() widget.Widget
	// Title returns a human-readable name for the controller.
	Title() string

	// ViewWillAppear is invoked before the controller's content becomes
	// visible, ViewDidAppear once it fully is. The flag distinguishes an
	// animated transition from an immediate swap.
	ViewWillAppear(animated bool)
	ViewDidAppear(animated bool)
	// ViewWillDisappear and ViewDidDisappear mirror the appearance pair
	// for the controller leaving the screen (or being covered).
	ViewWillDisappear(animated bool)
	ViewDidDisappear(animated bool)

	// Present shows a child controller on top of this one. Only one child
	// may be presented at a time.
	Present(child Controller, anim PresentationAnimation) error
	// DismissPresented removes the currently presented child.
	DismissPresented(animated bool) error
	// Dismiss asks this controller's presenter to dismiss it.
	Dismiss(animated bool) error
	// PresentedController returns the currently presented child, nil when
	// idle.
	PresentedController() Controller
	// Presenter returns the controller that presented this one, or nil.
	Presenter() Controller
	// State returns the presenter-side presentation state.
	State() State

	// HandleButtonEvent gives the controller a chance to consume a button
	// event bubbling up from the deepest presented controller.
	HandleButtonEvent(ev event.Button) bool
	// ShouldPropagateButtonEvent controls whether an unconsumed button
	// event continues to this controller's presenter.
	ShouldPropagateButtonEvent(ev event.Button) bool
	// DismissesOnMenuPress opts the controller into dismissing itself when
	// a menu button press reaches it unconsumed.
	DismissesOnMenuPress() bool
}

type transitionPhase uint8

const (
	phasePresenting transitionPhase = iota
	phaseDismissing
)

// Base carries the presentation state every controller shares.
type Base struct {
	self Controller

	parent    Controller
	presented Controller

	// obscured are the presenter's pre-presentation children, the widgets
	// to draw-inhibit once the presented content fully covers them.
	obscured []widget.Widget

	animating bool
	phase     transitionPhase
	start     time.Time
	animToken uint32
}

// Init registers the outermost controller value. Constructors call this
// exactly once.
func (b *Base) Init(self Controller) {
	b.self = self
}

func (b *Base) base() *Base { return b }

// Title returns an empty title by default.
func (b *Base) Title() string { return "" }

// ViewWillAppear does nothing by default.
func (b *Base) ViewWillAppear(animated bool) {}

// ViewDidAppear does nothing by default.
func (b *Base) ViewDidAppear(animated bool) {}

// ViewWillDisappear does nothing by default.
func (b *Base) ViewWillDisappear(animated bool) {}

// ViewDidDisappear does nothing by default.
func (b *Base) ViewDidDisappear(animated bool) {}

// HandleButtonEvent ignores the event by default.
func (b *Base) HandleButtonEvent(ev event.Button) bool { return false }

// ShouldPropagateButtonEvent allows propagation by default.
func (b *Base) ShouldPropagateButtonEvent(ev event.Button) bool { return true }

// DismissesOnMenuPress is off by default; controllers opt in.
func (b *Base) DismissesOnMenuPress() bool { return false }

// PresentedController returns the currently presented child, nil when idle.
func (b *Base) PresentedController() Controller { return b.presented }

// Presenter returns the controller that presented this one, or nil.
func (b *Base) Presenter() Controller { return b.parent }

// State returns the presenter-side presentation state.
func (b *Base) State() State {
	switch {
	case b.presented == nil:
		return StateIdle
	case b.animating && b.phase == phasePresenting:
		return StatePresenting
	case b.animating:
		return StateDismissing
	default:
		return StatePresented
	}
}

// Present shows a child controller on top of this one.
//
// For a slide-up presentation the child's widget starts fully below the
// presenter (frame origin Y equal to the presenter's height) and slides to
// its target position over TransitionDuration with ease-in-out-quad
// shaping; event dispatch is suspended for the duration. Once the child
// fully covers the presenter, the presenter's prior children are
// draw-inhibited.
func (b *Base) Present(child Controller, anim PresentationAnimation) error {
	const op = "viewcontroller.Present"
	if child == nil {
		return errors.Usage(op, errors.ErrNilController)
	}
	if b.presented != nil {
		return errors.Usage(op, errors.ErrAlreadyPresenting)
	}

	host := b.self.Widget()
	animated := anim == AnimationSlideUp
	if animated && widget.AnimatorOf(host) == nil {
		return errors.Usage(op, errors.ErrOffScreen)
	}

	// The widgets visible now are the ones the new content will cover.
	b.obscured = slices.Clone(host.Children())

	child.ViewWillAppear(animated)
	b.self.ViewWillDisappear(animated)

	w := child.Widget()
	if animated {
		frame := w.Frame()
		frame.Origin.Y = host.Bounds().Size.Height
		w.SetFrame(frame)
	}
	if err := host.AddChild(w, false); err != nil {
		return err
	}
	b.presented = child
	child.base().parent = b.self

	if !animated {
		b.finalizePresent(false)
		return nil
	}

	b.animating = true
	b.phase = phasePresenting
	b.start = animation.Now()
	if s := widget.ScreenOf(host); s != nil {
		s.SetEventsInhibited(true)
	}
	b.animToken = widget.AnimatorOf(host).Register(b.stepTransition)
	return nil
}

// DismissPresented removes the currently presented child. A transition
// still in flight is short-circuited to its end state first.
func (b *Base) DismissPresented(animated bool) error {
	const op = "viewcontroller.DismissPresented"
	if b.presented == nil {
		return errors.Usage(op, errors.ErrNotPresenting)
	}
	if b.animating {
		b.shortCircuit()
		// A short-circuited dismissal already detached the child.
		if b.presented == nil {
			return errors.Usage(op, errors.ErrNotPresenting)
		}
	}

	child := b.presented
	host := b.self.Widget()
	if animated && widget.AnimatorOf(host) == nil {
		return errors.Usage(op, errors.ErrOffScreen)
	}

	child.ViewWillDisappear(animated)
	b.self.ViewWillAppear(animated)
	// The covered widgets come back into view as the content slides away.
	b.setObscuredInhibited(false)

	if !animated {
		if err := b.finalizeDismiss(false); err != nil {
			return err
		}
		return nil
	}

	b.animating = true
	b.phase = phaseDismissing
	b.start = animation.Now()
	if s := widget.ScreenOf(host); s != nil {
		s.SetEventsInhibited(true)
	}
	b.animToken = widget.AnimatorOf(host).Register(b.stepTransition)
	return nil
}

// Dismiss asks this controller's presenter to dismiss it.
func (b *Base) Dismiss(animated bool) error {
	if b.parent == nil {
		return errors.Usage("viewcontroller.Dismiss", errors.ErrNotPresented)
	}
	return b.parent.DismissPresented(animated)
}

// stepTransition advances the in-flight transition one animator frame.
func (b *Base) stepTransition() bool {
	host := b.self.Widget()
	w := b.presented.Widget()

	elapsed := animation.Now().Sub(b.start)
	t := float32(elapsed.Seconds() / TransitionDuration.Seconds())
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	frac := ease.InOutQuad(t, 0, 1, 1)

	height := float64(host.Bounds().Size.Height)
	var y int
	if b.phase == phasePresenting {
		y = int(math.Round(height * float64(1-frac)))
	} else {
		y = int(math.Round(height * float64(frac)))
	}
	frame := w.Frame()
	frame.Origin = geometry.Point{X: frame.Origin.X, Y: y}
	w.SetFrame(frame)

	// The sliding content exposes what is behind it frame by frame.
	for _, sibling := range b.obscured {
		sibling.SetNeedsDisplay()
	}

	if t < 1 {
		return true
	}

	b.animating = false
	b.animToken = 0
	if s := widget.ScreenOf(host); s != nil {
		s.SetEventsInhibited(false)
	}
	if b.phase == phasePresenting {
		b.finalizePresent(true)
	} else {
		errors.Report(b.finalizeDismiss(true))
	}
	return false
}

// shortCircuit forces an in-flight transition to completion so a new one
// can begin from a settled state.
func (b *Base) shortCircuit() {
	host := b.self.Widget()
	if anim := widget.AnimatorOf(host); anim != nil {
		anim.Unregister(b.animToken)
	}
	b.animating = false
	b.animToken = 0
	if s := widget.ScreenOf(host); s != nil {
		s.SetEventsInhibited(false)
	}

	w := b.presented.Widget()
	if b.phase == phasePresenting {
		frame := w.Frame()
		frame.Origin.Y = 0
		w.SetFrame(frame)
		b.finalizePresent(true)
	} else {
		frame := w.Frame()
		frame.Origin.Y = host.Bounds().Size.Height
		w.SetFrame(frame)
		errors.Report(b.finalizeDismiss(true))
	}
}

func (b *Base) finalizePresent(animated bool) {
	b.presented.ViewDidAppear(animated)
	b.self.ViewDidDisappear(animated)
	// Fully covered now; stop rendering what cannot be seen.
	b.setObscuredInhibited(true)
	b.forceRedisplay()
}

func (b *Base) finalizeDismiss(animated bool) *errors.Error {
	const op = "viewcontroller.DismissPresented"
	child := b.presented
	host := b.self.Widget()
	w := child.Widget()

	var err *errors.Error
	if removed, removeErr := host.RemoveChild(w); removeErr != nil {
		err = errors.Usage(op, removeErr)
	} else if !removed {
		err = errors.Usage(op, errors.ErrWidgetNotFound)
	}

	child.base().parent = nil
	b.presented = nil
	b.obscured = nil

	child.ViewDidDisappear(animated)
	b.self.ViewDidAppear(animated)
	b.forceRedisplay()
	return err
}

func (b *Base) setObscuredInhibited(inhibited bool) {
	for _, w := range b.obscured {
		w.SetDrawInhibited(inhibited)
	}
}

// forceRedisplay marks the whole tree dirty so no stale frame survives a
// presentation change.
func (b *Base) forceRedisplay() {
	root := widget.RootOf(b.self.Widget())
	widget.Visit(root, func(w widget.Widget) { w.SetNeedsDisplay() })
}

// RouteButton offers a button event to the presentation chain, deepest
// presented controller first, bubbling toward root. Each controller may
// consume the event, let it continue, or veto further propagation; a
// controller that opts into menu dismissal is dismissed when a menu press
// reaches it unconsumed.
func RouteButton(root Controller, ev event.Button) bool {
	deepest := root
	for deepest.PresentedController() != nil {
		deepest = deepest.PresentedController()
	}
	for c := deepest; c != nil; c = c.Presenter() {
		if c.HandleButtonEvent(ev) {
			return true
		}
		if ev.Kind == event.ButtonMenu && ev.Down &&
			c.DismissesOnMenuPress() && c.Presenter() != nil {
			if err := c.Dismiss(true); err == nil {
				return true
			}
		}
		if !c.ShouldPropagateButtonEvent(ev) {
			return false
		}
	}
	return false
}
