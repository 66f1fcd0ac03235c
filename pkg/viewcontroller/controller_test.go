package viewcontroller_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-slate/slate/pkg/animation"
	slateerrors "github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/slatetest"
	"github.com/go-slate/slate/pkg/viewcontroller"
	"github.com/go-slate/slate/pkg/widget"
)

// pane is a plain widget for building controller content.
type pane struct {
	widget.Base
}

func newPane(frame geometry.Rect) *pane {
	p := &pane{}
	p.Init(p, frame)
	return p
}

// host implements widget.Screen for driving transitions without a real
// pixel buffer.
type host struct {
	anim      *animation.Animator
	inhibited bool
}

func newHost() *host { return &host{anim: animation.NewAnimator()} }

func (h *host) MarkDirty()                    {}
func (h *host) Animator() *animation.Animator { return h.anim }
func (h *host) SetEventsInhibited(v bool)     { h.inhibited = v }

// controller pairs a pane with a lifecycle log shared across controllers,
// so tests can assert the interleaved callback order.
type controller struct {
	viewcontroller.Base
	root *pane

	log          *[]string
	name         string
	menuDismiss  bool
	vetoButtons  bool
	handleButton bool
}

func newController(name string, frame geometry.Rect) *controller {
	c := &controller{name: name, root: newPane(frame), log: new([]string)}
	c.Init(c)
	return c
}

func (c *controller) Widget() widget.Widget { return c.root }
func (c *controller) Title() string         { return c.name }

func (c *controller) record(ev string) { *c.log = append(*c.log, c.name+"."+ev) }

func (c *controller) ViewWillAppear(animated bool)    { c.record("willAppear") }
func (c *controller) ViewDidAppear(animated bool)     { c.record("didAppear") }
func (c *controller) ViewWillDisappear(animated bool) { c.record("willDisappear") }
func (c *controller) ViewDidDisappear(animated bool)  { c.record("didDisappear") }

func (c *controller) DismissesOnMenuPress() bool { return c.menuDismiss }

func (c *controller) ShouldPropagateButtonEvent(ev event.Button) bool { return !c.vetoButtons }

func (c *controller) HandleButtonEvent(ev event.Button) bool { return c.handleButton }

// presentedHost builds a presenter attached to a host screen, with two
// sibling widgets already in its tree.
func presentedHost(t *testing.T) (*host, *controller, []*pane) {
	t.Helper()
	h := newHost()
	presenter := newController("presenter", geometry.RectMake(0, 0, 800, 480))
	widget.SetScreen(presenter.Widget(), h)
	siblings := []*pane{
		newPane(geometry.RectMake(0, 0, 400, 480)),
		newPane(geometry.RectMake(400, 0, 400, 480)),
	}
	for _, s := range siblings {
		if err := presenter.Widget().AddChild(s, false); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	return h, presenter, siblings
}

func TestPresentValidation(t *testing.T) {
	_, presenter, _ := presentedHost(t)
	child := newController("child", geometry.RectMake(0, 0, 800, 480))
	other := newController("other", geometry.RectMake(0, 0, 800, 480))

	if err := presenter.Present(nil, viewcontroller.AnimationNone); !errors.Is(err, slateerrors.ErrNilController) {
		t.Errorf("nil child: got %v, want ErrNilController", err)
	}
	if err := presenter.DismissPresented(false); !errors.Is(err, slateerrors.ErrNotPresenting) {
		t.Errorf("dismiss while idle: got %v, want ErrNotPresenting", err)
	}
	if err := child.Dismiss(false); !errors.Is(err, slateerrors.ErrNotPresented) {
		t.Errorf("dismiss unpresented: got %v, want ErrNotPresented", err)
	}

	if err := presenter.Present(child, viewcontroller.AnimationNone); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if err := presenter.Present(other, viewcontroller.AnimationNone); !errors.Is(err, slateerrors.ErrAlreadyPresenting) {
		t.Errorf("double present: got %v, want ErrAlreadyPresenting", err)
	}
}

func TestPresentOffScreenAnimated(t *testing.T) {
	presenter := newController("presenter", geometry.RectMake(0, 0, 800, 480))
	child := newController("child", geometry.RectMake(0, 0, 800, 480))
	err := presenter.Present(child, viewcontroller.AnimationSlideUp)
	if !errors.Is(err, slateerrors.ErrOffScreen) {
		t.Errorf("animated present off screen: got %v, want ErrOffScreen", err)
	}
}

func TestPresentNonAnimatedRoundTrip(t *testing.T) {
	_, presenter, siblings := presentedHost(t)
	child := newController("child", geometry.RectMake(0, 0, 800, 480))
	child.log = presenter.log

	before := make([]widget.Widget, len(presenter.Widget().Children()))
	copy(before, presenter.Widget().Children())

	if err := presenter.Present(child, viewcontroller.AnimationNone); err != nil {
		t.Fatalf("Present: %v", err)
	}

	if presenter.State() != viewcontroller.StatePresented {
		t.Errorf("state = %v, want StatePresented", presenter.State())
	}
	if presenter.PresentedController() != viewcontroller.Controller(child) {
		t.Error("presented controller binding missing")
	}
	if child.Presenter() != viewcontroller.Controller(presenter) {
		t.Error("presenter back-reference missing")
	}
	if child.Widget().Parent() != presenter.Widget() {
		t.Error("child widget not attached to presenter")
	}
	for i, s := range siblings {
		if !s.DrawInhibited() {
			t.Errorf("sibling %d not draw-inhibited after present", i)
		}
	}
	wantLog := []string{
		"child.willAppear", "presenter.willDisappear",
		"child.didAppear", "presenter.didDisappear",
	}
	got := *presenter.log
	if len(got) != len(wantLog) {
		t.Fatalf("lifecycle log = %v, want %v", got, wantLog)
	}
	for i := range wantLog {
		if got[i] != wantLog[i] {
			t.Fatalf("lifecycle log = %v, want %v", got, wantLog)
		}
	}

	if err := child.Dismiss(false); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	if presenter.State() != viewcontroller.StateIdle {
		t.Errorf("state after dismiss = %v, want StateIdle", presenter.State())
	}
	if child.Widget().Parent() != nil {
		t.Error("child widget still attached after dismiss")
	}
	after := presenter.Widget().Children()
	if len(after) != len(before) {
		t.Fatalf("child list length %d after round trip, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("child %d differs after round trip", i)
		}
	}
	for i, s := range siblings {
		if s.DrawInhibited() {
			t.Errorf("sibling %d still draw-inhibited after dismiss", i)
		}
	}
}

func TestSlideUpScenario(t *testing.T) {
	clock := slatetest.InstallFakeClock(t)

	h, presenter, siblings := presentedHost(t)
	child := newController("child", geometry.RectMake(0, 0, 800, 480))

	if err := presenter.Present(child, viewcontroller.AnimationSlideUp); err != nil {
		t.Fatalf("Present: %v", err)
	}

	if got := child.Widget().Frame().Origin.Y; got != 480 {
		t.Fatalf("initial origin.Y = %d, want 480", got)
	}
	if presenter.State() != viewcontroller.StatePresenting {
		t.Errorf("state = %v, want StatePresenting", presenter.State())
	}
	if !h.inhibited {
		t.Error("events not inhibited during transition")
	}

	lastY := 480
	for i := 0; i < 10; i++ {
		clock.Advance(40 * time.Millisecond)
		h.anim.Frame()
		y := child.Widget().Frame().Origin.Y
		if y > lastY {
			t.Fatalf("origin.Y increased from %d to %d mid-presentation", lastY, y)
		}
		lastY = y
	}

	if got := child.Widget().Frame().Origin.Y; got != 0 {
		t.Errorf("final origin.Y = %d, want 0", got)
	}
	if presenter.State() != viewcontroller.StatePresented {
		t.Errorf("state = %v, want StatePresented", presenter.State())
	}
	if h.inhibited {
		t.Error("events still inhibited after transition")
	}
	for i, s := range siblings {
		if !s.DrawInhibited() {
			t.Errorf("sibling %d not draw-inhibited after slide-up", i)
		}
	}
	if h.anim.HasCallbacks() {
		t.Error("transition callback still registered after completion")
	}
}

func TestAnimatedDismissReturnsToIdle(t *testing.T) {
	clock := slatetest.InstallFakeClock(t)

	h, presenter, siblings := presentedHost(t)
	child := newController("child", geometry.RectMake(0, 0, 800, 480))
	if err := presenter.Present(child, viewcontroller.AnimationNone); err != nil {
		t.Fatalf("Present: %v", err)
	}

	if err := presenter.DismissPresented(true); err != nil {
		t.Fatalf("DismissPresented: %v", err)
	}
	if presenter.State() != viewcontroller.StateDismissing {
		t.Errorf("state = %v, want StateDismissing", presenter.State())
	}
	for i, s := range siblings {
		if s.DrawInhibited() {
			t.Errorf("sibling %d still inhibited while sliding away", i)
		}
	}

	clock.Advance(viewcontroller.TransitionDuration)
	h.anim.Frame()

	if presenter.State() != viewcontroller.StateIdle {
		t.Errorf("state = %v, want StateIdle", presenter.State())
	}
	if child.Widget().Parent() != nil {
		t.Error("child widget still attached after animated dismiss")
	}
	if got := child.Widget().Frame().Origin.Y; got != 480 {
		t.Errorf("dismissed origin.Y = %d, want 480", got)
	}
}

func TestDismissDuringPresentationShortCircuits(t *testing.T) {
	clock := slatetest.InstallFakeClock(t)

	h, presenter, _ := presentedHost(t)
	child := newController("child", geometry.RectMake(0, 0, 800, 480))
	if err := presenter.Present(child, viewcontroller.AnimationSlideUp); err != nil {
		t.Fatalf("Present: %v", err)
	}
	clock.Advance(100 * time.Millisecond)
	h.anim.Frame()

	if err := presenter.DismissPresented(false); err != nil {
		t.Fatalf("DismissPresented mid-flight: %v", err)
	}
	if presenter.State() != viewcontroller.StateIdle {
		t.Errorf("state = %v, want StateIdle", presenter.State())
	}
	if h.inhibited {
		t.Error("events still inhibited after short-circuited transition")
	}
	if h.anim.HasCallbacks() {
		t.Error("orphaned transition callback after short circuit")
	}
}

func TestMenuButtonDismissesDeepestController(t *testing.T) {
	clock := slatetest.InstallFakeClock(t)

	h, presenter, _ := presentedHost(t)
	child := newController("child", geometry.RectMake(0, 0, 800, 480))
	child.menuDismiss = true
	if err := presenter.Present(child, viewcontroller.AnimationNone); err != nil {
		t.Fatalf("Present: %v", err)
	}

	press := event.Button{Kind: event.ButtonMenu, Down: true}
	if !viewcontroller.RouteButton(presenter, press) {
		t.Fatal("menu press not consumed by dismissing controller")
	}
	if presenter.State() != viewcontroller.StateDismissing {
		t.Errorf("state = %v, want StateDismissing", presenter.State())
	}

	clock.Advance(viewcontroller.TransitionDuration)
	h.anim.Frame()
	if presenter.State() != viewcontroller.StateIdle {
		t.Errorf("state = %v, want StateIdle after menu dismissal", presenter.State())
	}
}

func TestButtonBubblingAndVeto(t *testing.T) {
	_, presenter, _ := presentedHost(t)
	presenter.handleButton = true
	child := newController("child", geometry.RectMake(0, 0, 800, 480))
	if err := presenter.Present(child, viewcontroller.AnimationNone); err != nil {
		t.Fatalf("Present: %v", err)
	}

	press := event.Button{Kind: event.ButtonSelect, Down: true}
	if !viewcontroller.RouteButton(presenter, press) {
		t.Error("unconsumed child event did not bubble to presenter")
	}

	child.vetoButtons = true
	presenter.handleButton = true
	if viewcontroller.RouteButton(presenter, press) {
		t.Error("vetoed event still reached presenter")
	}
}
