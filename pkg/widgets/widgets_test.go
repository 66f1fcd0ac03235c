package widgets_test

import (
	"testing"

	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/slatetest"
	"github.com/go-slate/slate/pkg/widgets"
)

// buttonFixture nests the button under an offset panel so event handling
// has to convert screen coordinates.
func buttonFixture(t *testing.T) (*widgets.Button, *int) {
	t.Helper()
	root := widgets.NewContainer(geometry.RectMake(0, 0, 400, 300))
	panel := widgets.NewContainer(geometry.RectMake(100, 100, 200, 100))
	button := widgets.NewButton(geometry.RectMake(20, 20, 100, 40), "OK")
	taps := new(int)
	button.OnTap = func() { *taps++ }
	if err := root.AddChild(panel, false); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := panel.AddChild(button, false); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	return button, taps
}

func touch(x, y int, down bool) event.Touch {
	return event.Touch{Position: geometry.Point{X: x, Y: y}, Down: down}
}

func TestButtonTap(t *testing.T) {
	button, taps := buttonFixture(t)

	// Button occupies screen rect (120,120)-(220,160).
	if !button.HandleTouchEvent(touch(150, 140, true)) {
		t.Fatal("touch-down inside button not consumed")
	}
	if !button.IsPressed() {
		t.Error("button not pressed after touch-down")
	}
	button.HandleTouchEvent(touch(150, 150, false))
	if button.IsPressed() {
		t.Error("button still pressed after release")
	}
	if *taps != 1 {
		t.Errorf("taps = %d, want 1", *taps)
	}
}

func TestButtonDragOutCancels(t *testing.T) {
	button, taps := buttonFixture(t)

	button.HandleTouchEvent(touch(150, 140, true))
	// Drag beyond the bounds, then release there.
	button.HandleTouchEvent(touch(350, 280, true))
	if button.IsPressed() {
		t.Error("button still highlighted after drag-out")
	}
	button.HandleTouchEvent(touch(350, 280, false))
	if *taps != 0 {
		t.Errorf("taps = %d after outside release, want 0", *taps)
	}
}

func TestButtonIgnoresTouchOutside(t *testing.T) {
	button, _ := buttonFixture(t)
	if button.HandleTouchEvent(touch(10, 10, true)) {
		t.Error("touch-down outside button consumed")
	}
}

func TestCheckboxToggle(t *testing.T) {
	box := widgets.NewCheckbox(geometry.RectMake(0, 0, 24, 24))
	var got []bool
	box.OnChanged = func(v bool) { got = append(got, v) }

	// Toggles on release inside.
	if box.HandleTouchEvent(touch(5, 5, true)) {
		t.Error("checkbox consumed touch-down")
	}
	if !box.HandleTouchEvent(touch(5, 5, false)) {
		t.Fatal("release inside checkbox not consumed")
	}
	if !box.Value() {
		t.Error("checkbox not checked after toggle")
	}
	box.HandleTouchEvent(touch(5, 5, false))
	if box.Value() {
		t.Error("checkbox still checked after second toggle")
	}
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("OnChanged sequence = %v, want [true false]", got)
	}
}

func TestCheckboxSetValueSkipsCallback(t *testing.T) {
	box := widgets.NewCheckbox(geometry.RectMake(0, 0, 24, 24))
	called := false
	box.OnChanged = func(bool) { called = true }
	box.SetValue(true)
	if !box.Value() || called {
		t.Errorf("SetValue: value=%v called=%v, want true/false", box.Value(), called)
	}
}

func TestLabelDirtyOnChange(t *testing.T) {
	label := widgets.NewLabel(geometry.RectMake(0, 0, 100, 20), "hello")
	canvas := slatetest.NewRecordingCanvas()
	label.Draw(canvas, true)
	if label.IsDirty() {
		t.Fatal("label dirty after draw")
	}

	label.SetText("hello")
	if label.IsDirty() {
		t.Error("unchanged text marked the label dirty")
	}
	label.SetText("world")
	if !label.IsDirty() {
		t.Error("changed text did not mark the label dirty")
	}
}

func TestLabelAlignment(t *testing.T) {
	label := widgets.NewLabel(geometry.RectMake(0, 0, 200, 20), "hi")
	label.SetAlignment(widgets.AlignRight)
	canvas := slatetest.NewRecordingCanvas()
	label.Draw(canvas, true)

	var at geometry.Point
	found := false
	for _, op := range canvas.Ops {
		if op.Name == "text" {
			at = op.Point
			found = true
		}
	}
	if !found {
		t.Fatal("no text drawn")
	}
	if at.X <= 100 {
		t.Errorf("right-aligned text at X=%d, want right of center", at.X)
	}
}

func TestProgressBarClamping(t *testing.T) {
	bar := widgets.NewProgressBar(geometry.RectMake(0, 0, 100, 8))
	bar.SetProgress(1.7)
	if bar.Progress() != 1 {
		t.Errorf("progress = %v, want clamp to 1", bar.Progress())
	}
	bar.SetProgress(-0.3)
	if bar.Progress() != 0 {
		t.Errorf("progress = %v, want clamp to 0", bar.Progress())
	}
}

func TestProgressBarFillWidth(t *testing.T) {
	bar := widgets.NewProgressBar(geometry.RectMake(0, 0, 100, 8))
	bar.SetColors(graphics.RGB(1, 1, 1), graphics.RGB(2, 2, 2))
	bar.SetProgress(0.5)

	canvas := slatetest.NewRecordingCanvas()
	bar.Draw(canvas, true)

	fills := canvas.FillsOf(graphics.RGB(2, 2, 2))
	if len(fills) != 1 {
		t.Fatalf("fill ops = %d, want 1", len(fills))
	}
	if fills[0].Size.Width != 50 {
		t.Errorf("fill width = %d, want 50", fills[0].Size.Width)
	}
}

func TestProgressBarIndeterminateAnimates(t *testing.T) {
	bar := widgets.NewProgressBar(geometry.RectMake(0, 0, 100, 8))
	bar.SetIndeterminate(true)

	canvas := slatetest.NewRecordingCanvas()
	bar.Draw(canvas, true)
	if bar.IsDirty() {
		t.Fatal("bar dirty after draw")
	}
	bar.AnimationFrame()
	if !bar.IsDirty() {
		t.Error("indeterminate bar not dirtied by an animation frame")
	}

	bar.SetIndeterminate(false)
	bar.Draw(canvas, true)
	bar.AnimationFrame()
	if bar.IsDirty() {
		t.Error("determinate bar dirtied by an animation frame")
	}
}

func TestContainerOpacity(t *testing.T) {
	c := widgets.NewContainer(geometry.RectMake(0, 0, 10, 10))
	if c.IsOpaque() {
		t.Error("transparent container reports opaque")
	}
	c.SetBackground(graphics.RGB(10, 10, 10))
	if !c.IsOpaque() {
		t.Error("solid container reports non-opaque")
	}
	c.SetCornerRadius(4)
	if c.IsOpaque() {
		t.Error("rounded container reports opaque")
	}
}
