package widget

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-slate/slate/pkg/animation"
	"github.com/go-slate/slate/pkg/geometry"
)

// AnimateFrameOrigin builds an animator callback that slides w's frame
// origin from its current position to the given target over the duration,
// shaped by the easing function. The callback retires itself once the
// target is reached.
//
// Register the result with the animator of the screen hosting w:
//
//	anim.Register(widget.AnimateFrameOrigin(w, target, 350*time.Millisecond, ease.InOutQuad))
func AnimateFrameOrigin(w Widget, to geometry.Point, d time.Duration, fn ease.TweenFunc) animation.Callback {
	from := w.Frame().Origin
	seconds := float32(d.Seconds())
	tx := gween.New(float32(from.X), float32(to.X), seconds, fn)
	ty := gween.New(float32(from.Y), float32(to.Y), seconds, fn)
	last := animation.Now()

	return func() bool {
		now := animation.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		x, _ := tx.Update(dt)
		y, done := ty.Update(dt)

		frame := w.Frame()
		frame.Origin = geometry.Point{
			X: int(math.Round(float64(x))),
			Y: int(math.Round(float64(y))),
		}
		w.SetFrame(frame)
		return !done
	}
}
