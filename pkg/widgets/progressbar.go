package widgets

import (
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/widget"
)

// ProgressBar displays determinate progress or an indeterminate sweep.
type ProgressBar struct {
	widget.Base

	progress      float64
	indeterminate bool
	// phase is the left edge of the indeterminate sweep, as a fraction.
	phase float64

	track graphics.Color
	fill  graphics.Color
}

// NewProgressBar creates an empty determinate bar.
func NewProgressBar(frame geometry.Rect) *ProgressBar {
	p := &ProgressBar{
		track: graphics.RGB(55, 55, 55),
		fill:  graphics.RGB(33, 150, 243),
	}
	p.Init(p, frame)
	return p
}

// Progress returns the current progress in [0, 1].
func (p *ProgressBar) Progress() float64 { return p.progress }

// SetProgress sets determinate progress, clamped to [0, 1].
func (p *ProgressBar) SetProgress(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if v == p.progress && !p.indeterminate {
		return
	}
	p.progress = v
	p.indeterminate = false
	p.SetNeedsDisplay()
}

// SetIndeterminate switches between the animated sweep and determinate
// display.
func (p *ProgressBar) SetIndeterminate(on bool) {
	if on == p.indeterminate {
		return
	}
	p.indeterminate = on
	p.phase = 0
	p.SetNeedsDisplay()
}

// SetColors sets the track and fill colors.
func (p *ProgressBar) SetColors(track, fill graphics.Color) {
	p.track = track
	p.fill = fill
	p.SetNeedsDisplay()
}

// WantsAnimation drives the indeterminate sweep. Registration follows the
// widget onto and off the screen; the frame hook itself checks the mode.
func (p *ProgressBar) WantsAnimation() bool { return true }

func (p *ProgressBar) AnimationFrame() {
	if !p.indeterminate {
		return
	}
	p.phase += 0.02
	if p.phase >= 1 {
		p.phase = -sweepWidth
	}
	p.SetNeedsDisplay()
}

// sweepWidth is the indeterminate segment width as a fraction of the bar.
const sweepWidth = 0.3

func (p *ProgressBar) IsOpaque() bool { return p.track.IsOpaque() }

func (p *ProgressBar) Draw(g graphics.Canvas, everything bool) {
	b := p.Bounds()
	g.FillRect(b, p.track)

	w := b.Size.Width
	if p.indeterminate {
		x := int(p.phase * float64(w))
		seg := geometry.RectMake(x, 0, int(sweepWidth*float64(w)), b.Size.Height)
		g.FillRect(seg.Intersect(b), p.fill)
	} else if p.progress > 0 {
		g.FillRect(geometry.RectMake(0, 0, int(p.progress*float64(w)), b.Size.Height), p.fill)
	}
	p.Base.Draw(g, everything)
}
