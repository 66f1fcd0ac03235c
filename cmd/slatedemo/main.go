// Command slatedemo runs the toolkit on a simulated framebuffer inside an
// ebiten window. The mouse acts as the touch screen, the wheel as a scroll
// encoder, and Enter/Escape as the select and menu buttons.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-slate/slate/cmd/slatedemo/internal/config"
	"github.com/go-slate/slate/pkg/event"
	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/screen"
	"github.com/go-slate/slate/pkg/viewcontroller"
	"github.com/go-slate/slate/pkg/widget"
	"github.com/go-slate/slate/pkg/widgets"
)

func main() {
	dir := flag.String("config", ".", "directory containing slate.yaml")
	flag.Parse()

	cfg, err := config.Resolve(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "slatedemo:", err)
		os.Exit(1)
	}

	scr, err := screen.New(cfg.Format, cfg.Size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "slatedemo:", err)
		os.Exit(1)
	}
	scr.SetScale(cfg.Scale)
	scr.SetRotation(cfg.Rotation)
	scr.SetBackground(cfg.Background)
	scr.SetRootViewController(newMainController(scr.Size()))

	g := &game{scr: scr, size: cfg.Size}
	g.pix = make([]byte, 4*cfg.Size.Width*cfg.Size.Height)

	ebiten.SetWindowSize(cfg.Size.Width, cfg.Size.Height)
	ebiten.SetWindowTitle("slate demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	scr  *screen.Screen
	size geometry.Size

	pix      []byte
	mouseWas bool
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if down || g.mouseWas {
		g.scr.QueueEvent(event.Touch{Position: geometry.Point{X: x, Y: y}, Down: down}, false)
	}
	g.mouseWas = down

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.scr.QueueEvent(event.Scroll{Delta: int(-wheelY)}, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.scr.QueueEvent(event.Button{Kind: event.ButtonSelect, Down: true}, false)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		g.scr.QueueEvent(event.Button{Kind: event.ButtonSelect, Down: false}, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scr.QueueEvent(event.Button{Kind: event.ButtonMenu, Down: true}, false)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		g.scr.QueueEvent(event.Button{Kind: event.ButtonMenu, Down: false}, false)
	}

	g.scr.ProcessEvents()
	g.scr.HandleAnimations()
	return nil
}

func (g *game) Draw(dst *ebiten.Image) {
	if g.scr.IsDirty() {
		g.scr.Redraw()
	}
	decodeFrame(g.scr.Format(), g.scr.Buffer(), g.scr.BufferStride(), g.size, g.pix)
	dst.WritePixels(g.pix)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.size.Width, g.size.Height
}

// decodeFrame expands a framebuffer row-by-row into the premultiplied RGBA
// layout ebiten presents.
func decodeFrame(format graphics.PixelFormat, buf []byte, stride int, size geometry.Size, out []byte) {
	for y := 0; y < size.Height; y++ {
		row := buf[y*stride:]
		o := out[y*size.Width*4:]
		for x := 0; x < size.Width; x++ {
			var r, g, b, a uint8
			switch format {
			case graphics.ARGB32:
				b, g, r, a = row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]
			case graphics.RGB24:
				b, g, r, a = row[x*4], row[x*4+1], row[x*4+2], 0xFF
			case graphics.RGB16:
				v := uint16(row[x*2]) | uint16(row[x*2+1])<<8
				r = uint8(v >> 11 << 3)
				g = uint8(v >> 5 << 2)
				b = uint8(v << 3)
				a = 0xFF
			case graphics.RGB30:
				v := uint32(row[x*4]) | uint32(row[x*4+1])<<8 |
					uint32(row[x*4+2])<<16 | uint32(row[x*4+3])<<24
				r = uint8(v >> 22)
				g = uint8(v >> 12)
				b = uint8(v >> 2)
				a = 0xFF
			}
			o[x*4], o[x*4+1], o[x*4+2], o[x*4+3] = r, g, b, a
		}
	}
}

// mainController is the demo's root screen: a handful of controls and a
// button that presents a modal sheet.
type mainController struct {
	viewcontroller.Base
	root *widgets.Container

	bar *widgets.ProgressBar
}

func newMainController(size geometry.Size) *mainController {
	c := &mainController{}
	c.Init(c)

	c.root = widgets.NewContainer(geometry.Rect{Size: size})
	c.root.SetBackground(graphics.RGB(0x20, 0x20, 0x20))

	title := widgets.NewLabel(geometry.RectMake(20, 20, size.Width-40, 24), "slate demo")
	title.SetAlignment(widgets.AlignCenter)
	c.root.AddChild(title, false)

	c.bar = widgets.NewProgressBar(geometry.RectMake(20, 60, size.Width-40, 10))
	c.bar.SetProgress(0.4)
	c.root.AddChild(c.bar, false)

	check := widgets.NewCheckbox(geometry.RectMake(20, 90, 24, 24))
	check.OnChanged = func(v bool) { c.bar.SetIndeterminate(v) }
	c.root.AddChild(check, false)

	checkLabel := widgets.NewLabel(geometry.RectMake(54, 92, 200, 20), "indeterminate")
	c.root.AddChild(checkLabel, false)

	present := widgets.NewButton(geometry.RectMake(20, 130, 140, 40), "Present")
	present.OnTap = func() {
		sheet := newSheetController(size)
		if err := c.Present(sheet, viewcontroller.AnimationSlideUp); err != nil {
			log.Println("present:", err)
		}
	}
	c.root.AddChild(present, false)

	return c
}

func (c *mainController) Widget() widget.Widget { return c.root }

// sheetController is the modal content: a filled panel with a close button.
// Escape (the menu button) dismisses it too.
type sheetController struct {
	viewcontroller.Base
	root *widgets.Container
}

func newSheetController(size geometry.Size) *sheetController {
	c := &sheetController{}
	c.Init(c)

	c.root = widgets.NewContainer(geometry.Rect{Size: size})
	c.root.SetBackground(graphics.RGB(0x10, 0x2A, 0x43))

	title := widgets.NewLabel(geometry.RectMake(20, 20, size.Width-40, 24), "modal sheet")
	title.SetAlignment(widgets.AlignCenter)
	c.root.AddChild(title, false)

	closeButton := widgets.NewButton(geometry.RectMake(20, 60, 140, 40), "Close")
	closeButton.OnTap = func() {
		if err := c.Dismiss(true); err != nil {
			log.Println("dismiss:", err)
		}
	}
	c.root.AddChild(closeButton, false)

	return c
}

func (c *sheetController) Widget() widget.Widget { return c.root }

func (c *sheetController) DismissesOnMenuPress() bool { return true }
