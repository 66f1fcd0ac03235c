// Package event defines the input events routed to widgets and the
// thread-safe queue producers inject them through.
package event

import "github.com/go-slate/slate/pkg/geometry"

// Event is one of Touch, Scroll, or Button.
type Event interface {
	isEvent()
}

// Touch indicates a touch took place. Touch events are emitted when a touch
// goes down, whenever it moves while down, and once more when it is released.
type Touch struct {
	// Position is the center point of the touch, in screen coordinates.
	Position geometry.Point
	// Down is whether the touch is currently pressed.
	Down bool
}

func (Touch) isEvent() {}

// Scroll is a relative scroll step, generated by hardware such as rotary
// encoders.
type Scroll struct {
	// Delta is the number of scroll steps since the last event. Negative
	// values scroll up/left, positive values down/right.
	Delta int
}

func (Scroll) isEvent() {}

// ButtonKind identifies a hardware button the toolkit routes.
type ButtonKind uint8

const (
	// ButtonSelect is the selection button (such as an encoder push).
	ButtonSelect ButtonKind = 1 << iota
	// ButtonMenu is the menu (or back) button.
	ButtonMenu
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonSelect:
		return "select"
	case ButtonMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Button is a hardware button press or release.
type Button struct {
	Kind ButtonKind
	// Down is whether the button was pressed (true) or released (false).
	Down bool
}

func (Button) isEvent() {}
