// Package errors provides structured error handling for the slate toolkit.
//
// The runtime has two error categories: usage errors (a programming error in
// the host application, such as presenting a view controller twice) and
// resource errors (a drawing surface could not be set up). Both are reported
// synchronously to the caller; there are no transient, retryable errors.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUsage indicates a misuse of the toolkit API by the host application.
	KindUsage
	// KindResource indicates a pixel buffer or drawing surface failure.
	KindResource
	// KindRender indicates a failure while compositing a frame.
	KindRender
	// KindEvent indicates an input event that could not be dispatched.
	KindEvent
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindResource:
		return "resource"
	case KindRender:
		return "render"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Sentinel usage errors returned by the widget tree and the presentation
// coordinator. Match with errors.Is.
var (
	// ErrNilWidget indicates a nil widget was passed where one is required.
	ErrNilWidget = stderrors.New("invalid nil widget")
	// ErrSelfChild indicates a widget was added as a child of itself.
	ErrSelfChild = stderrors.New("cannot add widget to itself")
	// ErrCycle indicates adding the widget would create a cycle in the tree.
	ErrCycle = stderrors.New("widget is an ancestor of the target")
	// ErrNilController indicates a nil view controller was passed.
	ErrNilController = stderrors.New("invalid nil view controller")
	// ErrAlreadyPresenting indicates a controller is already presenting a child.
	ErrAlreadyPresenting = stderrors.New("already presenting a view controller")
	// ErrNotPresenting indicates a dismissal with no presented child.
	ErrNotPresenting = stderrors.New("not presenting a view controller")
	// ErrNotPresented indicates a dismissal of a controller that has no presenter.
	ErrNotPresented = stderrors.New("view controller was not presented")
	// ErrOffScreen indicates an animated transition on a widget tree that is
	// not attached to a screen.
	ErrOffScreen = stderrors.New("widget tree is not attached to a screen")
	// ErrWidgetNotFound indicates a widget expected in a tree was missing.
	ErrWidgetNotFound = stderrors.New("widget not found in its parent")
	// ErrInvalidFormat indicates an unsupported pixel format.
	ErrInvalidFormat = stderrors.New("invalid pixel format")
	// ErrInvalidSize indicates a zero or negative screen size.
	ErrInvalidSize = stderrors.New("invalid screen size")
	// ErrBufferTooSmall indicates an external pixel buffer cannot hold one
	// full frame at the given stride.
	ErrBufferTooSmall = stderrors.New("pixel buffer too small for frame")
	// ErrUnknownButton indicates a button event no widget or controller
	// handled.
	ErrUnknownButton = stderrors.New("unhandled button event")
)

// Error is a structured error produced by the toolkit.
type Error struct {
	// Op is the operation that failed (e.g. "widget.AddChild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Usage wraps err as a usage error for the given operation.
func Usage(op string, err error) *Error {
	return &Error{Op: op, Kind: KindUsage, Err: err}
}

// Resource wraps err as a resource error for the given operation.
func Resource(op string, err error) *Error {
	return &Error{Op: op, Kind: KindResource, Err: err}
}

// Event wraps err as an event dispatch error for the given operation.
func Event(op string, err error) *Error {
	return &Error{Op: op, Kind: KindEvent, Err: err}
}

// Is supports errors.Is against the wrapped error.
func (e *Error) Is(target error) bool {
	return stderrors.Is(e.Err, target)
}
