package errors

import (
	stderrors "errors"
	"testing"
	"time"
)

func TestErrorFormatting(t *testing.T) {
	err := Usage("widget.AddChild", ErrSelfChild)
	want := "widget.AddChild [usage]: cannot add widget to itself"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrapAndIs(t *testing.T) {
	err := Usage("viewcontroller.Present", ErrAlreadyPresenting)
	if !stderrors.Is(err, ErrAlreadyPresenting) {
		t.Error("errors.Is should match the wrapped sentinel")
	}
	if stderrors.Is(err, ErrNotPresenting) {
		t.Error("errors.Is should not match a different sentinel")
	}
	if stderrors.Unwrap(err) != ErrAlreadyPresenting {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestKindStrings(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:  "unknown",
		KindUsage:    "usage",
		KindResource: "resource",
		KindRender:   "render",
		KindEvent:    "event",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}

type captureHandler struct {
	errs []*Error
}

func (h *captureHandler) HandleError(err *Error) {
	h.errs = append(h.errs, err)
}

func TestReportUsesGlobalHandler(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(&Error{Op: "screen.ProcessEvents", Kind: KindEvent, Err: stderrors.New("no recipient")})
	Report(nil) // must be a no-op

	if len(capture.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(capture.errs))
	}
	if capture.errs[0].Timestamp.Equal(time.Time{}) {
		t.Error("Report should stamp a zero timestamp")
	}
}
