package errors

import (
	"sync"
	"time"
)

// Handler receives non-fatal diagnostics reported by the toolkit, such as
// input events with no recipient. Fatal errors are returned to the caller
// and never pass through a Handler.
type Handler interface {
	HandleError(err *Error)
}

var (
	defaultHandler Handler = &LogHandler{}
	handlerMu      sync.RWMutex
)

// SetHandler configures the global diagnostics handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = &LogHandler{}
	} else {
		defaultHandler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}
