package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs diagnostics to stderr.
type LogHandler struct {
	// Verbose enables timestamps in the output.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[slate %s] %s %s: %v\n",
			err.Kind, err.Timestamp.Format("15:04:05.000"), err.Op, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[slate %s] %s: %v\n", err.Kind, err.Op, err.Err)
	}
}
