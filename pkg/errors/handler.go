package errors

import (
	"fmt"
	"os"
	"sync"
)

// ErrorHandler receives errors reported by the engine for conditions that
// are tolerated rather than surfaced to the caller.
type ErrorHandler interface {
	HandleError(err *Error)
}

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// Report sends an error to the global handler.
func Report(err *Error) {
	if err == nil {
		return
	}
	handlerMu.RLock()
	h := DefaultHandler
	handlerMu.RUnlock()
	if h != nil {
		h.HandleError(err)
	}
}

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct{}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[motion error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
}
