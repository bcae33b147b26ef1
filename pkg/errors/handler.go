package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// slot wraps the installed handler; atomic.Pointer needs a concrete type.
type slot struct{ h ErrorHandler }

var installed atomic.Pointer[slot]

func init() {
	installed.Store(&slot{h: &LogHandler{}})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return installed.Load().h
}

// SetHandler installs h as the global error handler and returns the one it
// replaces. Passing nil installs a quiet LogHandler writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return installed.Swap(&slot{h: h}).h
}

// Report sends err to the installed handler, stamping it if needed.
func Report(err *RuiError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic sends a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress under op and stops it.
//
//	defer errors.Recover("toolkit.Draw")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, r))
	}
}

// RecoverWithCallback is Recover followed by callback(r), which lets the
// caller unwind its own state after a panicking dispatch.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, r))
		if callback != nil {
			callback(r)
		}
	}
}

func newPanic(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: captureStack(4),
		Timestamp:  time.Now(),
	}
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
