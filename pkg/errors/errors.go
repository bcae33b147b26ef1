// Package errors provides structured error handling for the rui widget runtime.
//
// Recoverable conditions (an event nobody handled, a refused pointer grab) are
// ordinary return values and never pass through this package. What does pass
// through here are failures the runtime cannot route back to a caller: broken
// widget contracts, panics recovered by a driver, configuration errors.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLayout indicates a failure in the size/position passes.
	KindLayout
	// KindDispatch indicates a failure while routing an event or broadcast.
	KindDispatch
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindTheme indicates a theme or font loading failure.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindContract indicates a widget broke a runtime contract.
	KindContract
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindDispatch:
		return "dispatch"
	case KindConfig:
		return "config"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	case KindContract:
		return "contract"
	default:
		return "unknown"
	}
}

// RuiError represents a structured error in the runtime.
type RuiError struct {
	// Op is the operation that failed (e.g., "toolkit.HandleInput").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Window is the toolkit window id, if applicable (0 means none).
	Window uint64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RuiError) Error() string {
	if e.Window != 0 {
		return fmt.Sprintf("%s [%s] window=%d: %v", e.Op, e.Kind, e.Window, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RuiError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "toolkit.HandleInput").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ContractError is the panic value used when a widget implementation breaks
// a runtime contract: laying out before sizing, emitting a message nobody
// interprets, indexing text out of range. These indicate a bug in a widget,
// not a runtime condition, so they fail loudly.
type ContractError struct {
	// Op is the operation that detected the violation.
	Op string
	// Widget names the offending widget, if known.
	Widget string
	// Detail describes the violation.
	Detail string
}

func (e *ContractError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("contract violation in %s (%s): %s", e.Op, e.Widget, e.Detail)
	}
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Detail)
}

// Contract panics with a ContractError.
func Contract(op, widget, format string, args ...any) {
	panic(&ContractError{Op: op, Widget: widget, Detail: fmt.Sprintf(format, args...)})
}

// ErrorHandler receives errors reported by the runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RuiError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Sentinel errors carried in RuiError.Err.
var (
	// ErrPopupNotFound means a popup's widget or parent is not in the window.
	ErrPopupNotFound = sentinel("popup widget or parent not found")
	// ErrUpdateRounds means update broadcasts kept triggering further
	// broadcasts past the configured limit.
	ErrUpdateRounds = sentinel("update broadcast did not settle")
	// ErrUnsupportedVersion means a config file declares an unknown schema.
	ErrUnsupportedVersion = sentinel("unsupported config version")
)

type sentinel string

func (s sentinel) Error() string { return string(s) }
