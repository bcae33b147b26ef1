package core

import "sync/atomic"

// UpdateHandle is an opaque token for broadcasting to registered widgets,
// possibly in several windows.
type UpdateHandle uint64

var nextUpdateHandle atomic.Uint64

// NewUpdateHandle allocates a handle distinct from all others in the process.
func NewUpdateHandle() UpdateHandle {
	return UpdateHandle(nextUpdateHandle.Add(1))
}

// PendingUpdate is a triggered broadcast awaiting delivery.
type PendingUpdate struct {
	Handle  UpdateHandle
	Payload uint64
}
