package live

import "errors"

var (
	// ErrNodeNotFound is returned when an event targets a HID that is not
	// part of the current tree.
	ErrNodeNotFound = errors.New("live: node not found")

	// ErrSessionClosed is returned by every operation after Close.
	ErrSessionClosed = errors.New("live: session closed")

	// ErrRenderLoop is returned when binding element references keeps
	// invalidating the tree.
	ErrRenderLoop = errors.New("live: render did not settle")
)
