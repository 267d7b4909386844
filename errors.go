package graph2d

import "errors"

// ErrInvalidArgument is returned when a required reference is nil or a
// configuration value is not recognized.
var ErrInvalidArgument = errors.New("graph2d: invalid argument")

// ErrAlreadyAttached is returned by Trace.SetGraph when the trace already
// draws on a graph. Other components may hold references to the first
// graph, so re-binding is never allowed.
var ErrAlreadyAttached = errors.New("graph2d: trace already attached to a graph")
