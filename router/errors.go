package router

import "errors"

// ErrRoutingDeadEnd is returned when the outer rip-up-and-reroute loop
// exhausts its iteration cap with routes still pending: the caller's
// recourse is to re-run placement with a different seed or a larger
// grid, not to retry routing as-is.
var ErrRoutingDeadEnd = errors.New("router: routing dead end")

// ErrInvalidLayers is returned when a router session is requested with
// a non-positive layer count.
var ErrInvalidLayers = errors.New("router: invalid layer count")
