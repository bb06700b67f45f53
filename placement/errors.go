package placement

import "errors"

// ErrGridExhausted is returned when a gate or port cannot be placed after
// exhausting every available slot: PlaceRetryCount random attempts for a
// logic gate, or the perimeter iterator running dry for a port.
var ErrGridExhausted = errors.New("placement: grid exhausted")

// ErrCorruptState is returned when an internal invariant that the caller
// cannot recover from has been violated — for example, Mutate finding
// fewer than two non-port gates, or a gate expected to be placed having
// no recorded position.
var ErrCorruptState = errors.New("placement: corrupt state")

// ErrInvalidDim is returned when a requested grid dimension cannot host a
// single 1x1 tile outside the perimeter (both axes must be at least 3).
var ErrInvalidDim = errors.New("placement: invalid grid dimension")
