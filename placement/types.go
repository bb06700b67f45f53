package placement

import "github.com/katalvlaran/roadblock/internal/rlog"

// placeRetryCountDefault is the number of random-tile attempts a logic
// gate gets before placement gives up and reports ErrGridExhausted.
const placeRetryCountDefault = 1000

// empty marks an occupancy tile as unoccupied.
const empty = -1

// Options configures grid construction. Use the With... functions with
// New rather than constructing Options directly, matching the functional-
// options convention used throughout this engine.
type Options struct {
	seed            int64
	placeRetryCount int
	log             *rlog.Logger
}

// Option mutates an Options during construction.
type Option func(*Options)

func defaultOptions() Options {
	return Options{seed: 0, placeRetryCount: placeRetryCountDefault, log: rlog.Nop()}
}

// WithLogger attaches a logger the grid uses to report construction and
// per-mutation detail. Defaults to a no-op logger.
func WithLogger(log *rlog.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithSeed fixes the PRNG seed driving random placement and mutation. A
// seed of 0 (the default) asks internal/rng for its own default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithPlaceRetryCount overrides the number of random-tile attempts a
// logic gate gets before placement fails. Panics if n is not positive,
// since a non-positive retry budget can never place a single gate.
func WithPlaceRetryCount(n int) Option {
	if n <= 0 {
		panic("placement: WithPlaceRetryCount requires n > 0")
	}
	return func(o *Options) { o.placeRetryCount = n }
}
