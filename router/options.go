package router

import "github.com/katalvlaran/roadblock/internal/rlog"

// config holds Route's optional settings, built via With... functions —
// the same functional-options idiom placement and placer use.
type config struct {
	log *rlog.Logger
}

// Option mutates a config during Route construction.
type Option func(*config)

func defaultConfig() config {
	return config{log: rlog.Nop()}
}

// WithLogger attaches a logger Route uses to report per-net routing
// outcomes and rip-up-and-reroute rounds. Defaults to a no-op logger.
func WithLogger(log *rlog.Logger) Option {
	return func(c *config) { c.log = log }
}
