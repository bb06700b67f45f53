package placer

import "github.com/katalvlaran/roadblock/internal/rlog"

// config holds a Placer's optional settings, built via With... functions
// — the same functional-options idiom placement and router use. Unlike
// placement.Options, it carries no mandatory fields: RandomDescent and
// SimulatedAnnealing already take their required parameters (grid,
// maxSteps, and for annealing initTemp/minTemp/seed) positionally, per
// spec §4.4 treating those as unconditionally required rather than
// optional configuration.
type config struct {
	log *rlog.Logger
}

// Option mutates a config during construction.
type Option func(*config)

func defaultConfig() config {
	return config{log: rlog.Nop()}
}

// WithLogger attaches a logger a Placer uses to report per-step mutation
// detail and run milestones. Defaults to a no-op logger.
func WithLogger(log *rlog.Logger) Option {
	return func(c *config) { c.log = log }
}
