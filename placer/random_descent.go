package placer

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/roadblock/internal/rlog"
	"github.com/katalvlaran/roadblock/placement"
)

// RandomDescent is a strict greedy hill-climber: each step proposes a
// random mutation and keeps it only if it strictly lowers total cost,
// undoing it otherwise (an equal-cost move is undone too). Cost is therefore monotonically non-increasing
// across the run.
type RandomDescent struct {
	grid     *placement.GatesGrid
	maxSteps int
	step     int
	log      *rlog.Logger
}

// NewRandomDescent returns a RandomDescent that will run for maxSteps
// Step calls against grid.
func NewRandomDescent(grid *placement.GatesGrid, maxSteps int, opts ...Option) *RandomDescent {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RandomDescent{grid: grid, maxSteps: maxSteps, log: cfg.log}
}

// Step proposes one mutation, keeps it if it strictly lowers total cost,
// and otherwise undoes it.
func (p *RandomDescent) Step() (bool, error) {
	if p.step >= p.maxSteps {
		return true, nil
	}

	before := p.grid.Cost()
	a, oldA, b, oldB, err := p.grid.Mutate()
	if err != nil {
		return false, err
	}
	after := p.grid.Cost()

	if after >= before {
		p.grid.UndoMutate(a, oldA, b, oldB)
		p.log.Debug("step rejected", zap.Int("step", p.step), zap.Float64("cost", before))
	} else {
		p.log.Debug("step accepted", zap.Int("step", p.step), zap.Float64("cost", after))
	}

	p.step++
	done := p.step >= p.maxSteps
	if done {
		p.log.Info("random descent finished", zap.Int("steps", p.step), zap.Float64("cost", p.grid.Cost()))
	}
	return done, nil
}

// StepsTaken reports how many Step calls have run so far.
func (p *RandomDescent) StepsTaken() int { return p.step }
