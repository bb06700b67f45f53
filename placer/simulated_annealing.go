package placer

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadblock/internal/rlog"
	"github.com/katalvlaran/roadblock/internal/rng"
	"github.com/katalvlaran/roadblock/placement"
)

// SimulatedAnnealing accepts cost-increasing mutations under the
// Metropolis criterion, with a quadratically cooling temperature
// schedule:
//
//	temp = minTemp + (initTemp-minTemp) * ((maxSteps-steps)/maxSteps)^2
//
// Step 0 sits at initTemp; step maxSteps sits at minTemp; the descent
// is steepest at first and flattens out as it approaches minTemp.
// A step terminates the run either at maxSteps or once temp drops below
// minTemp (guarding the quadratic formula's own floor against floating
// noise near the tail).
//
// BestCost tracks the lowest cost any *proposed* mutation has reached,
// not just accepted ones — a worse move that gets undone can still have
// briefly touched a lower cost than anything accepted so far, and the
// spec's best_cost is an observed watermark, not a committed one.
type SimulatedAnnealing struct {
	grid     *placement.GatesGrid
	rng      *rand.Rand
	maxSteps int
	step     int

	initTemp float64
	minTemp  float64

	bestCost float64
	log      *rlog.Logger
}

// NewSimulatedAnnealing returns a SimulatedAnnealing that will run for up
// to maxSteps Step calls against grid, cooling from initTemp toward
// minTemp, sampling acceptance decisions from its own PRNG stream
// derived from seed (0 uses internal/rng's default).
func NewSimulatedAnnealing(grid *placement.GatesGrid, maxSteps int, initTemp, minTemp float64, seed int64, opts ...Option) *SimulatedAnnealing {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SimulatedAnnealing{
		grid:     grid,
		rng:      rng.FromSeed(seed),
		maxSteps: maxSteps,
		initTemp: initTemp,
		minTemp:  minTemp,
		bestCost: grid.Cost(),
		log:      cfg.log,
	}
}

// Temperature returns the current step's temperature under the
// quadratic cooling schedule. A non-positive maxSteps yields minTemp
// directly, guarding against division by zero.
func (s *SimulatedAnnealing) Temperature() float64 {
	if s.maxSteps <= 0 {
		return s.minTemp
	}
	remain := float64(s.maxSteps-s.step) / float64(s.maxSteps)
	return s.minTemp + (s.initTemp-s.minTemp)*remain*remain
}

// BestCost returns the lowest cost observed across every proposed
// mutation so far, accepted or not.
func (s *SimulatedAnnealing) BestCost() float64 { return s.bestCost }

// Step proposes one mutation. It accepts outright if the new cost is
// strictly lower than the cost before the move; otherwise it computes
// the Metropolis acceptance probability p = exp(-delta/temp) and accepts
// with probability p. At temp <= 0, p is taken to be exactly 0 (never
// accept) rather than evaluating the exponential, matching the spec's
// numeric-edge requirement; for temp > 0 but delta/temp very large,
// math.Exp underflows p toward 0 on its own, so no separate overflow
// guard is needed there.
func (s *SimulatedAnnealing) Step() (bool, error) {
	if s.step >= s.maxSteps || s.Temperature() < s.minTemp {
		return true, nil
	}

	before := s.grid.Cost()
	a, oldA, b, oldB, err := s.grid.Mutate()
	if err != nil {
		return false, err
	}
	after := s.grid.Cost()

	if after < s.bestCost {
		s.bestCost = after
	}

	accept := after < before
	if !accept {
		delta := after - before
		temp := s.Temperature()
		if temp > 0 {
			accept = s.rng.Float64() < math.Exp(-delta/temp)
		}
	}

	if !accept {
		s.grid.UndoMutate(a, oldA, b, oldB)
		s.log.Debug("step rejected", zap.Int("step", s.step), zap.Float64("cost", before), zap.Float64("temperature", s.Temperature()))
	} else {
		s.log.Debug("step accepted", zap.Int("step", s.step), zap.Float64("cost", after), zap.Float64("temperature", s.Temperature()))
	}

	s.step++
	done := s.step >= s.maxSteps || s.Temperature() < s.minTemp
	if done {
		s.log.Info("annealing finished", zap.Int("steps", s.step), zap.Float64("best_cost", s.bestCost))
	}
	return done, nil
}

// StepsTaken reports how many Step calls have run so far.
func (s *SimulatedAnnealing) StepsTaken() int { return s.step }
