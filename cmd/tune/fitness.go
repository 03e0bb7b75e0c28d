package main

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/pthm-cable/liftoff/config"
	"github.com/pthm-cable/liftoff/input"
	"github.com/pthm-cable/liftoff/sim"
	"github.com/pthm-cable/liftoff/telemetry"
)

// FitnessEvaluator runs headless flights and scores them by peak altitude.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	baseConfig *config.Config
	quiet      *slog.Logger

	mu          sync.Mutex
	bestFitness float64
	bestSummary telemetry.Summary
	lastSummary telemetry.Summary
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		baseConfig:  baseCfg,
		quiet:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		bestFitness: math.Inf(1),
	}
}

// BestSummary returns the flight summary of the best evaluation so far.
func (fe *FitnessEvaluator) BestSummary() telemetry.Summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestSummary
}

// LastSummary returns the flight summary of the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() telemetry.Summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// Evaluate computes fitness for raw parameter values (lower = better).
// Fitness is the negative peak altitude in metres; a flight that fails to
// land within maxTicks scores +Inf.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	sum, ok := fe.runFlight(cfg)
	fitness := math.Inf(1)
	if ok {
		fitness = -sum.PeakAltitudeM
	}

	fe.mu.Lock()
	fe.lastSummary = sum
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestSummary = sum
	}
	fe.mu.Unlock()

	return fitness
}

// runFlight launches on the first frame and steps at the headless dt until
// landing. It reports false when the config is invalid or the body never lands.
func (fe *FitnessEvaluator) runFlight(cfg *config.Config) (telemetry.Summary, bool) {
	if err := cfg.Validate(); err != nil {
		return telemetry.Summary{}, false
	}
	s, err := sim.New(cfg, sim.Options{Logger: fe.quiet})
	if err != nil {
		return telemetry.Summary{}, false
	}
	script := input.NewScript().At(0, input.Press(cfg.Input.LaunchKey))
	sum := s.RunHeadless(script, cfg.Derived.FrameDT, fe.maxTicks)
	return sum, s.Landed()
}

// copyConfig returns an independent copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
