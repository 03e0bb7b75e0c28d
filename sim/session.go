// Package sim drives one launch: input, thrust, integration, scene and telemetry,
// in that order, once per frame.
package sim

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/liftoff/config"
	"github.com/pthm-cable/liftoff/flight"
	"github.com/pthm-cable/liftoff/input"
	"github.com/pthm-cable/liftoff/propulsion"
	"github.com/pthm-cable/liftoff/telemetry"
)

// Options holds session configuration beyond the simulation config.
type Options struct {
	Seed   int64                    // Exhaust RNG seed
	Output *telemetry.OutputManager // nil = no file output
	Perf   *telemetry.PerfCollector // nil = no frame timing
	Logger *slog.Logger             // nil = slog.Default()
}

// Session owns a single flight from rest to landing.
type Session struct {
	cfg     *config.Config
	body    *flight.Body
	profile *propulsion.ThrustProfile
	scene   *Scene

	recorder *telemetry.Recorder
	out      *telemetry.OutputManager
	perf     *telemetry.PerfCollector
	log      *slog.Logger

	launchKey  string
	tick       int32
	flightTime float64
	thrust     float64
	summary    *telemetry.Summary
}

// PropulsorFrom converts the configured propulsor rating.
func PropulsorFrom(cfg *config.Config) propulsion.Propulsor {
	return propulsion.Propulsor{
		TotalImpulse:  cfg.Propulsor.TotalImpulse,
		AverageThrust: cfg.Propulsor.AverageThrust,
		MaxThrust:     cfg.Propulsor.MaxThrust,
		BurnDuration:  cfg.Propulsor.BurnDuration,
	}
}

// ParamsFrom converts the configured body and screen geometry.
func ParamsFrom(cfg *config.Config) flight.Params {
	return flight.Params{
		Mass:            cfg.Body.Mass,
		DragCoefficient: cfg.Body.DragCoefficient,
		Geometry: flight.Geometry{
			ScreenHeight: float64(cfg.Screen.Height),
			GroundHeight: cfg.Ground.Height,
			ObjectHeight: cfg.Body.Height,
		},
	}
}

// New creates a session with the body resting on the ground.
func New(cfg *config.Config, opts Options) (*Session, error) {
	profile, err := propulsion.NewThrustProfile(PropulsorFrom(cfg))
	if err != nil {
		return nil, fmt.Errorf("creating thrust profile: %w", err)
	}
	body, err := flight.NewBody(ParamsFrom(cfg))
	if err != nil {
		return nil, fmt.Errorf("creating flight body: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		cfg:       cfg,
		body:      body,
		profile:   profile,
		scene:     NewScene(cfg, rand.New(rand.NewSource(opts.Seed))),
		recorder:  telemetry.NewRecorder(opts.Output),
		out:       opts.Output,
		perf:      opts.Perf,
		log:       logger,
		launchKey: input.NormalizeKey(cfg.Input.LaunchKey),
	}, nil
}

// Step runs one frame. It returns true when a quit event was seen, in which
// case nothing else is processed.
func (s *Session) Step(events []input.Event, dt float64) (quit bool) {
	if s.perf != nil {
		s.perf.StartTick()
		defer s.perf.EndTick()
		s.perf.StartPhase(telemetry.PhaseInput)
	}

	for _, ev := range events {
		switch ev.Kind {
		case input.Quit:
			return true
		case input.KeyDown:
			if input.NormalizeKey(ev.Key) == s.launchKey {
				s.Launch()
			}
		}
	}

	if dt < 0 {
		dt = 0
	}

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhasePhysics)
	}
	flying := s.body.State().Launched && s.body.Phase() != flight.Landed
	var ev flight.Event
	if flying {
		s.thrust = s.profile.Tick(dt)
		ev = s.body.Advance(s.thrust, dt)
		s.flightTime += dt
	} else {
		s.thrust = 0
	}

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseScene)
	}
	s.scene.SyncBody(s.body.State().Y)
	s.scene.Update(s.thrust, dt)

	if flying {
		if s.perf != nil {
			s.perf.StartPhase(telemetry.PhaseTelemetry)
		}
		s.record(ev, dt)
	}

	s.tick++
	return false
}

// Launch arms the body. Repeated calls are ignored.
func (s *Session) Launch() bool {
	if !s.body.Launch() {
		return false
	}
	s.log.Info("launch",
		"tick", s.tick,
		"thrust_per_second", s.profile.ThrustPerSecond(),
		"burn_duration", s.profile.Remaining(),
	)
	return true
}

func (s *Session) record(ev flight.Event, dt float64) {
	st := s.body.State()
	sample := telemetry.FlightSample{
		Tick:          s.tick,
		Time:          s.flightTime,
		DT:            dt,
		Phase:         st.Phase.String(),
		Y:             st.Y,
		Velocity:      st.Velocity,
		HeightPX:      s.body.Height(),
		MaxHeightPX:   st.MaxHeight,
		Thrust:        s.thrust,
		BurnRemaining: s.profile.Remaining(),
	}
	if err := s.recorder.Record(sample); err != nil {
		s.log.Warn("telemetry write failed", "error", err)
	}
	s.log.Debug("height", "sample", sample)

	switch ev {
	case flight.EventBurnout:
		s.log.Info("burnout",
			"tick", s.tick,
			"time", s.flightTime,
			"height_px", s.body.Height(),
			"velocity", st.Velocity,
		)
	case flight.EventLanded:
		sum := s.recorder.Summary()
		s.summary = &sum
		s.log.Info("landed",
			"tick", s.tick,
			"peak_altitude_m", s.body.PeakMeters(),
			"peak_altitude_cm", flight.Centimeters(st.MaxHeight),
			"peak_height_px", st.MaxHeight,
			"summary", sum,
		)
		if err := s.out.WriteSummary(sum); err != nil {
			s.log.Warn("summary write failed", "error", err)
		}
	}
}

// RunHeadless steps the session with a fixed dt until the body lands, src
// asks to quit, or maxTicks frames have run (0 = unlimited). It returns the
// flight summary so far.
func (s *Session) RunHeadless(src input.Source, dt float64, maxTicks int) telemetry.Summary {
	for maxTicks <= 0 || int(s.tick) < maxTicks {
		if s.Step(src.Poll(), dt) {
			break
		}
		if s.Landed() {
			break
		}
	}
	return s.Summary()
}

// Summary returns the landing summary, or a summary of the flight so far.
func (s *Session) Summary() telemetry.Summary {
	if s.summary != nil {
		return *s.summary
	}
	return s.recorder.Summary()
}

// Landed reports whether the flight has ended.
func (s *Session) Landed() bool { return s.body.Phase() == flight.Landed }

// Body returns the flight body.
func (s *Session) Body() *flight.Body { return s.body }

// Profile returns the thrust profile.
func (s *Session) Profile() *propulsion.ThrustProfile { return s.profile }

// Scene returns the drawable scene.
func (s *Session) Scene() *Scene { return s.scene }

// Recorder returns the flight telemetry recorder.
func (s *Session) Recorder() *telemetry.Recorder { return s.recorder }

// Config returns the session configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// Tick returns the number of frames stepped.
func (s *Session) Tick() int32 { return s.tick }

// Thrust returns the thrust applied on the last frame.
func (s *Session) Thrust() float64 { return s.thrust }

// FlightTime returns seconds elapsed since launch.
func (s *Session) FlightTime() float64 { return s.flightTime }
