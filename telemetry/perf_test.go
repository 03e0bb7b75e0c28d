package telemetry

import (
	"testing"
	"time"
)

// stepClock is a manual clock for the collector.
type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time { return c.t }

func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCollector(window int) (*PerfCollector, *stepClock) {
	clock := &stepClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(window)
	pc.now = clock.now
	return pc, clock
}

type phaseDur struct {
	name string
	d    time.Duration
}

// step records one frame step with the given phase durations, in order.
func step(pc *PerfCollector, clock *stepClock, phases ...phaseDur) {
	pc.StartTick()
	for _, ph := range phases {
		pc.StartPhase(ph.name)
		clock.advance(ph.d)
	}
	pc.EndTick()
}

func TestPerfPhaseAverages(t *testing.T) {
	pc, clock := newTestCollector(10)

	for i := 0; i < 4; i++ {
		step(pc, clock,
			phaseDur{PhaseInput, 100 * time.Microsecond},
			phaseDur{PhasePhysics, 300 * time.Microsecond},
		)
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != 400*time.Microsecond {
		t.Errorf("avg tick = %v, want 400µs", stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseInput] != 100*time.Microsecond {
		t.Errorf("input avg = %v, want 100µs", stats.PhaseAvg[PhaseInput])
	}
	if stats.PhaseAvg[PhasePhysics] != 300*time.Microsecond {
		t.Errorf("physics avg = %v, want 300µs", stats.PhaseAvg[PhasePhysics])
	}
	if stats.PhasePct[PhaseInput] != 25 || stats.PhasePct[PhasePhysics] != 75 {
		t.Errorf("phase pct = %v", stats.PhasePct)
	}
	if stats.TicksPerSecond != 2500 {
		t.Errorf("ticks/sec = %v, want 2500", stats.TicksPerSecond)
	}
}

func TestPerfRepeatedPhaseAccumulates(t *testing.T) {
	pc, clock := newTestCollector(4)

	step(pc, clock,
		phaseDur{PhaseScene, 50 * time.Microsecond},
		phaseDur{PhasePhysics, 100 * time.Microsecond},
		phaseDur{PhaseScene, 50 * time.Microsecond},
	)

	stats := pc.Stats()
	if stats.PhaseAvg[PhaseScene] != 100*time.Microsecond {
		t.Errorf("scene avg = %v, want 100µs", stats.PhaseAvg[PhaseScene])
	}
	if stats.PhasePct[PhaseScene] != 50 {
		t.Errorf("scene pct = %v, want 50", stats.PhasePct[PhaseScene])
	}
}

func TestPerfWindowDropsOldSteps(t *testing.T) {
	pc, clock := newTestCollector(3)

	step(pc, clock, phaseDur{PhasePhysics, 20 * time.Millisecond})
	for _, d := range []time.Duration{1, 2, 3} {
		step(pc, clock, phaseDur{PhasePhysics, d * time.Millisecond})
	}

	stats := pc.Stats()
	if pc.count != 3 {
		t.Errorf("window holds %d steps, want 3", pc.count)
	}
	if stats.MinTickDuration != time.Millisecond ||
		stats.AvgTickDuration != 2*time.Millisecond ||
		stats.MaxTickDuration != 3*time.Millisecond {
		t.Errorf("min/avg/max = %v/%v/%v, want 1ms/2ms/3ms",
			stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfEmptyStats(t *testing.T) {
	pc, _ := newTestCollector(10)

	stats := pc.Stats()
	if stats.AvgTickDuration != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfFrameTiming(t *testing.T) {
	pc, clock := newTestCollector(10)

	pc.RecordFrame()
	if stats := pc.Stats(); stats.FPS != 0 {
		t.Errorf("single frame mark should not give FPS, got %v", stats.FPS)
	}

	clock.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("frame duration = %v, want 20ms", stats.FrameDuration)
	}
	if stats.FPS != 50 {
		t.Errorf("fps = %v, want 50", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct:        map[string]float64{PhasePhysics: 40, PhaseScene: 60},
	}
	row := stats.ToCSV(120)
	if row.WindowEnd != 120 || row.AvgTickUS != 1500 {
		t.Errorf("row = %+v", row)
	}
	if row.PhysicsPct != 40 || row.ScenePct != 60 || row.InputPct != 0 {
		t.Errorf("phase columns = %v/%v/%v", row.InputPct, row.PhysicsPct, row.ScenePct)
	}
}
