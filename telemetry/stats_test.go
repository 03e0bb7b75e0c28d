package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/liftoff/flight"
)

func sampleFlight() []FlightSample {
	return []FlightSample{
		{Tick: 1, Time: 0.5, Phase: flight.PoweredAscent.String(), Velocity: 10, MaxHeightPX: 5, Thrust: 124},
		{Tick: 2, Time: 1.0, Phase: flight.PoweredAscent.String(), Velocity: 20, MaxHeightPX: 15, Thrust: 124},
		{Tick: 3, Time: 1.5, Phase: flight.UnpoweredFlight.String(), Velocity: 30, MaxHeightPX: 74.44, Thrust: 0},
		{Tick: 4, Time: 2.0, Phase: flight.UnpoweredFlight.String(), Velocity: -40, MaxHeightPX: 74.44, Thrust: 0},
		{Tick: 5, Time: 2.5, Phase: flight.Landed.String(), Velocity: 0, MaxHeightPX: 74.44, Thrust: 0},
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleFlight())

	if !sum.Landed || sum.LandingTick != 5 {
		t.Errorf("expected landing at tick 5, got %+v", sum)
	}
	if sum.Frames != 5 {
		t.Errorf("expected 5 frames, got %d", sum.Frames)
	}
	if sum.FlightTimeSec != 2.5 {
		t.Errorf("expected flight time 2.5, got %v", sum.FlightTimeSec)
	}
	if sum.BurnTimeSec != 1.0 {
		t.Errorf("expected burn time 1.0, got %v", sum.BurnTimeSec)
	}
	if math.Abs(sum.PeakAltitudeM-1.0) > 1e-3 {
		t.Errorf("expected peak altitude 1 m, got %v", sum.PeakAltitudeM)
	}
	if sum.MaxAscentSpeed != 30 {
		t.Errorf("expected max ascent speed 30, got %v", sum.MaxAscentSpeed)
	}
	if sum.MeanAscentSpeed != 20 {
		t.Errorf("expected mean ascent speed 20, got %v", sum.MeanAscentSpeed)
	}
	if sum.MaxDescentSpeed != 40 {
		t.Errorf("expected max descent speed 40, got %v", sum.MaxDescentSpeed)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Landed || sum.Frames != 0 || sum.PeakHeightPX != 0 {
		t.Errorf("expected zero summary, got %+v", sum)
	}
}

func TestSummarizeInFlight(t *testing.T) {
	samples := sampleFlight()[:3]
	sum := Summarize(samples)
	if sum.Landed {
		t.Error("expected flight still in progress")
	}
	if sum.FlightTimeSec != 1.5 {
		t.Errorf("expected elapsed time of last sample, got %v", sum.FlightTimeSec)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(nil)
	if _, ok := r.Last(); ok {
		t.Error("expected no last sample on empty recorder")
	}
	for _, s := range sampleFlight() {
		if err := r.Record(s); err != nil {
			t.Fatalf("recording without output: %v", err)
		}
	}
	if r.Len() != 5 {
		t.Errorf("expected 5 samples, got %d", r.Len())
	}
	last, ok := r.Last()
	if !ok || last.Tick != 5 {
		t.Errorf("unexpected last sample %+v", last)
	}
	if !r.Summary().Landed {
		t.Error("expected landed summary")
	}
}
