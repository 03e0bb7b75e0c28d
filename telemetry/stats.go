package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/liftoff/flight"
)

// FlightSample is one frame of flight state.
type FlightSample struct {
	Tick          int32   `csv:"tick"`
	Time          float64 `csv:"time"` // Seconds since launch
	DT            float64 `csv:"dt"`
	Phase         string  `csv:"phase"`
	Y             float64 `csv:"y"`
	Velocity      float64 `csv:"velocity"`
	HeightPX      float64 `csv:"height_px"`
	MaxHeightPX   float64 `csv:"max_height_px"`
	Thrust        float64 `csv:"thrust"`
	BurnRemaining float64 `csv:"burn_remaining"`
}

// LogValue implements slog.LogValuer for the per-frame height trace.
func (s FlightSample) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", int(s.Tick)),
		slog.Float64("time", s.Time),
		slog.String("phase", s.Phase),
		slog.Float64("height_px", s.HeightPX),
		slog.Float64("max_height_px", s.MaxHeightPX),
		slog.Float64("velocity", s.Velocity),
		slog.Float64("thrust", s.Thrust),
	)
}

// Summary aggregates a whole flight.
type Summary struct {
	Landed          bool    `csv:"landed"`
	LandingTick     int32   `csv:"landing_tick"`
	Frames          int     `csv:"frames"`
	FlightTimeSec   float64 `csv:"flight_time"`
	BurnTimeSec     float64 `csv:"burn_time"`
	PeakHeightPX    float64 `csv:"peak_height_px"`
	PeakAltitudeM   float64 `csv:"peak_altitude_m"`
	PeakAltitudeCM  float64 `csv:"peak_altitude_cm"`
	MaxAscentSpeed  float64 `csv:"max_ascent_speed"`
	MeanAscentSpeed float64 `csv:"mean_ascent_speed"`
	MaxDescentSpeed float64 `csv:"max_descent_speed"`
}

// Summarize computes a Summary from a flight's samples.
func Summarize(samples []FlightSample) Summary {
	var sum Summary
	sum.Frames = len(samples)
	if len(samples) == 0 {
		return sum
	}

	var ascent, descent []float64
	for _, s := range samples {
		if s.Thrust > 0 {
			sum.BurnTimeSec = s.Time
		}
		if s.MaxHeightPX > sum.PeakHeightPX {
			sum.PeakHeightPX = s.MaxHeightPX
		}
		switch {
		case s.Velocity > 0:
			ascent = append(ascent, s.Velocity)
		case s.Velocity < 0:
			descent = append(descent, -s.Velocity)
		}
		if s.Phase == flight.Landed.String() && !sum.Landed {
			sum.Landed = true
			sum.LandingTick = s.Tick
			sum.FlightTimeSec = s.Time
		}
	}
	if !sum.Landed {
		sum.FlightTimeSec = samples[len(samples)-1].Time
	}

	if len(ascent) > 0 {
		sum.MaxAscentSpeed = floats.Max(ascent)
		sum.MeanAscentSpeed = stat.Mean(ascent, nil)
	}
	if len(descent) > 0 {
		sum.MaxDescentSpeed = floats.Max(descent)
	}

	sum.PeakAltitudeM = flight.Meters(sum.PeakHeightPX)
	sum.PeakAltitudeCM = flight.Centimeters(sum.PeakHeightPX)
	return sum
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("landed", s.Landed),
		slog.Int("landing_tick", int(s.LandingTick)),
		slog.Int("frames", s.Frames),
		slog.Float64("flight_time", s.FlightTimeSec),
		slog.Float64("burn_time", s.BurnTimeSec),
		slog.Float64("peak_height_px", s.PeakHeightPX),
		slog.Float64("peak_altitude_m", s.PeakAltitudeM),
		slog.Float64("max_ascent_speed", s.MaxAscentSpeed),
		slog.Float64("mean_ascent_speed", s.MeanAscentSpeed),
		slog.Float64("max_descent_speed", s.MaxDescentSpeed),
	)
}
