// Package propulsion models the thrust delivered by a single solid propulsor.
package propulsion

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPropulsor is returned (wrapped) for non-physical propulsor parameters.
var ErrInvalidPropulsor = errors.New("invalid propulsor")

// Propulsor holds the static rating of a motor.
type Propulsor struct {
	TotalImpulse  float64 // N·s
	AverageThrust float64 // N
	MaxThrust     float64 // N
	BurnDuration  float64 // Seconds
}

// Validate checks that every rating is physical.
func (p Propulsor) Validate() error {
	switch {
	case !(p.TotalImpulse > 0):
		return fmt.Errorf("%w: total impulse must be positive, got %v", ErrInvalidPropulsor, p.TotalImpulse)
	case !(p.AverageThrust > 0):
		return fmt.Errorf("%w: average thrust must be positive, got %v", ErrInvalidPropulsor, p.AverageThrust)
	case !(p.MaxThrust >= p.AverageThrust):
		return fmt.Errorf("%w: max thrust %v below average thrust %v", ErrInvalidPropulsor, p.MaxThrust, p.AverageThrust)
	case !(p.BurnDuration > 0):
		return fmt.Errorf("%w: burn duration must be positive, got %v", ErrInvalidPropulsor, p.BurnDuration)
	}
	return nil
}

// ThrustProfile answers how much thrust is available at the current point of the burn.
// The per-second thrust is fixed at construction from the initial burn duration;
// only the countdown changes afterwards.
type ThrustProfile struct {
	propulsor       Propulsor
	totalThrust     float64
	thrustPerSecond float64
	remaining       float64
}

// NewThrustProfile validates p and derives its constant thrust level.
func NewThrustProfile(p Propulsor) (*ThrustProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	total := math.Min(p.AverageThrust*p.BurnDuration, p.MaxThrust)
	return &ThrustProfile{
		propulsor:       p,
		totalThrust:     total,
		thrustPerSecond: total / p.BurnDuration,
		remaining:       p.BurnDuration,
	}, nil
}

// Tick consumes dt seconds of burn and returns the thrust for this frame.
// Negative dt is treated as zero. Once the countdown reaches zero the
// profile returns 0 forever.
func (t *ThrustProfile) Tick(dt float64) float64 {
	if dt > 0 {
		t.remaining -= dt
	}
	if t.remaining > 0 {
		return t.thrustPerSecond
	}
	return 0
}

// BurnedOut reports whether the countdown has expired.
func (t *ThrustProfile) BurnedOut() bool { return t.remaining <= 0 }

// Remaining returns the burn time left, floored at zero.
func (t *ThrustProfile) Remaining() float64 { return math.Max(t.remaining, 0) }

// TotalThrust returns min(average*duration, max).
func (t *ThrustProfile) TotalThrust() float64 { return t.totalThrust }

// ThrustPerSecond returns the constant thrust delivered while burning.
func (t *ThrustProfile) ThrustPerSecond() float64 { return t.thrustPerSecond }

// Propulsor returns the rating the profile was built from.
func (t *ThrustProfile) Propulsor() Propulsor { return t.propulsor }
