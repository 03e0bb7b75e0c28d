// Package flight integrates the vertical motion of a single launched body.
//
// Positions are screen-space pixels: Y grows downward, so an upward
// (positive) velocity is subtracted from Y.
package flight

import (
	"errors"
	"fmt"
)

// Gravity is the gravitational acceleration used to derive weight.
const Gravity = 9.8

// ErrInvalidBody is returned (wrapped) for a body that cannot be integrated.
var ErrInvalidBody = errors.New("invalid flight body")

// Geometry places the body relative to the ground strip.
type Geometry struct {
	ScreenHeight float64
	GroundHeight float64
	ObjectHeight float64
}

// GroundRef returns the Y at which the body rests on the ground.
func (g Geometry) GroundRef() float64 {
	return g.ScreenHeight - g.GroundHeight - g.ObjectHeight
}

// HeightAt returns the pixel height above the ground reference for a Y.
func (g Geometry) HeightAt(y float64) float64 {
	return (g.ScreenHeight - g.GroundHeight - y) - g.ObjectHeight
}

// Params are the constant physical properties of a body.
type Params struct {
	Mass            float64 // Kilograms, > 0
	DragCoefficient float64 // >= 0
	Geometry        Geometry
}

// Validate rejects parameters that would make a step undefined.
func (p Params) Validate() error {
	if !(p.Mass > 0) {
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidBody, p.Mass)
	}
	if !(p.DragCoefficient >= 0) {
		return fmt.Errorf("%w: drag coefficient must not be negative, got %v", ErrInvalidBody, p.DragCoefficient)
	}
	if p.Geometry.ObjectHeight <= 0 || p.Geometry.GroundRef() < 0 {
		return fmt.Errorf("%w: body does not fit above the ground", ErrInvalidBody)
	}
	return nil
}

// State is the mutable numeric state of a body.
type State struct {
	Y         float64 // Screen-space top edge
	Velocity  float64 // Upward positive
	MaxHeight float64 // Pixels above the ground reference; non-decreasing
	Falling   bool    // Set on the first zero-thrust step; never cleared
	Launched  bool
	Phase     Phase
}

// RestingState returns the pre-launch state for the geometry.
func RestingState(g Geometry) State {
	return State{Y: g.GroundRef(), Phase: Resting}
}

// Forces breaks down the forces acting on a body for one step.
type Forces struct {
	Gravity      float64
	Drag         float64
	Net          float64
	Acceleration float64
}

// ComputeForces evaluates weight, drag and the resulting acceleration.
// Drag is unsigned and always subtracted.
func ComputeForces(p Params, velocity, thrust float64) Forces {
	gravity := p.Mass * Gravity
	drag := 0.5 * p.DragCoefficient * velocity * velocity
	net := thrust - gravity - drag
	return Forces{
		Gravity:      gravity,
		Drag:         drag,
		Net:          net,
		Acceleration: net / p.Mass,
	}
}

// Step integrates s by dt under thrust and returns the new state with the
// transition it produced. Resting and Landed states are returned unchanged.
func Step(s State, p Params, thrust, dt float64) (State, Event) {
	if !s.Launched || s.Phase == Resting || s.Phase == Landed {
		return s, EventNone
	}
	if dt < 0 {
		dt = 0
	}

	f := ComputeForces(p, s.Velocity, thrust)

	ev := EventNone
	if thrust == 0 {
		if !s.Falling {
			ev = EventBurnout
		}
		s.Falling = true
		s.Phase = UnpoweredFlight
	}

	// A zero-length frame moves nothing (Inf*0 is NaN).
	if dt > 0 {
		if thrust == 0 {
			// Weight, not acceleration, drives the unpowered velocity change.
			s.Velocity -= f.Gravity * dt
		} else {
			s.Velocity += f.Acceleration * dt
		}
		s.Y -= s.Velocity * dt
	}

	if h := p.Geometry.HeightAt(s.Y); h > s.MaxHeight {
		s.MaxHeight = h
	}

	ground := p.Geometry.GroundRef()
	if s.Y >= ground && s.Velocity <= 0 && s.Falling && s.Launched {
		s.Y = ground
		s.Velocity = 0
		s.Phase = Landed
		ev = EventLanded
	}

	return s, ev
}

// Body owns the state of one flight.
type Body struct {
	params Params
	state  State
}

// NewBody validates p and returns a body resting on the ground.
func NewBody(p Params) (*Body, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Body{params: p, state: RestingState(p.Geometry)}, nil
}

// Launch arms the body. Only the first call is honored.
func (b *Body) Launch() bool {
	if b.state.Launched {
		return false
	}
	b.state.Launched = true
	b.state.Phase = PoweredAscent
	return true
}

// Advance integrates one frame and reports any transition.
func (b *Body) Advance(thrust, dt float64) Event {
	var ev Event
	b.state, ev = Step(b.state, b.params, thrust, dt)
	return ev
}

// State returns a copy of the current state.
func (b *Body) State() State { return b.state }

// Params returns the body's constant parameters.
func (b *Body) Params() Params { return b.params }

// Phase returns the current launch phase.
func (b *Body) Phase() Phase { return b.state.Phase }

// Height returns the current height above the ground reference in pixels.
func (b *Body) Height() float64 { return b.params.Geometry.HeightAt(b.state.Y) }

// PeakMeters returns the peak altitude converted to metres.
func (b *Body) PeakMeters() float64 { return Meters(b.state.MaxHeight) }
