// Package components defines ECS components for the launch scene.
package components

import "github.com/pthm-cable/liftoff/config"

// Tint is the fill color of a rectangle.
type Tint struct {
	R, G, B, A uint8
}

// TintFrom converts a configured color.
func TintFrom(c config.RGBA) Tint {
	return Tint{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Layer orders drawing; lower layers are drawn first.
type Layer struct {
	Z int8
}

// Draw layers.
const (
	LayerGround  int8 = 0
	LayerExhaust int8 = 1
	LayerBody    int8 = 2
)

// Rocket tags the launched body's entity.
type Rocket struct{}

// Ground tags the ground strip entity.
type Ground struct{}

// Exhaust is a short-lived plume particle.
type Exhaust struct {
	Age      float32 // Seconds since spawn
	Lifetime float32 // Seconds until removal
	BaseA    uint8   // Alpha at spawn; fades linearly to zero
}

// Fade returns the particle alpha for its current age.
func (e Exhaust) Fade() uint8 {
	if e.Lifetime <= 0 || e.Age >= e.Lifetime {
		return 0
	}
	return uint8(float32(e.BaseA) * (1 - e.Age/e.Lifetime))
}

// Expired reports whether the particle should be removed.
func (e Exhaust) Expired() bool {
	return e.Age >= e.Lifetime
}
