package sim

import (
	"math/rand"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/liftoff/components"
	"github.com/pthm-cable/liftoff/config"
)

// Rect is a renderer-independent filled rectangle.
type Rect struct {
	X, Y, W, H float32
	Tint       components.Tint
	Z          int8
}

// Scene holds the drawable entities: the ground strip, the body and its
// exhaust plume.
type Scene struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   config.ExhaustConfig

	exhaustTint components.Tint

	rocketMapper  *ecs.Map5[components.Position, components.Size, components.Tint, components.Layer, components.Rocket]
	groundMapper  *ecs.Map5[components.Position, components.Size, components.Tint, components.Layer, components.Ground]
	exhaustMapper *ecs.Map6[components.Position, components.Velocity, components.Size, components.Tint, components.Layer, components.Exhaust]

	posMap  *ecs.Map1[components.Position]
	sizeMap *ecs.Map1[components.Size]

	exhaustFilter *ecs.Filter4[components.Position, components.Velocity, components.Tint, components.Exhaust]
	drawFilter    *ecs.Filter4[components.Position, components.Size, components.Tint, components.Layer]

	rocket   ecs.Entity
	ground   ecs.Entity
	exhausts int

	// Reused between frames
	expired []ecs.Entity
	rects   []Rect
}

// NewScene creates the ground and body entities from cfg.
func NewScene(cfg *config.Config, rng *rand.Rand) *Scene {
	world := ecs.NewWorld()

	s := &Scene{
		world:         world,
		rng:           rng,
		cfg:           cfg.Exhaust,
		exhaustTint:   components.TintFrom(cfg.Colors.Exhaust),
		rocketMapper:  ecs.NewMap5[components.Position, components.Size, components.Tint, components.Layer, components.Rocket](world),
		groundMapper:  ecs.NewMap5[components.Position, components.Size, components.Tint, components.Layer, components.Ground](world),
		exhaustMapper: ecs.NewMap6[components.Position, components.Velocity, components.Size, components.Tint, components.Layer, components.Exhaust](world),
		posMap:        ecs.NewMap1[components.Position](world),
		sizeMap:       ecs.NewMap1[components.Size](world),
		exhaustFilter: ecs.NewFilter4[components.Position, components.Velocity, components.Tint, components.Exhaust](world),
		drawFilter:    ecs.NewFilter4[components.Position, components.Size, components.Tint, components.Layer](world),
	}

	s.ground = s.groundMapper.NewEntity(
		&components.Position{X: 0, Y: float32(cfg.Derived.GroundY)},
		&components.Size{W: cfg.Derived.ScreenW32, H: float32(cfg.Ground.Height)},
		ptr(components.TintFrom(cfg.Colors.Ground)),
		&components.Layer{Z: components.LayerGround},
		&components.Ground{},
	)

	s.rocket = s.rocketMapper.NewEntity(
		&components.Position{X: float32(cfg.Derived.BodyX), Y: float32(cfg.Derived.RestY)},
		&components.Size{W: float32(cfg.Body.Width), H: float32(cfg.Body.Height)},
		ptr(components.TintFrom(cfg.Colors.Body)),
		&components.Layer{Z: components.LayerBody},
		&components.Rocket{},
	)

	return s
}

func ptr[T any](v T) *T { return &v }

// SyncBody moves the body rectangle to the given screen-space Y.
func (s *Scene) SyncBody(y float64) {
	s.posMap.Get(s.rocket).Y = float32(y)
}

// BodyPosition returns the body rectangle's top-left corner.
func (s *Scene) BodyPosition() components.Position {
	return *s.posMap.Get(s.rocket)
}

// Update ages the exhaust plume and emits new particles while thrust is positive.
func (s *Scene) Update(thrust, dt float64) {
	s.ageExhaust(float32(dt))
	if thrust > 0 && dt > 0 {
		s.emitExhaust()
	}
}

func (s *Scene) ageExhaust(dt float32) {
	s.expired = s.expired[:0]

	query := s.exhaustFilter.Query()
	for query.Next() {
		pos, vel, tint, ex := query.Get()
		ex.Age += dt
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		tint.A = ex.Fade()
		if ex.Expired() {
			s.expired = append(s.expired, query.Entity())
		}
	}

	// Entities cannot be removed while the query holds the world lock
	for _, e := range s.expired {
		s.world.RemoveEntity(e)
		s.exhausts--
	}
}

func (s *Scene) emitExhaust() {
	if s.cfg.SpawnPerFrame <= 0 || s.cfg.Lifetime <= 0 {
		return
	}
	body := *s.posMap.Get(s.rocket)
	size := *s.sizeMap.Get(s.rocket)
	half := float32(s.cfg.Size) / 2

	for i := 0; i < s.cfg.SpawnPerFrame; i++ {
		speed := float32(s.cfg.Speed) * (0.7 + 0.6*s.rng.Float32())
		drift := (s.rng.Float32()*2 - 1) * float32(s.cfg.Speed) * 0.2
		tint := s.exhaustTint
		s.exhaustMapper.NewEntity(
			&components.Position{X: body.X + size.W/2 - half, Y: body.Y + size.H},
			&components.Velocity{X: drift, Y: speed},
			&components.Size{W: float32(s.cfg.Size), H: float32(s.cfg.Size)},
			&tint,
			&components.Layer{Z: components.LayerExhaust},
			&components.Exhaust{Lifetime: float32(s.cfg.Lifetime), BaseA: tint.A},
		)
		s.exhausts++
	}
}

// ExhaustCount returns the number of live exhaust particles.
func (s *Scene) ExhaustCount() int {
	return s.exhausts
}

// Rects returns every drawable rectangle ordered by layer.
// The returned slice is reused by the next call.
func (s *Scene) Rects() []Rect {
	s.rects = s.rects[:0]

	query := s.drawFilter.Query()
	for query.Next() {
		pos, size, tint, layer := query.Get()
		s.rects = append(s.rects, Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H, Tint: *tint, Z: layer.Z})
	}

	sort.SliceStable(s.rects, func(i, j int) bool {
		return s.rects[i].Z < s.rects[j].Z
	})
	return s.rects
}
