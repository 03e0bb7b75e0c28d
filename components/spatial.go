package components

// Position represents an entity's top-left corner in screen space.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in pixels per second.
type Velocity struct {
	X, Y float32
}

// Size is the extent of an axis-aligned rectangle.
type Size struct {
	W, H float32
}
