// Package camera provides a vertical follow camera for the launch view.
package camera

// Camera maps screen-space scene coordinates to the viewport.
// The view scrolls upward to keep a climbing body on screen and zooms
// around the bottom-center of the viewport so the ground stays anchored.
type Camera struct {
	// ScrollY is how far the view has moved up, in scene pixels (never negative)
	ScrollY float32

	// Zoom level (1.0 = 1:1)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// TopMargin is the gap kept between a followed body and the top edge
	TopMargin float32

	// Smoothing is the follow rate per second; 0 snaps to the target
	Smoothing float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates an unscrolled camera with 1:1 zoom.
func New(viewportW, viewportH, topMargin, smoothing float32) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		TopMargin: topMargin,
		Smoothing: smoothing,
		MinZoom:   0.25,
		MaxZoom:   4.0,
	}
}

// WorldToScreen converts scene coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.ViewportW/2)*c.Zoom
	sy = c.ViewportH - (c.ViewportH-(wy+c.ScrollY))*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to scene coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.ViewportW/2 + (sx-c.ViewportW/2)/c.Zoom
	wy = c.ViewportH - (c.ViewportH-sy)/c.Zoom - c.ScrollY
	return wx, wy
}

// Scale converts a scene length to screen pixels.
func (c *Camera) Scale(l float32) float32 {
	return l * c.Zoom
}

// IsVisible reports whether a rectangle could be visible on screen.
func (c *Camera) IsVisible(wx, wy, w, h float32) bool {
	x0, y0 := c.WorldToScreen(wx, wy)
	x1, y1 := c.WorldToScreen(wx+w, wy+h)
	return x1 >= 0 && x0 <= c.ViewportW && y1 >= 0 && y0 <= c.ViewportH
}

// Target returns the scroll needed to keep a body whose top edge is at y
// at least TopMargin pixels below the top of the viewport.
func (c *Camera) Target(y float32) float32 {
	return maxf(0, c.TopMargin-y)
}

// Follow moves the scroll toward the target for a body at y over dt seconds.
func (c *Camera) Follow(y, dt float32) {
	target := c.Target(y)
	if c.Smoothing <= 0 {
		c.ScrollY = target
		return
	}
	if dt <= 0 {
		return
	}
	step := c.Smoothing * dt
	if step > 1 {
		step = 1
	}
	c.ScrollY += (target - c.ScrollY) * step
	c.ScrollY = maxf(0, c.ScrollY)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the ground view at 1:1 zoom.
func (c *Camera) Reset() {
	c.ScrollY = 0
	c.Zoom = 1.0
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
