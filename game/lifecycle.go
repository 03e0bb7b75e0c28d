package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Update runs one frame of input and simulation. It returns true when the
// window should close.
func (g *Game) Update() bool {
	events := g.input.Poll()
	g.handleCameraInput()

	dt := float64(rl.GetFrameTime())
	if g.session.Step(events, dt) {
		return true
	}
	g.perf.RecordFrame()

	pos := g.session.Scene().BodyPosition()
	g.cam.Follow(pos.Y, float32(dt))

	if tick := g.session.Tick(); int(tick-g.lastPerfTick) >= g.cfg.Telemetry.PerfWindow {
		g.flushPerf(tick)
		g.lastPerfTick = tick
	}
	return false
}

// Run updates and draws until quit is requested.
func (g *Game) Run() {
	for !g.Update() {
		g.Draw()
	}
	g.log.Info("quit",
		"tick", g.session.Tick(),
		"landed", g.session.Landed(),
		"peak_altitude_m", g.session.Body().PeakMeters(),
	)
}
