package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/liftoff/config"
	"github.com/pthm-cable/liftoff/flight"
	"github.com/pthm-cable/liftoff/input"
	"github.com/pthm-cable/liftoff/ui"
)

func color(c config.RGBA) rl.Color {
	return rl.NewColor(c[0], c[1], c[2], c[3])
}

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(color(g.cfg.Colors.Air))

	g.drawScene()
	if g.hud.Draw(g.hudData()) {
		g.input.Inject(input.Press(g.cfg.Input.LaunchKey))
	}
	g.hud.DrawControls(int32(g.cfg.Screen.Width), int32(g.cfg.Screen.Height), "+/- zoom  Home reset  Esc quit")

	rl.EndDrawing()
}

// drawScene draws the scene rectangles through the camera, lowest layer first.
func (g *Game) drawScene() {
	for _, r := range g.session.Scene().Rects() {
		if !g.cam.IsVisible(r.X, r.Y, r.W, r.H) {
			continue
		}
		x, y := g.cam.WorldToScreen(r.X, r.Y)
		rl.DrawRectangleRec(rl.Rectangle{
			X:      x,
			Y:      y,
			Width:  g.cam.Scale(r.W),
			Height: g.cam.Scale(r.H),
		}, rl.NewColor(r.Tint.R, r.Tint.G, r.Tint.B, r.Tint.A))
	}
}

func (g *Game) hudData() ui.HUDData {
	body := g.session.Body()
	st := body.State()
	profile := g.session.Profile()

	burn := 0.0
	if d := profile.Propulsor().BurnDuration; d > 0 {
		burn = profile.Remaining() / d
	}

	return ui.HUDData{
		Title:        g.cfg.Screen.Title,
		Phase:        st.Phase.String(),
		HeightPX:     body.Height(),
		HeightM:      flight.Meters(body.Height()),
		PeakM:        body.PeakMeters(),
		Velocity:     st.Velocity,
		Thrust:       g.session.Thrust(),
		BurnFraction: burn,
		FlightTime:   g.session.FlightTime(),
		Tick:         g.session.Tick(),
		FPS:          rl.GetFPS(),
		Zoom:         g.cam.Zoom,
		Launched:     st.Launched,
		Landed:       g.session.Landed(),
		LaunchKey:    g.cfg.Input.LaunchKey,
		ScreenWidth:  int32(g.cfg.Screen.Width),
		ScreenHeight: int32(g.cfg.Screen.Height),
	}
}
