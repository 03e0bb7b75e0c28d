package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the flight HUD.
type HUDData struct {
	Title        string
	Phase        string
	HeightPX     float64
	HeightM      float64
	PeakM        float64
	Velocity     float64
	Thrust       float64
	BurnFraction float64 // Remaining burn / total burn
	FlightTime   float64
	Tick         int32
	FPS          int32
	Zoom         float32
	Launched     bool
	Landed       bool
	LaunchKey    string
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the flight heads-up display and the launch button.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    240,
	}
}

// Draw renders the HUD. It returns true when the launch button was clicked.
func (h *HUD) Draw(data HUDData) bool {
	r := h.renderer
	pad := r.Theme.Padding
	x, y := pad, pad

	r.DrawPanel(x, y, h.width, 9*r.Theme.LineHeight+3*pad)
	x += pad
	y += pad

	y = r.DrawSectionHeader(x, y, data.Title)
	y = r.DrawLabelValue(x, y, "Phase", data.Phase)
	y = r.DrawLabelValue(x, y, "Height", fmt.Sprintf("%.1f px (%.2f m)", data.HeightPX, data.HeightM))
	y = r.DrawLabelValue(x, y, "Peak", fmt.Sprintf("%.2f m", data.PeakM))
	y = r.DrawLabelValue(x, y, "Velocity", fmt.Sprintf("%.1f px/s", data.Velocity))
	y = r.DrawLabelValue(x, y, "Thrust", fmt.Sprintf("%.1f N", data.Thrust))
	y = r.DrawBar(x, y, "Burn", float32(data.BurnFraction), h.width-2*pad)
	y = r.DrawLabelValue(x, y, "Time", fmt.Sprintf("%.2f s", data.FlightTime))
	r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d (zoom %.2fx)", data.FPS, data.Zoom))

	clicked := false
	if !data.Launched {
		bounds := rl.Rectangle{
			X:      float32(data.ScreenWidth - 130),
			Y:      float32(pad),
			Width:  120,
			Height: 30,
		}
		clicked = gui.Button(bounds, "Launch")
	}

	h.DrawStatus(data)
	return clicked
}

// DrawStatus renders the prompt or landing report at the bottom of the screen.
func (h *HUD) DrawStatus(data HUDData) {
	var text string
	color := rl.LightGray
	switch {
	case !data.Launched:
		text = fmt.Sprintf("Press %s to launch", data.LaunchKey)
	case data.Landed:
		text = fmt.Sprintf("Landed - peak altitude %.2f m", data.PeakM)
		color = rl.Yellow
	default:
		return
	}
	rl.DrawText(text, 10, data.ScreenHeight-25, 16, color)
}

// DrawControls renders the control legend at the bottom-right of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	w := rl.MeasureText(controls, 14)
	rl.DrawText(controls, screenWidth-w-10, screenHeight-25, 14, rl.Gray)
}
