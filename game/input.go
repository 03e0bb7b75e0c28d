package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/liftoff/input"
)

var rlNamedKeys = map[string]int32{
	"space": rl.KeySpace,
	"enter": rl.KeyEnter,
	"tab":   rl.KeyTab,
	"up":    rl.KeyUp,
	"down":  rl.KeyDown,
	"left":  rl.KeyLeft,
	"right": rl.KeyRight,
}

// keyCode maps a key name accepted by input.ParseKey to a raylib key code.
func keyCode(name string) (int32, error) {
	key, err := input.ParseKey(name)
	if err != nil {
		return 0, err
	}
	if code, ok := rlNamedKeys[key]; ok {
		return code, nil
	}
	switch c := key[0]; {
	case c >= 'a' && c <= 'z':
		return rl.KeyA + int32(c-'a'), nil
	case c >= '0' && c <= '9':
		return rl.KeyZero + int32(c-'0'), nil
	}
	return 0, fmt.Errorf("%w: %q has no raylib binding", input.ErrUnknownKey, key)
}

// Input polls raylib for the events a session understands.
type Input struct {
	launchName string
	launchCode int32
	injected   []input.Event
}

// NewInput binds the launch key by name.
func NewInput(launchKey string) (*Input, error) {
	code, err := keyCode(launchKey)
	if err != nil {
		return nil, fmt.Errorf("binding launch key: %w", err)
	}
	return &Input{
		launchName: input.NormalizeKey(launchKey),
		launchCode: code,
	}, nil
}

// Inject queues an event for the next poll.
func (in *Input) Inject(ev input.Event) {
	in.injected = append(in.injected, ev)
}

// Poll implements input.Source. Closing the window or pressing Escape quits.
func (in *Input) Poll() []input.Event {
	events := in.injected
	in.injected = nil

	if rl.WindowShouldClose() {
		events = append(events, input.QuitEvent())
	}
	if rl.IsKeyPressed(in.launchCode) {
		events = append(events, input.Press(in.launchName))
	}
	return events
}

// handleCameraInput processes zoom keys.
func (g *Game) handleCameraInput() {
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.cam.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.SetZoom(1)
	}

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		g.cam.ZoomBy(1 + wheel*0.1)
	}
}
