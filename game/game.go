// Package game is the interactive raylib front end for a launch session.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/liftoff/camera"
	"github.com/pthm-cable/liftoff/config"
	"github.com/pthm-cable/liftoff/sim"
	"github.com/pthm-cable/liftoff/telemetry"
	"github.com/pthm-cable/liftoff/ui"
)

// Options configures a graphical game.
type Options struct {
	Seed   int64
	Output *telemetry.OutputManager // nil = no file output
	Logger *slog.Logger             // nil = slog.Default()
}

// Game holds the window-side state around one session.
type Game struct {
	cfg     *config.Config
	session *sim.Session
	cam     *camera.Camera
	hud     *ui.HUD
	input   *Input
	perf    *telemetry.PerfCollector
	out     *telemetry.OutputManager
	log     *slog.Logger

	lastPerfTick int32
}

// NewGame creates a game. The raylib window must already be open.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	session, err := sim.New(cfg, sim.Options{
		Seed:   opts.Seed,
		Output: opts.Output,
		Perf:   perf,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	in, err := NewInput(cfg.Input.LaunchKey)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:     cfg,
		session: session,
		cam: camera.New(
			cfg.Derived.ScreenW32,
			cfg.Derived.ScreenH32,
			float32(cfg.Camera.TopMargin),
			float32(cfg.Camera.Smoothing),
		),
		hud:   ui.NewHUD(),
		input: in,
		perf:  perf,
		out:   opts.Output,
		log:   logger,
	}, nil
}

// Session returns the underlying launch session.
func (g *Game) Session() *sim.Session {
	return g.session
}
