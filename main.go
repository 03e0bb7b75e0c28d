package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/liftoff/config"
	"github.com/pthm-cable/liftoff/game"
	"github.com/pthm-cable/liftoff/input"
	"github.com/pthm-cable/liftoff/sim"
	"github.com/pthm-cable/liftoff/telemetry"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code.
func run() int {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed for the exhaust plume (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop a headless run after N frames (0 = until landed)")
	launchAt := flag.Int("launch-at", 0, "Headless frame at which the launch key is pressed (-1 = never)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error (debug traces every frame)")

	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("invalid log level", "level", *logLevel, "error", err)
		return 1
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		return 1
	}
	defer func() {
		if err := out.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		return 1
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		session, err := sim.New(cfg, sim.Options{
			Seed:   rngSeed,
			Output: out,
			Logger: logger,
		})
		if err != nil {
			slog.Error("failed to create session", "error", err)
			return 1
		}

		script := input.NewScript()
		if *launchAt >= 0 {
			script.At(*launchAt, input.Press(cfg.Input.LaunchKey))
		} else if *maxTicks <= 0 {
			slog.Error("-launch-at=-1 needs -max-ticks, the body would never leave the ground")
			return 1
		}

		slog.Info("starting headless flight",
			"seed", rngSeed,
			"dt", cfg.Derived.FrameDT,
			"max_ticks", *maxTicks,
			"launch_at", *launchAt,
		)

		summary := session.RunHeadless(script, cfg.Derived.FrameDT, *maxTicks)
		if !session.Landed() {
			slog.Info("max ticks reached", "tick", session.Tick(), "summary", summary)
		}
		return 0
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, game.Options{
		Seed:   rngSeed,
		Output: out,
		Logger: logger,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return 1
	}

	g.Run()
	return 0
}
