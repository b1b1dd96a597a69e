// cmd/simulate/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-antigravity/pkg/config"
	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/event"
	"github.com/opd-ai/go-antigravity/pkg/logging"
	"github.com/opd-ai/go-antigravity/pkg/physics"
	"github.com/opd-ai/go-antigravity/pkg/render"
)

type options struct {
	configPath    string
	createDefault bool
	ticks         int
	dt            float64
	frameEvery    int
	cols, rows    int
	pointer       string
	scroll        float64
	clear         bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logging.NewLoggerWithWriter(os.Stderr)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file")
	fs.BoolVar(&opts.createDefault, "default", false, "Write the default configuration to -config and exit")
	fs.IntVar(&opts.ticks, "ticks", 600, "Number of ticks to simulate")
	fs.Float64Var(&opts.dt, "dt", 1, "Normalized step per tick (1 = one frame at 60 Hz)")
	fs.IntVar(&opts.frameEvery, "frame-every", 60, "Draw a frame every N ticks (0 disables frames)")
	fs.IntVar(&opts.cols, "cols", 80, "Terminal frame width in characters")
	fs.IntVar(&opts.rows, "rows", 24, "Terminal frame height in characters")
	fs.StringVar(&opts.pointer, "pointer", "", "Hold the pointer at x,y for the whole run")
	fs.Float64Var(&opts.scroll, "scroll", 0, "Initial vertical scroll velocity")
	fs.BoolVar(&opts.clear, "clear", false, "Clear the terminal before each frame")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.ticks < 0 {
		return nil, fmt.Errorf("ticks must be >= 0, got %d", opts.ticks)
	}
	return opts, nil
}

func parsePointer(s string) (*physics.Vector2D, error) {
	if s == "" {
		return nil, nil
	}
	var p physics.Vector2D
	if _, err := fmt.Sscanf(s, "%g,%g", &p.X, &p.Y); err != nil {
		return nil, fmt.Errorf("invalid pointer %q, want x,y: %w", s, err)
	}
	return &p, nil
}

func run(ctx context.Context, args []string, out io.Writer, logger *logging.Logger) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	ctx = logging.WithSessionID(ctx, "")

	if opts.createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err, "config_path", opts.configPath)
			return err
		}
		logger.Info(ctx, "Created default configuration file", "config_path", opts.configPath)
		return nil
	}

	cfg, err := config.LoadConfigWithOverrides(opts.configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", opts.configPath)
		return err
	}
	pointer, err := parsePointer(opts.pointer)
	if err != nil {
		return err
	}

	physics.SetLogger(logger)
	bus := event.NewEventBus()
	e, err := engine.New(cfg,
		engine.WithLogger(logger),
		engine.WithEventBus(bus),
		engine.WithSessionID(logging.GetSessionID(ctx)),
	)
	if err != nil {
		logger.Error(ctx, "Failed to create engine", err)
		return err
	}

	var collisions, wallHits int
	bus.Subscribe(event.BodyCollision, func(event.Event) { collisions++ })
	bus.Subscribe(event.BodyHitWall, func(event.Event) { wallHits++ })

	e.SetPointerInfo(pointer, cfg.Input.PointerStrength)
	if opts.scroll != 0 {
		e.SetScrollInfo(physics.Vector2D{Y: opts.scroll})
	}

	var renderer *render.TerminalRenderer
	if opts.frameEvery > 0 {
		renderer = render.NewTerminalRenderer(out, opts.cols, opts.rows, cfg.World.Width, cfg.World.Height)
		renderer.ClearScreen = opts.clear
		render.Frame(renderer, e.Bodies())
	}

	logger.Info(ctx, "Starting simulation",
		"ticks", opts.ticks,
		"dt", opts.dt,
		"bodies", e.Len(),
		"broad_phase", cfg.BroadPhase.Kind,
	)

	for tick := 1; tick <= opts.ticks; tick++ {
		if err := ctx.Err(); err != nil {
			logger.Info(ctx, "Simulation interrupted", "tick", e.Tick())
			break
		}
		e.Update(opts.dt)

		if renderer != nil && tick%opts.frameEvery == 0 {
			render.Frame(renderer, e.Bodies())
			logger.Info(ctx, "Tick",
				"tick", e.Tick(),
				"kinetic_energy", e.TotalKineticEnergy(),
				"contacts", e.LastTickStats().Contacts,
			)
		}
	}

	logger.Info(ctx, "Simulation finished",
		"ticks", e.Tick(),
		"kinetic_energy", e.TotalKineticEnergy(),
		"collisions", collisions,
		"wall_hits", wallHits,
	)
	return nil
}
