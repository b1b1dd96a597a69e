// cmd/playground/main.go
package main

import (
	"context"
	"flag"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-antigravity/pkg/config"
	"github.com/opd-ai/go-antigravity/pkg/engine"
	"github.com/opd-ai/go-antigravity/pkg/logging"
	"github.com/opd-ai/go-antigravity/pkg/physics"
	engorender "github.com/opd-ai/go-antigravity/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), "")

	configPath := flag.String("config", "config.json", "Path to configuration file")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	throw := flag.Bool("throw", false, "Released bodies keep the pointer's velocity")
	broadPhase := flag.String("broadphase", "", "Broad phase: bruteforce, quadtree or spatialhash (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfigWithOverrides(*configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}
	if *throw {
		cfg.Input.ThrowEnabled = true
	}
	if *broadPhase != "" {
		cfg.BroadPhase.Kind = *broadPhase
	}

	physics.SetLogger(logger)
	e, err := engine.New(cfg,
		engine.WithLogger(logger),
		engine.WithSessionID(logging.GetSessionID(ctx)),
	)
	if err != nil {
		logger.Error(ctx, "Failed to create engine", err)
		os.Exit(1)
	}

	scene := engorender.NewScene(cfg, e)

	opts := engo.RunOptions{
		Title:      "AntiGravity",
		Width:      int(cfg.World.Width),
		Height:     int(cfg.World.Height),
		Fullscreen: *fullscreen,
		VSync:      true,
	}

	logger.Info(ctx, "Starting playground",
		"width", opts.Width,
		"height", opts.Height,
		"bodies", e.Len(),
		"throw", cfg.Input.ThrowEnabled,
	)
	engo.Run(opts, scene)
}
