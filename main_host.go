//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"ledtris/app"
	"ledtris/hal"
	"ledtris/internal/buildinfo"
	"ledtris/tui"
)

func main() {
	var cfg hal.HeadlessConfig
	var gameCfg app.Config
	var seed uint
	var useTUI bool
	var logPath string
	var version bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Realtime, "realtime", false, "Pace headless frames with the wall clock.")
	flag.BoolVar(&useTUI, "tui", false, "Play in the terminal.")
	flag.UintVar(&seed, "seed", 1, "Random seed for tile selection.")
	flag.IntVar(&gameCfg.TickMillis, "tick-ms", 100, "Simulation tick period in milliseconds.")
	flag.IntVar(&gameCfg.GravityTicks, "gravity", 5, "Drop the tile one row every N ticks.")
	flag.StringVar(&logPath, "log", "", "Log file for -tui (default: discard).")
	flag.BoolVar(&version, "version", false, "Print build info and exit.")
	flag.Parse()
	if version {
		fmt.Println(buildinfo.Long())
		return
	}
	gameCfg.Seed = uint32(seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, gameCfg)
	}

	var err error
	switch {
	case useTUI:
		err = runTUI(ctx, gameCfg, logPath)
	case cfg.Enabled:
		err = hal.RunHeadless(ctx, newApp, cfg)
	default:
		err = hal.RunWindow(newApp)
	}
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, app.ErrQuit) {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func runTUI(ctx context.Context, cfg app.Config, logPath string) error {
	var w io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		w = f
	}
	return tui.Run(ctx, cfg, hal.NewLogger(w))
}
