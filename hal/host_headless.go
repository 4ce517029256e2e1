//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Realtime paces frames with a wall-clock ticker. Without it frames run
	// back to back and each advances the clock by exactly 1/Hz.
	Realtime bool
}

// RunHeadless runs the game without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h := New().(*hostHAL)
	return runHeadless(ctx, h, newApp(h), cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, step func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	var pace <-chan time.Time
	if cfg.Realtime {
		t := time.NewTicker(d)
		defer t.Stop()
		pace = t.C
	}

	var frame uint64
	for {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		h.t.advanceBy(d)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		frame++
		if cfg.Ticks > 0 && frame >= cfg.Ticks {
			return nil
		}
	}
}
