//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	Host  HostConfig
	// Done is called with the HAL after the loop ends, before RunHeadless returns.
	Done func(HAL) error
}

// RunHeadless runs the calculator without opening a window.
//
// A step returning ErrExit ends the run without error.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Host, os.Stdout)
	step := newApp(h)

	err := runTicker(ctx, h, step, d, cfg.Ticks)
	if errors.Is(err, ErrExit) {
		err = nil
	}
	if err == nil && cfg.Done != nil {
		err = cfg.Done(h)
	}
	return err
}

func runTicker(ctx context.Context, h *hostHAL, step func() error, d time.Duration, limit uint64) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if limit > 0 && tick >= limit {
				return nil
			}
		}
	}
}
