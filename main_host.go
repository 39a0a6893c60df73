//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"

	"calc/app"
	"calc/engine"
	"calc/hal"
	"calc/internal/buildinfo"

	xdraw "golang.org/x/image/draw"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		headless bool
		press    string
		shot     string
		version  bool
		acfg     app.Config
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&press, "press", "", `Buttons to press at startup, e.g. "7 + 5 =".`)
	flag.StringVar(&shot, "shot", "", "Write the final frame to this PNG file when a headless run ends (-ticks or Esc).")
	flag.BoolVar(&acfg.Sound, "sound", false, "Click on every key press.")
	flag.BoolVar(&acfg.Verbose, "v", false, "Log every key press.")
	flag.IntVar(&cfg.Host.Width, "width", 320, "Framebuffer width in pixels.")
	flag.IntVar(&cfg.Host.Height, "height", 320, "Framebuffer height in pixels.")
	flag.IntVar(&cfg.Host.Scale, "scale", 2, "Initial window zoom, also applied to -shot.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println("calc", buildinfo.Long())
		return
	}

	buttons, err := engine.ParseSequence(press)
	if err != nil {
		fmt.Fprintln(os.Stderr, "calc: -press:", err)
		os.Exit(2)
	}
	acfg.Press = buttons

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	if headless {
		if shot != "" {
			cfg.Done = func(h hal.HAL) error { return writeShot(h, shot, cfg.Host.Scale) }
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, cfg.Host); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// writeShot saves the framebuffer as a PNG, zoomed by scale with nearest
// neighbor sampling so pixels stay sharp.
func writeShot(h hal.HAL, path string, scale int) error {
	var img image.Image
	src, err := hal.Snapshot(h.Display().Framebuffer())
	if err != nil {
		return err
	}
	img = src
	if scale > 1 {
		b := src.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
