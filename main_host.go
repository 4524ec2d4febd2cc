//go:build !tinygo && !periph

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"bitdog/app"
	"bitdog/hal"
)

func main() {
	var (
		headless bool
		dump     bool
		hcfg     hal.HeadlessConfig
		cfg      = app.DefaultConfig()
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", hal.DefaultHz, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.DurationVar(&hcfg.AutoPress, "autopress", 0, "Press the joystick button once per period in headless mode (0 = never).")
	flag.BoolVar(&dump, "dump", false, "Print the final frame as ASCII art when headless mode stops.")
	flag.DurationVar(&cfg.Splash, "splash", cfg.Splash, "How long the boot banner stays up.")
	flag.BoolVar(&cfg.Verbose, "v", false, "Log stick and LED levels with every heartbeat.")
	flag.Parse()

	h := hal.NewHost(os.Stdout)
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, h, newApp, hcfg)
		if dump {
			_ = h.WriteASCII(os.Stdout)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(h, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
