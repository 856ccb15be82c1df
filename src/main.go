package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/integrii/flaggy"

	"golife/src/life"
	"golife/src/view"
)

type EnvOptions struct {
	noUI       bool
	configPath string
}

func main() {
	eo, o := initOptions()

	if eo.noUI {
		//a headless run seeds itself and stops at the step limit
		o.AutoStart = true
		if o.MaxSteps == 0 {
			o.MaxSteps = 1000
		}
	}

	s, err := life.NewSession(*o)
	if err != nil {
		log.Fatalf("golife: %v", err)
	}

	//an interrupt is an orderly quit, not a crash
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		s.Events() <- life.Event{Kind: life.EventKey, Key: life.KeyQuit}
	}()

	if eo.noUI {
		s.RegisterViewer(view.NewConsoleOut())
		fmt.Printf("Game of Life simulation started...\n")
		s.Events() <- life.Event{Kind: life.EventKey, Key: life.KeyRandom}
		s.Run()
		return
	}

	ui := view.NewConsoleUI(s.Events(), *o)
	s.RegisterViewer(ui)
	go s.Run()
	ui.Start()
}

func initOptions() (eo *EnvOptions, o *life.Options) {
	opts := life.DefaultOptions
	o = &opts
	eo = &EnvOptions{}

	flaggy.SetName("golife")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid, in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.Int(&o.Width, "x", "width", "Width of the grid in cells")
	flaggy.Int(&o.Height, "y", "height", "Height of the grid in cells")
	flaggy.Duration(&o.Interval, "i", "interval", "Delay between generations in format the number with 'ms' suffix, for example 50ms")
	flaggy.Int(&o.MinSeedCells, "", "seed-min", "Lower bound of the random seeding target")
	flaggy.Int(&o.MaxSeedCells, "", "seed-max", "Upper bound of the random seeding target")
	flaggy.Bool(&o.AutoStart, "a", "autostart", "Start running right after a random seed instead of pausing")
	flaggy.Int(&o.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations (0 means no limit)")
	flaggy.Int64(&o.Seed, "", "seed", "RNG seed (0 uses the current time)")
	flaggy.Bool(&eo.noUI, "n", "no-ui", "Run without the terminal UI: random seed, run, print a summary")
	flaggy.String(&eo.configPath, "c", "config", "YAML options file; values in it override the flags")

	flaggy.Parse()

	if eo.configPath != "" {
		if err := life.LoadOptions(eo.configPath, o); err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
	}
	if err := o.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return
}
