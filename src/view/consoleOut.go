package view

import (
	"fmt"
	"time"

	"golife/src/life"
)

//reportEvery is how often the headless viewer logs progress
const reportEvery = 100

//ConsoleOut is the plain stdout viewer for non-interactive runs
type ConsoleOut struct {
	startTime time.Time
	last      life.Status
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{startTime: time.Now()}
}

func (c *ConsoleOut) Refresh(f life.Frame) {
	c.last = f.Status
	if f.Status.Mode == life.ModeRunning && f.Status.Generation > 0 && f.Status.Generation%reportEvery == 0 {
		fmt.Printf("  generation: %v, alive: %v\n", f.Status.Generation, f.Status.Alive)
	}
}

func (c *ConsoleOut) Stop() {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	fmt.Printf("Finished: generation %v, alive %v, total time %v\n",
		c.last.Generation, c.last.Alive, totalTime)
}
