package view

import (
	"bytes"
	"fmt"
	"log"
	"math/rand"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"golife/src/life"
)

type keyBinding struct {
	key   interface{}
	event life.Event
}

//ConsoleUI renders the session in the terminal and feeds key presses
//back to it as tagged events. It owns the screen: acquired once in
//NewConsoleUI, released exactly once when Start returns.
type ConsoleUI struct {
	g      *gocui.Gui
	events chan<- life.Event
	opts   life.Options
	frame  life.Frame //written and read only inside the gocui loop

	deadFiller string
	liveFiller string
	liveBold   string
	editFiller string
}

var modeDescr = map[life.Mode]string{
	life.ModeSetup:         aurora.Colorize("setup", aurora.BlueFg).String(),
	life.ModeRandomSeeding: aurora.Colorize("seeding", aurora.YellowFg).String(),
	life.ModeManualEdit:    aurora.Colorize("editing", aurora.MagentaFg).String(),
	life.ModeRunning:       aurora.Colorize("running", aurora.CyanFg).String(),
	life.ModePaused:        aurora.Colorize("paused", aurora.BlueFg).String(),
	life.ModeQuit:          aurora.Colorize("quit", aurora.RedFg).String(),
}

func NewConsoleUI(events chan<- life.Event, opts life.Options) *ConsoleUI {
	t := ConsoleUI{
		events:     events,
		opts:       opts,
		deadFiller: "·",
		liveFiller: aurora.Green("@").String(),
		liveBold:   aurora.Green("@").Bold().String(),
		editFiller: aurora.Cyan("#").String(),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings(t.keyBindings())
	return &t
}

//keyBindings maps every key to the event it produces.
//Arrows and hjkl move, digits prefix a count, space toggles, enter
//confirms, the rest are mode keys.
func (t *ConsoleUI) keyBindings() []keyBinding {
	motion := func(d life.Direction) life.Event {
		return life.Event{Kind: life.EventMotion, Dir: d}
	}
	key := func(k life.KeyAction) life.Event {
		return life.Event{Kind: life.EventKey, Key: k}
	}
	k := []keyBinding{
		{gocui.KeyArrowUp, motion(life.Up)},
		{gocui.KeyArrowDown, motion(life.Down)},
		{gocui.KeyArrowLeft, motion(life.Left)},
		{gocui.KeyArrowRight, motion(life.Right)},
		{'k', motion(life.Up)},
		{'j', motion(life.Down)},
		{'h', motion(life.Left)},
		{'l', motion(life.Right)},
		{gocui.KeySpace, life.Event{Kind: life.EventToggle}},
		{gocui.KeyEnter, life.Event{Kind: life.EventConfirm}},
		{'y', key(life.KeyRandom)},
		{'n', key(life.KeyManual)},
		{'p', key(life.KeyPause)},
		{'e', key(life.KeyEdit)},
		{'c', key(life.KeyClear)},
		{'w', key(life.KeyReseed)},
		{'q', key(life.KeyQuit)},
		{gocui.KeyCtrlC, key(life.KeyQuit)},
	}
	for d := '0'; d <= '9'; d++ {
		k = append(k, keyBinding{d, life.Event{Kind: life.EventDigit, Digit: d}})
	}
	return k
}

func (t *ConsoleUI) initKeyBindings(k []keyBinding) {
	for _, kb := range k {
		ev := kb.event
		err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
			t.send(ev)
			return nil
		})
		if err != nil {
			log.Panicln(err)
		}
	}
}

//send pushes an event without ever blocking the UI loop; when the
//session is behind, excess key presses are dropped
func (t *ConsoleUI) send(ev life.Event) {
	select {
	case t.events <- ev:
	default:
	}
}

//Start runs the terminal loop until Stop is called or the loop fails.
//The screen is released exactly once, whichever path ends the loop.
func (t *ConsoleUI) Start() {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

//Stop ends the terminal loop; the session calls it on its quit path
func (t *ConsoleUI) Stop() {
	t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
}

//Refresh paints one frame. The frame is an owned copy, so it can be
//handed to the gocui loop and rendered there without racing the session.
func (t *ConsoleUI) Refresh(f life.Frame) {
	t.g.Update(func(g *gocui.Gui) error {
		t.frame = f
		t.renderField(g)
		t.renderStatus(g)
		t.renderHints(g)
		return nil
	})
}

func (t *ConsoleUI) renderField(g *gocui.Gui) {
	v, err := g.View("field")
	if err != nil {
		return //layout not built yet
	}
	v.Clear()

	f := t.frame
	if f.Status.Mode == life.ModeSetup || f.Cells == nil {
		g.Cursor = false
		_, _ = fmt.Fprintf(v, "\n  %s\n\n  Random seed? (%s/%s)",
			aurora.Bold("Conway's Game of Life"), aurora.Green("y"), aurora.Green("n"))
		return
	}

	maxW, maxH := v.Size()
	crop := f.Width > maxW || f.Height > maxH
	editing := f.Status.Mode == life.ModeManualEdit

	var b bytes.Buffer
	for i, row := range f.Cells {
		if i >= maxH {
			break
		}
		if i != 0 {
			b.WriteByte('\n')
		}
		if crop && i == maxH-1 {
			b.WriteString(aurora.Red("The grid is larger than the viewing area").String())
			break
		}
		for j, alive := range row {
			if j >= maxW {
				break
			}
			switch {
			case !alive:
				b.WriteString(t.deadFiller)
			case editing:
				b.WriteString(t.editFiller)
			case rand.Intn(2) == 1:
				b.WriteString(t.liveBold)
			default:
				b.WriteString(t.liveFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())

	//the visible caret follows the cursor while editing
	if editing {
		g.Cursor = true
		_ = v.SetCursor(f.Cursor.Col, f.Cursor.Row)
	} else {
		g.Cursor = false
	}
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	f := t.frame
	if v, err := g.View("status"); err == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", f.Status.Generation))
		_, _ = fmt.Fprintln(v, t.renderProp("Alive", "%v", f.Status.Alive))
		_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", f.Status.StepTime))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", modeDescr[f.Status.Mode]))
		if f.PendingMotion != "" {
			_, _ = fmt.Fprintln(v, t.renderProp("Motion", "%v_", f.PendingMotion))
		}
	}
}

func (t *ConsoleUI) renderConfiguration(g *gocui.Gui) {
	if v, err := g.View("configuration"); err == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.opts.Width, t.opts.Height))
		_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.opts.Interval))
		_, _ = fmt.Fprintln(v, t.renderProp("Seed range", "%v to %v", t.opts.MinSeedCells, t.opts.MaxSeedCells))
	}
}

func (t *ConsoleUI) renderHints(g *gocui.Gui) {
	v, err := g.View("hints")
	if err != nil {
		return
	}
	v.Clear()

	kn := func(s string) string { return aurora.Green(s).String() }
	var hints string
	switch t.frame.Status.Mode {
	case life.ModeSetup:
		hints = kn("Y") + ": random seed, " + kn("N") + ": draw the seed yourself, " + kn("Q") + ": quit"
	case life.ModeManualEdit:
		hints = kn("ARROWS/HJKL") + ": move (type digits first to jump), " + kn("SPACE") + ": toggle cell, " + kn("ENTER") + ": done"
	case life.ModeRunning:
		hints = kn("P") + ": pause, " + kn("E") + ": edit, " + kn("C") + ": clear, " + kn("W") + ": reseed, " + kn("Q") + ": quit"
	case life.ModePaused:
		hints = kn("P") + ": resume, " + kn("E") + ": edit, " + kn("C") + ": clear, " + kn("W") + ": reseed, " + kn("Q") + ": quit"
	}
	_, _ = fmt.Fprintln(v, "KEYS: "+hints)
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil
	}

	if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}
	t.renderConfiguration(g)

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus(g)

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Grid"
		v.Frame = true
		if _, err := g.SetCurrentView("field"); err != nil {
			return err
		}
	}
	t.renderField(g)

	if v, err := g.SetView("hints", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
	}
	t.renderHints(g)

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorGreen
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := (maxX - len(text)) / 2
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprintf(v, "\n%*s", pad+len(text), text)
	}
	return
}
