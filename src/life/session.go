package life

import (
	"math/rand"
	"time"
)

//Mode is the application mode; exactly one is active at a time
type Mode int

const (
	ModeSetup Mode = iota
	ModeRandomSeeding
	ModeManualEdit
	ModeRunning
	ModePaused
	ModeQuit
)

var modeNames = map[Mode]string{
	ModeSetup:         "setup",
	ModeRandomSeeding: "seeding",
	ModeManualEdit:    "editing",
	ModeRunning:       "running",
	ModePaused:        "paused",
	ModeQuit:          "quit",
}

func (m Mode) String() string { return modeNames[m] }

//Status represents the session counters at a concrete moment
type Status struct {
	Generation int
	Alive      int
	StepTime   time.Duration
	Mode       Mode
}

//Frame is the render snapshot handed to the viewer after every change.
//It owns copies of the mutable state, so the viewer may paint it from
//another goroutine without racing the session loop.
type Frame struct {
	Cells         [][]bool
	Width, Height int
	Cursor        Cursor
	Status        Status
	PendingMotion string //digits of a half-typed count-prefixed motion
}

//Viewer is the display collaborator: Refresh paints one frame, Stop
//tears the display down when the session reaches the quit mode
type Viewer interface {
	Refresh(f Frame)
	Stop()
}

//Session owns the grid, the cursor and the counters and runs the mode
//state machine. Exactly one goroutine, the one inside Run, ever touches
//them, so no locking is needed.
type Session struct {
	options Options
	grid    *Grid
	cursor  *Cursor
	status  Status
	motion  MotionParser
	rng     *rand.Rand
	events  chan Event
	viewer  Viewer
}

//NewSession creates a session with an all-dead grid and the cursor at
//the grid center
func NewSession(o Options) (*Session, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	g, err := NewGrid(o.Width, o.Height)
	if err != nil {
		return nil, err
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		options: o,
		grid:    g,
		cursor:  NewCursor(o.Width, o.Height),
		rng:     rand.New(rand.NewSource(seed)),
		events:  make(chan Event, 16),
		status:  Status{Mode: ModeSetup},
	}, nil
}

//Events returns the channel the input collaborator feeds
func (s *Session) Events() chan<- Event { return s.events }

//RegisterViewer registers the display collaborator
func (s *Session) RegisterViewer(v Viewer) { s.viewer = v }

//Status returns the current counters
func (s *Session) Status() Status { return s.status }

//Grid returns the live grid; only the session goroutine may mutate it
func (s *Session) Grid() *Grid { return s.grid }

//Cursor returns the current cursor position
func (s *Session) Cursor() Cursor { return *s.cursor }

//Run drives the state machine until the quit mode is reached, then
//stops the viewer. While a discrete choice is pending (setup, editing,
//pause) the loop blocks on the next event; in the running mode it polls
//at most one pending event, advances the grid by one generation and
//sleeps for the configured interval.
func (s *Session) Run() {
	s.refresh()
	for s.status.Mode != ModeQuit {
		if s.status.Mode != ModeRunning {
			s.handle(<-s.events)
			continue
		}
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
		}
		if s.status.Mode == ModeRunning {
			s.advance()
			s.refresh()
		}
		time.Sleep(s.options.Interval)
	}
	if s.viewer != nil {
		s.viewer.Stop()
	}
}

//handle dispatches one event against the current mode
func (s *Session) handle(ev Event) {
	switch s.status.Mode {
	case ModeSetup:
		s.handleSetup(ev)
	case ModeManualEdit:
		s.handleEdit(ev)
	case ModeRunning, ModePaused:
		s.handleControl(ev)
	}
	s.refresh()
}

//handleSetup waits for the seeding choice; everything else is ignored
func (s *Session) handleSetup(ev Event) {
	if ev.Kind != EventKey {
		return
	}
	switch ev.Key {
	case KeyRandom:
		s.setMode(ModeRandomSeeding)
		next := ModePaused
		if s.options.AutoStart {
			next = ModeRunning
		}
		s.reseed(next)
	case KeyManual:
		s.setMode(ModeManualEdit)
	case KeyQuit:
		s.setMode(ModeQuit)
	}
}

//handleEdit runs the manual editing session: cursor motions with an
//optional count prefix, cell toggles, confirm to leave.
//A digit sequence terminated by anything but a direction key is
//silently dropped.
func (s *Session) handleEdit(ev Event) {
	switch ev.Kind {
	case EventDigit:
		s.motion.Push(ev.Digit)
	case EventMotion:
		s.motion.Apply(s.cursor, ev.Dir)
	case EventToggle:
		s.motion.Discard()
		s.toggle()
	case EventConfirm:
		s.motion.Discard()
		s.setMode(ModePaused)
	case EventKey:
		s.motion.Discard()
		if ev.Key == KeyQuit {
			s.setMode(ModeQuit)
		}
	default:
		s.motion.Discard()
	}
}

//handleControl handles the mode keys shared by the running and paused
//modes. Cursor and cell edits only happen in the editing mode.
func (s *Session) handleControl(ev Event) {
	if ev.Kind != EventKey {
		return
	}
	switch ev.Key {
	case KeyPause:
		if s.status.Mode == ModeRunning {
			s.setMode(ModePaused)
		} else {
			s.setMode(ModeRunning)
		}
	case KeyEdit:
		//entering the editor always suspends the timed advance;
		//leaving it returns to the paused mode
		s.setMode(ModeManualEdit)
	case KeyClear:
		s.clear()
	case KeyReseed:
		s.reseed(ModeRunning)
	case KeyQuit:
		s.setMode(ModeQuit)
	}
}

func (s *Session) setMode(m Mode) { s.status.Mode = m }

//toggle flips the cell under the cursor and keeps the live counter exact
func (s *Session) toggle() {
	alive := s.grid.Get(s.cursor.Row, s.cursor.Col)
	if s.grid.Set(s.cursor.Row, s.cursor.Col, !alive) {
		if alive {
			s.status.Alive--
		} else {
			s.status.Alive++
		}
	}
}

//clear kills every cell, resets the counters and forces the paused mode
func (s *Session) clear() {
	s.grid.Clear()
	s.status.Generation = 0
	s.status.Alive = 0
	s.setMode(ModePaused)
}

//reseed replaces the population with a fresh random seeding and resets
//the generation counter
func (s *Session) reseed(next Mode) {
	s.grid.Clear()
	s.status.Generation = 0
	s.status.Alive = RandomSeed(s.grid, s.rng, s.options.MinSeedCells, s.options.MaxSeedCells)
	s.setMode(next)
}

//advance replaces the grid with the next generation, maintaining the
//counters from the birth/death deltas instead of a rescan
func (s *Session) advance() {
	start := time.Now()
	next, births, deaths := Advance(s.grid)
	s.grid = next
	s.status.Alive += births - deaths
	s.status.Generation++
	s.status.StepTime = time.Since(start)

	//bounded runs stop at the step limit or on a still life
	if s.options.MaxSteps > 0 {
		if s.status.Generation >= s.options.MaxSteps || births+deaths == 0 {
			s.setMode(ModeQuit)
		}
	}
}

func (s *Session) refresh() {
	if s.viewer == nil {
		return
	}
	s.viewer.Refresh(s.frame())
}

func (s *Session) frame() Frame {
	return Frame{
		Cells:         s.grid.Snapshot(),
		Width:         s.grid.Width(),
		Height:        s.grid.Height(),
		Cursor:        *s.cursor,
		Status:        s.status,
		PendingMotion: s.motion.Pending(),
	}
}
