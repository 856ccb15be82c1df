package life

//EventKind tags the input event variants
type EventKind int

const (
	EventNone EventKind = iota
	EventMotion
	EventDigit
	EventToggle
	EventConfirm
	EventKey
)

//KeyAction identifies a mode key pressed by the user
type KeyAction int

const (
	KeyPause KeyAction = iota
	KeyEdit
	KeyClear
	KeyReseed
	KeyRandom //setup choice: random seeding
	KeyManual //setup choice: draw the seed by hand
	KeyQuit
)

//Event is the tagged input event produced by the input collaborator.
//Only the field matching Kind is meaningful.
type Event struct {
	Kind  EventKind
	Dir   Direction //EventMotion
	Digit rune      //EventDigit
	Key   KeyAction //EventKey
}
