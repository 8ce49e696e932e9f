// Package input turns pointer and key events from a presentation adapter into
// engine calls.
package input

// Kind distinguishes pointer events from key presses.
type Kind int

const (
	KindClick Kind = iota
	KindKey
)

// Key is a logical key; adapters translate their raw key codes into these.
type Key int

const (
	KeyNone Key = iota
	KeyConfirm
	KeyRestart
	KeyQuit
	KeyChoice1
	KeyChoice2
	KeyChoice3
)

func (k Key) String() string {
	switch k {
	case KeyConfirm:
		return "confirm"
	case KeyRestart:
		return "restart"
	case KeyQuit:
		return "quit"
	case KeyChoice1, KeyChoice2, KeyChoice3:
		return "choice"
	default:
		return "none"
	}
}

// Event is one discrete input. X and Y are only meaningful for clicks, Key only
// for key presses.
type Event struct {
	Kind Kind
	X, Y int
	Key  Key
}

func Click(x, y int) Event { return Event{Kind: KindClick, X: x, Y: y} }

func Press(k Key) Event { return Event{Kind: KindKey, Key: k} }

// Rect is an axis-aligned rectangle in adapter units (pixels or cells).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Action is what pressing a button does.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionAdvance
	ActionChoose
	ActionRestart
	ActionQuit
)

// Button is a clickable region. Choice is only used by ActionChoose.
type Button struct {
	Rect   Rect
	Label  string
	Action Action
	Choice int
}

// Layout is the set of buttons an adapter has drawn for the current view.
type Layout struct {
	Buttons []Button
}

// Hit returns the first button containing (x, y).
func (l Layout) Hit(x, y int) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
