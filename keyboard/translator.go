package keyboard

import "fmt"

// Mode is the translator's decoding mode.
type Mode uint8

const (
	// Idle decodes the next byte as an ordinary scancode.
	Idle Mode = iota

	// ExtendedPending decodes the next byte as the second half of an 0xE0
	// sequence.
	ExtendedPending
)

// State is everything the translator remembers between bytes.
// The zero value is the power-on state.
type State struct {
	Mode  Mode
	Shift bool
	Ctrl  bool

	// Last is the previous byte that was not dropped as a repeat.
	Last byte
}

// Key identifies a logical key.
type Key uint8

// Logical keys. KeyChar carries its character in Event.Char.
const (
	KeyNone Key = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyChar:      "char",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// Event is one decoded key press. Char is set only for KeyChar. Shift and
// Ctrl report the modifier state at the time of the press.
type Event struct {
	Key   Key
	Char  byte
	Shift bool
	Ctrl  bool
}

// Translate decodes one byte.
//
// It returns the next state and, when the byte completes a key press, the
// event. A byte equal to s.Last is dropped unless its release bit is set, so
// a held key polled faster than it repeats is seen once. Two taps of the same
// key with no release byte between them are therefore also seen once.
func Translate(s State, b byte) (State, Event, bool) {
	if b == s.Last && b&releaseBit == 0 {
		return s, Event{}, false
	}
	s.Last = b

	if b == codeExtended {
		s.Mode = ExtendedPending
		return s, Event{}, false
	}

	if s.Mode == ExtendedPending {
		s.Mode = Idle
		key, ok := arrows[b]
		if !ok {
			return s, Event{}, false
		}
		return s, s.event(key, 0), true
	}

	switch b {
	case codeLeftShift, codeRightShift:
		s.Shift = true
		return s, Event{}, false
	case codeLeftShift | releaseBit, codeRightShift | releaseBit:
		s.Shift = false
		return s, Event{}, false
	case codeCtrl:
		s.Ctrl = true
		return s, Event{}, false
	case codeCtrl | releaseBit:
		s.Ctrl = false
		return s, Event{}, false
	}

	if b&releaseBit != 0 {
		return s, Event{}, false
	}

	table := &unshifted
	if s.Shift {
		table = &shifted
	}
	c := table[b]
	switch c {
	case 0:
		return s, Event{}, false
	case '\n':
		return s, s.event(KeyEnter, 0), true
	case '\b':
		return s, s.event(KeyBackspace, 0), true
	case '\t':
		return s, s.event(KeyTab, 0), true
	default:
		return s, s.event(KeyChar, c), true
	}
}

func (s State) event(k Key, c byte) Event {
	return Event{Key: k, Char: c, Shift: s.Shift, Ctrl: s.Ctrl}
}

// Decoder holds translator state across calls.
type Decoder struct {
	state State
}

// Feed decodes b and advances the decoder.
func (d *Decoder) Feed(b byte) (Event, bool) {
	var (
		ev Event
		ok bool
	)
	d.state, ev, ok = Translate(d.state, b)
	return ev, ok
}

// State returns the current translator state.
func (d *Decoder) State() State {
	return d.state
}

// Reset returns the decoder to the power-on state.
func (d *Decoder) Reset() {
	d.state = State{}
}
