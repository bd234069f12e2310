package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/janleigh/ms-dos-clone/keyboard"
)

// Source is a keyboard.Source fed from tcell key events. Pump must be
// running for bytes to arrive.
type Source struct {
	*keyboard.Queue
	tcell tcell.Screen
	enc   *keyboard.Encoder
}

// NewSource returns a source reading events from ts.
func NewSource(ts tcell.Screen) *Source {
	return &Source{
		Queue: keyboard.NewQueue(),
		tcell: ts,
		enc:   keyboard.NewEncoder(),
	}
}

// Pump forwards key events as scancodes until ctx is done, the screen
// stops delivering events, or Ctrl+C is pressed. The queue is closed on
// return so a reader sees io.EOF once it has drained it.
func (s *Source) Pump(ctx context.Context) error {
	defer s.Close()

	events := make(chan tcell.Event)
	go s.tcell.ChannelEvents(events, ctx.Done())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if b := s.encode(ev); len(b) > 0 {
					s.Push(b...)
				}
			case *tcell.EventResize:
				s.tcell.Sync()
			}
		}
	}
}

// encode maps a tcell key to scancodes. Keys a PC keyboard in the shell's
// layout cannot produce are dropped.
func (s *Source) encode(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 0x80 {
			return nil
		}
		b, _ := s.enc.Char(byte(r))
		return b
	case tcell.KeyEnter:
		return s.enc.Key(keyboard.KeyEnter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return s.enc.Key(keyboard.KeyBackspace)
	case tcell.KeyTab:
		return s.enc.Key(keyboard.KeyTab)
	case tcell.KeyUp:
		return s.enc.Key(keyboard.KeyUp)
	case tcell.KeyDown:
		return s.enc.Key(keyboard.KeyDown)
	case tcell.KeyLeft:
		return s.enc.Key(keyboard.KeyLeft)
	case tcell.KeyRight:
		return s.enc.Key(keyboard.KeyRight)
	default:
		return nil
	}
}
