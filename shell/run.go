package shell

import (
	"context"
	"io"
	"time"

	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/keyboard"
)

// pollInterval is how long Run sleeps between polls of a source that
// cannot block.
const pollInterval = 10 * time.Millisecond

// Flusher is implemented by surfaces that buffer output. Run flushes the
// surface whenever the source runs dry.
type Flusher interface {
	Flush() error
}

// Run feeds bytes from src through the scancode translator into the line
// editor until EXIT is run, src reports io.EOF, or ctx is done. Lines are
// dispatched as they are committed. Run returns nil on EXIT and EOF and
// the context's error on cancellation.
func (s *Session) Run(ctx context.Context, src keyboard.Source) error {
	s.ctx = ctx
	defer func() { s.ctx = context.Background() }()

	for !s.exited {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !src.Available() {
			if err := s.flush(); err != nil {
				return err
			}
			if err := wait(ctx, src); err != nil {
				if errors.Is(err, io.EOF) {
					return s.flush()
				}
				return err
			}
			continue
		}

		b, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.flush()
			}
			return errors.Wrap(err, errors.CodeIO, "failed to read keyboard input")
		}
		if ev, ok := s.decoder.Feed(b); ok {
			s.editor.Handle(ev)
		}
	}
	return s.flush()
}

func wait(ctx context.Context, src keyboard.Source) error {
	if w, ok := src.(keyboard.Waiter); ok {
		return w.Wait(ctx)
	}

	timer := time.NewTimer(pollInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Session) flush() error {
	f, ok := s.surface.(Flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to flush display")
	}
	return nil
}
