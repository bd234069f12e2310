package terminal

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/shell"
)

// Run boots sess on screen and drives it from the terminal's keyboard
// until EXIT, Ctrl+C, or cancellation of ctx. The session must have been
// created with screen as its surface.
func Run(ctx context.Context, sess *shell.Session, screen *Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	src := NewSource(screen.Tcell())
	sess.Boot()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return src.Pump(gctx)
	})
	g.Go(func() error {
		// Stop the pump once the session is over.
		defer cancel()
		return sess.Run(gctx, src)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
