// Package shell is the command interpreter that ties the namespace store,
// the line editor and a display surface together.
//
// A Session owns the current directory and a command table. Input reaches
// it either as raw scancodes through Run, which drives the translator and
// line editor exactly as a keyboard would, or as whole lines through
// Execute for scripted runs. Every committed line is dispatched through
// the same path, so both modes print identical output.
//
// Basic usage:
//
//	store, err := namespace.NewSeeded(namespace.DefaultSeed())
//	if err != nil {
//	    return err
//	}
//
//	grid := display.NewGrid(display.Height, display.Width)
//	sess := shell.New(store, grid, shell.WithLogger(logger))
//	sess.Boot()
//
//	if err := sess.Run(ctx, source); err != nil {
//	    return err
//	}
package shell
