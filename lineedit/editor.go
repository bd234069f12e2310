package lineedit

import (
	"github.com/janleigh/ms-dos-clone/display"
	"github.com/janleigh/ms-dos-clone/keyboard"
)

// State is the editor's mode.
type State uint8

const (
	// Idle means the buffer is the live line.
	Idle State = iota

	// BrowsingHistory means the buffer shows a history entry.
	BrowsingHistory
)

func (s State) String() string {
	if s == BrowsingHistory {
		return "browsing"
	}
	return "idle"
}

// Completer rewrites a partial line. It reports false when it has nothing
// to offer, in which case the line is left unchanged.
type Completer interface {
	Complete(line string) (string, bool)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(line string) (string, bool)

// Complete calls f.
func (f CompleterFunc) Complete(line string) (string, bool) {
	return f(line)
}

// DispatchFunc receives each committed line, including empty ones.
type DispatchFunc func(line string)

// Option configures an Editor.
type Option func(*Editor)

// WithCompleter sets the Tab handler.
func WithCompleter(c Completer) Option {
	return func(e *Editor) {
		e.completer = c
	}
}

// WithCapacity sets the buffer capacity.
func WithCapacity(n int) Option {
	return func(e *Editor) {
		e.buf = NewBuffer(n)
	}
}

// WithHistorySize sets the history ring size.
func WithHistorySize(n int) Option {
	return func(e *Editor) {
		e.hist = NewHistory(n)
	}
}

// Editor is the line editor.
//
// The on-screen line always ends at the surface cursor, so the start of
// the line is found by stepping back Len() cells from the cursor. This
// stays correct after the surface scrolls.
type Editor struct {
	surface   display.Surface
	dispatch  DispatchFunc
	completer Completer
	buf       *Buffer
	hist      *History
}

// New returns an editor drawing on surface and handing committed lines to
// dispatch.
func New(surface display.Surface, dispatch DispatchFunc, opts ...Option) *Editor {
	e := &Editor{
		surface:  surface,
		dispatch: dispatch,
		buf:      NewBuffer(DefaultCapacity),
		hist:     NewHistory(DefaultHistorySize),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Handle applies one key event.
func (e *Editor) Handle(ev keyboard.Event) {
	switch ev.Key {
	case keyboard.KeyChar:
		e.Insert(ev.Char)
	case keyboard.KeyBackspace:
		e.Backspace()
	case keyboard.KeyEnter:
		e.Commit()
	case keyboard.KeyTab:
		e.Complete()
	case keyboard.KeyUp:
		e.HistoryOlder()
	case keyboard.KeyDown:
		e.HistoryNewer()
	}
}

// Insert appends c and echoes it. A full buffer ignores it. Editing a
// recalled line does not move the browse cursor.
func (e *Editor) Insert(c byte) {
	if e.buf.Insert(c) {
		e.surface.WriteChar(c)
	}
}

// Backspace removes the last character and blanks its cell, stepping back
// to the end of the previous row when the cursor is in column 0.
func (e *Editor) Backspace() {
	if !e.buf.Backspace() {
		return
	}
	_, cols := e.surface.Size()
	row, col := e.surface.Cursor()
	col--
	if col < 0 {
		if row == 0 {
			return
		}
		col = cols - 1
		row--
	}
	e.surface.PutChar(row, col, ' ')
	e.surface.SetCursor(row, col)
}

// HistoryOlder recalls the next older history entry.
func (e *Editor) HistoryOlder() {
	if e.hist.Older() {
		e.replace(e.hist.Current())
	}
}

// HistoryNewer recalls the next newer history entry, or the empty line
// after the newest.
func (e *Editor) HistoryNewer() {
	if e.hist.Newer() {
		e.replace(e.hist.Current())
	}
}

// Complete runs the completer and redraws the line if it offered a
// rewrite.
func (e *Editor) Complete() {
	if e.completer == nil || e.buf.Len() == 0 {
		return
	}
	line, ok := e.completer.Complete(e.buf.String())
	if !ok || line == e.buf.String() {
		return
	}
	e.replace(line)
}

// Commit ends the line: it echoes the newline, records a non-empty line in
// history, hands the line to dispatch and then resets the buffer and the
// browse cursor.
func (e *Editor) Commit() {
	line := e.buf.String()
	e.surface.WriteChar('\n')
	e.hist.Add(line)
	if e.dispatch != nil {
		e.dispatch(line)
	}
	e.buf.Reset()
	e.hist.Reset()
}

// Submit replaces the buffer with line, echoing it, and commits it.
func (e *Editor) Submit(line string) {
	e.buf.Reset()
	for i := 0; i < len(line); i++ {
		e.Insert(line[i])
	}
	e.Commit()
}

// Line returns the current buffer contents.
func (e *Editor) Line() string {
	return e.buf.String()
}

// History returns the editor's history ring.
func (e *Editor) History() *History {
	return e.hist
}

// State returns the editor's mode.
func (e *Editor) State() State {
	if e.hist.Browsing() {
		return BrowsingHistory
	}
	return Idle
}

// replace blanks the on-screen line in place and writes s from its start.
func (e *Editor) replace(s string) {
	rows, cols := e.surface.Size()
	row, col := e.surface.Cursor()
	start := row*cols + col - e.buf.Len()
	if start < 0 {
		start = 0
	}

	for i := 0; i < e.buf.Len(); i++ {
		pos := start + i
		if pos/cols >= rows {
			break
		}
		e.surface.PutChar(pos/cols, pos%cols, ' ')
	}
	e.surface.SetCursor(start/cols, start%cols)

	e.buf.Set(s)
	e.surface.WriteString(e.buf.String())
}
