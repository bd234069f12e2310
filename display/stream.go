package display

import (
	"bufio"
	"io"
)

// Stream is a Surface over an io.Writer. It has no addressable cells:
// PutChar, Scroll and SetCursor only adjust the tracked cursor, and Clear
// emits a form feed. Colors are remembered but not rendered.
type Stream struct {
	w        *bufio.Writer
	cols     int
	row, col int
	fg, bg   Color
	err      error
}

// NewStream returns a Stream writing to w, wrapping at cols.
func NewStream(w io.Writer, cols int) *Stream {
	return &Stream{w: bufio.NewWriter(w), cols: cols, fg: LightGrey, bg: Black}
}

// WriteChar writes c.
func (s *Stream) WriteChar(c byte) {
	if s.err != nil {
		return
	}
	s.err = s.w.WriteByte(c)
	switch c {
	case '\n':
		s.row++
		s.col = 0
	case '\r':
		s.col = 0
	default:
		s.col++
		if s.col >= s.cols {
			s.row++
			s.col = 0
		}
	}
	if c == '\n' && s.err == nil {
		s.err = s.w.Flush()
	}
}

// WriteString writes each byte of s.
func (s *Stream) WriteString(str string) {
	for i := 0; i < len(str); i++ {
		s.WriteChar(str[i])
	}
}

// PutChar is a no-op; a stream cannot rewrite earlier output.
func (s *Stream) PutChar(int, int, byte) {}

// Clear writes a form feed.
func (s *Stream) Clear() {
	if s.err == nil {
		s.err = s.w.WriteByte('\f')
	}
	s.row, s.col = 0, 0
}

// Scroll is a no-op.
func (s *Stream) Scroll() {}

// SetCursor records the position without writing anything.
func (s *Stream) SetCursor(row, col int) {
	s.row, s.col = row, col
}

// Cursor returns the tracked position.
func (s *Stream) Cursor() (row, col int) {
	return s.row, s.col
}

// Size reports an unbounded number of rows.
func (s *Stream) Size() (rows, cols int) {
	return int(^uint(0) >> 1), s.cols
}

// SetColor records the color.
func (s *Stream) SetColor(fg, bg Color) {
	s.fg, s.bg = fg, bg
}

// Color returns the recorded color.
func (s *Stream) Color() (fg, bg Color) {
	return s.fg, s.bg
}

// Flush writes any buffered output and returns the first write error.
func (s *Stream) Flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()
	return s.err
}
