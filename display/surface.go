// Package display provides the text surfaces the shell draws on.
//
// Surface is the contract the line editor and commands write through.
// Grid is an 80x25 character-cell buffer with VGA text-mode semantics; the
// terminal package mirrors it to a real screen. Stream writes to an
// io.Writer and is used for batch runs where no screen exists.
package display

// Default text-mode dimensions.
const (
	Width  = 80
	Height = 25
)

// Surface is a character-cell display with a cursor.
//
// WriteChar and WriteString write at the cursor and advance it, wrapping at
// the right edge and scrolling at the bottom. PutChar writes a single cell
// without moving the cursor or scrolling.
type Surface interface {
	WriteChar(c byte)
	WriteString(s string)
	PutChar(row, col int, c byte)
	Clear()
	Scroll()
	SetCursor(row, col int)
	Cursor() (row, col int)
	Size() (rows, cols int)
	SetColor(fg, bg Color)
	Color() (fg, bg Color)
}

// WriteLine writes s followed by a newline.
func WriteLine(s Surface, line string) {
	s.WriteString(line)
	s.WriteChar('\n')
}
