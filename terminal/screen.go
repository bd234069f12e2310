package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/janleigh/ms-dos-clone/display"
	"github.com/janleigh/ms-dos-clone/errors"
)

// palette maps VGA colors to the closest tcell colors.
var palette = [16]tcell.Color{
	display.Black:        tcell.ColorBlack,
	display.Blue:         tcell.ColorNavy,
	display.Green:        tcell.ColorGreen,
	display.Cyan:         tcell.ColorTeal,
	display.Red:          tcell.ColorMaroon,
	display.Magenta:      tcell.ColorPurple,
	display.Brown:        tcell.ColorOlive,
	display.LightGrey:    tcell.ColorSilver,
	display.DarkGrey:     tcell.ColorGray,
	display.LightBlue:    tcell.ColorBlue,
	display.LightGreen:   tcell.ColorLime,
	display.LightCyan:    tcell.ColorAqua,
	display.LightRed:     tcell.ColorRed,
	display.LightMagenta: tcell.ColorFuchsia,
	display.LightBrown:   tcell.ColorYellow,
	display.White:        tcell.ColorWhite,
}

// TcellColor returns the tcell color used for c.
func TcellColor(c display.Color) tcell.Color {
	return palette[c&0x0F]
}

func style(attr byte) tcell.Style {
	fg, bg := display.SplitAttribute(attr)
	return tcell.StyleDefault.Foreground(TcellColor(fg)).Background(TcellColor(bg))
}

// Screen is a display.Grid shown on a tcell screen. All Surface methods
// act on the grid; Flush copies it to the terminal.
type Screen struct {
	*display.Grid
	tcell tcell.Screen
}

// NewScreen wraps an initialized tcell screen with a grid of the standard
// text-mode size.
func NewScreen(ts tcell.Screen) *Screen {
	return &Screen{
		Grid:  display.NewGrid(display.Height, display.Width),
		tcell: ts,
	}
}

// Open initializes the process terminal and returns a Screen on it.
func Open() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeIO, "failed to open terminal")
	}
	if err := ts.Init(); err != nil {
		return nil, errors.Wrap(err, errors.CodeIO, "failed to initialize terminal")
	}
	ts.SetStyle(style(display.Attribute(display.LightGrey, display.Black)))
	ts.Clear()
	return NewScreen(ts), nil
}

// Tcell returns the underlying tcell screen.
func (s *Screen) Tcell() tcell.Screen {
	return s.tcell
}

// Flush redraws the terminal from the grid if anything changed since the
// last flush, and places the terminal cursor at the grid cursor.
func (s *Screen) Flush() error {
	if !s.Dirty() {
		return nil
	}
	rows, cols := s.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := s.Cell(row, col)
			ch := rune(cell.Char)
			if ch == 0 {
				ch = ' '
			}
			s.tcell.SetContent(col, row, ch, nil, style(cell.Attr))
		}
	}
	row, col := s.Cursor()
	s.tcell.ShowCursor(col, row)
	s.tcell.Show()
	s.MarkClean()
	return nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.tcell.Fini()
}
