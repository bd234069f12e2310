package display

import "strings"

const tabWidth = 8

// Cell is one character position.
type Cell struct {
	Char byte
	Attr byte
}

// Grid is an in-memory character-cell surface with VGA text-mode
// behavior: '\n' moves to the start of the next row, '\r' to the start of
// the current row, writing past the last column wraps, and moving past the
// last row scrolls everything up one row.
type Grid struct {
	rows, cols int
	cells      []Cell
	row, col   int
	attr       byte

	// dirty is set by any change and cleared by the owner after redrawing.
	dirty bool
}

// NewGrid returns a cleared grid in light grey on black.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		attr:  Attribute(LightGrey, Black),
	}
	g.Clear()
	return g
}

// WriteChar writes c at the cursor and advances it.
func (g *Grid) WriteChar(c byte) {
	g.dirty = true
	switch c {
	case '\n':
		g.col = 0
		g.newline()
		return
	case '\r':
		g.col = 0
		return
	case '\t':
		for {
			g.WriteChar(' ')
			if g.col%tabWidth == 0 {
				return
			}
		}
	}

	g.cells[g.row*g.cols+g.col] = Cell{Char: c, Attr: g.attr}
	g.col++
	if g.col >= g.cols {
		g.col = 0
		g.newline()
	}
}

func (g *Grid) newline() {
	g.row++
	if g.row >= g.rows {
		g.Scroll()
	}
}

// WriteString writes each byte of s.
func (g *Grid) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		g.WriteChar(s[i])
	}
}

// PutChar sets one cell in the current color. Out-of-range positions are
// ignored.
func (g *Grid) PutChar(row, col int, c byte) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row*g.cols+col] = Cell{Char: c, Attr: g.attr}
	g.dirty = true
}

// Clear blanks every cell in the current color and homes the cursor.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Char: ' ', Attr: g.attr}
	}
	g.row, g.col = 0, 0
	g.dirty = true
}

// Scroll moves every row up by one, blanks the last row and moves the
// cursor up one row.
func (g *Grid) Scroll() {
	copy(g.cells, g.cells[g.cols:])
	last := g.cells[(g.rows-1)*g.cols:]
	for i := range last {
		last[i] = Cell{Char: ' ', Attr: g.attr}
	}
	if g.row > 0 {
		g.row--
	}
	g.dirty = true
}

// SetCursor moves the cursor, clamped to the grid.
func (g *Grid) SetCursor(row, col int) {
	g.row = clamp(row, 0, g.rows-1)
	g.col = clamp(col, 0, g.cols-1)
	g.dirty = true
}

// Cursor returns the cursor position.
func (g *Grid) Cursor() (row, col int) {
	return g.row, g.col
}

// Size returns the grid dimensions.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// SetColor sets the color used by subsequent writes.
func (g *Grid) SetColor(fg, bg Color) {
	g.attr = Attribute(fg, bg)
}

// Color returns the current color.
func (g *Grid) Color() (fg, bg Color) {
	return SplitAttribute(g.attr)
}

// Cell returns the cell at row, col.
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[row*g.cols+col]
}

// Row returns the text of one row with trailing blanks removed.
func (g *Grid) Row(row int) string {
	b := make([]byte, g.cols)
	for col := 0; col < g.cols; col++ {
		b[col] = g.cells[row*g.cols+col].Char
	}
	return strings.TrimRight(string(b), " ")
}

// Lines returns every row as by Row.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// Dirty reports whether the grid changed since the last MarkClean.
func (g *Grid) Dirty() bool {
	return g.dirty
}

// MarkClean clears the change flag.
func (g *Grid) MarkClean() {
	g.dirty = false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
