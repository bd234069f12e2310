package display

import (
	"fmt"
	"strings"

	"github.com/janleigh/ms-dos-clone/errors"
)

// Color is one of the sixteen VGA text-mode colors.
type Color uint8

// VGA palette, in attribute order.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	LightBrown
	White
)

var colorNames = [...]string{
	"black",
	"blue",
	"green",
	"cyan",
	"red",
	"magenta",
	"brown",
	"light_grey",
	"dark_grey",
	"light_blue",
	"light_green",
	"light_cyan",
	"light_red",
	"light_magenta",
	"light_brown",
	"white",
}

// ColorNames returns the configuration names of the palette in order.
func ColorNames() []string {
	return append([]string(nil), colorNames[:]...)
}

// String returns the configuration name of c.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor accepts a palette name, case-insensitively. "yellow" is
// accepted for light_brown and "gray" spellings for the greys.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "gray", "grey")
	if n == "yellow" {
		return LightBrown, nil
	}
	for i, candidate := range colorNames {
		if n == candidate {
			return Color(i), nil
		}
	}
	return Black, errors.Newf(errors.CodeInvalidInput, "unknown color: %s", name)
}

// Attribute packs a foreground and background into a VGA attribute byte.
func Attribute(fg, bg Color) byte {
	return byte(fg&0x0F) | byte(bg&0x0F)<<4
}

// SplitAttribute unpacks a VGA attribute byte.
func SplitAttribute(attr byte) (fg, bg Color) {
	return Color(attr & 0x0F), Color(attr >> 4)
}

// ParseAttribute parses the two-hex-digit form used by COLOR: the first
// digit is the background, the second the foreground.
func ParseAttribute(s string) (fg, bg Color, err error) {
	if len(s) != 2 {
		return 0, 0, errors.Newf(errors.CodeInvalidInput, "invalid color attribute: %s", s)
	}
	b, okB := hexDigit(s[0])
	f, okF := hexDigit(s[1])
	if !okB || !okF {
		return 0, 0, errors.Newf(errors.CodeInvalidInput, "invalid color attribute: %s", s)
	}
	return Color(f), Color(b), nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
